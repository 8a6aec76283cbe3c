package oracle

import (
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/domain/property"
)

// Client asks the prediction service for a price estimate. One blocking
// request/response exchange, no retry, no caching.
type Client interface {
	PredictPrice(bCtx.Ctx, *property.Record) (float64, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Url        string
	Timeout    time.Duration
}

// Price stays raw so a wrongly-typed value in an otherwise valid body is
// a missing-data condition, not a protocol one.
type prediction struct {
	Price json.RawMessage `json:"price"`
}
