package oracle

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/log"
	"github.com/estatemint/goapi/base/metrics"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/domain/property"
)

type client struct {
	client  http.Client
	url     string
	timeout time.Duration
	met     metrics.Service
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:  cfg.HttpClient,
		url:     cfg.Url,
		timeout: cfg.Timeout,
		met:     metrics.New("oracle"),
	}
}

func (c *client) PredictPrice(ctx bCtx.Ctx, record *property.Record) (float64, error) {
	defer c.met.BumpTime("predict.latency").End()

	body, err := json.Marshal(record)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return 0, err
	}

	data, err := c.post(ctx, body)
	if err != nil {
		c.met.BumpSum("predict.err", 1)
		return 0, err
	}

	p := &prediction{}
	if err := json.Unmarshal(data, p); err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("json.Unmarshal failed")
		c.met.BumpSum("predict.err", 1)
		return 0, xerrors.Errorf("decoding prediction: %s: %w", err, domain.ErrUpstreamProtocol)
	}
	var price *float64
	if len(p.Price) > 0 {
		if err := json.Unmarshal(p.Price, &price); err != nil {
			price = nil
		}
	}
	if price == nil || math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0 {
		ctx.WithField("body", string(data)).Error("prediction has no usable price")
		c.met.BumpSum("predict.err", 1)
		return 0, xerrors.Errorf("prediction body %q: %w", string(data), domain.ErrUpstreamDataMissing)
	}
	return *price, nil
}

func (c *client) post(ctx bCtx.Ctx, body []byte) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("client.Do failed")
		return nil, xerrors.Errorf("calling price service: %s: %w", err, domain.ErrUpstreamUnavailable)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        c.url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, xerrors.Errorf("price service returned %d: %w", resp.StatusCode, domain.ErrUpstreamProtocol)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": c.url,
			"err": err,
		}).Error("failed to read body")
		return nil, xerrors.Errorf("reading prediction body: %s: %w", err, domain.ErrUpstreamUnavailable)
	}
	return data, nil
}
