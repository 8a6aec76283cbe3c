package pinata

import (
	"errors"

	"github.com/estatemint/goapi/base/ctx"
)

var (
	ErrRequestFailed = errors.New("request failed")
)

// Service pins metadata documents to IPFS through pinata
type Service interface {
	// PinJson pins a JSON-serializable value and returns its CID
	PinJson(c ctx.Ctx, value interface{}) (string, error)
}
