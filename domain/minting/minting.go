package minting

import (
	"encoding/json"

	"github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/domain/property"
)

// State tracks a single mint request through its sequential steps.
type State string

const (
	StateReceived       State = "received"
	StatePriceRequested State = "priceRequested"
	StatePriceObtained  State = "priceObtained"
	StateMetadataBuilt  State = "metadataBuilt"
	StateTxSubmitted    State = "txSubmitted"
	StateTxConfirmed    State = "txConfirmed"
	StateFailed         State = "failed"
)

// MintResult is returned once the mint transaction is confirmed. The
// caller is the system of record for the transaction hash.
type MintResult struct {
	TxHash   domain.TxHash `json:"transactionHash"`
	Price    float64       `json:"price"`
	TokenURI string        `json:"tokenUri"`
}

// TokenMetadata is the read-path view of a minted token. Metadata is
// re-fetched on every request, never cached.
type TokenMetadata struct {
	TokenId  domain.TokenId  `json:"token_id"`
	Metadata json.RawMessage `json:"metadata"`
}

// Usecase represents the minting orchestration usecases
type Usecase interface {
	Mint(ctx.Ctx, *property.Record) (*MintResult, error)
	GetMetadata(ctx.Ctx, domain.TokenId) (*TokenMetadata, error)
}
