package usecase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/log"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/domain/minting"
	"github.com/estatemint/goapi/domain/property"
	"github.com/estatemint/goapi/service/chain/contract"
	"github.com/estatemint/goapi/service/oracle"
	"github.com/estatemint/goapi/service/pinata"
)

var emptyMetadata = json.RawMessage("{}")

type MintingUseCaseCfg struct {
	Oracle    oracle.Client
	Contract  contract.RealEstateContract
	Recipient common.Address
	// Pinata is optional, inline JSON is stored when it is nil
	Pinata      pinata.Service
	WebResource domain.WebResourceUseCase
}

type impl struct {
	oracle      oracle.Client
	contract    contract.RealEstateContract
	recipient   common.Address
	pinata      pinata.Service
	webResource domain.WebResourceUseCase
}

// New creates the minting usecase, the orchestrator of one mint request
func New(cfg *MintingUseCaseCfg) minting.Usecase {
	return &impl{
		oracle:      cfg.Oracle,
		contract:    cfg.Contract,
		recipient:   cfg.Recipient,
		pinata:      cfg.Pinata,
		webResource: cfg.WebResource,
	}
}

// Mint walks one request through its steps in order. Each step blocks
// until its external call completes, a failing step aborts the request,
// and success requires a confirmed transaction hash.
func (im *impl) Mint(c bCtx.Ctx, record *property.Record) (*minting.MintResult, error) {
	state := minting.StateReceived

	state = im.transition(c, state, minting.StatePriceRequested)
	price, err := im.oracle.PredictPrice(c, record)
	if err != nil {
		return nil, im.fail(c, state, err)
	}
	state = im.transition(c, state, minting.StatePriceObtained)

	metadata := property.BuildMetadata(record, price)
	state = im.transition(c, state, minting.StateMetadataBuilt)

	tokenURI, err := im.tokenURI(c, metadata)
	if err != nil {
		return nil, im.fail(c, state, err)
	}

	state = im.transition(c, state, minting.StateTxSubmitted)
	txHash, err := im.contract.Mint(c, im.recipient, tokenURI)
	if err != nil {
		return nil, im.fail(c, state, err)
	}
	if !txHash.IsValid() {
		return nil, im.fail(c, state, xerrors.Errorf("malformed transaction hash %q: %w", txHash, domain.ErrInternalServerError))
	}
	im.transition(c, state, minting.StateTxConfirmed)

	return &minting.MintResult{
		TxHash:   txHash,
		Price:    price,
		TokenURI: tokenURI,
	}, nil
}

// tokenURI serializes the document canonically, pinning it to ipfs when
// a pinning service is configured
func (im *impl) tokenURI(c bCtx.Ctx, metadata *property.Metadata) (string, error) {
	serialized, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	if im.pinata == nil {
		return string(serialized), nil
	}
	cid, err := im.pinata.PinJson(c, metadata)
	if err != nil {
		c.WithField("err", err).Error("pinata.PinJson failed")
		return "", xerrors.Errorf("pinning metadata: %s: %w", err, domain.ErrUpstreamUnavailable)
	}
	return fmt.Sprintf("ipfs://%s", cid), nil
}

// GetMetadata fetches the stored metadata string for a token and parses
// it best-effort: an unreadable or unparsable document yields an empty
// object, not an error.
func (im *impl) GetMetadata(c bCtx.Ctx, tokenId domain.TokenId) (*minting.TokenMetadata, error) {
	uri, err := im.contract.TokenURI(c, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("contract.TokenURI failed")
		return nil, xerrors.Errorf("token %d: %w", tokenId, domain.ErrNotFound)
	}
	return &minting.TokenMetadata{
		TokenId:  tokenId,
		Metadata: im.parseMetadata(c, tokenId, uri),
	}, nil
}

func (im *impl) parseMetadata(c bCtx.Ctx, tokenId domain.TokenId, uri string) json.RawMessage {
	trimmed := strings.TrimSpace(uri)

	var data []byte
	if strings.HasPrefix(trimmed, "{") {
		data = []byte(trimmed)
	} else if im.webResource != nil {
		fetched, err := im.webResource.GetJson(c, trimmed)
		if err != nil {
			c.WithFields(log.Fields{
				"tokenId": tokenId,
				"uri":     trimmed,
				"err":     err,
			}).Warn("failed to resolve token uri, returning empty metadata")
			return emptyMetadata
		}
		data = fetched
	} else {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"uri":     trimmed,
		}).Warn("token uri is not inline json and no resolver is configured")
		return emptyMetadata
	}

	if !json.Valid(data) {
		c.WithField("tokenId", tokenId).Warn("stored metadata is not valid json, returning empty metadata")
		return emptyMetadata
	}
	return json.RawMessage(data)
}

func (im *impl) transition(c bCtx.Ctx, from, to minting.State) minting.State {
	c.WithFields(log.Fields{
		"from": from,
		"to":   to,
	}).Debug("mint state transition")
	return to
}

func (im *impl) fail(c bCtx.Ctx, from minting.State, err error) error {
	c.WithFields(log.Fields{
		"from": from,
		"to":   minting.StateFailed,
		"err":  err,
	}).Error("mint request failed")
	return err
}
