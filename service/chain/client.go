package chain

import (
	"crypto/ecdsa"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/base/log"
	"github.com/estatemint/goapi/base/metrics"
	"github.com/estatemint/goapi/domain"
)

type ClientCfg struct {
	Backend             domain.EthBackend
	PrivateKey          *ecdsa.PrivateKey
	ChainId             *big.Int
	ConfirmationTimeout time.Duration
	PollInterval        time.Duration
	// Clock is swappable so tests can drive the confirmation wait
	Clock clock.Clock
}

type Client interface {
	// Call performs a read-only contract call
	Call(bCtx.Ctx, common.Address, abi.ABI, string, ...interface{}) ([]interface{}, error)
	// Transact signs, submits and waits for the confirmation of a
	// mutating contract call, returning the finalized transaction hash
	Transact(bCtx.Ctx, common.Address, abi.ABI, string, ...interface{}) (domain.TxHash, error)
	// Sender is the address of the signing credential
	Sender() common.Address
}

type clientImpl struct {
	backend             domain.EthBackend
	key                 *ecdsa.PrivateKey
	sender              common.Address
	signer              types.Signer
	confirmationTimeout time.Duration
	pollInterval        time.Duration
	clock               clock.Clock
	met                 metrics.Service

	// serializes nonce allocation across concurrent mint requests
	nonceMu sync.Mutex
}

func NewClient(cfg *ClientCfg) Client {
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &clientImpl{
		backend:             cfg.Backend,
		key:                 cfg.PrivateKey,
		sender:              crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		signer:              types.LatestSignerForChainID(cfg.ChainId),
		confirmationTimeout: cfg.ConfirmationTimeout,
		pollInterval:        cfg.PollInterval,
		clock:               clk,
		met:                 metrics.New("chain"),
	}
}

func (c *clientImpl) Sender() common.Address {
	return c.sender
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	defer c.met.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithField("err", err).Error("backend.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

// Transact is a two-phase wait: phase 1 places the signed transaction in
// the pending pool, phase 2 polls for the receipt. It does not return
// success until the receipt shows the transaction in a finalized block.
func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (domain.TxHash, error) {
	defer c.met.BumpTime("transact.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("abi.Pack failed")
		return "", xerrors.Errorf("packing %s call: %s: %w", method, err, domain.ErrSubmissionRejected)
	}

	signed, err := c.submit(ctx, addr, data)
	if err != nil {
		c.met.BumpSum("transact.err", 1, "phase", "submit")
		return "", err
	}

	ctx.WithFields(log.Fields{
		"txHash": signed.Hash().Hex(),
		"nonce":  signed.Nonce(),
	}).Info("transaction accepted, waiting for confirmation")

	return c.waitMined(ctx, signed.Hash())
}

// submit holds the nonce mutex from nonce allocation to SendTransaction
// so concurrent requests cannot race for the same nonce.
func (c *clientImpl) submit(ctx bCtx.Ctx, addr common.Address, data []byte) (*types.Transaction, error) {
	c.nonceMu.Lock()
	defer c.nonceMu.Unlock()

	nonce, err := c.backend.PendingNonceAt(ctx, c.sender)
	if err != nil {
		ctx.WithField("err", err).Error("backend.PendingNonceAt failed")
		return nil, xerrors.Errorf("fetching nonce: %s: %w", err, domain.ErrSubmissionRejected)
	}
	gasPrice, err := c.backend.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("backend.SuggestGasPrice failed")
		return nil, xerrors.Errorf("fetching gas price: %s: %w", err, domain.ErrSubmissionRejected)
	}
	gasLimit, err := c.backend.EstimateGas(ctx, ethereum.CallMsg{
		From: c.sender,
		To:   &addr,
		Data: data,
	})
	if err != nil {
		ctx.WithField("err", err).Error("backend.EstimateGas failed")
		return nil, xerrors.Errorf("estimating gas: %s: %w", err, domain.ErrSubmissionRejected)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &addr,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, c.signer, c.key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, xerrors.Errorf("signing transaction: %s: %w", err, domain.ErrSubmissionRejected)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"nonce": nonce,
			"err":   err,
		}).Error("backend.SendTransaction failed")
		return nil, xerrors.Errorf("sending transaction: %s: %w", err, domain.ErrSubmissionRejected)
	}
	return signed, nil
}

func (c *clientImpl) waitMined(ctx bCtx.Ctx, hash common.Hash) (domain.TxHash, error) {
	deadline := c.clock.Now().Add(c.confirmationTimeout)
	ticker := c.clock.Ticker(c.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.backend.TransactionReceipt(ctx, hash)
		if receipt != nil && err == nil {
			if receipt.Status == types.ReceiptStatusSuccessful {
				return domain.TxHash(hash.Hex()), nil
			}
			c.met.BumpSum("transact.err", 1, "phase", "confirm")
			return "", xerrors.Errorf("transaction %s: %w", hash.Hex(), domain.ErrConfirmationFailed)
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			ctx.WithFields(log.Fields{
				"txHash": hash.Hex(),
				"err":    err,
			}).Warn("backend.TransactionReceipt failed, retrying")
		}

		if !c.clock.Now().Before(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return "", c.indeterminate(ctx, hash)
		case <-ticker.C:
		}
	}
	return "", c.indeterminate(ctx, hash)
}

// indeterminate means the transaction may still land later. The warning
// is for the operator: confirm manually before retrying or the mint can
// happen twice.
func (c *clientImpl) indeterminate(ctx bCtx.Ctx, hash common.Hash) error {
	c.met.BumpSum("transact.warn", 1, "phase", "confirm")
	ctx.WithField("txHash", hash.Hex()).Warn("confirmation wait expired, transaction may still be mined")
	return xerrors.Errorf("transaction %s: %w", hash.Hex(), domain.ErrConfirmationTimeout)
}
