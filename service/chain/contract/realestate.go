package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/estatemint/goapi/base/abi"
	bCtx "github.com/estatemint/goapi/base/ctx"
	"github.com/estatemint/goapi/domain"
	"github.com/estatemint/goapi/service/chain"
)

// RealEstateContract wraps the deployed real-estate NFT contract
type RealEstateContract interface {
	// Mint records the metadata on chain and returns the confirmed
	// transaction hash
	Mint(ctx bCtx.Ctx, recipient common.Address, tokenURI string) (domain.TxHash, error)
	// TokenURI returns the stored metadata string for a token
	TokenURI(ctx bCtx.Ctx, tokenId domain.TokenId) (string, error)
}

type RealEstate struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewRealEstate(chainService chain.Client, address common.Address) *RealEstate {
	return &RealEstate{
		abi:          baseabi.RealEstateTokenABI,
		chainService: chainService,
		address:      address,
	}
}

func (r *RealEstate) Mint(ctx bCtx.Ctx, recipient common.Address, tokenURI string) (domain.TxHash, error) {
	method := "mintNFT"
	return r.chainService.Transact(ctx, r.address, r.abi, method, recipient, tokenURI)
}

func (r *RealEstate) TokenURI(ctx bCtx.Ctx, tokenId domain.TokenId) (string, error) {
	method := "tokenURI"
	unpacked, err := r.chainService.Call(ctx, r.address, r.abi, method, tokenId.ToBigInt())
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}
