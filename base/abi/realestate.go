package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var RealEstateTokenABI abi.ABI

var realEstateABI = `[{"type":"function","name":"mintNFT","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"address","name":"recipient"},{"type":"string","name":"tokenURI"}],"outputs":[{"type":"uint256"}]},{"type":"function","name":"tokenURI","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"ownerOf","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(realEstateABI))
	if err != nil {
		panic("Failed to parse real estate abi")
	}
	RealEstateTokenABI = _abi
}
