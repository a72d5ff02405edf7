package common

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// tokenABI covers the ERC20/BEP20 metadata getters plus the ownership and
// tax rate accessors common to fee-on-transfer tokens.
const tokenABI = `[
	{"type":"function","name":"name","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"symbol","inputs":[],"outputs":[{"name":"","type":"string"}],"stateMutability":"view"},
	{"type":"function","name":"decimals","inputs":[],"outputs":[{"name":"","type":"uint8"}],"stateMutability":"view"},
	{"type":"function","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"owner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"getOwner","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"_buyTaxRate","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"_sellTaxRate","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"_transferTaxRate","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"}
]`

var parsedTokenABI = mustParseABI(tokenABI)

func mustParseABI(body string) *abi.ABI {
	result, err := abi.JSON(strings.NewReader(body))
	if err != nil {
		panic(err)
	}
	return &result
}

func GetTokenABI() *abi.ABI {
	return parsedTokenABI
}

func HexToAddress(hex string) common.Address {
	return common.HexToAddress(hex)
}

// IsEVMAddress accepts 0x-prefixed 20 byte hex addresses only.
func IsEVMAddress(addr string) bool {
	return strings.HasPrefix(addr, "0x") && common.IsHexAddress(addr)
}

func IsZeroAddress(addr string) bool {
	return common.IsHexAddress(addr) && common.HexToAddress(addr) == (common.Address{})
}
