package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var BaseMainnet Network = NewBaseMainnet()

func NewBaseMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               g7common.ChainBase,
		DisplayName:        "Base Chain",
		Family:             FamilyEVM,
		AlternativeNames:   []string{"base-mainnet"},
		ChainID:            8453,
		NativeTokenSymbol:  "ETH",
		NativeTokenDecimal: EVMNativeDecimals,
		NodeVariableName:   "BASE_MAINNET_NODE",
		DefaultNodes: []Node{
			{Name: "public-base", URL: "https://mainnet.base.org"},
		},
	})
}
