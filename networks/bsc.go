package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var BSCMainnet Network = NewBSCMainnet()

func NewBSCMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               g7common.ChainBSC,
		DisplayName:        "Binance Smart Chain",
		Family:             FamilyEVM,
		AlternativeNames:   []string{"bnb", "bsc-mainnet"},
		ChainID:            56,
		NativeTokenSymbol:  "BNB",
		NativeTokenDecimal: EVMNativeDecimals,
		NodeVariableName:   "BSC_MAINNET_NODE",
		DefaultNodes: []Node{
			{Name: "binance", URL: "https://bsc-dataseed.binance.org"},
		},
	})
}
