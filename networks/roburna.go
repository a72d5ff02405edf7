package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var RoburnaMainnet Network = NewRoburnaMainnet()

func NewRoburnaMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               g7common.ChainRoburna,
		DisplayName:        "Roburna Chain",
		Family:             FamilyEVM,
		AlternativeNames:   []string{"rba"},
		ChainID:            158,
		NativeTokenSymbol:  "RBA",
		NativeTokenDecimal: EVMNativeDecimals,
		NodeVariableName:   "ROBURNA_MAINNET_NODE",
		DefaultNodes: []Node{
			{Name: "roburna", URL: "https://dataseed.roburna.com/"},
		},
	})
}
