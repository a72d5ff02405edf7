package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var SolanaMainnet Network = NewSolanaMainnet()

// Public Solana endpoints fail often, so several are tried in this order.
func NewSolanaMainnet() *GenericNetwork {
	return NewGenericNetwork(GenericNetworkConfig{
		Name:               g7common.ChainSolana,
		DisplayName:        "Solana",
		Family:             FamilySolana,
		AlternativeNames:   []string{"sol", "solana-mainnet"},
		NativeTokenSymbol:  "SOL",
		NativeTokenDecimal: SolanaNativeDecimals,
		NodeVariableName:   "SOLANA_MAINNET_NODES",
		DefaultNodes: []Node{
			{Name: "drpc", URL: "https://solana.drpc.org"},
			{Name: "ankr", URL: "https://rpc.ankr.com/solana"},
			{Name: "tatum", URL: "https://api.tatum.io/v3/blockchain/node/solana-mainnet"},
			{Name: "extrnode", URL: "https://solana-mainnet.rpc.extrnode.com"},
		},
	})
}
