package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

// Family groups chains sharing an execution and account model.
type Family string

const (
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
)

// Node is one named RPC endpoint.
type Node struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Network interface {
	GetName() g7common.Chain
	GetDisplayName() string
	GetFamily() Family
	GetChainID() uint64
	GetAlternativeNames() []string
	GetNativeTokenSymbol() string
	GetNativeTokenDecimal() int32

	// GetNodeVariableName is the env var that overrides the default nodes.
	GetNodeVariableName() string
	// GetDefaultNodes is ordered by preference.
	GetDefaultNodes() []Node
}
