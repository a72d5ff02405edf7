package networks

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

type GenericNetworkConfig struct {
	Name               g7common.Chain `json:"name"`
	DisplayName        string         `json:"display_name"`
	Family             Family         `json:"family"`
	AlternativeNames   []string       `json:"alternative_names"`
	ChainID            uint64         `json:"chain_id"`
	NativeTokenSymbol  string         `json:"native_token_symbol"`
	NativeTokenDecimal int32          `json:"native_token_decimal"`
	NodeVariableName   string         `json:"node_variable_name"`
	DefaultNodes       []Node         `json:"default_nodes"`
}

// GenericNetwork implements Network from a static config.
type GenericNetwork struct {
	config GenericNetworkConfig
}

func NewGenericNetwork(config GenericNetworkConfig) *GenericNetwork {
	return &GenericNetwork{config: config}
}

func (gn *GenericNetwork) GetName() g7common.Chain {
	return gn.config.Name
}

func (gn *GenericNetwork) GetDisplayName() string {
	return gn.config.DisplayName
}

func (gn *GenericNetwork) GetFamily() Family {
	return gn.config.Family
}

func (gn *GenericNetwork) GetChainID() uint64 {
	return gn.config.ChainID
}

func (gn *GenericNetwork) GetAlternativeNames() []string {
	return gn.config.AlternativeNames
}

func (gn *GenericNetwork) GetNativeTokenSymbol() string {
	return gn.config.NativeTokenSymbol
}

func (gn *GenericNetwork) GetNativeTokenDecimal() int32 {
	return gn.config.NativeTokenDecimal
}

func (gn *GenericNetwork) GetNodeVariableName() string {
	return gn.config.NodeVariableName
}

func (gn *GenericNetwork) GetDefaultNodes() []Node {
	return append([]Node{}, gn.config.DefaultNodes...)
}
