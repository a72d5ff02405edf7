package common

import (
	"github.com/shopspring/decimal"
)

// Chain is one of the blockchains an audit can target.
type Chain string

const (
	ChainBase    Chain = "base"
	ChainBSC     Chain = "bsc"
	ChainRoburna Chain = "roburna"
	ChainSolana  Chain = "solana"
)

// OwnerNotFound marks a completed owner lookup that found nothing. It is a
// value, not an error.
const OwnerNotFound = "not found"

const (
	DefaultCompilerVersion = "^0.8.19"
	SolanaCompilerVersion  = "Solana"

	// AuditDateLayout renders dates like "March 04, 2025".
	AuditDateLayout = "January 02, 2006"
)

// Taxes are percentages in [0, 100].
type Taxes struct {
	Buy      decimal.Decimal `json:"buy"`
	Sell     decimal.Decimal `json:"sell"`
	Transfer decimal.Decimal `json:"transfer"`
}

func ZeroTaxes() Taxes {
	return Taxes{
		Buy:      decimal.Zero,
		Sell:     decimal.Zero,
		Transfer: decimal.Zero,
	}
}

// ContractInfo is the chain agnostic descriptor of a token contract.
type ContractInfo struct {
	Address             string `json:"address"`
	Name                string `json:"name"`
	Symbol              string `json:"symbol"`
	Decimals            uint8  `json:"decimals"`
	TotalSupply         string `json:"totalSupply"`
	Blockchain          Chain  `json:"blockchain"`
	OwnerWallet         string `json:"ownerWallet"`
	Taxes               Taxes  `json:"taxes"`
	RawCode             []byte `json:"rawCode"`
	CompilerVersionHint string `json:"compilerVersion"`
	AuditDate           string `json:"auditDate"`
}

// HasOwner reports whether an owner address was discovered.
func (ci ContractInfo) HasOwner() bool {
	return ci.OwnerWallet != "" && ci.OwnerWallet != OwnerNotFound
}

// WalletRisk describes the wallet owning a contract. The list fields are
// never nil.
type WalletRisk struct {
	Address          string          `json:"address"`
	BalanceNative    decimal.Decimal `json:"balance"`
	IsContract       bool            `json:"isContract"`
	TransactionCount uint64          `json:"transactionCount"`
	Projects         []string        `json:"projects"`
	TokenHoldings    []string        `json:"tokenHoldings"`
	FailedProjects   []string        `json:"failedProjects"`
	RuggedProjects   []string        `json:"ruggedProjects"`
	LiquidityPulls   []string        `json:"liquidityPulls"`
	RedFlags         []string        `json:"redFlags"`
}

// NeutralWalletRisk is used when there is no owner to look up.
func NeutralWalletRisk(address string) WalletRisk {
	return WalletRisk{
		Address:        address,
		BalanceNative:  decimal.Zero,
		Projects:       []string{},
		TokenHoldings:  []string{},
		FailedProjects: []string{},
		RuggedProjects: []string{},
		LiquidityPulls: []string{},
		RedFlags:       []string{},
	}
}

// Normalized returns a copy of wr with every nil list replaced by an empty
// one.
func (wr WalletRisk) Normalized() WalletRisk {
	wr.Projects = nonNil(wr.Projects)
	wr.TokenHoldings = nonNil(wr.TokenHoldings)
	wr.FailedProjects = nonNil(wr.FailedProjects)
	wr.RuggedProjects = nonNil(wr.RuggedProjects)
	wr.LiquidityPulls = nonNil(wr.LiquidityPulls)
	wr.RedFlags = nonNil(wr.RedFlags)
	return wr
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return append([]string{}, list...)
}
