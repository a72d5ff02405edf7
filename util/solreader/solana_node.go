package solreader

import "context"

// AccountInfo is the subset of a Solana account the auditor reads.
type AccountInfo struct {
	Owner      string
	Lamports   uint64
	Executable bool
	Data       []byte
}

// TokenHolding is one SPL token account held by an owner.
type TokenHolding struct {
	Account  string
	Mint     string
	Amount   string
	Decimals uint8
}

// SolanaNode is a single Solana JSON-RPC endpoint.
type SolanaNode interface {
	NodeName() string
	NodeURL() string
	GetAccountInfo(ctx context.Context, address string) (*AccountInfo, error)
	GetTokenAccountsByOwner(ctx context.Context, owner string) ([]TokenHolding, error)
	GetBalance(ctx context.Context, address string) (lamports uint64, err error)
	GetSignatureCount(ctx context.Context, address string, limit int) (int, error)
}
