package reader

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// EthereumNode is a single EVM JSON-RPC endpoint. Every call is bounded by
// the node's own timeout on top of ctx.
type EthereumNode interface {
	NodeName() string
	NodeURL() string
	GetCode(ctx context.Context, address string) (code []byte, err error)
	GetBalance(ctx context.Context, address string) (balance *big.Int, err error)
	GetMinedNonce(ctx context.Context, address string) (nonce uint64, err error)
	ReadContractToBytes(
		ctx context.Context,
		atBlock int64,
		from string,
		caddr string,
		abi *abi.ABI,
		method string,
		args ...interface{},
	) ([]byte, error)
}
