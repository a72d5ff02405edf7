package chain

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/ehvi8r/G7-Auditor/util/solreader"
)

var errReverted = errors.New("execution reverted")

var fixedClock = func() time.Time {
	return time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)
}

// fakeEVMNode answers contract reads from calls. A method missing from
// calls reverts; an error value is returned as is.
type fakeEVMNode struct {
	url     string
	calls   map[string]interface{}
	code    []byte
	codeErr error

	balance   *big.Int
	nonce     uint64
	walletErr error

	mu    sync.Mutex
	reads []string
}

func (f *fakeEVMNode) NodeName() string { return "fake" }
func (f *fakeEVMNode) NodeURL() string  { return f.url }

func (f *fakeEVMNode) GetCode(context.Context, string) ([]byte, error) {
	return f.code, f.codeErr
}

func (f *fakeEVMNode) GetBalance(context.Context, string) (*big.Int, error) {
	return f.balance, f.walletErr
}

func (f *fakeEVMNode) GetMinedNonce(context.Context, string) (uint64, error) {
	return f.nonce, f.walletErr
}

func (f *fakeEVMNode) ReadContractToBytes(_ context.Context, _ int64, _ string, _ string, a *abi.ABI, method string, _ ...interface{}) ([]byte, error) {
	f.mu.Lock()
	f.reads = append(f.reads, method)
	f.mu.Unlock()

	value, ok := f.calls[method]
	if !ok {
		return nil, errReverted
	}
	if err, isErr := value.(error); isErr {
		return nil, err
	}
	return a.Methods[method].Outputs.Pack(value)
}

func (f *fakeEVMNode) readCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.reads {
		if m == method {
			n++
		}
	}
	return n
}

type fakeSolanaNode struct {
	url string

	account     *solreader.AccountInfo
	accountErr  error
	holdings    []solreader.TokenHolding
	holdingsErr error

	lamports   uint64
	signatures int
	walletErr  error

	mu    sync.Mutex
	calls int
}

func (f *fakeSolanaNode) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeSolanaNode) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeSolanaNode) NodeName() string { return f.url }
func (f *fakeSolanaNode) NodeURL() string  { return f.url }

func (f *fakeSolanaNode) GetAccountInfo(context.Context, string) (*solreader.AccountInfo, error) {
	f.hit()
	return f.account, f.accountErr
}

func (f *fakeSolanaNode) GetTokenAccountsByOwner(context.Context, string) ([]solreader.TokenHolding, error) {
	f.hit()
	return f.holdings, f.holdingsErr
}

func (f *fakeSolanaNode) GetBalance(context.Context, string) (uint64, error) {
	f.hit()
	return f.lamports, f.walletErr
}

func (f *fakeSolanaNode) GetSignatureCount(_ context.Context, _ string, limit int) (int, error) {
	f.hit()
	if f.signatures > limit {
		return limit, f.walletErr
	}
	return f.signatures, f.walletErr
}
