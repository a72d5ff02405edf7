package chain

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util/reader"
	"github.com/ehvi8r/G7-Auditor/util/solreader"
)

// Adapter fetches normalized facts from one chain family.
type Adapter interface {
	Chain() g7common.Chain
	FetchContractMetadata(ctx context.Context, address string) (g7common.ContractInfo, error)
	// ResolveOwner never fails: an owner that cannot be discovered is
	// reported as g7common.OwnerNotFound.
	ResolveOwner(ctx context.Context, address string) string
	FetchWalletRisk(ctx context.Context, address string) (g7common.WalletRisk, error)
}

type Options struct {
	// Timeout bounds every outbound call.
	Timeout time.Duration
	// SignatureLookback is the recent signature window counted for Solana
	// wallets.
	SignatureLookback int
	// SolanaRPS and SolanaBurst throttle each Solana endpoint. Zero RPS
	// disables throttling.
	SolanaRPS   float64
	SolanaBurst int

	Clock  func() time.Time
	Logger *zap.Logger
}

const DefaultSignatureLookback = 10

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = reader.TIMEOUT
	}
	if o.SignatureLookback <= 0 {
		o.SignatureLookback = DefaultSignatureLookback
	}
	if o.SolanaBurst <= 0 {
		o.SolanaBurst = 1
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// NewAdapter builds the adapter serving chainName from the registry's
// endpoints.
func NewAdapter(registry *networks.Registry, chainName string, opts Options) (Adapter, error) {
	network, err := registry.Network(chainName)
	if err != nil {
		return nil, err
	}
	endpoints, err := registry.EndpointsFor(chainName)
	if err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	switch network.GetFamily() {
	case networks.FamilyEVM:
		node := reader.NewOneNodeReader(network.GetDisplayName(), endpoints[0], opts.Timeout)
		return NewEVMAdapter(network, reader.NewEthReader(node), opts), nil
	case networks.FamilySolana:
		nodes := make([]solreader.SolanaNode, 0, len(endpoints))
		for i, url := range endpoints {
			var limiter *rate.Limiter
			if opts.SolanaRPS > 0 {
				limiter = rate.NewLimiter(rate.Limit(opts.SolanaRPS), opts.SolanaBurst)
			}
			name := fmt.Sprintf("%s-%d", network.GetName(), i)
			nodes = append(nodes, solreader.NewOneNodeSolReader(name, url, opts.Timeout, limiter))
		}
		return NewSolanaAdapter(network, nodes, opts), nil
	}
	return nil, fmt.Errorf("%s: unsupported chain family %q", network.GetName(), network.GetFamily())
}
