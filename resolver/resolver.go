package resolver

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ehvi8r/G7-Auditor/chain"
	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
)

// Resolver routes a chain name to its adapter and resolves contracts and
// owner wallets through it. It holds no per call state.
type Resolver struct {
	registry *networks.Registry
	adapters map[g7common.Chain]chain.Adapter
	logger   *zap.Logger
}

// New builds one adapter per registry network.
func New(registry *networks.Registry, opts chain.Options) (*Resolver, error) {
	adapters := []chain.Adapter{}
	for _, n := range registry.Networks() {
		a, err := chain.NewAdapter(registry, string(n.GetName()), opts)
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	return NewWithAdapters(registry, opts.Logger, adapters...), nil
}

func NewWithAdapters(registry *networks.Registry, logger *zap.Logger, adapters ...chain.Adapter) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Resolver{
		registry: registry,
		adapters: map[g7common.Chain]chain.Adapter{},
		logger:   logger,
	}
	for _, a := range adapters {
		r.adapters[a.Chain()] = a
	}
	return r
}

// Close releases the connections held by adapters that keep any.
func (r *Resolver) Close() {
	for _, a := range r.adapters {
		if c, ok := a.(interface{ Close() }); ok {
			c.Close()
		}
	}
}

func (r *Resolver) Registry() *networks.Registry {
	return r.registry
}

// Adapter returns the adapter for chainName or one of its alternative
// names.
func (r *Resolver) Adapter(chainName string) (chain.Adapter, error) {
	network, err := r.registry.Network(chainName)
	if err != nil {
		return nil, err
	}
	a, found := r.adapters[network.GetName()]
	if !found {
		return nil, fmt.Errorf("%w: no adapter for %s", g7common.ErrUnknownChain, network.GetName())
	}
	return a, nil
}

func (r *Resolver) ResolveContract(ctx context.Context, address, chainName string) (g7common.ContractInfo, error) {
	a, err := r.Adapter(chainName)
	if err != nil {
		return g7common.ContractInfo{}, err
	}
	return a.FetchContractMetadata(ctx, address)
}

func (r *Resolver) ResolveWallet(ctx context.Context, address, chainName string) (g7common.WalletRisk, error) {
	a, err := r.Adapter(chainName)
	if err != nil {
		return g7common.WalletRisk{}, err
	}
	return ResolveWalletRisk(ctx, a, address)
}

// Resolve fetches the contract and then the risk profile of its owner.
func (r *Resolver) Resolve(ctx context.Context, address, chainName string) (g7common.ContractInfo, g7common.WalletRisk, error) {
	a, err := r.Adapter(chainName)
	if err != nil {
		return g7common.ContractInfo{}, g7common.WalletRisk{}, err
	}
	info, err := a.FetchContractMetadata(ctx, address)
	if err != nil {
		return g7common.ContractInfo{}, g7common.WalletRisk{}, err
	}
	r.logger.Debug("contract resolved",
		zap.String("chain", string(info.Blockchain)),
		zap.String("address", info.Address),
		zap.String("owner", info.OwnerWallet),
	)
	risk, err := ResolveWalletRisk(ctx, a, info.OwnerWallet)
	if err != nil {
		return g7common.ContractInfo{}, g7common.WalletRisk{}, err
	}
	return info, risk, nil
}
