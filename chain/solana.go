package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util/solreader"
)

const (
	UnknownTokenName   = "Unknown Token"
	UnknownTokenSymbol = "UNKNOWN"
)

// SolanaAdapter tries its nodes in order. Every attempt starts from an
// empty result so a failed node leaves nothing behind.
type SolanaAdapter struct {
	network  networks.Network
	nodes    []solreader.SolanaNode
	lookback int
	clock    func() time.Time
	logger   *zap.Logger
}

func NewSolanaAdapter(network networks.Network, nodes []solreader.SolanaNode, opts Options) *SolanaAdapter {
	opts = opts.withDefaults()
	return &SolanaAdapter{
		network:  network,
		nodes:    nodes,
		lookback: opts.SignatureLookback,
		clock:    opts.Clock,
		logger:   opts.Logger.With(zap.String("chain", string(network.GetName()))),
	}
}

func (a *SolanaAdapter) Chain() g7common.Chain {
	return a.network.GetName()
}

func (a *SolanaAdapter) validate(address string) error {
	if _, err := solana.PublicKeyFromBase58(address); err != nil {
		return g7common.NewQueryError(g7common.ErrInvalidAddress, a.Chain(), address, "", err)
	}
	return nil
}

// withFallback runs fn against each node until one succeeds.
func (a *SolanaAdapter) withFallback(ctx context.Context, address, op string, fn func(ctx context.Context, node solreader.SolanaNode) error) error {
	var (
		lastErr      error
		lastEndpoint string
	)
	for _, node := range a.nodes {
		if err := ctx.Err(); err != nil {
			if lastErr == nil {
				lastErr = err
			}
			break
		}
		err := fn(ctx, node)
		if err == nil {
			return nil
		}
		a.logger.Warn("solana endpoint failed",
			zap.String("op", op),
			zap.String("endpoint", node.NodeURL()),
			zap.Error(err),
		)
		lastErr, lastEndpoint = err, node.NodeURL()
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no endpoints configured")
	}
	return g7common.NewQueryError(g7common.ErrAllEndpointsExhausted, a.Chain(), address, lastEndpoint, lastErr)
}

func (a *SolanaAdapter) FetchContractMetadata(ctx context.Context, address string) (g7common.ContractInfo, error) {
	if err := a.validate(address); err != nil {
		return g7common.ContractInfo{}, err
	}
	var info g7common.ContractInfo
	err := a.withFallback(ctx, address, "contract metadata", func(ctx context.Context, node solreader.SolanaNode) error {
		result, err := a.fetchContractMetadata(ctx, node, address)
		if err != nil {
			return err
		}
		info = result
		return nil
	})
	return info, err
}

type tokenFacts struct {
	name        string
	symbol      string
	decimals    uint8
	totalSupply string
}

var unknownToken = tokenFacts{
	name:        UnknownTokenName,
	symbol:      UnknownTokenSymbol,
	decimals:    uint8(networks.SolanaNativeDecimals),
	totalSupply: "0",
}

func (a *SolanaAdapter) fetchContractMetadata(ctx context.Context, node solreader.SolanaNode, address string) (g7common.ContractInfo, error) {
	var (
		account     *solreader.AccountInfo
		holdings    []solreader.TokenHolding
		holdingsErr error
	)
	err := g7common.RunParallel(ctx,
		func(ctx context.Context) (err error) {
			account, err = node.GetAccountInfo(ctx, address)
			return err
		},
		func(ctx context.Context) error {
			holdings, holdingsErr = node.GetTokenAccountsByOwner(ctx, address)
			return nil
		},
	)
	if err != nil {
		return g7common.ContractInfo{}, err
	}

	token := firstOf(ctx, a.logger, "token classification", unknownToken,
		attempt[tokenFacts]{
			name: "token accounts by owner",
			run: func(context.Context) (tokenFacts, error) {
				if holdingsErr != nil {
					return tokenFacts{}, holdingsErr
				}
				if len(holdings) == 0 {
					return tokenFacts{}, fmt.Errorf("no token accounts")
				}
				first := holdings[0]
				return tokenFacts{
					name:        first.Mint,
					symbol:      UnknownTokenSymbol,
					decimals:    first.Decimals,
					totalSupply: first.Amount,
				}, nil
			},
		},
	)

	return g7common.ContractInfo{
		Address:             address,
		Name:                token.name,
		Symbol:              token.symbol,
		Decimals:            token.decimals,
		TotalSupply:         token.totalSupply,
		Blockchain:          a.Chain(),
		OwnerWallet:         a.ResolveOwner(ctx, address),
		Taxes:               g7common.ZeroTaxes(),
		RawCode:             account.Data,
		CompilerVersionHint: g7common.SolanaCompilerVersion,
		AuditDate:           a.clock().Format(g7common.AuditDateLayout),
	}, nil
}

// ResolveOwner returns address itself: a Solana account is treated as its
// own owner.
func (a *SolanaAdapter) ResolveOwner(_ context.Context, address string) string {
	return address
}

func (a *SolanaAdapter) FetchWalletRisk(ctx context.Context, address string) (g7common.WalletRisk, error) {
	if err := a.validate(address); err != nil {
		return g7common.WalletRisk{}, err
	}
	var risk g7common.WalletRisk
	err := a.withFallback(ctx, address, "wallet risk", func(ctx context.Context, node solreader.SolanaNode) error {
		var (
			lamports uint64
			txCount  int
		)
		err := g7common.RunParallel(ctx,
			func(ctx context.Context) (err error) {
				lamports, err = node.GetBalance(ctx, address)
				return err
			},
			func(ctx context.Context) (err error) {
				txCount, err = node.GetSignatureCount(ctx, address, a.lookback)
				return err
			},
		)
		if err != nil {
			return err
		}
		risk = g7common.NeutralWalletRisk(address)
		risk.BalanceNative = g7common.Uint64ToDecimal(lamports, a.network.GetNativeTokenDecimal())
		risk.TransactionCount = uint64(txCount)
		return nil
	})
	if err != nil {
		return g7common.WalletRisk{}, g7common.NewQueryError(g7common.ErrWalletQueryFailed, a.Chain(), address, "", err)
	}
	return risk, nil
}
