package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/util/reader"
)

// EVMAdapter talks to the single canonical node of an EVM chain. It never
// falls back to another endpoint.
type EVMAdapter struct {
	network networks.Network
	reader  *reader.EthReader
	clock   func() time.Time
	logger  *zap.Logger
}

func NewEVMAdapter(network networks.Network, r *reader.EthReader, opts Options) *EVMAdapter {
	opts = opts.withDefaults()
	return &EVMAdapter{
		network: network,
		reader:  r,
		clock:   opts.Clock,
		logger:  opts.Logger.With(zap.String("chain", string(network.GetName()))),
	}
}

func (a *EVMAdapter) Chain() g7common.Chain {
	return a.network.GetName()
}

func (a *EVMAdapter) Close() {
	a.reader.Close()
}

func (a *EVMAdapter) queryError(kind error, address string, err error) error {
	return g7common.NewQueryError(kind, a.Chain(), address, a.reader.NodeURL(), err)
}

func (a *EVMAdapter) validate(address string) error {
	if g7common.IsEVMAddress(address) {
		return nil
	}
	return g7common.NewQueryError(
		g7common.ErrInvalidAddress, a.Chain(), address, "",
		fmt.Errorf("expected a 0x prefixed 20 byte hex address"),
	)
}

func (a *EVMAdapter) FetchContractMetadata(ctx context.Context, address string) (g7common.ContractInfo, error) {
	if err := a.validate(address); err != nil {
		return g7common.ContractInfo{}, err
	}

	code, err := a.reader.GetCode(ctx, address)
	if err != nil {
		return g7common.ContractInfo{}, a.queryError(g7common.ErrMetadataUnavailable, address, fmt.Errorf("getCode: %w", err))
	}

	var (
		name     string
		symbol   string
		decimals uint8
		supply   *big.Int
	)
	err = g7common.RunParallel(ctx,
		func(ctx context.Context) (err error) {
			name, err = a.reader.ERC20Name(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			symbol, err = a.reader.ERC20Symbol(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			decimals, err = a.reader.ERC20Decimal(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			supply, err = a.reader.ERC20TotalSupply(ctx, address)
			return err
		},
	)
	if err != nil {
		return g7common.ContractInfo{}, a.queryError(g7common.ErrMetadataUnavailable, address, err)
	}

	return g7common.ContractInfo{
		Address:             address,
		Name:                name,
		Symbol:              symbol,
		Decimals:            decimals,
		TotalSupply:         supply.String(),
		Blockchain:          a.Chain(),
		OwnerWallet:         a.ResolveOwner(ctx, address),
		Taxes:               a.resolveTaxes(ctx, address),
		RawCode:             code,
		CompilerVersionHint: a.compilerVersion(ctx, code),
		AuditDate:           a.clock().Format(g7common.AuditDateLayout),
	}, nil
}

func (a *EVMAdapter) ownerVia(address, method string) attempt[string] {
	return attempt[string]{
		name: method + "()",
		run: func(ctx context.Context) (string, error) {
			owner, err := a.reader.AddressFromContract(ctx, address, method)
			if err != nil {
				return "", err
			}
			return owner.Hex(), nil
		},
	}
}

func (a *EVMAdapter) ResolveOwner(ctx context.Context, address string) string {
	return firstOf(ctx, a.logger, "owner", g7common.OwnerNotFound,
		a.ownerVia(address, "owner"),
		a.ownerVia(address, "getOwner"),
	)
}

func (a *EVMAdapter) taxRate(ctx context.Context, address, method string) (decimal.Decimal, error) {
	raw, err := a.reader.Uint256FromContract(ctx, address, method)
	if err != nil {
		return decimal.Zero, err
	}
	rate, err := g7common.BasisPointsToPercent(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", method, err)
	}
	return rate, nil
}

// resolveTaxes reads the three tax accessors as one group. If any of them
// fails all three are reported as zero.
func (a *EVMAdapter) resolveTaxes(ctx context.Context, address string) g7common.Taxes {
	return firstOf(ctx, a.logger, "taxes", g7common.ZeroTaxes(), attempt[g7common.Taxes]{
		name: "tax rate accessors",
		run: func(ctx context.Context) (taxes g7common.Taxes, err error) {
			if taxes.Buy, err = a.taxRate(ctx, address, "_buyTaxRate"); err != nil {
				return taxes, err
			}
			if taxes.Sell, err = a.taxRate(ctx, address, "_sellTaxRate"); err != nil {
				return taxes, err
			}
			if taxes.Transfer, err = a.taxRate(ctx, address, "_transferTaxRate"); err != nil {
				return taxes, err
			}
			return taxes, nil
		},
	})
}

func (a *EVMAdapter) compilerVersion(ctx context.Context, code []byte) string {
	return firstOf(ctx, a.logger, "compiler version", g7common.DefaultCompilerVersion, attempt[string]{
		name: "solc metadata",
		run: func(context.Context) (string, error) {
			return solcVersion(code)
		},
	})
}

func (a *EVMAdapter) FetchWalletRisk(ctx context.Context, address string) (g7common.WalletRisk, error) {
	if err := a.validate(address); err != nil {
		return g7common.WalletRisk{}, err
	}

	var (
		balance *big.Int
		code    []byte
		nonce   uint64
	)
	err := g7common.RunParallel(ctx,
		func(ctx context.Context) (err error) {
			balance, err = a.reader.GetBalance(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			code, err = a.reader.GetCode(ctx, address)
			return err
		},
		func(ctx context.Context) (err error) {
			nonce, err = a.reader.GetMinedNonce(ctx, address)
			return err
		},
	)
	if err != nil {
		return g7common.WalletRisk{}, a.queryError(g7common.ErrWalletQueryFailed, address, err)
	}

	risk := g7common.NeutralWalletRisk(address)
	risk.BalanceNative = g7common.BigToDecimal(balance, a.network.GetNativeTokenDecimal())
	risk.IsContract = len(code) > 0
	risk.TransactionCount = nonce
	return risk, nil
}
