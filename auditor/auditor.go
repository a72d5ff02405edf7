package auditor

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

// Resolver is the part of resolver.Resolver the auditor needs.
type Resolver interface {
	Resolve(ctx context.Context, address, chainName string) (g7common.ContractInfo, g7common.WalletRisk, error)
	ResolveWallet(ctx context.Context, address, chainName string) (g7common.WalletRisk, error)
}

// Auditor runs one audit per call: resolve, then assemble.
type Auditor struct {
	resolver Resolver
	logger   *zap.Logger
}

func New(resolver Resolver, logger *zap.Logger) *Auditor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditor{resolver: resolver, logger: logger}
}

func (a *Auditor) Audit(ctx context.Context, address, chainName string) (g7common.AuditDocument, error) {
	log := a.logger.With(
		zap.String("audit_id", uuid.NewString()),
		zap.String("chain", chainName),
		zap.String("address", address),
	)
	log.Info("audit started")

	info, owner, err := a.resolver.Resolve(ctx, address, chainName)
	if err != nil {
		log.Warn("audit failed", zap.Error(err))
		return g7common.AuditDocument{}, err
	}

	doc := Assemble(info, owner)
	log.Info("audit assembled",
		zap.String("token", info.Symbol),
		zap.String("owner", info.OwnerWallet),
	)
	return doc, nil
}

func (a *Auditor) Wallet(ctx context.Context, address, chainName string) (g7common.WalletRisk, error) {
	risk, err := a.resolver.ResolveWallet(ctx, address, chainName)
	if err != nil {
		a.logger.Warn("wallet lookup failed",
			zap.String("chain", chainName),
			zap.String("address", address),
			zap.Error(err),
		)
		return g7common.WalletRisk{}, err
	}
	return risk, nil
}
