package resolver

import (
	"context"

	"github.com/ehvi8r/G7-Auditor/chain"
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

// ResolveWalletRisk fetches the risk profile of owner. A missing owner
// yields neutral defaults without touching the network.
func ResolveWalletRisk(ctx context.Context, a chain.Adapter, owner string) (g7common.WalletRisk, error) {
	if owner == "" || owner == g7common.OwnerNotFound {
		return g7common.NeutralWalletRisk(g7common.OwnerNotFound), nil
	}
	risk, err := a.FetchWalletRisk(ctx, owner)
	if err != nil {
		return g7common.WalletRisk{}, err
	}
	return risk.Normalized(), nil
}
