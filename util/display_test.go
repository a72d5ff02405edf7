package util_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehvi8r/G7-Auditor/auditor"
	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/ui"
	"github.com/ehvi8r/G7-Auditor/util"
)

const ownerAddr = "0x2222222222222222222222222222222222222222"

func fooAudit(owner string, sell int64) g7common.AuditDocument {
	info := g7common.ContractInfo{
		Address:     "0x1111111111111111111111111111111111111111",
		Name:        "Foo",
		Symbol:      "FOO",
		Decimals:    18,
		TotalSupply: "1000000",
		Blockchain:  g7common.ChainBSC,
		OwnerWallet: owner,
		Taxes: g7common.Taxes{
			Buy:      decimal.NewFromInt(3),
			Sell:     decimal.NewFromInt(sell),
			Transfer: decimal.Zero,
		},
		CompilerVersionHint: g7common.DefaultCompilerVersion,
		AuditDate:           "March 04, 2025",
	}
	risk := g7common.NeutralWalletRisk(owner)
	risk.BalanceNative = decimal.RequireFromString("1.5")
	risk.TransactionCount = 42
	return auditor.Assemble(info, risk)
}

func TestDisplayAuditViewModel(t *testing.T) {
	rec := ui.NewRecordingUI()
	d := util.DisplayAudit(rec, fooAudit(ownerAddr, 12), networks.BSCMainnet)

	assert.Equal(t, "Foo (FOO)", d.Title)
	assert.Equal(t, ui.SeverityCritical, d.Owner.Severity)
	require.Len(t, d.Taxes, 3)
	assert.Equal(t, "3%", d.Taxes[0].Rate.Text)
	assert.Equal(t, ui.SeverityInfo, d.Taxes[0].Rate.Severity)
	assert.Equal(t, "12%", d.Taxes[1].Rate.Text)
	assert.Equal(t, ui.SeverityError, d.Taxes[1].Rate.Severity)
	assert.Equal(t, ui.SeveritySuccess, d.Taxes[2].Rate.Severity)
	assert.Equal(t, "1.5 BNB", d.Wallet.Balance)
	assert.Equal(t, "42", d.Wallet.Transactions)

	assert.True(t, rec.HasMessage("Total Supply | 1,000,000"))
	assert.True(t, rec.HasMessage("Sell | 12%"))
	assert.True(t, rec.HasMessage("Sell Fee Proportion: Sell fee (12%) analysis and recommendations"))
	assert.Contains(t, rec.Values("Section"), "Recommendations")
}

func TestDisplayOwnerStates(t *testing.T) {
	missing := util.DisplayAudit(ui.NewRecordingUI(), fooAudit(g7common.OwnerNotFound, 3), networks.BSCMainnet)
	assert.Equal(t, ui.SeverityWarn, missing.Owner.Severity)
	assert.Equal(t, ui.SeverityWarn, missing.Findings[0].Text.Severity)

	renounced := util.DisplayAudit(ui.NewRecordingUI(), fooAudit("0x0000000000000000000000000000000000000000", 3), networks.BSCMainnet)
	assert.Equal(t, ui.SeveritySuccess, renounced.Owner.Severity)
	assert.True(t, strings.HasSuffix(renounced.Owner.Text, "(renounced)"))
}

func TestAuditDisplayJSONIsPlain(t *testing.T) {
	d := util.DisplayAudit(ui.NewRecordingUI(), fooAudit(ownerAddr, 12), networks.BSCMainnet)

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"rate":"12%"`)
	assert.NotContains(t, string(out), "\x1b[")
}

func TestDisplayChains(t *testing.T) {
	registry, err := networks.DefaultRegistry(nil)
	require.NoError(t, err)
	rec := ui.NewRecordingUI()

	chains := util.DisplayChains(rec, registry)
	require.Len(t, chains, 4)
	assert.Equal(t, "EVM", chains[0].Family)
	assert.Equal(t, "SOLANA", chains[3].Family)
	assert.Len(t, chains[3].Endpoints, 4)
	assert.True(t, rec.HasMessage("Chain | Family | Native | Aliases | Endpoints"))
	assert.True(t, rec.HasMessage("https://rpc.ankr.com/solana"))
}

func TestDisplayWalletRisk(t *testing.T) {
	risk := g7common.NeutralWalletRisk("9WzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	risk.RedFlags = []string{"fresh wallet"}
	rec := ui.NewRecordingUI()

	d := util.DisplayWalletRisk(rec, risk, networks.SolanaMainnet)
	assert.Equal(t, "account", d.Kind)
	assert.Equal(t, "0 SOL", d.Balance)
	assert.Equal(t, []string{"fresh wallet"}, rec.Values("List"))
	assert.True(t, rec.HasMessage("Projects | None found"))
}

func TestRenderMarkdown(t *testing.T) {
	md, err := util.RenderMarkdown(fooAudit(ownerAddr, 3))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(md, "# Smart Contract Audit Report\n## Foo (FOO)\n"))
	assert.Contains(t, md, "- **Total Supply:** 1000000")
	assert.Contains(t, md, "- Buy Tax: 3%\n- Sell Tax: 3%\n- Transfer Tax: 0%")
	assert.Contains(t, md, "- Risk: Centralized control of contract functions")
	assert.Contains(t, md, "- Projects: None found")
	assert.Contains(t, md, "- Balance: 1.5")
	assert.NotContains(t, md, "### Red Flags")
	assert.Contains(t, md, "**Disclaimer:** "+util.Disclaimer)
}

func TestRenderMarkdownRedFlags(t *testing.T) {
	doc := fooAudit(ownerAddr, 3)
	doc.OwnerWallet.RedFlags = []string{"liquidity removed"}

	md, err := util.RenderMarkdown(doc)
	require.NoError(t, err)
	assert.Contains(t, md, "### Red Flags\n- liquidity removed")
}
