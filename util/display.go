package util

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/ui"
)

var (
	warnTaxRate  = decimal.NewFromInt(5)
	alertTaxRate = decimal.NewFromInt(10)
)

func styledRate(rate decimal.Decimal) ui.StyledText {
	text := rate.String() + "%"
	switch {
	case rate.GreaterThan(alertTaxRate):
		return ui.StyledText{Text: text, Severity: ui.SeverityError}
	case rate.GreaterThan(warnTaxRate):
		return ui.StyledText{Text: text, Severity: ui.SeverityWarn}
	case rate.IsZero():
		return ui.StyledText{Text: text, Severity: ui.SeveritySuccess}
	}
	return ui.StyledText{Text: text, Severity: ui.SeverityInfo}
}

// styledOwner is yellow when no owner was found, green when ownership is
// renounced and bold otherwise.
func styledOwner(owner string) ui.StyledText {
	switch {
	case owner == "" || owner == g7common.OwnerNotFound:
		return ui.StyledText{Text: g7common.OwnerNotFound, Severity: ui.SeverityWarn}
	case g7common.IsZeroAddress(owner):
		return ui.StyledText{Text: owner + " (renounced)", Severity: ui.SeveritySuccess}
	}
	return ui.StyledText{Text: owner, Severity: ui.SeverityCritical}
}

func styledCentralization(owner string, finding string) ui.StyledText {
	s := styledOwner(owner)
	if s.Severity == ui.SeverityCritical {
		s.Severity = ui.SeverityError
	}
	s.Text = finding
	return s
}

func noneFound(list []string) string {
	if len(list) == 0 {
		return "None found"
	}
	return strings.Join(list, ", ")
}

func buildWalletDisplay(risk g7common.WalletRisk, network networks.Network) WalletDisplay {
	kind := "externally owned account"
	if risk.IsContract {
		kind = "contract"
	}
	if network.GetFamily() == networks.FamilySolana {
		kind = "account"
	}
	return WalletDisplay{
		Address:      styledOwner(risk.Address),
		Balance:      risk.BalanceNative.String() + " " + network.GetNativeTokenSymbol(),
		Kind:         kind,
		Transactions: fmt.Sprintf("%d", risk.TransactionCount),
		Signals: [][2]string{
			{"Projects", noneFound(risk.Projects)},
			{"Token Holdings", noneFound(risk.TokenHoldings)},
			{"Failed Projects", noneFound(risk.FailedProjects)},
			{"Rugged Projects", noneFound(risk.RuggedProjects)},
			{"Liquidity Pulls", noneFound(risk.LiquidityPulls)},
		},
		RedFlags: risk.RedFlags,
	}
}

func buildAuditDisplay(doc g7common.AuditDocument, network networks.Network) *AuditDisplay {
	info := doc.ExecutiveSummary.Overview
	sa := doc.SecurityAnalysis
	pi := doc.PotentialIssues

	return &AuditDisplay{
		Title: fmt.Sprintf("%s (%s)", info.Name, info.Symbol),
		Overview: [][2]string{
			{"Contract", info.Address},
			{"Blockchain", network.GetDisplayName()},
			{"Total Supply", g7common.ReadableNumber(info.TotalSupply)},
			{"Decimals", fmt.Sprintf("%d", info.Decimals)},
			{"Compiler Version", info.CompilerVersionHint},
			{"Audit Date", info.AuditDate},
		},
		Owner: styledOwner(info.OwnerWallet),
		Taxes: []TaxDisplay{
			{Kind: "Buy", Rate: styledRate(info.Taxes.Buy)},
			{Kind: "Sell", Rate: styledRate(info.Taxes.Sell)},
			{Kind: "Transfer", Rate: styledRate(info.Taxes.Transfer)},
		},
		Features:       doc.Functionality.StandardFeatures,
		AdminFunctions: doc.Functionality.AdminFunctions,
		Security: []SecurityDisplay{
			{Area: "Ownership Control", Issues: sa.OwnershipControl.Risks, Recommendations: sa.OwnershipControl.Recommendations},
			{Area: "Fee Structure", Issues: sa.FeeStructure.Issues, Impact: sa.FeeStructure.Impact, Recommendations: sa.FeeStructure.Recommendations},
			{Area: "Reflection", Impact: sa.ReflectionMechanisms.Impact, Recommendations: sa.ReflectionMechanisms.Recommendations},
			{Area: "Swap and Liquidity", Issues: sa.SwapAndLiquidity.Issues, Impact: sa.SwapAndLiquidity.Impact, Recommendations: sa.SwapAndLiquidity.Recommendations},
			{Area: "Reentrancy", Issues: sa.ReentrancyProtection.Observations, Impact: sa.ReentrancyProtection.Assessment, Recommendations: sa.ReentrancyProtection.Recommendations},
		},
		Findings: []FindingDisplay{
			{Title: "Centralization Risks", Text: styledCentralization(info.OwnerWallet, pi.CentralizationRisks)},
			{Title: "High Launch Tax", Text: ui.StyledText{Text: pi.HighLaunchTax}},
			{Title: "Sell Fee Proportion", Text: ui.StyledText{Text: pi.SellFeeProportion, Severity: styledRate(info.Taxes.Sell).Severity}},
			{Title: "Swap and Liquify Failures", Text: ui.StyledText{Text: pi.SwapAndLiquifyFailures}},
			{Title: "Fee Flexibility", Text: ui.StyledText{Text: pi.FeeFlexibility}},
			{Title: "Burn Functionality", Text: ui.StyledText{Text: pi.BurnFunctionality}},
			{Title: "Limited Event Emissions", Text: ui.StyledText{Text: pi.LimitedEventEmissions}},
			{Title: "Launch Tax Duration", Text: ui.StyledText{Text: pi.LaunchTaxDuration}},
		},
		Wallet:          buildWalletDisplay(doc.OwnerWallet, network),
		Recommendations: doc.Recommendations,
		Conclusion:      doc.Conclusion,
	}
}

// ChainDisplays describes every registry chain in registry order.
func ChainDisplays(registry *networks.Registry) []ChainDisplay {
	upper := cases.Upper(language.English)
	result := []ChainDisplay{}
	for _, n := range registry.Networks() {
		endpoints, _ := registry.EndpointsFor(string(n.GetName()))
		result = append(result, ChainDisplay{
			Name:      string(n.GetName()),
			Display:   n.GetDisplayName(),
			Family:    upper.String(string(n.GetFamily())),
			Native:    n.GetNativeTokenSymbol(),
			Aliases:   n.GetAlternativeNames(),
			Endpoints: endpoints,
		})
	}
	return result
}

func printWalletDisplay(u ui.UI, d WalletDisplay) {
	rows := [][]string{
		{"Address", u.Style(d.Address)},
		{"Balance", d.Balance},
		{"Kind", d.Kind},
		{"Transactions", d.Transactions},
	}
	signals := [][]string{}
	for _, s := range d.Signals {
		signals = append(signals, []string{s[0], s[1]})
	}
	u.TableWithGroups(nil, [][][]string{rows, signals})
	if len(d.RedFlags) > 0 {
		u.Critical("Red Flags")
		u.Indent().List(d.RedFlags)
	}
}

func printAuditDisplay(u ui.UI, d *AuditDisplay) {
	u.Section("Smart Contract Audit Report: " + d.Title)
	overview := [][]string{}
	for _, row := range d.Overview {
		overview = append(overview, []string{row[0], row[1]})
	}
	overview = append(overview, []string{"Owner", u.Style(d.Owner)})
	u.Table(nil, overview)

	u.Section("Taxes")
	taxes := [][]string{}
	for _, t := range d.Taxes {
		taxes = append(taxes, []string{t.Kind, u.Style(t.Rate)})
	}
	u.Table([]string{"Tax", "Rate"}, taxes)

	u.Section("Functionality")
	u.List(d.Features)
	u.Info("Admin functions:")
	u.Indent().List(d.AdminFunctions)

	u.Section("Security Analysis")
	for _, s := range d.Security {
		u.Critical(s.Area)
		child := u.Indent()
		for _, issue := range s.Issues {
			child.Info("- Issue: %s", issue)
		}
		if s.Impact != "" {
			child.Info("Impact: %s", s.Impact)
		}
		for _, rec := range s.Recommendations {
			child.Info("- Recommendation: %s", rec)
		}
	}

	u.Section("Potential Issues")
	rows := [][2]string{}
	for _, f := range d.Findings {
		rows = append(rows, [2]string{f.Title, u.Style(f.Text)})
	}
	u.KeyValue(rows)

	u.Section("Owner Wallet")
	printWalletDisplay(u, d.Wallet)

	u.Section("Recommendations")
	u.List(d.Recommendations)

	u.Section("Conclusion")
	u.Info("%s", d.Conclusion)
}

// DisplayAudit writes doc to u and returns its view model, which serializes
// to plain JSON.
func DisplayAudit(u ui.UI, doc g7common.AuditDocument, network networks.Network) *AuditDisplay {
	d := buildAuditDisplay(doc, network)
	printAuditDisplay(u, d)
	return d
}

func DisplayWalletRisk(u ui.UI, risk g7common.WalletRisk, network networks.Network) WalletDisplay {
	d := buildWalletDisplay(risk, network)
	u.Section("Wallet " + risk.Address)
	printWalletDisplay(u, d)
	return d
}

// DisplayChains lists the registry's chains with their endpoints, one table
// group per chain.
func DisplayChains(u ui.UI, registry *networks.Registry) []ChainDisplay {
	chains := ChainDisplays(registry)
	groups := [][][]string{}
	for _, c := range chains {
		group := [][]string{}
		for i, e := range c.Endpoints {
			if i == 0 {
				group = append(group, []string{c.Name, c.Family, c.Native, strings.Join(c.Aliases, ", "), e})
				continue
			}
			group = append(group, []string{"", "", "", "", e})
		}
		groups = append(groups, group)
	}
	u.TableWithGroups([]string{"Chain", "Family", "Native", "Aliases", "Endpoints"}, groups)
	return chains
}
