package util

import (
	"bytes"
	"strings"
	"text/template"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

const Disclaimer = "This audit is automated with the G7 Audit dApp, and is based on the provided contract address. " +
	"It does not account for external factors or subsequent changes. " +
	"It is recommended to engage with a professional smart contract auditor for an exhaustive review before making any investment decisions."

var markdownFuncs = template.FuncMap{
	"noneFound":  noneFound,
	"disclaimer": func() string { return Disclaimer },
	"prefixed": func(prefix string, items []string) string {
		lines := make([]string, 0, len(items))
		for _, item := range items {
			lines = append(lines, "- "+prefix+item)
		}
		return strings.Join(lines, "\n")
	},
}

var markdownTemplate = template.Must(template.New("audit").Funcs(markdownFuncs).Parse(
	`# Smart Contract Audit Report
## {{.ExecutiveSummary.Overview.Name}} ({{.ExecutiveSummary.Overview.Symbol}})

### Executive Summary
{{with .ExecutiveSummary.Overview -}}
- **Contract Name:** {{.Name}}
- **Contract Address:** {{.Address}}
- **Token Symbol:** {{.Symbol}}
- **Total Supply:** {{.TotalSupply}}
- **Decimals:** {{.Decimals}}
- **Blockchain:** {{.Blockchain}}
- **Owner:** {{.OwnerWallet}}
- **Compiler Version:** {{.CompilerVersionHint}}
- **Audit Date:** {{.AuditDate}}
{{- end}}

### Functionality Analysis
{{prefixed "" .Functionality.StandardFeatures}}

#### Reflection Mechanisms
{{.Functionality.ReflectionMechanisms}}

#### Fee Structure
{{.Functionality.FeeStructure}}

#### Taxes
{{.Functionality.Taxes}}

#### Liquidity Management
{{.Functionality.LiquidityManagement}}

#### Ownership Control
{{.Functionality.OwnershipControl}}

#### Burn Functionality
{{.Functionality.BurnFunctionality}}

#### Admin Functions
{{prefixed "" .Functionality.AdminFunctions}}

#### Max Transaction Amounts
{{.Functionality.MaxTransactionAmounts}}

### Security Analysis
#### Ownership Control and Centralization
{{prefixed "Risk: " .SecurityAnalysis.OwnershipControl.Risks}}
{{prefixed "Recommendation: " .SecurityAnalysis.OwnershipControl.Recommendations}}

#### Fee Structure Analysis
{{with .SecurityAnalysis.FeeStructure}}{{if .Issues}}{{prefixed "Issue: " .Issues}}
{{end}}Impact: {{.Impact}}
{{prefixed "Recommendation: " .Recommendations}}{{end}}

#### Reflection Mechanisms
Impact: {{.SecurityAnalysis.ReflectionMechanisms.Impact}}
{{prefixed "Recommendation: " .SecurityAnalysis.ReflectionMechanisms.Recommendations}}

#### Swap and Liquidity
{{with .SecurityAnalysis.SwapAndLiquidity}}{{prefixed "Issue: " .Issues}}
Impact: {{.Impact}}
{{prefixed "Recommendation: " .Recommendations}}{{end}}

#### Reentrancy Protection
{{with .SecurityAnalysis.ReentrancyProtection}}{{prefixed "Observation: " .Observations}}
Assessment: {{.Assessment}}
{{prefixed "Recommendation: " .Recommendations}}{{end}}

### Potential Issues and Vulnerabilities
{{with .PotentialIssues -}}
- Centralization Risks: {{.CentralizationRisks}}
- High Launch Tax: {{.HighLaunchTax}}
- Sell Fee Proportion: {{.SellFeeProportion}}
- Swap and Liquify Failures: {{.SwapAndLiquifyFailures}}
- Fee Flexibility: {{.FeeFlexibility}}
- Burn Functionality: {{.BurnFunctionality}}
- Limited Event Emissions: {{.LimitedEventEmissions}}
- Launch Tax Duration: {{.LaunchTaxDuration}}
{{- end}}

### Owner Wallet Analysis
{{with .OwnerWallet -}}
- Address: {{.Address}}
- Balance: {{.BalanceNative}}
- Contract: {{.IsContract}}
- Transactions: {{.TransactionCount}}
- Projects: {{noneFound .Projects}}
- Token Holdings: {{noneFound .TokenHoldings}}
- Failed Projects: {{noneFound .FailedProjects}}
- Rugged Projects: {{noneFound .RuggedProjects}}
- Liquidity Pulls: {{noneFound .LiquidityPulls}}
{{- if .RedFlags}}

### Red Flags
{{prefixed "" .RedFlags}}
{{- end}}
{{- end}}

### Recommendations
{{prefixed "" .Recommendations}}

### Conclusion
{{.Conclusion}}

---
**Disclaimer:** {{disclaimer}}
`))

// RenderMarkdown renders doc as a standalone markdown report.
func RenderMarkdown(doc g7common.AuditDocument) (string, error) {
	var buf bytes.Buffer
	if err := markdownTemplate.Execute(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
