package auditor

import (
	"fmt"

	g7common "github.com/ehvi8r/G7-Auditor/common"
)

var standardFeatures = []string{
	"ERC20/BEP20 Standard Implementation",
	"Transfer Function",
	"Approve Function",
	"TransferFrom Function",
	"Mint Function (if present)",
	"Burn Function (if present)",
}

var adminFunctions = []string{
	"Owner Functions",
	"Tax Management",
	"Liquidity Management",
}

const (
	noReflection         = "No reflection mechanism detected in the contract."
	noReflectionImpact   = "No reflection mechanism impact detected."
	liquidityPending     = "Automated liquidity management features analysis pending implementation."
	burnPending          = "Burn functionality analysis pending implementation."
	maxTxPending         = "Maximum transaction amount analysis pending implementation."
	launchTaxPending     = "Launch tax analysis pending implementation"
	swapFailuresPending  = "Swap and liquify failure analysis pending implementation"
	feeFlexPending       = "Fee flexibility analysis pending implementation"
	burnRisksPending     = "Burn functionality risks analysis pending implementation"
	eventEmissionPending = "Event emissions analysis pending implementation"
	launchTaxDurPending  = "Launch tax duration analysis pending implementation"
)

// ownerState classifies ContractInfo.OwnerWallet.
type ownerState int

const (
	ownerUnknown ownerState = iota
	ownerRenounced
	ownerActive
)

func ownerStateOf(info g7common.ContractInfo) ownerState {
	switch {
	case !info.HasOwner():
		return ownerUnknown
	case g7common.IsZeroAddress(info.OwnerWallet):
		return ownerRenounced
	default:
		return ownerActive
	}
}

func hasTaxes(info g7common.ContractInfo) bool {
	t := info.Taxes
	return t.Buy.IsPositive() || t.Sell.IsPositive() || t.Transfer.IsPositive()
}

func buyTaxLine(info g7common.ContractInfo) string {
	return fmt.Sprintf("- Buy Tax: %s%%", info.Taxes.Buy.String())
}

func sellTaxLine(info g7common.ContractInfo) string {
	return fmt.Sprintf("- Sell Tax: %s%%", info.Taxes.Sell.String())
}

func transferTaxLine(info g7common.ContractInfo) string {
	return fmt.Sprintf("- Transfer Tax: %s%%", info.Taxes.Transfer.String())
}

func feeStructure(info g7common.ContractInfo) string {
	return "The contract implements a fee structure with:\n" +
		buyTaxLine(info) + "\n" +
		sellTaxLine(info) + "\n" +
		transferTaxLine(info)
}

func taxSummary(info g7common.ContractInfo) string {
	return fmt.Sprintf("Total tax analysis:\n"+
		"- Buy transactions are taxed at %s%%\n"+
		"- Sell transactions are taxed at %s%%\n"+
		"- Transfer transactions are taxed at %s%%",
		info.Taxes.Buy.String(), info.Taxes.Sell.String(), info.Taxes.Transfer.String())
}

func ownershipControl(info g7common.ContractInfo) string {
	return fmt.Sprintf("Contract ownership is controlled by: %s", info.OwnerWallet)
}

func centralizationRisk(info g7common.ContractInfo) string {
	switch ownerStateOf(info) {
	case ownerUnknown:
		return "Owner could not be determined: no owner accessor responded, so privileged control cannot be ruled out"
	case ownerRenounced:
		return "Ownership appears renounced (owner is the zero address); owner only functions can no longer be called"
	default:
		return "High centralization risk due to owner privileges"
	}
}

func ownershipSecurity(info g7common.ContractInfo) g7common.OwnershipSecurity {
	switch ownerStateOf(info) {
	case ownerUnknown:
		return g7common.OwnershipSecurity{
			Risks: []string{
				"Owner wallet could not be identified",
				"Privileged functions may exist without a verifiable controller",
			},
			Recommendations: []string{
				"Verify the contract source to identify privileged roles",
			},
		}
	case ownerRenounced:
		return g7common.OwnershipSecurity{
			Risks: []string{
				"Renounced ownership prevents fixing configuration mistakes",
			},
			Recommendations: []string{
				"Confirm no other privileged role remains active",
			},
		}
	}
	return g7common.OwnershipSecurity{
		Risks: []string{
			"Centralized control of contract functions",
			"Single point of failure with owner wallet",
		},
		Recommendations: []string{
			"Implement time-locked operations",
			"Consider multi-signature wallet implementation",
		},
	}
}

func feeStructureSecurity(info g7common.ContractInfo) g7common.FeeStructureSecurity {
	if !hasTaxes(info) {
		return g7common.FeeStructureSecurity{
			Issues:          []string{},
			Impact:          "No buy, sell or transfer tax detected",
			Recommendations: []string{"Add time-locks for fee adjustments"},
		}
	}
	issues := []string{"Adjustable fee structure"}
	if info.Taxes.Sell.GreaterThan(info.Taxes.Buy) {
		issues = append(issues, "High sell tax compared to buy tax")
	}
	return g7common.FeeStructureSecurity{
		Issues: issues,
		Impact: "High fees may impact token liquidity and trading volume",
		Recommendations: []string{
			"Consider implementing maximum fee caps",
			"Add time-locks for fee adjustments",
		},
	}
}

func sellFeeProportion(info g7common.ContractInfo) string {
	return fmt.Sprintf("Sell fee (%s%%) analysis and recommendations", info.Taxes.Sell.String())
}

// recommendation is emitted when applies holds for the contract.
type recommendation struct {
	applies func(g7common.ContractInfo) bool
	text    string
}

func always(g7common.ContractInfo) bool { return true }

var recommendationRules = []recommendation{
	{always, "Implement time-locks for critical functions"},
	{func(info g7common.ContractInfo) bool { return ownerStateOf(info) != ownerRenounced },
		"Add multi-signature requirements for high-risk operations"},
	{hasTaxes, "Consider reducing maximum tax rates"},
	{always, "Enhance event emission for better transparency"},
	{always, "Add emergency pause functionality"},
}

func recommendations(info g7common.ContractInfo) []string {
	result := []string{}
	for _, r := range recommendationRules {
		if r.applies(info) {
			result = append(result, r.text)
		}
	}
	return result
}

func conclusion(info g7common.ContractInfo) string {
	return fmt.Sprintf("Based on our comprehensive analysis of %s (%s), "+
		"the contract demonstrates standard token functionality with some centralization risks. "+
		"Proper due diligence and risk assessment is recommended before engaging with this token.",
		info.Name, info.Symbol)
}
