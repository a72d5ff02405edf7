package auditor

import (
	g7common "github.com/ehvi8r/G7-Auditor/common"
)

// Assemble builds the audit document for a resolved contract and its owner
// wallet. It reads nothing but its arguments and returns a document sharing
// no memory with them.
func Assemble(info g7common.ContractInfo, owner g7common.WalletRisk) g7common.AuditDocument {
	info.RawCode = append([]byte{}, info.RawCode...)

	return g7common.AuditDocument{
		ExecutiveSummary: g7common.ExecutiveSummary{
			Overview: info,
		},
		Functionality: g7common.Functionality{
			StandardFeatures:      copyList(standardFeatures),
			ReflectionMechanisms:  noReflection,
			FeeStructure:          feeStructure(info),
			Taxes:                 taxSummary(info),
			LiquidityManagement:   liquidityPending,
			OwnershipControl:      ownershipControl(info),
			BurnFunctionality:     burnPending,
			AdminFunctions:        copyList(adminFunctions),
			MaxTransactionAmounts: maxTxPending,
		},
		SecurityAnalysis: g7common.SecurityAnalysis{
			OwnershipControl: ownershipSecurity(info),
			FeeStructure:     feeStructureSecurity(info),
			ReflectionMechanisms: g7common.ReflectionSecurity{
				Impact:          noReflectionImpact,
				Recommendations: []string{"Consider implementing reflection mechanism for holder benefits"},
			},
			SwapAndLiquidity: g7common.SwapAndLiquiditySecurity{
				Issues:          []string{"Potential front-running vulnerabilities"},
				Impact:          "Medium impact on trading operations",
				Recommendations: []string{"Implement anti-front-running measures"},
			},
			ReentrancyProtection: g7common.ReentrancySecurity{
				Observations:    []string{"Standard reentrancy checks present"},
				Assessment:      "Low risk of reentrancy attacks",
				Recommendations: []string{"Maintain current reentrancy protection"},
			},
		},
		PotentialIssues: g7common.PotentialIssues{
			CentralizationRisks:    centralizationRisk(info),
			HighLaunchTax:          launchTaxPending,
			SellFeeProportion:      sellFeeProportion(info),
			SwapAndLiquifyFailures: swapFailuresPending,
			FeeFlexibility:         feeFlexPending,
			BurnFunctionality:      burnRisksPending,
			LimitedEventEmissions:  eventEmissionPending,
			LaunchTaxDuration:      launchTaxDurPending,
		},
		OwnerWallet:     owner.Normalized(),
		Recommendations: recommendations(info),
		Conclusion:      conclusion(info),
	}
}

func copyList(list []string) []string {
	return append([]string{}, list...)
}
