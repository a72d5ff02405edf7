package common

type ExecutiveSummary struct {
	Overview ContractInfo `json:"overview"`
}

type Functionality struct {
	StandardFeatures      []string `json:"standardFeatures"`
	ReflectionMechanisms  string   `json:"reflectionMechanisms"`
	FeeStructure          string   `json:"feeStructure"`
	Taxes                 string   `json:"taxes"`
	LiquidityManagement   string   `json:"liquidityManagement"`
	OwnershipControl      string   `json:"ownershipControl"`
	BurnFunctionality     string   `json:"burnFunctionality"`
	AdminFunctions        []string `json:"adminFunctions"`
	MaxTransactionAmounts string   `json:"maxTransactionAmounts"`
}

type OwnershipSecurity struct {
	Risks           []string `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

type FeeStructureSecurity struct {
	Issues          []string `json:"issues"`
	Impact          string   `json:"impact"`
	Recommendations []string `json:"recommendations"`
}

type ReflectionSecurity struct {
	Impact          string   `json:"impact"`
	Recommendations []string `json:"recommendations"`
}

type SwapAndLiquiditySecurity struct {
	Issues          []string `json:"issues"`
	Impact          string   `json:"impact"`
	Recommendations []string `json:"recommendations"`
}

type ReentrancySecurity struct {
	Observations    []string `json:"observations"`
	Assessment      string   `json:"assessment"`
	Recommendations []string `json:"recommendations"`
}

type SecurityAnalysis struct {
	OwnershipControl     OwnershipSecurity        `json:"ownershipControl"`
	FeeStructure         FeeStructureSecurity     `json:"feeStructure"`
	ReflectionMechanisms ReflectionSecurity       `json:"reflectionMechanisms"`
	SwapAndLiquidity     SwapAndLiquiditySecurity `json:"swapAndLiquidity"`
	ReentrancyProtection ReentrancySecurity       `json:"reentrancyProtection"`
}

type PotentialIssues struct {
	CentralizationRisks    string `json:"centralizationRisks"`
	HighLaunchTax          string `json:"highLaunchTax"`
	SellFeeProportion      string `json:"sellFeeProportion"`
	SwapAndLiquifyFailures string `json:"swapAndLiquifyFailures"`
	FeeFlexibility         string `json:"feeFlexibility"`
	BurnFunctionality      string `json:"burnFunctionality"`
	LimitedEventEmissions  string `json:"limitedEventEmissions"`
	LaunchTaxDuration      string `json:"launchTaxDuration"`
}

// AuditDocument is the assembled analysis of one contract. It is a value:
// nothing mutates it after assembly.
type AuditDocument struct {
	ExecutiveSummary ExecutiveSummary `json:"executiveSummary"`
	Functionality    Functionality    `json:"functionality"`
	SecurityAnalysis SecurityAnalysis `json:"securityAnalysis"`
	PotentialIssues  PotentialIssues  `json:"potentialIssues"`
	OwnerWallet      WalletRisk       `json:"ownerWallet"`
	Recommendations  []string         `json:"recommendations"`
	Conclusion       string           `json:"conclusion"`
}
