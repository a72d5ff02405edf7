package util

import "github.com/ehvi8r/G7-Auditor/ui"

// TaxDisplay is one tax rate. Rate carries a severity by how high it is.
type TaxDisplay struct {
	Kind string        `json:"kind"`
	Rate ui.StyledText `json:"rate"`
}

// FindingDisplay is one titled finding of the audit.
type FindingDisplay struct {
	Title string        `json:"title"`
	Text  ui.StyledText `json:"text"`
}

// SecurityDisplay is one security analysis area.
type SecurityDisplay struct {
	Area            string   `json:"area"`
	Issues          []string `json:"issues,omitempty"`
	Impact          string   `json:"impact,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// WalletDisplay is the terminal view of a WalletRisk.
type WalletDisplay struct {
	Address      ui.StyledText `json:"address"`
	Balance      string        `json:"balance"`
	Kind         string        `json:"kind"`
	Transactions string        `json:"transactions"`
	Signals      [][2]string   `json:"signals"`
	RedFlags     []string      `json:"red_flags,omitempty"`
}

// AuditDisplay is the terminal view of an AuditDocument. StyledText fields
// are coloured on the terminal and plain in JSON.
type AuditDisplay struct {
	Title           string            `json:"title"`
	Overview        [][2]string       `json:"overview"`
	Owner           ui.StyledText     `json:"owner"`
	Taxes           []TaxDisplay      `json:"taxes"`
	Features        []string          `json:"features"`
	AdminFunctions  []string          `json:"admin_functions"`
	Security        []SecurityDisplay `json:"security"`
	Findings        []FindingDisplay  `json:"findings"`
	Wallet          WalletDisplay     `json:"wallet"`
	Recommendations []string          `json:"recommendations"`
	Conclusion      string            `json:"conclusion"`
}

// ChainDisplay is one row of the chains listing.
type ChainDisplay struct {
	Name      string   `json:"name"`
	Display   string   `json:"display"`
	Family    string   `json:"family"`
	Native    string   `json:"native"`
	Aliases   []string `json:"aliases"`
	Endpoints []string `json:"endpoints"`
}
