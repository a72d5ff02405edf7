// Copyright © 2018 Victor Tran
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ehvi8r/G7-Auditor/config"
	"github.com/ehvi8r/G7-Auditor/networks"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "g7-auditor",
	Short: "Automated risk audit of token contracts on EVM chains and Solana",
	Long: fmt.Sprintf(`g7-auditor reads a token contract straight from the chain and produces an
audit report: token metadata, owner and tax discovery, a rule based security
analysis and a risk profile of the owner wallet.

Supported chains are bsc, base, roburna and solana. Each chain ships with
default RPC endpoints. You can override them with a comma separated list in
the following env vars (a .env file in the working directory is also read):
	1. For bsc: %s
	2. For base: %s
	3. For roburna: %s
	4. For solana: %s (endpoints are tried in order)

Other settings:
	RPC_TIMEOUT_SEC            timeout of every RPC call (default 8)
	SOLANA_RPS, SOLANA_BURST   per endpoint Solana rate limit (default 5, 2)
	SOLANA_SIGNATURE_LOOKBACK  recent signatures counted for Solana wallets (default 10)
	LOG_LEVEL                  debug, info, warn or error (default warn)
	SERVER_ADDR                listen address of g7-auditor serve (default :8080)

The report is informational. It is not a substitute for a professional audit.`,
		networks.BSCMainnet.GetNodeVariableName(),
		networks.BaseMainnet.GetNodeVariableName(),
		networks.RoburnaMainnet.GetNodeVariableName(),
		networks.SolanaMainnet.GetNodeVariableName(),
	),
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.PersistentFlags().StringVarP(&config.Chain, "chain", "k", "", "chain to audit on. Valid values: \"bsc\", \"base\", \"roburna\", \"solana\" and their aliases. Prompted when empty.")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
