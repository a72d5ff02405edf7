package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ehvi8r/G7-Auditor/config"
	"github.com/ehvi8r/G7-Auditor/util"
)

var walletCmd = &cobra.Command{
	Use:   "wallet [address]",
	Short: "Show the risk profile of a wallet",
	Long:  `Reads the balance and activity of a wallet. On EVM chains it also tells apart contracts and externally owned accounts.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.close()

		address, network, err := a.target(args)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		done := a.ui.Spinner(fmt.Sprintf("Reading wallet %s...", address))
		risk, err := a.auditor.Wallet(ctx, address, string(network.GetName()))
		done()
		if err != nil {
			a.explain(err)
			return err
		}

		util.DisplayWalletRisk(a.ui, risk, network)
		if config.JSONOutputFile != "" {
			if err := writeJSONFile(config.JSONOutputFile, risk); err != nil {
				a.ui.Error("Writing to json file failed: %s", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(walletCmd)
	walletCmd.Flags().StringVarP(&config.JSONOutputFile, "json", "o", "", "write the wallet risk to a json file")
}
