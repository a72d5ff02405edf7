package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ehvi8r/G7-Auditor/networks"
	"github.com/ehvi8r/G7-Auditor/ui"
	"github.com/ehvi8r/G7-Auditor/util"
)

var chainsCmd = &cobra.Command{
	Use:     "chains",
	Aliases: []string{"networks"},
	Short:   "List supported chains and the RPC endpoints in use",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := networks.DefaultRegistry(os.Getenv)
		if err != nil {
			return err
		}
		util.DisplayChains(ui.NewTerminalUI(), registry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chainsCmd)
}
