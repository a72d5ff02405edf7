package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	g7common "github.com/ehvi8r/G7-Auditor/common"
	"github.com/ehvi8r/G7-Auditor/config"
	"github.com/ehvi8r/G7-Auditor/util"
)

var auditCmd = &cobra.Command{
	Use:   "audit [address]",
	Short: "Audit a token contract and its owner wallet",
	Long: `Reads the token at address on the selected chain, discovers its owner and
taxes, assesses the owner wallet and prints the audit report.

Use --json to also save the report as JSON and --markdown to save it as a
markdown document.`,
	Args: cobra.MaximumNArgs(1),
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

		done := a.ui.Spinner(fmt.Sprintf("Auditing %s on %s...", address, network.GetDisplayName()))
		doc, err := a.auditor.Audit(ctx, address, string(network.GetName()))
		done()
		if err != nil {
			a.explain(err)
			return err
		}

		util.DisplayAudit(a.ui, doc, network)

		if config.JSONOutputFile != "" {
			if err := writeJSONFile(config.JSONOutputFile, doc); err != nil {
				a.ui.Error("Writing to json file failed: %s", err)
			} else {
				a.ui.Success("Report written to %s", config.JSONOutputFile)
			}
		}
		if config.MarkdownFile != "" {
			writeMarkdown(a, config.MarkdownFile, doc)
		}
		return nil
	},
}

// writeMarkdown asks before replacing an existing file unless --force is set.
func writeMarkdown(a *app, path string, doc g7common.AuditDocument) {
	if _, err := os.Stat(path); err == nil && !config.Force {
		if !a.ui.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path), false) {
			a.ui.Warn("Markdown report not written")
			return
		}
	}
	md, err := util.RenderMarkdown(doc)
	if err != nil {
		a.ui.Error("Rendering markdown failed: %s", err)
		return
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		a.ui.Error("Writing to markdown file failed: %s", err)
		return
	}
	a.ui.Success("Markdown report written to %s", path)
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVarP(&config.JSONOutputFile, "json", "o", "", "write the audit document to a json file")
	auditCmd.Flags().StringVarP(&config.MarkdownFile, "markdown", "m", "", "write the audit report to a markdown file")
	auditCmd.Flags().BoolVarP(&config.Force, "force", "f", false, "overwrite the markdown file without asking")
}
