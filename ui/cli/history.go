// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/developerdao/ddcloud/internal/chain"
	"github.com/developerdao/ddcloud/internal/i18n"
)

var tableBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

func newHistoryCmd() *cobra.Command {
	var (
		limit      int
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the local audit trail of key operations",
		Long: `Show the local audit trail of API key operations, newest first. Only
redacted keys and fingerprints are recorded. With --export the full trail is
written as zstd-compressed JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openAudit(appConfig)
			if err != nil {
				return fmt.Errorf("open audit trail: %w", err)
			}
			defer func() { _ = store.Close() }()

			out := cmd.OutOrStdout()
			if exportPath != "" {
				f, err := os.OpenFile(exportPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
				if err != nil {
					return fmt.Errorf("could not create file: %w", err)
				}
				n, err := store.Export(cmd.Context(), f)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(out, i18n.T("history.exported", n, exportPath))
				return nil
			}

			entries, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, i18n.T("history.empty"))
				return nil
			}
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(tableBorderStyle).
				Headers("TIME", "USER", "ACTION", "CHAIN", "KEY", "DETAILS")
			for _, e := range entries {
				t.Row(e.Timestamp.Local().Format(time.DateTime), e.Username, e.Action, e.Chain, e.RedactedKey, e.Details)
			}
			_, _ = fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show (0 for all)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the whole trail to this file (zstd-compressed JSON)")
	return cmd
}

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List the supported chains",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				BorderStyle(tableBorderStyle).
				Headers("ID", "NAME")
			for _, c := range chain.Default().All() {
				t.Row(c.ID, c.Name)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
