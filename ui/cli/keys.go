// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/chain"
	"github.com/developerdao/ddcloud/internal/endpoint"
	"github.com/developerdao/ddcloud/internal/i18n"
	"github.com/developerdao/ddcloud/internal/keys"
	"github.com/developerdao/ddcloud/internal/sink"
)

type sessionFunc func(ctx context.Context, wf *keys.Workflow, s account.Session) error

// withSession logs in and runs fn with a workflow wired to the configured
// services.
func withSession(cmd *cobra.Command, fn sessionFunc) error {
	ctx := cmd.Context()

	svc, err := newAccountService(appConfig)
	if err != nil {
		return err
	}
	p := newPrompter()
	s, err := login(ctx, cmd.ErrOrStderr(), svc, p)
	if err != nil {
		return err
	}

	rec, closeAudit := recorderFor(appConfig)
	defer closeAudit()

	wf := keys.New(svc, p, newClipboard(),
		keys.WithCatalog(chain.Default()),
		keys.WithOperationID(uuid.NewString()),
		keys.WithEndpoints(endpoint.New(appConfig.RPC.BaseURL)),
		keys.WithOutput(cmd.OutOrStdout()),
		keys.WithRecorder(rec),
		keys.WithLanguage(i18n.Tag()),
	)
	return fn(ctx, wf, s)
}

func newGetAPIKeyCmd() *cobra.Command {
	var opts keys.GetKeyOptions
	cmd := &cobra.Command{
		Use:   "get-api-key",
		Short: "Show the RPC endpoint for one of your API keys",
		Long: `Select a chain and an API key. The redacted endpoint is printed and the
full endpoint is copied to the clipboard. An account without keys gets a
new one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, wf *keys.Workflow, s account.Session) error {
				return wf.GetKey(ctx, s, opts)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.RevealRaw, "unsafe-print", false, "Print the full endpoint to stdout instead of copying it to the clipboard")
	cmd.Flags().StringVar(&opts.ChainID, "chain", "", "Chain id (see 'ddcloud chains'); skips the chain prompt")
	return cmd
}

func newDeleteAPIKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-api-key",
		Short: "Revoke one of your API keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, wf *keys.Workflow, s account.Session) error {
				return wf.DeleteKey(ctx, s)
			})
		},
	}
}

func newNewAPIKeyCmd() *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "new-api-key",
		Short: "Create a new API key",
		Long: `Create a new API key. It is copied to the clipboard, or stored in a
secret manager with --secret-manager.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts keys.ExportOptions
			// Resolve the sink before logging in so a typo costs no key.
			if provider != "" {
				dst, err := newSink(provider, appConfig)
				if err != nil {
					return err
				}
				opts.Sink = dst
			}
			return withSession(cmd, func(ctx context.Context, wf *keys.Workflow, s account.Session) error {
				return wf.CreateKey(ctx, s, opts)
			})
		},
	}
	cmd.Flags().StringVar(&provider, "secret-manager", "", "Store the key in a secret manager: "+strings.Join(sink.Providers(), ", "))
	return cmd
}

func newTrackUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "track-usage",
		Short: "Show the number of RPC calls made this month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, wf *keys.Workflow, s account.Session) error {
				return wf.TrackUsage(ctx, s)
			})
		},
	}
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(ctx context.Context, wf *keys.Workflow, s account.Session) error {
				return wf.ShowBalance(ctx, s)
			})
		},
	}
}
