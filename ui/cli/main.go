// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the shared
// services every subcommand uses.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/developerdao/ddcloud/buildvars"
	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/config"
	"github.com/developerdao/ddcloud/internal/i18n"
	"github.com/developerdao/ddcloud/internal/keys"
	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/tui"
)

const modulePath = "github.com/developerdao/ddcloud"

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	// A missing file is expected on first run.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			logging.Warnf("could not write default config file: %v", writeErr)
		} else {
			logging.Infof("wrote default config to user config path")
		}
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if email, _ := cmd.Flags().GetString("email"); email != "" {
		appConfig.Account.Email = email
	}

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
	} else if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("ignoring log.level: %v", err)
	}

	i18n.Init(appConfig.Language)
	logging.Debugf("account api %s, rpc base %s", appConfig.Account.BaseURL, appConfig.RPC.BaseURL)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. SIGINT and SIGTERM cancel the command
// context, aborting any request in flight.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// ErrorMessage turns a command error into the line shown to the user.
// Deliberate aborts get their localized message without error noise.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrLoginAborted):
		return i18n.T("abort.login")
	case errors.Is(err, keys.ErrDeletionAborted):
		return i18n.T("abort.deletion")
	case errors.Is(err, keys.ErrSelectionAborted), errors.Is(err, tui.ErrCancelled):
		return i18n.T("abort.selection")
	case errors.Is(err, keys.ErrNoKeysFound):
		return i18n.T("keys.none_found")
	case errors.Is(err, account.ErrAuthenticationFailed):
		return i18n.T("login.failed")
	case errors.Is(err, tui.ErrNotInteractive):
		return i18n.T("login.noninteractive")
	}
	return i18n.T("error.generic", err.Error())
}

// NewRootCmd creates the root command with all subcommands. Each call
// returns a fresh tree so tests stay isolated.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ddcloud",
		Short: i18n.T("app.short"),
		Long: `ddcloud manages API keys for Developer DAO Cloud RPC endpoints.

Keys are only ever displayed in redacted form. Full endpoints go to the
clipboard, to a secret manager, or (with --unsafe-print) to stdout.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
	}

	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("language", "", `Output language ("en", "de")`)
	cmd.PersistentFlags().String("email", "", "Account email (skips the email prompt when DDCLOUD_PASSWORD is set)")

	cmd.AddCommand(
		newGetAPIKeyCmd(),
		newDeleteAPIKeyCmd(),
		newNewAPIKeyCmd(),
		newTrackUsageCmd(),
		newBalanceCmd(),
		newHistoryCmd(),
		newChainsCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "version: %s\n", v)
			_, _ = fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				_, _ = fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

// userAgent identifies the client to the account API.
func userAgent() string {
	v, _, _ := resolveBuildVersion(nil)
	return "ddcloud/" + v
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		// Some build paths only record our module as a dependency.
		if resolvedVersion == "dev" || resolvedVersion == "(devel)" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					resolvedVersion = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}
