// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/developerdao/ddcloud/internal/account"
	"github.com/developerdao/ddcloud/internal/i18n"
	"github.com/developerdao/ddcloud/internal/logging"
	"github.com/developerdao/ddcloud/internal/tui"
)

// passwordEnv allows non-interactive logins.
const passwordEnv = "DDCLOUD_PASSWORD"

// ErrLoginAborted is returned when the user cancels a login prompt.
var ErrLoginAborted = errors.New("login aborted")

func loginErr(err error) error {
	if errors.Is(err, tui.ErrCancelled) {
		return ErrLoginAborted
	}
	return err
}

// login shows the banner, collects credentials and opens a session.
// Prompts are drawn on out (stderr) so stdout stays clean for endpoints.
func login(ctx context.Context, out io.Writer, svc accountService, p prompter) (account.Session, error) {
	_, _ = fmt.Fprintln(out, tui.Banner())
	_, _ = fmt.Fprintln(out, tui.Header(i18n.T("login.title")))

	email := appConfig.Account.Email
	password := os.Getenv(passwordEnv)

	if email == "" || password == "" {
		if !p.Interactive() {
			return account.Session{}, tui.ErrNotInteractive
		}
		var err error
		if email, err = p.Input(i18n.T("login.email")+":", email); err != nil {
			return account.Session{}, loginErr(err)
		}
		if password == "" {
			if password, err = p.Password(i18n.T("login.password") + ":"); err != nil {
				return account.Session{}, loginErr(err)
			}
		}
	} else {
		logging.Debugf("using credentials from --email and %s", passwordEnv)
	}

	s, err := svc.Login(ctx, account.Credentials{Email: email, Password: password})
	if err != nil {
		return account.Session{}, err
	}
	_, _ = fmt.Fprintln(out, tui.Success(i18n.T("login.success")))
	return s, nil
}
