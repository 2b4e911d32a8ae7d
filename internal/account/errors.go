// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package account

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// ErrAuthenticationFailed is wrapped by the RemoteServiceError from a login
// the service refused.
var ErrAuthenticationFailed = errors.New("failed to authenticate user")

// RemoteServiceError reports a non-2xx response or a transport failure.
// StatusCode is 0 for transport failures.
type RemoteServiceError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode != 0 {
		msg := fmt.Sprintf("%s: remote service returned %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
		if e.Err != nil {
			msg += ": " + e.Err.Error()
		}
		return msg
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// transportError wraps a client.Do failure. *url.Error embeds the request URL,
// and the revoke URL carries the key, so only the inner cause is kept.
func transportError(op string, err error) error {
	var ue *url.Error
	if errors.As(err, &ue) {
		err = fmt.Errorf("%s request failed: %w", ue.Op, ue.Err)
	}
	return &RemoteServiceError{Op: op, Err: err}
}

// IsStatus reports whether err is a RemoteServiceError with the given status.
func IsStatus(err error, code int) bool {
	var rse *RemoteServiceError
	return errors.As(err, &rse) && rse.StatusCode == code
}
