// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package account

import "net/http"

// Session is the capability returned by Login. Callers pass it back into
// every request; its contents are not meant to be inspected.
type Session struct {
	cookies []*http.Cookie
}

// NewSession builds a session from cookies, mostly useful in tests.
func NewSession(cookies ...*http.Cookie) Session {
	out := make([]*http.Cookie, len(cookies))
	copy(out, cookies)
	return Session{cookies: out}
}

// String keeps session cookies out of logs.
func (s Session) String() string { return "[SESSION]" }

func (s Session) apply(req *http.Request) {
	for _, c := range s.cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}
}
