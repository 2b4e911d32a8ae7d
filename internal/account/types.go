// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

package account

import (
	"fmt"

	"github.com/developerdao/ddcloud/internal/security"
)

// Credentials are the login form values.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// keyRecord is one element of GET /api/keys.
type keyRecord struct {
	APIKey security.Secret `json:"apikey"`
}

// balances is the body of GET /api/balances.
type balances struct {
	Calls   int64 `json:"calls"`
	Balance int64 `json:"balance"`
}

// Usage is the metered call count for the current billing cycle.
type Usage struct {
	CallsThisCycle int64
}

// Balance is the account balance in cents.
type Balance struct {
	BalanceCents int64
}

// String renders the balance as a dollar amount, e.g. 150 -> "$1.50".
func (b Balance) String() string {
	cents := b.BalanceCents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
