// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package account is the HTTP client for the Developer DAO Cloud account API:
// login, API key listing/creation/revocation and the balances endpoint used
// for usage and billing. Every call takes the Session returned by Login.
package account
