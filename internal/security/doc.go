// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package security holds the API key wrapper and the redaction rules used for
// everything the client shows on screen. A raw key only leaves a Secret via
// Reveal; every formatting path prints a placeholder instead.
package security
