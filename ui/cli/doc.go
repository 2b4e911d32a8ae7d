// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the ddcloud command line using Cobra. It loads the
// configuration, logs in, and hands each command to the keys workflow. CLI
// code stays thin; behaviour lives in internal/keys.
package cli
