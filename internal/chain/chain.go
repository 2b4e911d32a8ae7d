// Copyright (c) 2026 Developer DAO
// ddcloud - Developer DAO Cloud command-line client
// This source code is licensed under the MIT license found in the LICENSE file.

// Package chain holds the catalog of networks the RPC service proxies to.
package chain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidChainIndex is returned for an index outside the catalog.
	ErrInvalidChainIndex = errors.New("invalid chain index")
	// ErrUnknownChain is returned when an identifier is not in the catalog.
	ErrUnknownChain = errors.New("unknown chain")
)

// Descriptor identifies one network. ID is part of every RPC URL handed out,
// so it must never change for an existing chain.
type Descriptor struct {
	Name string
	ID   string
}

func (d Descriptor) String() string { return d.Name }

// Catalog is an ordered, read-only list of descriptors.
type Catalog struct {
	chains []Descriptor
}

// NewCatalog builds a catalog from descriptors, rejecting empty or duplicate IDs.
func NewCatalog(chains ...Descriptor) (Catalog, error) {
	seen := make(map[string]struct{}, len(chains))
	out := make([]Descriptor, 0, len(chains))
	for _, c := range chains {
		if strings.TrimSpace(c.ID) == "" {
			return Catalog{}, fmt.Errorf("chain %q has an empty id", c.Name)
		}
		if _, dup := seen[c.ID]; dup {
			return Catalog{}, fmt.Errorf("duplicate chain id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
	}
	return Catalog{chains: out}, nil
}

// Default returns the catalog of chains served by Developer DAO Cloud.
func Default() Catalog {
	return Catalog{chains: []Descriptor{
		{Name: "Ethereum", ID: "eth"},
		{Name: "Base", ID: "base"},
		{Name: "Arbitrum", ID: "arb-one"},
		{Name: "Polygon", ID: "poly"},
		{Name: "Optimism", ID: "op"},
		{Name: "Binance Smart Chain", ID: "bsc"},
		{Name: "Solana", ID: "solana"},
		{Name: "Sui", ID: "sui"},
	}}
}

// Len returns the number of chains.
func (c Catalog) Len() int { return len(c.chains) }

// At returns the descriptor at index i. Selection UIs hand back plain ints,
// so the bounds are checked here rather than trusted.
func (c Catalog) At(i int) (Descriptor, error) {
	if i < 0 || i >= len(c.chains) {
		return Descriptor{}, fmt.Errorf("%w: %d (catalog has %d chains)", ErrInvalidChainIndex, i, len(c.chains))
	}
	return c.chains[i], nil
}

// Lookup finds a chain by its identifier (case-insensitive).
func (c Catalog) Lookup(id string) (Descriptor, error) {
	for _, d := range c.chains {
		if strings.EqualFold(d.ID, strings.TrimSpace(id)) {
			return d, nil
		}
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownChain, id)
}

// Names returns the human readable names in catalog order.
func (c Catalog) Names() []string {
	out := make([]string, len(c.chains))
	for i, d := range c.chains {
		out[i] = d.Name
	}
	return out
}

// All returns a copy of the descriptors in catalog order.
func (c Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.chains))
	copy(out, c.chains)
	return out
}
