package chain

import (
	"errors"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 8 {
		t.Fatalf("expected 8 chains, got %d", c.Len())
	}
	want := map[int]string{0: "eth", 2: "arb-one", 5: "bsc", 7: "sui"}
	for i, id := range want {
		d, err := c.At(i)
		if err != nil {
			t.Fatalf("At(%d): %v", i, err)
		}
		if d.ID != id {
			t.Fatalf("At(%d) = %q, want %q", i, d.ID, id)
		}
	}
	if _, err := NewCatalog(c.All()...); err != nil {
		t.Fatalf("default catalog has duplicate or empty ids: %v", err)
	}
}

func TestAt_Bounds(t *testing.T) {
	c := Default()
	for _, i := range []int{-1, c.Len(), 100} {
		if _, err := c.At(i); !errors.Is(err, ErrInvalidChainIndex) {
			t.Fatalf("At(%d): expected ErrInvalidChainIndex, got %v", i, err)
		}
	}
}

func TestLookup(t *testing.T) {
	c := Default()
	d, err := c.Lookup("ETH")
	if err != nil || d.Name != "Ethereum" {
		t.Fatalf("Lookup(ETH) = %v, %v", d, err)
	}
	if _, err := c.Lookup("doge"); !errors.Is(err, ErrUnknownChain) {
		t.Fatalf("expected ErrUnknownChain, got %v", err)
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	if _, err := NewCatalog(Descriptor{Name: "A", ID: "a"}, Descriptor{Name: "B", ID: "a"}); err == nil {
		t.Fatalf("expected duplicate id error")
	}
	if _, err := NewCatalog(Descriptor{Name: "A", ID: " "}); err == nil {
		t.Fatalf("expected empty id error")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].ID = "mutated"
	names := c.Names()
	names[0] = "mutated"
	d, _ := c.At(0)
	if d.ID != "eth" || d.Name != "Ethereum" {
		t.Fatalf("catalog mutated through a returned slice: %+v", d)
	}
}
