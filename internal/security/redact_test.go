package security

import (
	"errors"
	"strings"
	"testing"
)

func TestRedact_Scenario(t *testing.T) {
	r, err := Redact(FromString("abcdefghijklmnopqrst"))
	if err != nil {
		t.Fatalf("Redact: %v", err)
	}
	if r.String() != "abcde*****************pqrst" {
		t.Fatalf("unexpected redaction %q", r.String())
	}
	if r.Prefix() != "abcde" {
		t.Fatalf("unexpected prefix %q", r.Prefix())
	}
}

func TestRedact_RevealsOnlyEnds(t *testing.T) {
	cases := []string{
		"0123456789",
		"0123456789a",
		"KEYabcdefghijklmnopqrstuvwxyz0123456789END",
		"ünïcødé-key-välue",
	}
	for _, raw := range cases {
		r, err := Redact(FromString(raw))
		if err != nil {
			t.Fatalf("Redact(%q): %v", raw, err)
		}
		runes := []rune(raw)
		want := string(runes[:5]) + strings.Repeat("*", MaskLen) + string(runes[len(runes)-5:])
		if r.String() != want {
			t.Fatalf("Redact(%q) = %q, want %q", raw, r.String(), want)
		}
		interior := string(runes[5 : len(runes)-5])
		if interior != "" && strings.Contains(r.String(), interior) {
			t.Fatalf("interior %q leaked in %q", interior, r.String())
		}
	}
}

func TestRedact_TooShort(t *testing.T) {
	for _, raw := range []string{"", "a", "abcd", "abcdefghi"} {
		r, err := Redact(FromString(raw))
		if !errors.Is(err, ErrInvalidSecretLength) {
			t.Fatalf("Redact(%q): expected ErrInvalidSecretLength, got %v", raw, err)
		}
		if r.String() != "" {
			t.Fatalf("Redact(%q) returned output %q on error", raw, r.String())
		}
		if len(raw) > 3 && strings.Contains(err.Error(), raw) {
			t.Fatalf("error message leaks the key: %v", err)
		}
	}
}

func TestRedact_Idempotent(t *testing.T) {
	s := FromString("abcdefghijklmnopqrst")
	a, _ := s.Redact()
	b, _ := s.Redact()
	if a != b {
		t.Fatalf("redaction not deterministic: %q vs %q", a, b)
	}
}

func TestRedactAll(t *testing.T) {
	out, err := RedactAll([]Secret{FromString("aaaaabbbbbccccc"), FromString("1111122222")})
	if err != nil {
		t.Fatalf("RedactAll: %v", err)
	}
	if len(out) != 2 || out[1].String() != "11111*****************22222" {
		t.Fatalf("unexpected output: %v", out)
	}
	if _, err := RedactAll([]Secret{FromString("aaaaabbbbbccccc"), FromString("short")}); !errors.Is(err, ErrInvalidSecretLength) {
		t.Fatalf("expected ErrInvalidSecretLength, got %v", err)
	}
}
