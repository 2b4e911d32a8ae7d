package security

import (
	"encoding/json"
	"fmt"
	"testing"
)

func TestSecretRedactionAndJSON(t *testing.T) {
	s := FromString("supersecret")
	for _, verb := range []string{"%v", "%s", "%q", "%x", "%#v", "%+v"} {
		if got := fmt.Sprintf(verb, s); got != Placeholder {
			t.Fatalf("unexpected fmt output for %s: %q", verb, got)
		}
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}
	if string(b) != "\"[SECRET]\"" {
		t.Fatalf("unexpected json marshal: %s", string(b))
	}
	// Nested in a struct, as an API response would be.
	b, err = json.Marshal(struct {
		Key Secret `json:"apikey"`
	}{Key: s})
	if err != nil {
		t.Fatalf("json.Marshal struct failed: %v", err)
	}
	if string(b) != `{"apikey":"[SECRET]"}` {
		t.Fatalf("unexpected nested json: %s", string(b))
	}
	if s.Reveal() != "supersecret" {
		t.Fatalf("Reveal lost the value: %q", s.Reveal())
	}
}

func TestSecretUnmarshalJSON(t *testing.T) {
	var got struct {
		Key Secret `json:"apikey"`
	}
	if err := json.Unmarshal([]byte(`{"apikey":"abcdefghijkl"}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Key.Reveal() != "abcdefghijkl" {
		t.Fatalf("unexpected value %q", got.Key.Reveal())
	}
	if err := json.Unmarshal([]byte(`{"apikey":42}`), &got); err == nil {
		t.Fatalf("expected error for non-string key")
	}
}

func TestSecretLogValue(t *testing.T) {
	s := FromString("supersecret")
	if got := s.LogValue().String(); got != Placeholder {
		t.Fatalf("LogValue leaked: %q", got)
	}
}

func TestFingerprintStable(t *testing.T) {
	a := Fingerprint(FromString("abcdefghijklmnopqrst"))
	b := Fingerprint(FromString("abcdefghijklmnopqrst"))
	c := Fingerprint(FromString("abcdefghijklmnopqrsu"))
	if a != b {
		t.Fatalf("fingerprint not stable: %s vs %s", a, b)
	}
	if a == c {
		t.Fatalf("different keys share a fingerprint")
	}
	if len(a) != 16 {
		t.Fatalf("expected 16 hex chars, got %d", len(a))
	}
}
