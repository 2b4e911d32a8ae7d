package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestFlattenYAMLAndLoadLocale(t *testing.T) {
	m := map[string]interface{}{
		"top": map[string]interface{}{
			"sub": "value",
			"arr": []interface{}{"one", "two"},
		},
		"keys.deleted": "Deleted %s",
	}
	out := make(map[string]string)
	flattenYAML("", m, out)
	if out["top.sub"] != "value" {
		t.Fatalf("expected top.sub, got %v", out)
	}
	if _, ok := out["top.arr[0]"]; !ok {
		t.Fatalf("expected top.arr[0] in keys")
	}

	dir := t.TempDir()
	p := filepath.Join(dir, "test.yaml")
	data, _ := yaml.Marshal(m)
	if err := os.WriteFile(p, data, 0600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadLocale(p)
	if err != nil {
		t.Fatalf("loadLocale failed: %v", err)
	}
	if got["keys.deleted"] != "Deleted %s" {
		t.Fatalf("expected flat dotted key, got %v", got)
	}
}

func TestSameVerbs(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Deleted %s", "Gelöscht: %s", true},
		{"%d entries to %s", "%d Einträge nach %s", true},
		{"%d entries to %s", "nach %s", false},
		{"no verbs", "keine", true},
		{"100%% sure %s", "%s sicher", false},
	}
	for _, tc := range cases {
		if got := sameVerbs(tc.a, tc.b); got != tc.want {
			t.Errorf("sameVerbs(%q, %q) = %v", tc.a, tc.b, got)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	write := func(rel, content string) {
		t.Helper()
		p := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("internal/keys/a.go", `package keys
func f() { _ = i18n.T("keys.deleted", x); _ = i18n.T("keys.copied") }`)
	write("internal/keys/a_test.go", `package keys
func g() { _ = i18n.T("only.in.tests") }`)
	write("_examples/x.go", `package x
func h() { _ = i18n.T("ignored.key") }`)
	write("locales/en.yaml", "keys.deleted: \"Deleted %s\"\nkeys.copied: \"Copied\"\nold.key: \"unused\"\n")
	write("locales/de.yaml", "keys.deleted: \"Gelöscht\"\nold.key: \"alt\"\n")

	r, err := lint(root, filepath.Join(root, "locales"))
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	if len(r.orphaned) != 1 || r.orphaned[0] != "old.key" {
		t.Fatalf("unexpected orphaned keys %v", r.orphaned)
	}
	if m := r.missing["de.yaml"]; len(m) != 1 || m[0] != "keys.copied" {
		t.Fatalf("unexpected missing keys %v", r.missing)
	}
	if len(r.missing["en.yaml"]) != 0 {
		t.Fatalf("primary locale should be complete, got %v", r.missing["en.yaml"])
	}
	if v := r.verbs["de.yaml"]; len(v) != 1 || v[0] != "keys.deleted" {
		t.Fatalf("unexpected verb mismatches %v", r.verbs)
	}
	if !r.failed() {
		t.Fatalf("expected failure")
	}
}
