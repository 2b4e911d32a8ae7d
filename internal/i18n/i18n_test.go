package i18n

import "testing"

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}
	if got := T("login.email"); got != "Email" {
		t.Fatalf("expected 'Email', got %q", got)
	}
	if got := T("keys.endpoint_header", "Ethereum"); got != "Your RPC Endpoint for Ethereum:" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer Init("en")
	if got := T("login.password"); got != "Passwort" {
		t.Fatalf("expected German 'Passwort', got %q", got)
	}
	if Tag().String() != "de" {
		t.Fatalf("expected de tag, got %s", Tag())
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message id fallback, got %q", got)
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	Init("en")
	ids := []string{
		"login.title", "login.success", "chain.prompt", "keys.select_copy",
		"keys.select_delete", "keys.copied", "keys.deleted", "usage.calls",
		"balance.amount", "abort.selection", "abort.login", "abort.deletion", "history.empty",
	}
	SetLang("de")
	defer Init("en")
	for _, id := range ids {
		if T(id) == id {
			t.Fatalf("German locale is missing %q", id)
		}
	}
}
