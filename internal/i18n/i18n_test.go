package i18n

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    Lang
		wantErr bool
	}{
		{name: "empty defaults to uz", value: "", want: LangUZ},
		{name: "uz", value: "uz", want: LangUZ},
		{name: "ru", value: "ru", want: LangRU},
		{name: "en", value: "en", want: LangEN},
		{name: "unknown code rejected", value: "fr", wantErr: true},
		{name: "case sensitive", value: "UZ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedLang) {
					t.Fatalf("expected ErrUnsupportedLang, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name     string
		lang     Lang
		uz       string
		ru       string
		en       string
		expected string
	}{
		{name: "requested language present", lang: LangRU, uz: "sarlavha", ru: "заголовок", en: "title", expected: "заголовок"},
		{name: "missing ru falls back to uz", lang: LangRU, uz: "sarlavha", expected: "sarlavha"},
		{name: "missing en falls back to uz", lang: LangEN, uz: "sarlavha", ru: "заголовок", expected: "sarlavha"},
		{name: "uz requested", lang: LangUZ, uz: "sarlavha", ru: "заголовок", expected: "sarlavha"},
		{name: "everything empty yields empty string", lang: LangEN, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Pick(tt.lang, tt.uz, tt.ru, tt.en); got != tt.expected {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGateMessagesLocalized(t *testing.T) {
	if SuperAdminOnly(LangRU) == SuperAdminOnly(LangEN) {
		t.Fatal("expected distinct messages per language")
	}
	if SuperAdminOnly("de") != SuperAdminOnly(LangUZ) {
		t.Fatal("expected uz fallback for unknown language")
	}
	if ModeratorOnly(LangEN) == "" {
		t.Fatal("expected non-empty moderator message")
	}
}
