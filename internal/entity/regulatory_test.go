package entity

import (
	"errors"
	"strings"
	"testing"
)

func strPtr(s string) *string { return &s }

func TestValidateTitleUpdate(t *testing.T) {
	long := strings.Repeat("a", 256)

	cases := []struct {
		name       string
		uz, ru, en *string
		want       error
	}{
		{name: "nothing provided", want: nil},
		{name: "uz only", uz: strPtr("Qurilish normasi"), want: nil},
		{name: "blank uz rejected", uz: strPtr("   "), want: ErrTitleRequired},
		{name: "ru over cap", ru: strPtr(long), want: ErrTitleTooLong},
		{name: "en over cap", en: strPtr(long), want: ErrTitleTooLong},
		{name: "uz over cap", uz: strPtr(long), want: ErrTitleTooLong},
		{name: "ru at cap", ru: strPtr(strings.Repeat("a", 255)), want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateTitleUpdate(tc.uz, tc.ru, tc.en)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestValidateRequiredDescription(t *testing.T) {
	if err := ValidateRequiredDescription("   "); !errors.Is(err, ErrDescriptionRequired) {
		t.Fatalf("blank description: err = %v, want ErrDescriptionRequired", err)
	}
	if err := ValidateRequiredDescription("davlat standarti tavsifi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
