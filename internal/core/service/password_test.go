package service

import (
	"strings"
	"testing"
)

func TestGeneratePassword(t *testing.T) {
	for i := 0; i < 50; i++ {
		password, err := generatePassword()
		if err != nil {
			t.Fatalf("generatePassword returned error: %v", err)
		}
		if len(password) != generatedPasswordLength {
			t.Fatalf("expected length %d, got %q", generatedPasswordLength, password)
		}
		for _, r := range password {
			if !strings.ContainsRune(passwordAlphabet, r) {
				t.Fatalf("password %q contains %q outside the alphabet", password, r)
			}
		}
	}
}

func TestPasswordAlphabetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, r := range "IO01l" {
		if strings.ContainsRune(passwordAlphabet, r) {
			t.Fatalf("alphabet must not contain ambiguous glyph %q", r)
		}
	}
}
