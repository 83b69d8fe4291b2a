package security

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := RandomString(tt.length, tt.alphabet)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RandomString error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.length {
				t.Fatalf("RandomString len = %d, want %d", len(got), tt.length)
			}
			for _, char := range got {
				if !strings.ContainsRune(tt.alphabet, char) {
					t.Fatalf("RandomString %q contains %q outside alphabet", got, char)
				}
			}
		})
	}
}

func TestGeneratePasscodeMinimumLength(t *testing.T) {
	t.Parallel()

	passcode, err := GeneratePasscode(2)
	if err != nil {
		t.Fatalf("GeneratePasscode returned error: %v", err)
	}
	if len(passcode) != MinPasscodeLength {
		t.Fatalf("GeneratePasscode len = %d, want %d", len(passcode), MinPasscodeLength)
	}
}

func TestHashAndCheckPasscode(t *testing.T) {
	t.Parallel()

	hash, err := HashPasscode("diwali-2025")
	if err != nil {
		t.Fatalf("HashPasscode returned error: %v", err)
	}
	if !ValidPasscodeHash(hash) {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}
	if cost, _ := bcrypt.Cost([]byte(hash)); cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", cost)
	}
	if err := CheckPasscode(hash, "diwali-2025"); err != nil {
		t.Fatalf("expected passcode to match: %v", err)
	}
	if err := CheckPasscode(hash, "holi-2025"); !errors.Is(err, ErrPasscodeMismatch) {
		t.Fatalf("expected ErrPasscodeMismatch, got %v", err)
	}
}

func TestHashPasscodeRejectsShortInput(t *testing.T) {
	t.Parallel()

	if _, err := HashPasscode("  abc  "); !errors.Is(err, ErrPasscodeTooShort) {
		t.Fatalf("expected ErrPasscodeTooShort, got %v", err)
	}
	if ValidPasscodeHash("not-a-hash") {
		t.Fatal("expected plain text to be rejected as hash")
	}
}
