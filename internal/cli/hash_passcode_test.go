package cli

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/terraincognita07/utsav/internal/security"
)

func scriptedPrompt(answers ...string) promptFunc {
	return func(string) ([]byte, error) {
		if len(answers) == 0 {
			return nil, errors.New("no more input")
		}
		answer := answers[0]
		answers = answers[1:]
		return []byte(answer), nil
	}
}

func parsePasscodeHashLine(t *testing.T, output string) string {
	t.Helper()
	for _, line := range strings.Split(output, "\n") {
		if raw, ok := strings.CutPrefix(line, "passcode_hash = "); ok {
			hash, err := strconv.Unquote(raw)
			if err != nil {
				t.Fatalf("unquote hash line %q: %v", line, err)
			}
			return hash
		}
	}
	t.Fatalf("no passcode_hash line in %q", output)
	return ""
}

func TestHashPromptedPasscode(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	if err := hashPromptedPasscode(scriptedPrompt("marigold-7", "marigold-7"), &output); err != nil {
		t.Fatalf("hash prompted passcode: %v", err)
	}
	hash := parsePasscodeHashLine(t, output.String())
	if err := security.CheckPasscode(hash, "marigold-7"); err != nil {
		t.Fatalf("expected printed hash to verify: %v", err)
	}
}

func TestHashPromptedPasscodeRejectsMismatchAndShortInput(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	if err := hashPromptedPasscode(scriptedPrompt("marigold-7", "marigold-8"), &output); !errors.Is(err, security.ErrPasscodeMismatch) {
		t.Fatalf("expected ErrPasscodeMismatch, got %v", err)
	}
	if err := hashPromptedPasscode(scriptedPrompt("abc", "abc"), &output); !errors.Is(err, security.ErrPasscodeTooShort) {
		t.Fatalf("expected ErrPasscodeTooShort, got %v", err)
	}
	if output.Len() != 0 {
		t.Fatalf("expected no output on failure, got %q", output.String())
	}
}

func TestGeneratePasscodeHash(t *testing.T) {
	t.Parallel()

	var output bytes.Buffer
	if err := RunHashPasscodeCommand(nil, &output, true); err != nil {
		t.Fatalf("generate passcode hash: %v", err)
	}

	passcodeLine := strings.SplitN(output.String(), "\n", 2)[0]
	passcode, ok := strings.CutPrefix(passcodeLine, "Passcode: ")
	if !ok || len(passcode) != generatedPasscodeLength {
		t.Fatalf("unexpected passcode line %q", passcodeLine)
	}
	if err := security.CheckPasscode(parsePasscodeHashLine(t, output.String()), passcode); err != nil {
		t.Fatalf("expected generated hash to verify: %v", err)
	}
}
