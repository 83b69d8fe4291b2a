package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/terraincognita07/utsav/internal/security"
)

const generatedPasscodeLength = 12

type promptFunc func(prompt string) ([]byte, error)

// RunHashPasscodeCommand prints a bcrypt hash for passcode_hash. With generate
// set a random passcode is created instead of prompting.
func RunHashPasscodeCommand(stdin *os.File, out io.Writer, generate bool) error {
	if generate {
		return generatePasscodeHash(out)
	}
	return hashPromptedPasscode(terminalPrompt(stdin, out), out)
}

func generatePasscodeHash(out io.Writer) error {
	passcode, err := security.GeneratePasscode(generatedPasscodeLength)
	if err != nil {
		return fmt.Errorf("generate passcode: %w", err)
	}
	hash, err := security.HashPasscode(passcode)
	if err != nil {
		return fmt.Errorf("hash passcode: %w", err)
	}

	fmt.Fprintf(out, "Passcode: %s\n", passcode)
	fmt.Fprintf(out, "passcode_hash = %q\n", hash)
	return nil
}

func hashPromptedPasscode(prompt promptFunc, out io.Writer) error {
	passcode, err := prompt("Passcode: ")
	if err != nil {
		return fmt.Errorf("read passcode: %w", err)
	}
	confirmation, err := prompt("Confirm passcode: ")
	if err != nil {
		return fmt.Errorf("read passcode confirmation: %w", err)
	}
	if string(passcode) != string(confirmation) {
		return security.ErrPasscodeMismatch
	}

	hash, err := security.HashPasscode(string(passcode))
	if err != nil {
		return fmt.Errorf("hash passcode: %w", err)
	}
	fmt.Fprintf(out, "passcode_hash = %q\n", hash)
	return nil
}
