package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPasscodeNoEcho reads one line from stdin without echo when stdin is a
// terminal, and as plain text when it is a pipe.
func readPasscodeNoEcho(stdin *os.File) ([]byte, error) {
	if stdin == nil {
		return nil, errors.New("stdin unavailable")
	}

	fd := int(stdin.Fd())
	if term.IsTerminal(fd) {
		passcode, err := term.ReadPassword(fd)
		if err != nil {
			return nil, err
		}
		return passcode, nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return []byte(strings.TrimRight(line, "\r\n")), nil
}

// terminalPrompt prints prompt to out and reads a masked line from stdin.
func terminalPrompt(stdin *os.File, out io.Writer) func(prompt string) ([]byte, error) {
	return func(prompt string) ([]byte, error) {
		fmt.Fprint(out, prompt)
		passcode, err := readPasscodeNoEcho(stdin)
		fmt.Fprintln(out)
		return passcode, err
	}
}
