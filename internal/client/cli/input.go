package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal seams, replaced in tests.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// AskLine writes "label: " to w and returns the next line from reader with
// surrounding whitespace removed. A final line without a newline still
// counts; io.EOF is returned only when nothing was read.
func AskLine(reader *bufio.Reader, label string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}

	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// AskPassword reads a password without echo when stdin is a terminal. When
// input is piped the password is taken from the next line of reader
// instead. Callers wipe the result with common.WipeByteArray.
func AskPassword(reader *bufio.Reader, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password: "); err != nil {
		return nil, err
	}

	fd := stdinFd()
	if !isTerminal(fd) {
		line, err := reader.ReadBytes('\n')
		if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
			return nil, err
		}
		return bytes.TrimSpace(line), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}

	return pw, nil
}
