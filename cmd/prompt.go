package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// confirm writes message to out and reads one line from in. It returns true
// only for "y" or "yes", case-insensitively.
func confirm(in io.Reader, out io.Writer, message string) (bool, error) {
	fmt.Fprint(out, message)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && (err != io.EOF || response == "") {
		return false, err
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes", nil
}

// interactive reports whether stdin is a terminal a user can answer from.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
