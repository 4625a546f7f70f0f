package main

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

const _maxLineSize = 64 * 1024

var ErrEmptyInput = errors.New("empty input")

// _readInput returns the puzzle input named by args, or stdin when args is
// empty or "-".
func _readInput(cmd *cobra.Command, args []string) (data []byte, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		err = ErrEmptyInput
	}
	return
}

// _scanLines calls f for every non-blank line of r. Line numbers start at 1.
func _scanLines(r io.Reader, f func(lineno int, line string) error) error {
	s := bufio.NewScanner(r)
	s.Buffer(nil, _maxLineSize)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		if err := f(lineno, line); err != nil {
			return err
		}
	}
	return s.Err()
}
