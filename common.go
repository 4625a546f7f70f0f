package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func enew(text string) error {
	return errors.New(text)
}

func errorf(format string, a ...interface{}) error {
	return fmt.Errorf(format, a...)
}

func fprintln(w io.Writer, a ...interface{}) {
	fmt.Fprintln(w, a...)
}

func eprintln(cmd *cobra.Command, a ...interface{}) {
	fmt.Fprintln(cmd.ErrOrStderr(), a...)
}

// _report prints answers one per line in text mode, or v as a YAML
// document in yaml mode.
func _report(cmd *cobra.Command, format string, v interface{}, answers ...int) error {
	w := cmd.OutOrStdout()
	switch format {
	case "text":
		for _, n := range answers {
			fprintln(w, n)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return errorf("unknown output format %q", format)
}
