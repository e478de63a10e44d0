package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cmd := newCommand(stdout)
	// A nil slice makes cobra fall back to os.Args.
	cmd.SetArgs(append([]string{}, args...))
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stdout, usageLine)
			fmt.Fprintln(stdout, "or use --help to get a brief description of what this tool does")
			return 1
		}
		fmt.Fprintf(stderr, "%s %v\n", color.RedString("Error:"), err)
		return 1
	}
	return 0
}
