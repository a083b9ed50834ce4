package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.New(color.FgHiRed, color.Bold).Sprint("error:"), err)
		os.Exit(1)
	}
}
