package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func newPhoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "phone VALUE...",
		Short:   "Normalize and format phone numbers",
		Example: `  formkit phone "8 (999) 123-45-67"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				digits := sanitizer.NormalizePhone(arg)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", digits, sanitizer.FormatPhone(digits))
			}
			return nil
		},
	}
}
