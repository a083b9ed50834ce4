package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/internal/forms"
	"github.com/dmitrymomot/formkit/pkg/i18n"
)

var errInvalidForm = errors.New("form is invalid")

func newValidateCmd() *cobra.Command {
	var (
		lang   string
		values = map[string]*string{}
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a company form submission",
		Example: `  formkit validate --name "ООО Ромашка" --email info@romashka.ru \
    --inn 7707083893 --phone "8 999 123 45 67"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tr, err := forms.NewTranslator(cmd.Context(), nil, "")
			if err != nil {
				return err
			}

			submission := make(map[string]string, len(values))
			for field, v := range values {
				submission[field] = *v
			}

			result := forms.NewService(tr).Company(tr.Matcher().Match(lang), submission)
			printResult(cmd, result)
			if !result.Valid {
				return errInvalidForm
			}
			return nil
		},
	}

	for _, field := range forms.CompanySchema().Fields() {
		values[field] = cmd.Flags().String(field, "", "value of the "+field+" field")
	}
	cmd.Flags().StringVar(&lang, "lang", i18n.DefaultLanguage, "language of the messages")
	return cmd
}

func printResult(cmd *cobra.Command, result forms.FormResult) {
	var (
		ok   = color.New(color.FgHiGreen)
		bad  = color.New(color.FgHiRed)
		name = color.New(color.Bold)
		out  = cmd.OutOrStdout()
	)

	for _, field := range forms.CompanySchema().Fields() {
		if msg := result.Errors[field]; msg != "" {
			fmt.Fprintf(out, "%s %s: %s\n", bad.Sprint("✗"), name.Sprint(field), msg)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", ok.Sprint("✓"), name.Sprint(field))
	}
	if result.Phone != "" {
		fmt.Fprintf(out, "phone: %s\n", result.Phone)
	}
}
