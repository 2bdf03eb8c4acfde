package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the available word packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			book, err := a.book(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, lang := range book.Languages() {
				if lang == book.DefaultLanguage() {
					fmt.Fprintf(out, "%s (default)\n", lang)
					continue
				}
				fmt.Fprintln(out, lang)
			}
			return nil
		},
	}
}
