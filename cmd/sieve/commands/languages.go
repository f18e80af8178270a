package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sieve/internal/core/domain"
)

func (c *CLI) newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the accepted language identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, lang := range domain.Languages() {
				exts, err := domain.Extensions(lang)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %v\n", lang, exts); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
