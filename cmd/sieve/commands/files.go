package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sieve/internal/app"
)

func (c *CLI) newFilesCmd() *cobra.Command {
	var (
		languages []string
		includes  []string
		excludes  []string
		gitOnly   bool
		asJSON    bool
		digest    bool
	)

	cmd := &cobra.Command{
		Use:   "files [paths...]",
		Short: "List the files of each language found under the given paths",
		Long: "List the files of each language found under the given paths.\n\n" +
			"Directories are expanded by extension and filtered by include and exclude globs.\n" +
			"A glob matches a path when it matches the path itself or any of its parent directories.\n" +
			"Files named directly are always listed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets := args
			if len(targets) == 0 {
				targets = []string{"."}
			}

			results, err := c.app.Files(cmd.Context(), app.FilesRequest{
				Cwd:       ".",
				Targets:   targets,
				Languages: languages,
				Includes:  includes,
				Excludes:  excludes,
				GitOnly:   gitOnly,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case digest:
				for _, r := range results {
					if _, err := fmt.Fprintf(out, "%s  %s\n", r.Digest, r.Language); err != nil {
						return err
					}
				}
			default:
				for _, r := range results {
					for _, f := range r.Files {
						if _, err := fmt.Fprintln(out, f); err != nil {
							return err
						}
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&languages, "lang", "l", nil, "Language to resolve (repeatable)")
	cmd.Flags().StringArrayVar(&includes, "include", nil, "Only keep paths matching this glob (repeatable)")
	cmd.Flags().StringArrayVar(&excludes, "exclude", nil, "Drop paths matching this glob (repeatable)")
	cmd.Flags().BoolVar(&gitOnly, "git-only", false, "Only list files tracked or not ignored by git")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&digest, "digest", false, "Print one fingerprint per language instead of file paths")
	_ = cmd.MarkFlagRequired("lang")

	return cmd
}
