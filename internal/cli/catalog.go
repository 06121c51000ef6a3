package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func catalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List clubs, domains and the skills offered per domain",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.client().Catalog(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Clubs:")
			for _, club := range catalog.Clubs {
				fmt.Fprintf(out, "- %s\n", club)
			}
			fmt.Fprintln(out, "\nDomains:")
			for _, domain := range catalog.Domains {
				fmt.Fprintf(out, "- %s: %s\n", domain, strings.Join(catalog.SkillsByDomain[domain], ", "))
			}
			return nil
		},
	}
}
