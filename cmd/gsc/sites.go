package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
)

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Lista as propriedades acessíveis e o nível de permissão",
	Args:  cobra.NoArgs,
	RunE:  runSites,
}

func init() {
	rootCmd.AddCommand(sitesCmd)
}

func runSites(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	env, err := newEnvironment(ctx, false)
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(env)

	sites, err := env.service.ListSites(ctx)
	if err != nil {
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(os.Stdout, "Nenhuma propriedade encontrada para esta credencial")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SITE\tPERMISSÃO")
	for _, site := range sites {
		fmt.Fprintf(w, "%s\t%s\n", site.SiteURL, site.PermissionLevel)
	}
	return w.Flush()
}
