package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

var compareOpts struct {
	site  string
	start string
	end   string
	input string
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compara o desempenho de URLs entre dois períodos",
	Long: `Consulta cada URL no período informado e no período anterior de mesma
duração, terminando no dia antes do início. Os dois períodos precisam estar
dentro da janela de retenção da Search Analytics.`,
	RunE: runCompare,
}

func init() {
	flags := compareCmd.Flags()
	flags.StringVar(&compareOpts.site, "site", "", "Propriedade (ex.: https://example.com/)")
	flags.StringVar(&compareOpts.start, "start", "", "Data inicial do período atual (YYYY-MM-DD)")
	flags.StringVar(&compareOpts.end, "end", "", "Data final do período atual (YYYY-MM-DD)")
	flags.StringVar(&compareOpts.input, "input", "input/urls.txt", "Arquivo com uma URL por linha")
	_ = compareCmd.MarkFlagRequired("site")
	_ = compareCmd.MarkFlagRequired("start")
	_ = compareCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	targets, err := loadTargets(compareOpts.input)
	if err != nil {
		return err
	}

	env, err := newEnvironment(ctx, true)
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(env)

	report, err := env.service.RunComparison(ctx, &domain.ComparisonReportRequest{
		SiteURL:   compareOpts.site,
		StartDate: compareOpts.start,
		EndDate:   compareOpts.end,
		Targets:   targets,
	})
	if err != nil {
		return err
	}

	printSummary(report)
	return nil
}
