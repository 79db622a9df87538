package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

var keywordsOpts struct {
	site  string
	start string
	end   string
	input string
	match string
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Métricas por palavra-chave em um período",
	Long: `Consulta cliques, impressões, CTR e posição média de cada palavra-chave
do arquivo de entrada no período informado. Com --match contains, todas as
consultas que contêm a palavra são agregadas em uma única linha.`,
	RunE: runKeywords,
}

func init() {
	flags := keywordsCmd.Flags()
	flags.StringVar(&keywordsOpts.site, "site", "", "Propriedade (ex.: sc-domain:example.com)")
	flags.StringVar(&keywordsOpts.start, "start", "", "Data inicial (YYYY-MM-DD)")
	flags.StringVar(&keywordsOpts.end, "end", "", "Data final (YYYY-MM-DD)")
	flags.StringVar(&keywordsOpts.input, "input", "input/keywords.txt", "Arquivo com uma palavra-chave por linha")
	flags.StringVar(&keywordsOpts.match, "match", string(domain.MatchEquals), "Correspondência: equals ou contains")
	_ = keywordsCmd.MarkFlagRequired("site")
	_ = keywordsCmd.MarkFlagRequired("start")
	_ = keywordsCmd.MarkFlagRequired("end")

	rootCmd.AddCommand(keywordsCmd)
}

func runKeywords(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	targets, err := loadTargets(keywordsOpts.input)
	if err != nil {
		return err
	}

	env, err := newEnvironment(ctx, true)
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(env)

	report, err := env.service.RunKeywords(ctx, &domain.KeywordReportRequest{
		SiteURL:   keywordsOpts.site,
		StartDate: keywordsOpts.start,
		EndDate:   keywordsOpts.end,
		MatchType: keywordsOpts.match,
		Targets:   targets,
	})
	if err != nil {
		return err
	}

	printSummary(report)
	return nil
}
