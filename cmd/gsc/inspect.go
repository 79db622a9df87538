package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

var inspectOpts struct {
	site     string
	input    string
	language string
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Status de indexação de cada URL",
	RunE:  runInspect,
}

func init() {
	flags := inspectCmd.Flags()
	flags.StringVar(&inspectOpts.site, "site", "", "Propriedade (ex.: https://example.com/)")
	flags.StringVar(&inspectOpts.input, "input", "input/urls.txt", "Arquivo com uma URL por linha")
	flags.StringVar(&inspectOpts.language, "language", "", "Idioma das mensagens da inspeção (padrão: SEARCH_CONSOLE_LANGUAGE_CODE)")
	_ = inspectCmd.MarkFlagRequired("site")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	targets, err := loadTargets(inspectOpts.input)
	if err != nil {
		return err
	}

	env, err := newEnvironment(ctx, true)
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(env)

	report, err := env.service.RunInspection(ctx, &domain.InspectionReportRequest{
		SiteURL:      inspectOpts.site,
		LanguageCode: inspectOpts.language,
		Targets:      targets,
	})
	if err != nil {
		return err
	}

	printSummary(report)
	return nil
}
