package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/infrastructure/report"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Cria as tabelas de execuções no banco configurado",
	Long: `Cria report_runs e report_rows no SQLite ou Postgres indicado por --sink
(ou REPORT_SINK). As migrações são idempotentes.`,
	Args: cobra.NoArgs,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// NewSink executa as migrações ao abrir a conexão
	sink, err := bootstrap.NewSink(ctx, cfg, bootstrap.SinkOptions{Kind: sinkFlag})
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(sink)

	if sink.Repository == nil {
		return fmt.Errorf("destino %q não usa banco; use --sink %s ou --sink %s",
			report.SinkCSV, report.SinkSQLite, report.SinkPostgres)
	}

	fmt.Fprintln(os.Stdout, "Tabelas de relatórios prontas")
	return nil
}
