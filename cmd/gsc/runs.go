package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/vfg2006/search-console-insights/internal/bootstrap"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"github.com/vfg2006/search-console-insights/pkg/utils"
)

var runsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Lista execuções gravadas no banco ou mostra uma execução em JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Quantidade máxima de execuções listadas")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	ctx, cancel := newContext()
	defer cancel()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sink, err := bootstrap.NewSink(ctx, cfg, bootstrap.SinkOptions{Kind: sinkFlag})
	if err != nil {
		return err
	}
	defer bootstrap.CloseQuietly(sink)

	repo := sink.Repository
	if repo == nil {
		return fmt.Errorf("histórico de execuções exige --sink sqlite ou --sink postgres")
	}

	if len(args) == 1 {
		run, err := repo.GetRun(ctx, args[0])
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("execução %s não encontrada", args[0])
		}

		rows, err := repo.GetRunRows(ctx, run.ID)
		if err != nil {
			return err
		}

		fmt.Fprintln(os.Stdout, utils.PrettyJson(domain.ReportRunDetail{ReportRun: run, Rows: rows}))
		return nil
	}

	runs, err := repo.ListRuns(ctx, runsLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIPO\tSITE\tSTATUS\tALVOS\tERROS\tINÍCIO")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			run.ID, run.Kind, run.SiteURL, run.Status, run.TargetCount, run.ErrorCount,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return w.Flush()
}
