package main

import (
	"github.com/spf13/cobra"
)

var (
	sinkFlag   string
	outputFlag string
)

var rootCmd = &cobra.Command{
	Use:   "gsc",
	Short: "Relatórios em lote do Google Search Console",
	Long: `gsc consulta métricas de desempenho (cliques, impressões, CTR e posição)
para uma lista de palavras-chave ou URLs, compara períodos consecutivos e
inspeciona o status de indexação de páginas de uma propriedade.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&sinkFlag, "sink", "",
		"Destino do relatório: csv, sqlite ou postgres (padrão: REPORT_SINK)")
	rootCmd.PersistentFlags().StringVar(&outputFlag, "output", "",
		"Caminho do CSV (padrão: results/YYYY-MM-DD/<relatório>.csv)")
}
