package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-console-insights/infrastructure/report"
	"github.com/vfg2006/search-console-insights/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	dir := t.TempDir()
	return &config.Config{
		Sink: config.Sink{Kind: report.SinkCSV, OutputDir: filepath.Join(dir, "results")},
		Database: config.Database{
			SQLitePath: filepath.Join(dir, "reports.db"),
		},
	}
}

func TestNewSink(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		opts     SinkOptions
		validate func(t *testing.T, sink *Sink, err error)
	}{
		{
			name: "Padrão da configuração é CSV sem repositório",
			opts: SinkOptions{},
			validate: func(t *testing.T, sink *Sink, err error) {
				require.NoError(t, err)
				assert.Nil(t, sink.Repository)
				assert.IsType(t, &report.CSVSink{}, sink.ReportSink)
				assert.NoError(t, sink.Close())
			},
		},
		{
			name: "SQLite migra e grava também em CSV",
			opts: SinkOptions{Kind: report.SinkSQLite},
			validate: func(t *testing.T, sink *Sink, err error) {
				require.NoError(t, err)
				defer sink.Close()

				require.NotNil(t, sink.Repository)
				assert.IsType(t, report.MultiSink{}, sink.ReportSink)

				runs, err := sink.Repository.ListRuns(ctx, 0)
				require.NoError(t, err)
				assert.Empty(t, runs)
			},
		},
		{
			name: "Destino desconhecido",
			opts: SinkOptions{Kind: "mongodb"},
			validate: func(t *testing.T, sink *Sink, err error) {
				assert.Nil(t, sink)
				assert.ErrorContains(t, err, "mongodb")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := NewSink(ctx, newTestConfig(t), tt.opts)
			tt.validate(t, sink, err)
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	ConfigureLogger("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	ConfigureLogger("verboso")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
