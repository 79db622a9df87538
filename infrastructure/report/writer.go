package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/vfg2006/search-console-insights/internal/domain"
)

// Writer grava um relatório linha a linha
type Writer interface {
	WriteHeader(columns []string) error
	WriteRow(record []string) error
	Close() error
}

// CSVWriter escreve registros CSV em um arquivo ou em qualquer io.Writer.
// É seguro para uso concorrente.
type CSVWriter struct {
	mu     sync.Mutex
	closer io.Closer
	writer *csv.Writer
}

// NewCSVWriter cria (ou trunca) o arquivo em path, criando os diretórios intermediários
func NewCSVWriter(path string) (*CSVWriter, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("csv: create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv: create file %q: %w", path, err)
	}

	return &CSVWriter{closer: f, writer: csv.NewWriter(f)}, nil
}

// NewStreamWriter escreve em w sem fechá-lo; usado nas respostas HTTP
func NewStreamWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{writer: csv.NewWriter(w)}
}

func (c *CSVWriter) WriteHeader(columns []string) error {
	return c.WriteRow(columns)
}

func (c *CSVWriter) WriteRow(record []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.writer.Write(record); err != nil {
		return fmt.Errorf("csv: write row: %w", err)
	}
	return nil
}

// Close descarrega o buffer e fecha o arquivo subjacente, se houver
func (c *CSVWriter) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("csv: flush: %w", err)
	}

	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

// Write grava cabeçalho e todas as linhas do relatório, na ordem dos alvos
func Write(w Writer, report *domain.Report) error {
	if err := w.WriteHeader(report.Kind.Columns()); err != nil {
		return err
	}

	for _, row := range report.Rows {
		if err := w.WriteRow(row.Record()); err != nil {
			return err
		}
	}

	return nil
}

// Encode escreve o relatório como CSV em out
func Encode(out io.Writer, report *domain.Report) error {
	w := NewStreamWriter(out)
	if err := Write(w, report); err != nil {
		return err
	}
	return w.Close()
}
