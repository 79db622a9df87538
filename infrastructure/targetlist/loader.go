package targetlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/search-console-insights/internal/domain"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Load lê a lista de alvos (palavras-chave ou URLs), um por linha.
// Arquivos UTF-16 e UTF-8 com BOM são detectados pela marca de ordem de bytes.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTargetListNotFound, path)
		}
		return nil, fmt.Errorf("erro ao abrir lista de alvos %s: %w", path, err)
	}
	defer file.Close()

	targets, err := Read(file)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyTargetList) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEmptyTargetList, path)
		}
		return nil, fmt.Errorf("erro ao ler lista de alvos %s: %w", path, err)
	}

	logrus.WithFields(logrus.Fields{
		"path":  path,
		"total": len(targets),
	}).Info("targets: lista de alvos carregada")

	return targets, nil
}

// Read decodifica e normaliza as linhas de r
func Read(r io.Reader) ([]string, error) {
	decoder := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	var lines []string
	scanner := bufio.NewScanner(decoder)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	targets := Normalize(lines)
	if len(targets) == 0 {
		return nil, domain.ErrEmptyTargetList
	}

	return targets, nil
}

// Normalize remove espaços, linhas vazias, comentários (#) e duplicatas, mantendo a ordem
func Normalize(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	targets := make([]string, 0, len(lines))

	for _, line := range lines {
		target := strings.TrimSpace(strings.TrimPrefix(line, "\ufeff"))
		if target == "" || strings.HasPrefix(target, "#") {
			continue
		}
		if _, ok := seen[target]; ok {
			continue
		}
		seen[target] = struct{}{}
		targets = append(targets, target)
	}

	return targets
}
