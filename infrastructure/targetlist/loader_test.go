package targetlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

func writeFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "targets.txt")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func utf16LE(text string) []byte {
	encoded := []byte{0xFF, 0xFE}
	for _, unit := range utf16.Encode([]rune(text)) {
		encoded = append(encoded, byte(unit), byte(unit>>8))
	}
	return encoded
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "Remove duplicatas e linhas vazias mantendo a ordem",
			lines: []string{"a", "a", "b", ""},
			want:  []string{"a", "b"},
		},
		{
			name:  "Ignora comentários e espaços",
			lines: []string{"  # cabeçalho", "  seo tools ", "\t", "seo tools", "marketing"},
			want:  []string{"seo tools", "marketing"},
		},
		{
			name:  "Lista só com comentários fica vazia",
			lines: []string{"# nada", ""},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.lines))
		})
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		validate func(t *testing.T, targets []string, err error)
	}{
		{
			name: "Arquivo UTF-8 com BOM e CRLF",
			path: func(t *testing.T) string {
				return writeFile(t, []byte("\xEF\xBB\xBFhttps://example.com/a\r\nhttps://example.com/b\r\n"))
			},
			validate: func(t *testing.T, targets []string, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, targets)
			},
		},
		{
			name: "Arquivo UTF-16 LE com BOM",
			path: func(t *testing.T) string {
				return writeFile(t, utf16LE("otimização\nseo\n"))
			},
			validate: func(t *testing.T, targets []string, err error) {
				require.NoError(t, err)
				assert.Equal(t, []string{"otimização", "seo"}, targets)
			},
		},
		{
			name: "Arquivo inexistente é erro fatal",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.txt")
			},
			validate: func(t *testing.T, targets []string, err error) {
				assert.Nil(t, targets)
				assert.ErrorIs(t, err, domain.ErrTargetListNotFound)
				assert.True(t, domain.IsFatal(err))
			},
		},
		{
			name: "Arquivo sem alvos é erro fatal",
			path: func(t *testing.T) string {
				return writeFile(t, []byte("# só comentário\n\n   \n"))
			},
			validate: func(t *testing.T, targets []string, err error) {
				assert.Nil(t, targets)
				assert.ErrorIs(t, err, domain.ErrEmptyTargetList)
				assert.True(t, domain.IsFatal(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, err := Load(tt.path(t))
			tt.validate(t, targets, err)
		})
	}
}

func TestRead(t *testing.T) {
	targets, err := Read(strings.NewReader("b\na\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, targets)
}
