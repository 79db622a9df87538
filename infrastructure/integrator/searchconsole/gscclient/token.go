package gscclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Scope somente leitura usado pela credencial de usuário autorizado
const Scope = "https://www.googleapis.com/auth/webmasters.readonly"

// Credentials é o formato "authorized user" gravado em token.json
type Credentials struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refresh_token"`
	TokenURI     string   `json:"token_uri"`
	ClientID     string   `json:"client_id"`
	ClientSecret string   `json:"client_secret"`
	Scopes       []string `json:"scopes,omitempty"`
	Expiry       string   `json:"expiry,omitempty"`
}

// ExpiresAt interpreta o campo expiry; zero quando ausente ou inválido
func (c *Credentials) ExpiresAt() time.Time {
	if c.Expiry == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if parsed, err := time.Parse(layout, c.Expiry); err == nil {
			return parsed.UTC()
		}
	}

	return time.Time{}
}

// ClientSecrets representa client_secret.json, no formato "installed" ou "web"
type ClientSecrets struct {
	Installed *ClientSecretEntry `json:"installed"`
	Web       *ClientSecretEntry `json:"web"`
}

type ClientSecretEntry struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	TokenURI     string `json:"token_uri"`
}

func (s *ClientSecrets) Entry() *ClientSecretEntry {
	if s.Installed != nil {
		return s.Installed
	}
	return s.Web
}

// TokenResponse representa a resposta do endpoint OAuth2 ao renovar um token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// LocateFile procura o arquivo no caminho informado e depois dentro de secretsDir
func LocateFile(name, secretsDir string) (string, error) {
	candidates := []string{name}
	if secretsDir != "" && !filepath.IsAbs(name) {
		candidates = append(candidates, filepath.Join(secretsDir, filepath.Base(name)))
	}

	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s (procurado em %s)", ErrCredentialsNotFound, name, strings.Join(candidates, ", "))
}

func LoadCredentials(path string) (*Credentials, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	var credentials Credentials
	if err := json.Unmarshal(content, &credentials); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}

	return &credentials, nil
}

func LoadClientSecrets(path string) (*ClientSecretEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	var secrets ClientSecrets
	if err := json.Unmarshal(content, &secrets); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}

	entry := secrets.Entry()
	if entry == nil {
		return nil, fmt.Errorf("%s não contém a chave installed nem web", path)
	}

	return entry, nil
}

// SaveCredentials grava o token com permissão restrita ao usuário
func SaveCredentials(path string, credentials *Credentials) error {
	content, err := json.MarshalIndent(credentials, "", "  ")
	if err != nil {
		return fmt.Errorf("erro ao codificar token: %w", err)
	}

	if err := os.WriteFile(path, content, 0o600); err != nil {
		return fmt.Errorf("erro ao gravar %s: %w", path, err)
	}

	return nil
}

// ExchangeRefreshToken obtém um novo access token a partir do refresh token
func ExchangeRefreshToken(ctx context.Context, httpClient *http.Client, tokenURL string, credentials *Credentials) (*TokenResponse, error) {
	if credentials.RefreshToken == "" {
		return nil, ErrRefreshTokenMissing
	}

	form := url.Values{}
	form.Set("client_id", credentials.ClientID)
	form.Set("client_secret", credentials.ClientSecret)
	form.Set("refresh_token", credentials.RefreshToken)
	form.Set("grant_type", "refresh_token")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao renovar token: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Erro renovando token. Status: %d, Resposta: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w. Status: %d, Resposta: %s", ErrRefreshFailed, resp.StatusCode, body)
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("%w: token retornado é vazio", ErrRefreshFailed)
	}

	return &tokenResp, nil
}
