package gscclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/search-console-insights/internal/config"
	"github.com/vfg2006/search-console-insights/internal/domain"
)

// refreshMargin antecipa a renovação para não usar um token prestes a expirar
const refreshMargin = 5 * time.Minute

var (
	ErrCredentialsNotFound = fmt.Errorf("%w: search console credentials not found, authorize the account and save token.json", domain.ErrFatalPrecondition)
	ErrRefreshTokenMissing = fmt.Errorf("%w: token.json has no refresh_token, authorize the account again", domain.ErrFatalPrecondition)
	ErrRefreshFailed       = errors.New("erro ao renovar token de acesso")
	ErrTokenRefreshed      = errors.New("token expirado e renovado, por favor tente novamente")
)

// TokenManager mantém o access token do usuário autorizado válido.
// É compartilhado entre o servidor HTTP e o agendador.
type TokenManager struct {
	cfg         *config.Config
	mu          sync.Mutex
	httpClient  *http.Client
	tokenPath   string
	credentials *Credentials
	now         func() time.Time
}

func NewTokenManager(cfg *config.Config) *TokenManager {
	return &TokenManager{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
	}
}

// InitToken carrega token.json e garante que o token esteja válido antes do primeiro lote
func (tm *TokenManager) InitToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if err := tm.loadLocked(); err != nil {
		return err
	}

	if err := tm.ensureLocked(ctx); err != nil {
		return err
	}

	logrus.WithField("token_file", tm.tokenPath).Info("searchconsole: credenciais carregadas com sucesso")
	return nil
}

// EnsureValidToken renova o token quando ausente ou perto de expirar
func (tm *TokenManager) EnsureValidToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.credentials == nil {
		if err := tm.loadLocked(); err != nil {
			return err
		}
	}

	return tm.ensureLocked(ctx)
}

// RefreshToken força a renovação do token
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if tm.credentials == nil {
		if err := tm.loadLocked(); err != nil {
			return err
		}
	}

	return tm.refreshLocked(ctx)
}

// AccessToken devolve um token válido para o cabeçalho Authorization
func (tm *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if err := tm.EnsureValidToken(ctx); err != nil {
		return "", err
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()
	return tm.credentials.Token, nil
}

// HandleResponse lê o corpo e converte respostas de erro em *gscdomain.APIError.
// Em um 401 o token é renovado e ErrTokenRefreshed sinaliza que a chamada pode ser repetida.
func (tm *TokenManager) HandleResponse(ctx context.Context, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	errorResp := ParseErrorResponse(body)
	if resp.StatusCode == http.StatusUnauthorized || (errorResp != nil && errorResp.IsTokenExpired()) {
		logrus.WithField("status", resp.StatusCode).Warn("searchconsole: token expirado detectado pela API")

		if refreshErr := tm.RefreshToken(ctx); refreshErr != nil {
			return nil, fmt.Errorf("erro ao renovar token expirado: %w", refreshErr)
		}

		return nil, ErrTokenRefreshed
	}

	return nil, gscdomain.NewAPIError(resp.StatusCode, errorResp, body)
}

// ParseErrorResponse tenta interpretar o corpo como erro da API do Google
func ParseErrorResponse(body []byte) *gscdomain.ErrorResponse {
	var errorResp gscdomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil
	}
	if errorResp.Error.Code == 0 && errorResp.Error.Message == "" {
		return nil
	}
	return &errorResp
}

func (tm *TokenManager) loadLocked() error {
	tokenPath, err := LocateFile(tm.cfg.SearchConsole.TokenFile, tm.cfg.SearchConsole.SecretsDir)
	if err != nil {
		return err
	}

	credentials, err := LoadCredentials(tokenPath)
	if err != nil {
		return err
	}

	// client_id e client_secret podem vir apenas do client_secret.json
	if credentials.ClientID == "" || credentials.ClientSecret == "" {
		secretPath, err := LocateFile(tm.cfg.SearchConsole.ClientSecretFile, tm.cfg.SearchConsole.SecretsDir)
		if err == nil {
			entry, err := LoadClientSecrets(secretPath)
			if err != nil {
				return err
			}
			credentials.ClientID = entry.ClientID
			credentials.ClientSecret = entry.ClientSecret
			if credentials.TokenURI == "" {
				credentials.TokenURI = entry.TokenURI
			}
		} else {
			logrus.WithError(err).Warn("searchconsole: client_secret.json não encontrado")
		}
	}

	tm.tokenPath = tokenPath
	tm.credentials = credentials
	return nil
}

func (tm *TokenManager) ensureLocked(ctx context.Context) error {
	if tm.credentials.Token == "" {
		logrus.Info("searchconsole: token não inicializado. Renovando...")
		return tm.refreshLocked(ctx)
	}

	expiresAt := tm.credentials.ExpiresAt()
	if !expiresAt.IsZero() && expiresAt.Sub(tm.now()) < refreshMargin {
		logrus.WithField("expires_at", expiresAt.Format(time.RFC3339)).Info("searchconsole: token expira em breve. Renovando proativamente...")
		return tm.refreshLocked(ctx)
	}

	return nil
}

func (tm *TokenManager) refreshLocked(ctx context.Context) error {
	tokenURL := tm.credentials.TokenURI
	if tokenURL == "" {
		tokenURL = tm.cfg.SearchConsole.TokenURL
	}

	tokenResp, err := ExchangeRefreshToken(ctx, tm.httpClient, tokenURL, tm.credentials)
	if err != nil {
		return err
	}

	tm.credentials.Token = tokenResp.AccessToken
	tm.credentials.Expiry = tm.now().UTC().Add(time.Duration(tokenResp.ExpiresIn) * time.Second).Format(time.RFC3339)

	if err := SaveCredentials(tm.tokenPath, tm.credentials); err != nil {
		// o token renovado continua válido em memória
		logrus.WithError(err).Warn("searchconsole: não foi possível persistir o token renovado")
	}

	logrus.WithField("expires_at", tm.credentials.Expiry).Info("searchconsole: token renovado com sucesso")
	return nil
}
