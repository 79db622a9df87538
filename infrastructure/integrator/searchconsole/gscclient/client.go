package gscclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	gscdomain "github.com/vfg2006/search-console-insights/infrastructure/integrator/searchconsole/domain"
	"github.com/vfg2006/search-console-insights/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=client.go -destination=mocks/client_mock.go -package=mocks

type Client interface {
	QuerySearchAnalytics(ctx context.Context, siteURL string, request *gscdomain.SearchAnalyticsRequest) (*gscdomain.SearchAnalyticsResponse, error)
	InspectURL(ctx context.Context, request *gscdomain.InspectionRequest) (*gscdomain.InspectionResponse, error)
	ListSites(ctx context.Context) (*gscdomain.SitesResponse, error)
}

type SearchConsoleClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) *SearchConsoleClient {
	return &SearchConsoleClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{Timeout: cfg.SearchConsole.RequestTimeout},
	}
}

// siteEndpoint monta a URL de um recurso da propriedade; o siteUrl vai escapado no path
func (c *SearchConsoleClient) siteEndpoint(siteURL, resource string) string {
	return fmt.Sprintf("%s/sites/%s/%s", c.Cfg.SearchConsole.BaseURL, url.PathEscape(siteURL), resource)
}

// do executa a requisição autenticada e decodifica a resposta em out.
// Um 401 provoca uma renovação do token e uma única nova tentativa.
func (c *SearchConsoleClient) do(ctx context.Context, method, endpoint string, payload, out any) error {
	var body []byte
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao codificar requisição: %w", err)
		}
		body = encoded
	}

	for attempt := 0; ; attempt++ {
		respBody, err := c.send(ctx, method, endpoint, body)
		if errors.Is(err, ErrTokenRefreshed) && attempt == 0 {
			logrus.WithField("endpoint", endpoint).Debug("searchconsole: token renovado, repetindo requisição")
			continue
		}
		if err != nil {
			return err
		}

		if out == nil {
			return nil
		}

		if err := json.Unmarshal(respBody, out); err != nil {
			logrus.WithError(err).Error("searchconsole: erro ao decodificar JSON")
			return fmt.Errorf("erro ao decodificar resposta: %w", err)
		}

		return nil
	}
}

func (c *SearchConsoleClient) send(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	token, err := c.TokenManager.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar validade do token: %w", err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		logrus.WithError(err).Error("searchconsole: erro ao criar a requisição")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("endpoint", endpoint).Warn("searchconsole: erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	return c.TokenManager.HandleResponse(ctx, resp)
}
