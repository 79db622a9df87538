package gscdomain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse representa a estrutura de erro das APIs do Google
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []ErrorItem `json:"errors,omitempty"`
}

type ErrorItem struct {
	Message string `json:"message"`
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
}

// IsTokenExpired verifica se o erro é de credencial inválida ou expirada
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == http.StatusUnauthorized || e.Error.Status == "UNAUTHENTICATED"
}

// APIError é o erro devolvido pelo cliente quando a API responde com status diferente de 2xx
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Reasons    []string
}

func NewAPIError(statusCode int, resp *ErrorResponse, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	if resp == nil {
		apiErr.Message = strings.TrimSpace(string(body))
		return apiErr
	}

	apiErr.Status = resp.Error.Status
	apiErr.Message = resp.Error.Message
	for _, item := range resp.Error.Errors {
		if item.Reason != "" {
			apiErr.Reasons = append(apiErr.Reasons, item.Reason)
		}
	}

	return apiErr
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("search console: %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("search console: %d: %s", e.StatusCode, e.Message)
}

// transientReasons são motivos que indicam limite de cota ou indisponibilidade momentânea
var transientReasons = map[string]bool{
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"backendError":          true,
	"internalError":         true,
}

// IsTransient indica se vale aguardar antes do próximo alvo
func (e *APIError) IsTransient() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}

	if e.Status == "RESOURCE_EXHAUSTED" || e.Status == "UNAVAILABLE" {
		return true
	}

	for _, reason := range e.Reasons {
		if transientReasons[reason] {
			return true
		}
	}

	return false
}
