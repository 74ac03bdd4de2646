package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"
)

// ErrWebhookNoConfigurado: no webhook URL is set for the caller's role.
var ErrWebhookNoConfigurado = errors.New("n8n: webhook no configurado")

// ErrWebhookFallo: the workflow endpoint was unreachable or answered non-2xx.
// Handlers map it to 502.
var ErrWebhookFallo = errors.New("n8n: webhook fallo")

// ChatTurn is one prior message of the conversation, oldest first.
type ChatTurn struct {
	Role    string `json:"role"` // user | assistant
	Content string `json:"content"`
}

// ChatPayload travels to the n8n workflow.
type ChatPayload struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
	UserID  string     `json:"userId"`
	Role    string     `json:"role"`
	Scope   string     `json:"scope"`
	// TargetUserID is set only for manager chats about one vendedor.
	TargetUserID string `json:"targetUserId,omitempty"`
}

// N8NClient relays chat turns to the n8n workflow webhooks. Vendedores talk to
// the personal workflow; encargados and admins to the manager workflow. Calls
// go through a circuit breaker so a hung workflow fast-fails instead of piling
// up blocked requests.
type N8NClient struct {
	userURL    string
	managerURL string
	secret     string
	httpClient *http.Client
	breaker    *CircuitBreaker
}

func NewN8NClient(cfg *config.Config) *N8NClient {
	return &N8NClient{
		userURL:    cfg.N8NWebhookURL,
		managerURL: cfg.N8NManagerWebhookURL,
		secret:     cfg.N8NChatSecret,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		breaker:    NewCircuitBreaker(DefaultCBConfig()),
	}
}

// Breaker exposes the relay circuit breaker for health reporting.
func (c *N8NClient) Breaker() *CircuitBreaker { return c.breaker }

// Enviar posts the payload to the role-selected webhook and returns the reply
// text. The workflow may answer JSON with an "output" or "message" field, or
// plain text; anything else comes back verbatim.
func (c *N8NClient) Enviar(ctx context.Context, role scope.Role, payload ChatPayload) (string, error) {
	url := c.userURL
	if role == scope.RoleEncargado || role == scope.RoleAdmin {
		url = c.managerURL
	}
	if url == "" {
		return "", ErrWebhookNoConfigurado
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("n8n: marshal payload: %w", err)
	}

	var reply string
	cbErr := c.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("n8n: create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")
		if c.secret != "" {
			req.Header.Set("x-n8n-secret", c.secret)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWebhookFallo, err)
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrWebhookFallo, err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: status %d", ErrWebhookFallo, resp.StatusCode)
		}

		reply = parseReply(raw)
		return nil
	})
	if cbErr != nil {
		if errors.Is(cbErr, ErrCircuitOpen) {
			return "", fmt.Errorf("%w: %v", ErrWebhookFallo, cbErr)
		}
		return "", cbErr
	}
	return reply, nil
}

// parseReply extracts the reply from a workflow response: JSON "output" or
// "message" field when present, raw text otherwise.
func parseReply(raw []byte) string {
	var parsed struct {
		Output  string `json:"output"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Output != "" {
			return parsed.Output
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	return strings.TrimSpace(string(raw))
}
