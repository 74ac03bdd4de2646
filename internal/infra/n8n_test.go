package infra

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clienteDePrueba(userURL, managerURL string) *N8NClient {
	return NewN8NClient(&config.Config{
		N8NWebhookURL:        userURL,
		N8NManagerWebhookURL: managerURL,
		N8NChatSecret:        "secreto",
	})
}

func TestEnviarSeleccionaWebhookPorRol(t *testing.T) {
	var userHits, managerHits int
	userSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userHits++
		assert.Equal(t, "secreto", r.Header.Get("x-n8n-secret"))
		w.Write([]byte(`{"output":"hola vendedor"}`))
	}))
	defer userSrv.Close()
	managerSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		managerHits++
		w.Write([]byte(`{"output":"hola manager"}`))
	}))
	defer managerSrv.Close()

	c := clienteDePrueba(userSrv.URL, managerSrv.URL)

	reply, err := c.Enviar(context.Background(), scope.RoleVendedor, ChatPayload{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "hola vendedor", reply)

	reply, err = c.Enviar(context.Background(), scope.RoleEncargado, ChatPayload{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "hola manager", reply)

	reply, err = c.Enviar(context.Background(), scope.RoleAdmin, ChatPayload{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "hola manager", reply)

	assert.Equal(t, 1, userHits)
	assert.Equal(t, 2, managerHits)
}

func TestEnviarSinWebhookConfigurado(t *testing.T) {
	c := clienteDePrueba("", "")

	_, err := c.Enviar(context.Background(), scope.RoleVendedor, ChatPayload{Message: "hola"})
	assert.ErrorIs(t, err, ErrWebhookNoConfigurado)
}

func TestEnviarStatusNo2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := clienteDePrueba(srv.URL, "")

	_, err := c.Enviar(context.Background(), scope.RoleVendedor, ChatPayload{Message: "hola"})
	assert.ErrorIs(t, err, ErrWebhookFallo)
}

func TestParseReply(t *testing.T) {
	assert.Equal(t, "desde output", parseReply([]byte(`{"output":"desde output"}`)))
	assert.Equal(t, "desde message", parseReply([]byte(`{"message":"desde message"}`)))
	// output wins over message when both are present.
	assert.Equal(t, "gana", parseReply([]byte(`{"output":"gana","message":"pierde"}`)))
	assert.Equal(t, "texto plano", parseReply([]byte("  texto plano\n")))
	assert.Equal(t, `{"otro":"campo"}`, parseReply([]byte(`{"otro":"campo"}`)))
}

func TestBreakerAbreTrasFallasConsecutivas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := clienteDePrueba(srv.URL, "")

	for i := 0; i < DefaultCBConfig().FailureThreshold; i++ {
		_, err := c.Enviar(context.Background(), scope.RoleVendedor, ChatPayload{Message: "hola"})
		require.Error(t, err)
	}
	assert.Equal(t, CBOpen, c.Breaker().State())

	// Open breaker fast-fails without touching the server.
	_, err := c.Enviar(context.Background(), scope.RoleVendedor, ChatPayload{Message: "hola"})
	assert.ErrorIs(t, err, ErrWebhookFallo)
}
