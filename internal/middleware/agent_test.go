package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func agentRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/agent/ping", AgentAuth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAgentAuthSecretoCorrecto(t *testing.T) {
	r := agentRouter("un-secreto")

	req := httptest.NewRequest(http.MethodPost, "/api/agent/ping", nil)
	req.Header.Set(AgentSecretHeader, "un-secreto")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAgentAuthSecretoIncorrecto(t *testing.T) {
	r := agentRouter("un-secreto")

	for _, header := range []string{"", "otro-secreto"} {
		req := httptest.NewRequest(http.MethodPost, "/api/agent/ping", nil)
		if header != "" {
			req.Header.Set(AgentSecretHeader, header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"ok":false`)
	}
}

func TestAgentAuthSinSecretoConfigurado(t *testing.T) {
	r := agentRouter("")

	req := httptest.NewRequest(http.MethodPost, "/api/agent/ping", nil)
	req.Header.Set(AgentSecretHeader, "cualquiera")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
