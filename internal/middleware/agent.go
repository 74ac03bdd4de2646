package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"

	"github.com/gin-gonic/gin"
)

// AgentSecretHeader carries the shared secret of the machine-to-machine API.
const AgentSecretHeader = "x-agent-secret"

// AgentAuth guards /api/agent/*: identity travels in the request body, the
// header only proves the caller is the trusted automation. A missing or wrong
// secret answers the machine envelope, not the session one.
func AgentAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, apierror.NewAgent("agente no configurado"))
			return
		}
		provided := c.GetHeader(AgentSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.NewAgent("no autenticado"))
			return
		}
		c.Next()
	}
}
