package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	llamadas int
}

func (s *stubChatService) Enviar(_ context.Context, _ uuid.UUID, _ dto.ChatRequest) (*dto.ChatResponse, error) {
	s.llamadas++
	return &dto.ChatResponse{Reply: "hola"}, nil
}

func (s *stubChatService) Historial(_ context.Context, _ uuid.UUID, _ string, _ *uuid.UUID) (*dto.ChatHistoryResponse, error) {
	return &dto.ChatHistoryResponse{}, nil
}

func chatRouter(svc *stubChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc)
	r.POST("/api/chat", h.Enviar)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatValidacionResponde400(t *testing.T) {
	svc := &stubChatService{}
	r := chatRouter(svc)

	// message requerido: falla de tag, no de parseo
	w := postChat(r, `{"scope":"personal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"fields"`)
	assert.Contains(t, w.Body.String(), "Message")
	assert.Zero(t, svc.llamadas)
}

func TestChatCuerpoMalformadoResponde400(t *testing.T) {
	svc := &stubChatService{}
	r := chatRouter(svc)

	w := postChat(r, `{no es json`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "JSON invalido")
	assert.Zero(t, svc.llamadas)
}

func TestChatScopeDesconocidoResponde400(t *testing.T) {
	svc := &stubChatService{}
	r := chatRouter(svc)

	w := postChat(r, `{"message":"hola","scope":"global"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, svc.llamadas)
}
