package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatHandler struct{ svc service.ChatService }

func NewChatHandler(svc service.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// Enviar godoc
// @Summary      Enviar un mensaje al asistente
// @Description  Retransmite el mensaje al webhook de n8n con el historial de la
// @Description  conversacion y persiste ambos turnos.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ChatRequest true "Mensaje y alcance"
// @Success      200 {object} dto.ChatResponse
// @Failure      400 {object} apierror.APIError
// @Failure      502 {object} apierror.APIError "Webhook inaccesible"
// @Router       /api/chat [post]
func (h *ChatHandler) Enviar(c *gin.Context) {
	var req dto.ChatRequest
	if !bindAndValidateWith(c, &req, http.StatusBadRequest) {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Enviar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary      Ultimos mensajes de una conversacion
// @Tags         chat
// @Produce      json
// @Security     BearerAuth
// @Param        scope          query string false "personal | equipo | vendedor"
// @Param        target_user_id query string false "Vendedor objetivo cuando scope=vendedor"
// @Success      200 {object} dto.ChatHistoryResponse
// @Failure      400 {object} apierror.APIError
// @Router       /api/chat/historial [get]
func (h *ChatHandler) Historial(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}
	scopeTag := c.DefaultQuery("scope", "personal")

	var target *uuid.UUID
	if raw := c.Query("target_user_id"); raw != "" {
		t, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("target_user_id invalido"))
			return
		}
		target = &t
	}

	resp, err := h.svc.Historial(c.Request.Context(), id, scopeTag, target)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
