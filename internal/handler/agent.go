package handler

import (
	"net/http"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentHandler serves the vendor-level machine API. Identity arrives in the
// body (userId) under the shared-secret middleware; every request resolves a
// fresh scope before touching data.
type AgentHandler struct {
	resolver  *scope.Resolver
	captacion service.CaptacionService
	cierre    service.CierreService
	trackeo   service.TrackeoService
	objetivo  service.ObjetivoService
	resumen   service.ResumenService
}

func NewAgentHandler(
	resolver *scope.Resolver,
	captacion service.CaptacionService,
	cierre service.CierreService,
	trackeo service.TrackeoService,
	objetivo service.ObjetivoService,
	resumen service.ResumenService,
) *AgentHandler {
	return &AgentHandler{
		resolver:  resolver,
		captacion: captacion,
		cierre:    cierre,
		trackeo:   trackeo,
		objetivo:  objetivo,
		resumen:   resumen,
	}
}

// userScope resolves the body userId into a single-owner scope. Returns false
// after writing the agent error envelope.
func (h *AgentHandler) userScope(c *gin.Context, rawID string) (scope.Scope, uuid.UUID, bool) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAgent("userId invalido"))
		return scope.Scope{}, uuid.Nil, false
	}
	sc, err := h.resolver.ResolveUser(c.Request.Context(), id)
	if err != nil {
		agentFail(c, err)
		return scope.Scope{}, uuid.Nil, false
	}
	return sc, id, true
}

func anioODefecto(anio int) int {
	if anio == 0 {
		return time.Now().Year()
	}
	return anio
}

// Captaciones godoc
// @Summary      Captaciones de un vendedor (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                      true "Secreto compartido"
// @Param        body           body   dto.AgentCaptacionesRequest true "Identidad y filtros"
// @Success      200 {object} dto.AgentResponse
// @Failure      401 {object} apierror.AgentError
// @Router       /api/agent/captaciones [post]
func (h *AgentHandler) Captaciones(c *gin.Context) {
	var req dto.AgentCaptacionesRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.userScope(c, req.UserID)
	if !ok {
		return
	}
	filter := dto.CaptacionFilter{
		Operacion: req.Operacion,
		ConCierre: req.ConCierre,
		SinCierre: req.SinCierre,
		Limit:     req.Limit,
	}
	resp, err := h.captacion.Listar(c.Request.Context(), sc, filter)
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp.Data, resp.Total)
}

// Cierres godoc
// @Summary      Cierres de un vendedor con acumulado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                  true "Secreto compartido"
// @Param        body           body   dto.AgentCierresRequest true "Identidad y filtros de fecha"
// @Success      200 {object} dto.AgentResponse
// @Failure      401 {object} apierror.AgentError
// @Router       /api/agent/cierres [post]
func (h *AgentHandler) Cierres(c *gin.Context) {
	var req dto.AgentCierresRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.userScope(c, req.UserID)
	if !ok {
		return
	}
	resp, err := h.cierre.Listar(c.Request.Context(), sc, req.FechaFilter)
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp.Data, resp.Total)
}

// Trackeo godoc
// @Summary      Actividad diaria de un vendedor (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                  true "Secreto compartido"
// @Param        body           body   dto.AgentTrackeoRequest true "Identidad y filtros de fecha"
// @Success      200 {object} dto.AgentResponse
// @Failure      401 {object} apierror.AgentError
// @Router       /api/agent/trackeo [post]
func (h *AgentHandler) Trackeo(c *gin.Context) {
	var req dto.AgentTrackeoRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.userScope(c, req.UserID)
	if !ok {
		return
	}
	resp, err := h.trackeo.Listar(c.Request.Context(), sc, req.FechaFilter)
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp.Data, resp.Total)
}

// Objetivos godoc
// @Summary      Objetivo anual de un vendedor (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                    true "Secreto compartido"
// @Param        body           body   dto.AgentObjetivosRequest true "Identidad y anio"
// @Success      200 {object} dto.AgentResponse
// @Failure      401 {object} apierror.AgentError
// @Router       /api/agent/objetivos [post]
func (h *AgentHandler) Objetivos(c *gin.Context) {
	var req dto.AgentObjetivosRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.userScope(c, req.UserID)
	if !ok {
		return
	}
	resp, err := h.objetivo.Listar(c.Request.Context(), sc, anioODefecto(req.Anio))
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp.Data, resp.Total)
}

// Resumen godoc
// @Summary      Resumen anual de un vendedor (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                  true "Secreto compartido"
// @Param        body           body   dto.AgentResumenRequest true "Identidad y anio"
// @Success      200 {object} dto.AgentResponse
// @Failure      401 {object} apierror.AgentError
// @Router       /api/agent/resumen [post]
func (h *AgentHandler) Resumen(c *gin.Context) {
	var req dto.AgentResumenRequest
	if !agentBind(c, &req) {
		return
	}
	_, id, ok := h.userScope(c, req.UserID)
	if !ok {
		return
	}
	resp, err := h.resumen.ResumenAnual(c.Request.Context(), id, anioODefecto(req.Anio))
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp, 1)
}
