package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AgentManagerHandler serves the manager-level machine API: the resolved scope
// covers the manager's assigned vendedores, optionally narrowed to one.
type AgentManagerHandler struct {
	resolver  *scope.Resolver
	profiles  repository.ProfileRepository
	captacion service.CaptacionService
	cierre    service.CierreService
	trackeo   service.TrackeoService
	objetivo  service.ObjetivoService
	resumen   service.ResumenService
}

func NewAgentManagerHandler(
	resolver *scope.Resolver,
	profiles repository.ProfileRepository,
	captacion service.CaptacionService,
	cierre service.CierreService,
	trackeo service.TrackeoService,
	objetivo service.ObjetivoService,
	resumen service.ResumenService,
) *AgentManagerHandler {
	return &AgentManagerHandler{
		resolver:  resolver,
		profiles:  profiles,
		captacion: captacion,
		cierre:    cierre,
		trackeo:   trackeo,
		objetivo:  objetivo,
		resumen:   resumen,
	}
}

// managerScope resolves managerId (optionally narrowed to vendedorId) into the
// team scope. Returns false after writing the agent error envelope.
func (h *AgentManagerHandler) managerScope(c *gin.Context, rawManager, rawVendedor string) (scope.Scope, uuid.UUID, bool) {
	managerID, err := uuid.Parse(rawManager)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAgent("managerId invalido"))
		return scope.Scope{}, uuid.Nil, false
	}
	var vendedorID *uuid.UUID
	if rawVendedor != "" {
		v, err := uuid.Parse(rawVendedor)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.NewAgent("vendedorId invalido"))
			return scope.Scope{}, uuid.Nil, false
		}
		vendedorID = &v
	}
	sc, err := h.resolver.ResolveManager(c.Request.Context(), managerID, vendedorID)
	if err != nil {
		agentFail(c, err)
		return scope.Scope{}, uuid.Nil, false
	}
	return sc, managerID, true
}

// Captaciones godoc
// @Summary      Captaciones del equipo de un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                             true "Secreto compartido"
// @Param        body           body   dto.AgentManagerCaptacionesRequest true "Identidad y filtros"
// @Success      200 {object} dto.AgentResponse
// @Failure      403 {object} apierror.AgentError "Vendedor fuera del equipo"
// @Failure      404 {object} apierror.AgentError "Sin vendedores asignados"
// @Router       /api/agent/manager/captaciones [post]
func (h *AgentManagerHandler) Captaciones(c *gin.Context) {
	var req dto.AgentManagerCaptacionesRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.managerScope(c, req.ManagerID, req.VendedorID)
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
// @Summary      Cierres del equipo de un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                         true "Secreto compartido"
// @Param        body           body   dto.AgentManagerCierresRequest true "Identidad y filtros de fecha"
// @Success      200 {object} dto.AgentResponse
// @Router       /api/agent/manager/cierres [post]
func (h *AgentManagerHandler) Cierres(c *gin.Context) {
	var req dto.AgentManagerCierresRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.managerScope(c, req.ManagerID, req.VendedorID)
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
// @Summary      Actividad diaria del equipo de un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                         true "Secreto compartido"
// @Param        body           body   dto.AgentManagerTrackeoRequest true "Identidad y filtros de fecha"
// @Success      200 {object} dto.AgentResponse
// @Router       /api/agent/manager/trackeo [post]
func (h *AgentManagerHandler) Trackeo(c *gin.Context) {
	var req dto.AgentManagerTrackeoRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.managerScope(c, req.ManagerID, req.VendedorID)
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
// @Summary      Objetivos anuales del equipo de un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                           true "Secreto compartido"
// @Param        body           body   dto.AgentManagerObjetivosRequest true "Identidad y anio"
// @Success      200 {object} dto.AgentResponse
// @Router       /api/agent/manager/objetivos [post]
func (h *AgentManagerHandler) Objetivos(c *gin.Context) {
	var req dto.AgentManagerObjetivosRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.managerScope(c, req.ManagerID, req.VendedorID)
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

// Vendedores godoc
// @Summary      Vendedores asignados a un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                            true "Secreto compartido"
// @Param        body           body   dto.AgentManagerVendedoresRequest true "Identidad del encargado"
// @Success      200 {object} dto.AgentResponse
// @Router       /api/agent/manager/vendedores [post]
func (h *AgentManagerHandler) Vendedores(c *gin.Context) {
	var req dto.AgentManagerVendedoresRequest
	if !agentBind(c, &req) {
		return
	}
	sc, _, ok := h.managerScope(c, req.ManagerID, "")
	if !ok {
		return
	}
	rows, err := h.profiles.ListByIDs(c.Request.Context(), sc.OwnerIDs)
	if err != nil {
		agentFail(c, err)
		return
	}
	data := make([]dto.PerfilResponse, len(rows))
	for i := range rows {
		data[i] = dto.PerfilResponse{
			ID:       rows[i].ID.String(),
			Email:    rows[i].Email,
			FullName: rows[i].FullName,
			Role:     rows[i].Role,
		}
	}
	agentOK(c, data, len(data))
}

// Resumen godoc
// @Summary      Resumen anual del equipo de un encargado (API de agente)
// @Tags         agente
// @Accept       json
// @Produce      json
// @Param        x-agent-secret header string                         true "Secreto compartido"
// @Param        body           body   dto.AgentManagerResumenRequest true "Identidad y anio"
// @Success      200 {object} dto.AgentResponse
// @Router       /api/agent/manager/resumen [post]
func (h *AgentManagerHandler) Resumen(c *gin.Context) {
	var req dto.AgentManagerResumenRequest
	if !agentBind(c, &req) {
		return
	}
	sc, managerID, ok := h.managerScope(c, req.ManagerID, req.VendedorID)
	if !ok {
		return
	}
	resp, err := h.resumen.ResumenEquipo(c.Request.Context(), managerID, sc, anioODefecto(req.Anio))
	if err != nil {
		agentFail(c, err)
		return
	}
	agentOK(c, resp, len(resp.Vendedores))
}
