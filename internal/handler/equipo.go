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

// EquipoHandler serves the manager views of the session API. Every endpoint
// resolves the caller's vendedor set through the Resolver and reuses the same
// services as the vendor-facing routes.
type EquipoHandler struct {
	resolver  *scope.Resolver
	profiles  repository.ProfileRepository
	captacion service.CaptacionService
	cierre    service.CierreService
	trackeo   service.TrackeoService
	objetivo  service.ObjetivoService
	resumen   service.ResumenService
}

func NewEquipoHandler(
	resolver *scope.Resolver,
	profiles repository.ProfileRepository,
	captacion service.CaptacionService,
	cierre service.CierreService,
	trackeo service.TrackeoService,
	objetivo service.ObjetivoService,
	resumen service.ResumenService,
) *EquipoHandler {
	return &EquipoHandler{
		resolver:  resolver,
		profiles:  profiles,
		captacion: captacion,
		cierre:    cierre,
		trackeo:   trackeo,
		objetivo:  objetivo,
		resumen:   resumen,
	}
}

// vendedorQuery parses the optional ?vendedor_id= narrowing parameter.
func vendedorQuery(c *gin.Context) (*uuid.UUID, bool) {
	raw := c.Query("vendedor_id")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("vendedor_id invalido"))
		return nil, false
	}
	return &id, true
}

// teamScope resolves the caller's manager scope, optionally narrowed to one
// vendedor. Returns false after writing the error response.
func (h *EquipoHandler) teamScope(c *gin.Context) (scope.Scope, bool) {
	id, ok := callerID(c)
	if !ok {
		return scope.Scope{}, false
	}
	vendedorID, ok := vendedorQuery(c)
	if !ok {
		return scope.Scope{}, false
	}
	sc, err := h.resolver.ResolveManager(c.Request.Context(), id, vendedorID)
	if err != nil {
		fail(c, err)
		return scope.Scope{}, false
	}
	return sc, true
}

// Vendedores godoc
// @Summary      Listar los vendedores asignados al encargado
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PerfilListResponse
// @Failure      404 {object} apierror.APIError "Sin vendedores asignados"
// @Router       /v1/equipo/vendedores [get]
func (h *EquipoHandler) Vendedores(c *gin.Context) {
	sc, ok := h.teamScope(c)
	if !ok {
		return
	}
	rows, err := h.profiles.ListByIDs(c.Request.Context(), sc.OwnerIDs)
	if err != nil {
		fail(c, err)
		return
	}
	resp := dto.PerfilListResponse{Data: make([]dto.PerfilResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = dto.PerfilResponse{
			ID:       rows[i].ID.String(),
			Email:    rows[i].Email,
			FullName: rows[i].FullName,
			Role:     rows[i].Role,
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Captaciones godoc
// @Summary      Listar captaciones del equipo
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        vendedor_id query string false "Limitar a un vendedor asignado"
// @Param        operacion   query string false "Venta | Alquiler | Temporario"
// @Success      200 {object} dto.CaptacionListResponse
// @Router       /v1/equipo/captaciones [get]
func (h *EquipoHandler) Captaciones(c *gin.Context) {
	var filter dto.CaptacionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sc, ok := h.teamScope(c)
	if !ok {
		return
	}
	resp, err := h.captacion.Listar(c.Request.Context(), sc, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cierres godoc
// @Summary      Listar cierres del equipo
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        vendedor_id query string false "Limitar a un vendedor asignado"
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        mes         query int    false "1..12, junto con anio"
// @Param        anio        query int    false "Anio calendario"
// @Success      200 {object} dto.CierreListResponse
// @Router       /v1/equipo/cierres [get]
func (h *EquipoHandler) Cierres(c *gin.Context) {
	var filter dto.FechaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sc, ok := h.teamScope(c)
	if !ok {
		return
	}
	resp, err := h.cierre.Listar(c.Request.Context(), sc, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Trackeo godoc
// @Summary      Listar actividad diaria del equipo
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        vendedor_id query string false "Limitar a un vendedor asignado"
// @Param        mes         query int    false "1..12, junto con anio"
// @Param        anio        query int    false "Anio calendario"
// @Success      200 {object} dto.TrackeoListResponse
// @Router       /v1/equipo/trackeo [get]
func (h *EquipoHandler) Trackeo(c *gin.Context) {
	var filter dto.FechaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sc, ok := h.teamScope(c)
	if !ok {
		return
	}
	resp, err := h.trackeo.Listar(c.Request.Context(), sc, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Objetivos godoc
// @Summary      Listar objetivos anuales del equipo
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        vendedor_id query string false "Limitar a un vendedor asignado"
// @Param        anio        query int    false "Anio, por defecto el actual"
// @Success      200 {object} dto.ObjetivoListResponse
// @Router       /v1/equipo/objetivos [get]
func (h *EquipoHandler) Objetivos(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	sc, ok := h.teamScope(c)
	if !ok {
		return
	}
	resp, err := h.objetivo.Listar(c.Request.Context(), sc, anio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen anual del equipo con desglose por vendedor
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        vendedor_id query string false "Limitar a un vendedor asignado"
// @Param        anio        query int    false "Anio, por defecto el actual"
// @Success      200 {object} dto.ResumenEquipoResponse
// @Failure      404 {object} apierror.APIError "Sin vendedores asignados"
// @Router       /v1/equipo/resumen [get]
func (h *EquipoHandler) Resumen(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	vendedorID, ok := vendedorQuery(c)
	if !ok {
		return
	}
	sc, err := h.resolver.ResolveManager(c.Request.Context(), id, vendedorID)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.resumen.ResumenEquipo(c.Request.Context(), id, sc, anio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
