package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type TrackeoHandler struct{ svc service.TrackeoService }

func NewTrackeoHandler(svc service.TrackeoService) *TrackeoHandler {
	return &TrackeoHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar la actividad de un dia
// @Tags         trackeo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.TrackeoRequest true "Contadores del dia"
// @Success      201 {object} dto.TrackeoResponse
// @Failure      400 {object} apierror.APIError "Dia duplicado o datos invalidos"
// @Router       /v1/trackeo [post]
func (h *TrackeoHandler) Crear(c *gin.Context) {
	var req dto.TrackeoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar registros diarios de actividad
// @Tags         trackeo
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        mes         query int    false "1..12, junto con anio"
// @Param        anio        query int    false "Anio calendario"
// @Success      200 {object} dto.TrackeoListResponse
// @Router       /v1/trackeo [get]
func (h *TrackeoHandler) Listar(c *gin.Context) {
	var filter dto.FechaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), sc, filter)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Corregir el registro de un dia
// @Tags         trackeo
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string             true "UUID del registro"
// @Param        body body dto.TrackeoRequest true "Contadores completos"
// @Success      200 {object} dto.TrackeoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/trackeo/{id} [put]
func (h *TrackeoHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.TrackeoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), sc, id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar godoc
// @Summary      Eliminar el registro de un dia
// @Tags         trackeo
// @Security     BearerAuth
// @Param        id path string true "UUID del registro"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/trackeo/{id} [delete]
func (h *TrackeoHandler) Eliminar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), sc, id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
