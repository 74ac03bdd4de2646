package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type CaptacionesHandler struct{ svc service.CaptacionService }

func NewCaptacionesHandler(svc service.CaptacionService) *CaptacionesHandler {
	return &CaptacionesHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar una captacion
// @Tags         captaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CaptacionRequest true "Datos de la captacion"
// @Success      201 {object} dto.CaptacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/captaciones [post]
func (h *CaptacionesHandler) Crear(c *gin.Context) {
	var req dto.CaptacionRequest
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
// @Summary      Listar captaciones del vendedor
// @Tags         captaciones
// @Produce      json
// @Security     BearerAuth
// @Param        operacion  query string false "Venta | Alquiler | Temporario"
// @Param        con_cierre query bool   false "Solo con fecha de cierre"
// @Param        sin_cierre query bool   false "Solo sin fecha de cierre"
// @Param        limit      query int    false "Tope de filas (max 500)"
// @Success      200 {object} dto.CaptacionListResponse
// @Router       /v1/captaciones [get]
func (h *CaptacionesHandler) Listar(c *gin.Context) {
	var filter dto.CaptacionFilter
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

// Obtener godoc
// @Summary      Obtener una captacion
// @Tags         captaciones
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID de la captacion"
// @Success      200 {object} dto.CaptacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/captaciones/{id} [get]
func (h *CaptacionesHandler) Obtener(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), sc, id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary      Actualizar una captacion
// @Tags         captaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string               true "UUID de la captacion"
// @Param        body body dto.CaptacionRequest true "Datos completos"
// @Success      200 {object} dto.CaptacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/captaciones/{id} [put]
func (h *CaptacionesHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CaptacionRequest
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
// @Summary      Eliminar una captacion y sus cierres
// @Tags         captaciones
// @Security     BearerAuth
// @Param        id path string true "UUID de la captacion"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/captaciones/{id} [delete]
func (h *CaptacionesHandler) Eliminar(c *gin.Context) {
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
