package handler

import (
	"net/http"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type CierresHandler struct{ svc service.CierreService }

func NewCierresHandler(svc service.CierreService) *CierresHandler {
	return &CierresHandler{svc: svc}
}

// Crear godoc
// @Summary      Registrar un cierre sobre una captacion propia
// @Tags         cierres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CierreRequest true "Datos del cierre"
// @Success      201 {object} dto.CierreResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cierres [post]
func (h *CierresHandler) Crear(c *gin.Context) {
	var req dto.CierreRequest
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
// @Summary      Listar cierres con comision acumulada
// @Tags         cierres
// @Produce      json
// @Security     BearerAuth
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        mes         query int    false "1..12, junto con anio"
// @Param        anio        query int    false "Anio calendario"
// @Success      200 {object} dto.CierreListResponse
// @Router       /v1/cierres [get]
func (h *CierresHandler) Listar(c *gin.Context) {
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
// @Summary      Actualizar un cierre
// @Tags         cierres
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string            true "UUID del cierre"
// @Param        body body dto.CierreRequest true "Datos completos"
// @Success      200 {object} dto.CierreResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cierres/{id} [put]
func (h *CierresHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CierreRequest
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
// @Summary      Eliminar un cierre
// @Tags         cierres
// @Security     BearerAuth
// @Param        id path string true "UUID del cierre"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/cierres/{id} [delete]
func (h *CierresHandler) Eliminar(c *gin.Context) {
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

// Exportar godoc
// @Summary      Exportar los cierres filtrados como CSV
// @Tags         cierres
// @Produce      text/csv
// @Security     BearerAuth
// @Param        fecha_desde query string false "YYYY-MM-DD"
// @Param        fecha_hasta query string false "YYYY-MM-DD"
// @Param        anio        query int    false "Anio calendario"
// @Success      200 {file} file
// @Router       /v1/cierres/export [get]
func (h *CierresHandler) Exportar(c *gin.Context) {
	var filter dto.FechaFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	csv, err := h.svc.ExportarCSV(c.Request.Context(), sc, filter)
	if err != nil {
		fail(c, err)
		return
	}
	filename := "cierres_" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", csv)
}
