package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type ObjetivosHandler struct{ svc service.ObjetivoService }

func NewObjetivosHandler(svc service.ObjetivoService) *ObjetivosHandler {
	return &ObjetivosHandler{svc: svc}
}

// anioQuery parses the ?anio= parameter, defaulting to the current year.
func anioQuery(c *gin.Context) (int, bool) {
	raw := c.Query("anio")
	if raw == "" {
		return time.Now().Year(), true
	}
	anio, err := strconv.Atoi(raw)
	if err != nil || anio < 2000 || anio > 2100 {
		c.JSON(http.StatusBadRequest, apierror.New("anio invalido"))
		return 0, false
	}
	return anio, true
}

// Guardar godoc
// @Summary      Crear o reemplazar el objetivo anual propio
// @Tags         objetivos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ObjetivoRequest true "Objetivo del anio"
// @Success      200 {object} dto.ObjetivoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/objetivos [put]
func (h *ObjetivosHandler) Guardar(c *gin.Context) {
	var req dto.ObjetivoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener godoc
// @Summary      Obtener el objetivo propio de un anio
// @Tags         objetivos
// @Produce      json
// @Security     BearerAuth
// @Param        anio query int false "Anio, por defecto el actual"
// @Success      200 {object} dto.ObjetivoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/objetivos [get]
func (h *ObjetivosHandler) Obtener(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), sc, sc.OwnerIDs[0], anio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubObjetivos godoc
// @Summary      Desglose mensual y trimestral del objetivo propio
// @Tags         objetivos
// @Produce      json
// @Security     BearerAuth
// @Param        anio query int false "Anio, por defecto el actual"
// @Success      200 {object} dto.SubObjetivosResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/objetivos/subobjetivos [get]
func (h *ObjetivosHandler) SubObjetivos(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	sc, ok := callerScope(c)
	if !ok {
		return
	}
	resp, err := h.svc.SubObjetivos(c.Request.Context(), sc, sc.OwnerIDs[0], anio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
