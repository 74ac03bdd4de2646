package handler

import (
	"net/http"
	"path/filepath"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type ResumenHandler struct {
	svc         service.ResumenService
	profiles    repository.ProfileRepository
	storagePath string
}

func NewResumenHandler(svc service.ResumenService, profiles repository.ProfileRepository, storagePath string) *ResumenHandler {
	return &ResumenHandler{svc: svc, profiles: profiles, storagePath: storagePath}
}

// Obtener godoc
// @Summary      Resumen anual del vendedor autenticado
// @Tags         resumen
// @Produce      json
// @Security     BearerAuth
// @Param        anio query int false "Anio, por defecto el actual"
// @Success      200 {object} dto.ResumenAnualResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/resumen [get]
func (h *ResumenHandler) Obtener(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ResumenAnual(c.Request.Context(), id, anio)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PDF godoc
// @Summary      Descargar el resumen anual como PDF
// @Tags         resumen
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        anio query int false "Anio, por defecto el actual"
// @Success      200 {file} file
// @Failure      400 {object} apierror.APIError
// @Router       /v1/resumen/pdf [get]
func (h *ResumenHandler) PDF(c *gin.Context) {
	anio, ok := anioQuery(c)
	if !ok {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resumen, err := h.svc.ResumenAnual(c.Request.Context(), id, anio)
	if err != nil {
		fail(c, err)
		return
	}

	nombre := ""
	if p, err := h.profiles.FindByID(c.Request.Context(), id); err == nil {
		nombre = p.Email
		if p.FullName != nil {
			nombre = *p.FullName
		}
	}

	path, err := infra.GenerateResumenPDF(resumen, nombre, h.storagePath)
	if err != nil {
		fail(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
