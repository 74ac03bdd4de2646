package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactosHandler struct{ svc service.ContactoService }

func NewContactosHandler(svc service.ContactoService) *ContactosHandler {
	return &ContactosHandler{svc: svc}
}

// Crear godoc
// @Summary      Crear un contacto
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ContactoRequest true "Datos del contacto"
// @Success      201 {object} dto.ContactoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos [post]
func (h *ContactosHandler) Crear(c *gin.Context) {
	var req dto.ContactoRequest
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
// @Summary      Listar contactos propios
// @Tags         contactos
// @Produce      json
// @Security     BearerAuth
// @Param        estado query string false "Filtrar por estado"
// @Param        tag_id query string false "Filtrar por tag"
// @Success      200 {object} dto.ContactoListResponse
// @Router       /v1/contactos [get]
func (h *ContactosHandler) Listar(c *gin.Context) {
	var filter dto.ContactoFilter
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
// @Summary      Obtener un contacto
// @Tags         contactos
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID del contacto"
// @Success      200 {object} dto.ContactoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/{id} [get]
func (h *ContactosHandler) Obtener(c *gin.Context) {
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
// @Summary      Actualizar un contacto y sus vinculos
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string              true "UUID del contacto"
// @Param        body body dto.ContactoRequest true "Datos completos; tags y captaciones reemplazan el conjunto"
// @Success      200 {object} dto.ContactoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/{id} [put]
func (h *ContactosHandler) Actualizar(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.ContactoRequest
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
// @Summary      Eliminar un contacto
// @Tags         contactos
// @Security     BearerAuth
// @Param        id path string true "UUID del contacto"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/{id} [delete]
func (h *ContactosHandler) Eliminar(c *gin.Context) {
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

// CrearTag godoc
// @Summary      Crear un tag de contactos
// @Tags         contactos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.ContactoTagRequest true "Nombre del tag"
// @Success      201 {object} dto.ContactoTagResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/tags [post]
func (h *ContactosHandler) CrearTag(c *gin.Context) {
	var req dto.ContactoTagRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CrearTag(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarTags godoc
// @Summary      Listar los tags propios
// @Tags         contactos
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.ContactoTagResponse
// @Router       /v1/contactos/tags [get]
func (h *ContactosHandler) ListarTags(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarTags(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EliminarTag godoc
// @Summary      Eliminar un tag propio y sus vinculos
// @Tags         contactos
// @Security     BearerAuth
// @Param        id path string true "UUID del tag"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contactos/tags/{id} [delete]
func (h *ContactosHandler) EliminarTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	caller, ok := callerID(c)
	if !ok {
		return
	}
	if err := h.svc.EliminarTag(c.Request.Context(), caller, id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
