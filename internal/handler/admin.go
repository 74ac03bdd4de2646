package handler

import (
	"net/http"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct{ svc service.AdminService }

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// ListarPerfiles godoc
// @Summary      Listar todos los perfiles
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.PerfilListResponse
// @Router       /v1/admin/perfiles [get]
func (h *AdminHandler) ListarPerfiles(c *gin.Context) {
	resp, err := h.svc.ListarPerfiles(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CambiarRol godoc
// @Summary      Cambiar el rol de un perfil
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string                true "UUID del perfil"
// @Param        body body dto.CambiarRolRequest true "Nuevo rol"
// @Success      200 {object} dto.PerfilResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/admin/perfiles/{id}/rol [put]
func (h *AdminHandler) CambiarRol(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CambiarRolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CambiarRol(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAsignaciones godoc
// @Summary      Listar asignaciones encargado-vendedor
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.AsignacionListResponse
// @Router       /v1/admin/asignaciones [get]
func (h *AdminHandler) ListarAsignaciones(c *gin.Context) {
	resp, err := h.svc.ListarAsignaciones(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CrearAsignacion godoc
// @Summary      Asignar un vendedor a un encargado
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AsignacionRequest true "Par encargado-vendedor"
// @Success      201 {object} dto.AsignacionResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/admin/asignaciones [post]
func (h *AdminHandler) CrearAsignacion(c *gin.Context) {
	var req dto.AsignacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearAsignacion(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// EliminarAsignacion godoc
// @Summary      Quitar un vendedor de un encargado
// @Tags         admin
// @Security     BearerAuth
// @Param        manager_id  query string true "UUID del encargado"
// @Param        vendedor_id query string true "UUID del vendedor"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/admin/asignaciones [delete]
func (h *AdminHandler) EliminarAsignacion(c *gin.Context) {
	managerID, err := uuid.Parse(c.Query("manager_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("manager_id invalido"))
		return
	}
	vendedorID, err := uuid.Parse(c.Query("vendedor_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("vendedor_id invalido"))
		return
	}
	if err := h.svc.EliminarAsignacion(c.Request.Context(), managerID, vendedorID); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
