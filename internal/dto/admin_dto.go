package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CambiarRolRequest struct {
	Role string `json:"role" validate:"required,oneof=admin vendedor encargado"`
}

type AsignacionRequest struct {
	ManagerID  string `json:"manager_id"  validate:"required,uuid"`
	VendedorID string `json:"vendedor_id" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AsignacionResponse struct {
	ID         string `json:"id"`
	ManagerID  string `json:"manager_id"`
	VendedorID string `json:"vendedor_id"`
	CreatedAt  string `json:"created_at"`
}

type PerfilListResponse struct {
	Data  []PerfilResponse `json:"data"`
	Total int              `json:"total"`
}

type AsignacionListResponse struct {
	Data  []AsignacionResponse `json:"data"`
	Total int                  `json:"total"`
}
