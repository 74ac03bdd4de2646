package dto

// Machine-to-machine API bodies (POST /api/agent/*). Identity travels in the
// body next to the x-agent-secret header; filters mirror the session API.

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AgentCaptacionesRequest struct {
	UserID    string `json:"userId"    validate:"required,uuid"`
	Operacion string `json:"operacion" validate:"omitempty,oneof=Venta Alquiler Temporario"`
	ConCierre bool   `json:"conCierre"`
	SinCierre bool   `json:"sinCierre"`
	Limit     int    `json:"limit"     validate:"omitempty,min=1,max=500"`
}

type AgentCierresRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	FechaFilter
}

type AgentTrackeoRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	FechaFilter
}

type AgentObjetivosRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Anio   int    `json:"anio"   validate:"omitempty,min=2000,max=2100"`
}

type AgentResumenRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	Anio   int    `json:"anio"   validate:"omitempty,min=2000,max=2100"`
}

// Manager variants: ManagerID is the caller, VendedorID optionally narrows the
// resolved vendor set to one assigned vendedor (fails closed when not assigned).

type AgentManagerCaptacionesRequest struct {
	ManagerID  string `json:"managerId"  validate:"required,uuid"`
	VendedorID string `json:"vendedorId" validate:"omitempty,uuid"`
	Operacion  string `json:"operacion"  validate:"omitempty,oneof=Venta Alquiler Temporario"`
	ConCierre  bool   `json:"conCierre"`
	SinCierre  bool   `json:"sinCierre"`
	Limit      int    `json:"limit"      validate:"omitempty,min=1,max=500"`
}

type AgentManagerCierresRequest struct {
	ManagerID  string `json:"managerId"  validate:"required,uuid"`
	VendedorID string `json:"vendedorId" validate:"omitempty,uuid"`
	FechaFilter
}

type AgentManagerTrackeoRequest struct {
	ManagerID  string `json:"managerId"  validate:"required,uuid"`
	VendedorID string `json:"vendedorId" validate:"omitempty,uuid"`
	FechaFilter
}

type AgentManagerObjetivosRequest struct {
	ManagerID  string `json:"managerId"  validate:"required,uuid"`
	VendedorID string `json:"vendedorId" validate:"omitempty,uuid"`
	Anio       int    `json:"anio"       validate:"omitempty,min=2000,max=2100"`
}

type AgentManagerVendedoresRequest struct {
	ManagerID string `json:"managerId" validate:"required,uuid"`
}

type AgentManagerResumenRequest struct {
	ManagerID  string `json:"managerId"  validate:"required,uuid"`
	VendedorID string `json:"vendedorId" validate:"omitempty,uuid"`
	Anio       int    `json:"anio"       validate:"omitempty,min=2000,max=2100"`
}

// ─── Response envelope ───────────────────────────────────────────────────────

type AgentMeta struct {
	Count int `json:"count"`
}

// AgentResponse is the machine API success envelope. Errors use
// apierror.AgentError ({ok:false, error}).
type AgentResponse struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
	Meta AgentMeta   `json:"meta"`
}

func NewAgentResponse(data interface{}, count int) AgentResponse {
	return AgentResponse{OK: true, Data: data, Meta: AgentMeta{Count: count}}
}
