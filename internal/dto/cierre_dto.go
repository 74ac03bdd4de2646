package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CierreRequest struct {
	CaptacionID          string          `json:"captacion_id"          validate:"required,uuid"`
	Fecha                string          `json:"fecha"                 validate:"required"`
	ValorCierre          decimal.Decimal `json:"valor_cierre"          validate:"required,min=0"`
	PorcentajeHonorarios decimal.Decimal `json:"porcentaje_honorarios" validate:"min=0,max=100"`
	PorcentajeAgente     decimal.Decimal `json:"porcentaje_agente"     validate:"min=0,max=100"`
	Puntas               int             `json:"puntas"                validate:"min=0,max=4"`
	Notas                *string         `json:"notas"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// CierreResponse carries the derived money fields. Honorarios and comision are
// never stored; Acumulado is a scan-sum over the current filtered view in
// ascending date order, so it only makes sense within one list response.
type CierreResponse struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"user_id"`
	CaptacionID          string          `json:"captacion_id"`
	Fecha                string          `json:"fecha"`
	ValorCierre          decimal.Decimal `json:"valor_cierre"`
	PorcentajeHonorarios decimal.Decimal `json:"porcentaje_honorarios"`
	PorcentajeAgente     decimal.Decimal `json:"porcentaje_agente"`
	Puntas               int             `json:"puntas"`
	Notas                *string         `json:"notas"`

	HonorariosTotales decimal.Decimal  `json:"honorarios_totales"`
	ComisionAgente    decimal.Decimal  `json:"comision_agente"`
	Acumulado         *decimal.Decimal `json:"acumulado,omitempty"`

	Captacion *CierreCaptacionResponse `json:"captacion,omitempty"`
}

// CierreCaptacionResponse is the listing summary embedded in each cierre row.
type CierreCaptacionResponse struct {
	ID        string `json:"id"`
	Direccion string `json:"direccion"`
	Operacion string `json:"operacion"`
	Moneda    string `json:"moneda"`
}

type CierreListResponse struct {
	Data  []CierreResponse `json:"data"`
	Total int              `json:"total"`
}
