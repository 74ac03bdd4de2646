package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TrackeoRequest struct {
	Fecha string `json:"fecha" validate:"required"`

	Llamadas         int             `json:"llamadas"          validate:"min=0"`
	R1               int             `json:"r1"                validate:"min=0"`
	Expertise        int             `json:"expertise"         validate:"min=0"`
	Captaciones      int             `json:"captaciones"       validate:"min=0"`
	CaptacionesValor decimal.Decimal `json:"captaciones_valor" validate:"min=0"`
	Busquedas        int             `json:"busquedas"         validate:"min=0"`
	Consultas        int             `json:"consultas"         validate:"min=0"`
	Visitas          int             `json:"visitas"           validate:"min=0"`
	R2               int             `json:"r2"                validate:"min=0"`

	ReservasPuntas      int             `json:"reservas_puntas"       validate:"min=0"`
	ReservasValorOferta decimal.Decimal `json:"reservas_valor_oferta" validate:"min=0"`

	DevolucionesPuntas     int             `json:"devoluciones_puntas"     validate:"min=0"`
	DevolucionesHonorarios decimal.Decimal `json:"devoluciones_honorarios" validate:"min=0"`

	CierresOperacionesPuntas int             `json:"cierres_operaciones_puntas" validate:"min=0"`
	CierresHonorarios        decimal.Decimal `json:"cierres_honorarios"         validate:"min=0"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TrackeoResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Fecha  string `json:"fecha"`

	Llamadas         int             `json:"llamadas"`
	R1               int             `json:"r1"`
	Expertise        int             `json:"expertise"`
	Captaciones      int             `json:"captaciones"`
	CaptacionesValor decimal.Decimal `json:"captaciones_valor"`
	Busquedas        int             `json:"busquedas"`
	Consultas        int             `json:"consultas"`
	Visitas          int             `json:"visitas"`
	R2               int             `json:"r2"`

	ReservasPuntas      int             `json:"reservas_puntas"`
	ReservasValorOferta decimal.Decimal `json:"reservas_valor_oferta"`

	DevolucionesPuntas     int             `json:"devoluciones_puntas"`
	DevolucionesHonorarios decimal.Decimal `json:"devoluciones_honorarios"`

	CierresOperacionesPuntas int             `json:"cierres_operaciones_puntas"`
	CierresHonorarios        decimal.Decimal `json:"cierres_honorarios"`
}

type TrackeoListResponse struct {
	Data  []TrackeoResponse `json:"data"`
	Total int               `json:"total"`
}
