package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CaptacionRequest is shared by create (POST) and update (PUT): the update
// replaces every field, matching the form-submit semantics of the web client.
type CaptacionRequest struct {
	FechaAlta    string  `json:"fecha_alta"   validate:"required"`
	Autorizacion *string `json:"autorizacion"`
	Direccion    string  `json:"direccion"    validate:"required,min=2"`
	Barrio       *string `json:"barrio"`
	Ciudad       *string `json:"ciudad"`
	Vence        *string `json:"vence"`
	Adenda       *string `json:"adenda"`
	Operacion    string  `json:"operacion"    validate:"required,oneof=Venta Alquiler Temporario"`
	Moneda       string  `json:"moneda"       validate:"omitempty,oneof=USD ARS"`

	ValorPublicado decimal.Decimal  `json:"valor_publicado" validate:"min=0"`
	Oferta         *decimal.Decimal `json:"oferta"`

	FechaBaja         *string `json:"fecha_baja"`
	FechaReserva      *string `json:"fecha_reserva"`
	FechaAceptacion   *string `json:"fecha_aceptacion"`
	FechaNotificacion *string `json:"fecha_notificacion"`
	FechaRefuerzo     *string `json:"fecha_refuerzo"`
	FechaCierre       *string `json:"fecha_cierre"`

	HonorariosPorcentaje1    *decimal.Decimal `json:"honorarios_porcentaje_1"`
	HonorariosPorcentaje2    *decimal.Decimal `json:"honorarios_porcentaje_2"`
	ComisionAgentePorcentaje *decimal.Decimal `json:"comision_agente_porcentaje"`

	MillasViajes  *decimal.Decimal `json:"millas_viajes"`
	Observaciones *string          `json:"observaciones"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CaptacionResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	FechaAlta    string  `json:"fecha_alta"`
	Autorizacion *string `json:"autorizacion"`
	Direccion    string  `json:"direccion"`
	Barrio       *string `json:"barrio"`
	Ciudad       *string `json:"ciudad"`
	Vence        *string `json:"vence"`
	Adenda       *string `json:"adenda"`
	Operacion    string  `json:"operacion"`
	Moneda       string  `json:"moneda"`

	ValorPublicado decimal.Decimal  `json:"valor_publicado"`
	Oferta         *decimal.Decimal `json:"oferta"`
	// PorcentajeDiferenciaPrecio, HonorariosTotales and ComisionAgenteMonto are
	// recomputed server-side on every save, never taken from the client.
	PorcentajeDiferenciaPrecio *decimal.Decimal `json:"porcentaje_diferencia_precio"`

	FechaBaja         *string `json:"fecha_baja"`
	FechaReserva      *string `json:"fecha_reserva"`
	FechaAceptacion   *string `json:"fecha_aceptacion"`
	FechaNotificacion *string `json:"fecha_notificacion"`
	FechaRefuerzo     *string `json:"fecha_refuerzo"`
	FechaCierre       *string `json:"fecha_cierre"`

	HonorariosPorcentaje1    *decimal.Decimal `json:"honorarios_porcentaje_1"`
	HonorariosPorcentaje2    *decimal.Decimal `json:"honorarios_porcentaje_2"`
	HonorariosTotales        *decimal.Decimal `json:"honorarios_totales"`
	ComisionAgentePorcentaje *decimal.Decimal `json:"comision_agente_porcentaje"`
	ComisionAgenteMonto      *decimal.Decimal `json:"comision_agente_monto"`

	MillasViajes  *decimal.Decimal `json:"millas_viajes"`
	Observaciones *string          `json:"observaciones"`
	CreatedAt     string           `json:"created_at"`
}

type CaptacionListResponse struct {
	Data  []CaptacionResponse `json:"data"`
	Total int                 `json:"total"`
}
