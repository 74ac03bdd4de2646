package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// ObjetivoRequest upserts the annual goal row of the caller for Anio.
// ObjetivoPuntas and ObjetivoComisionesAgente are derived server-side and
// ignored if sent. Pesos are monthly weight percentages, expected (but not
// required) to sum to 100.
type ObjetivoRequest struct {
	Anio int `json:"anio" validate:"required,min=2000,max=2100"`

	TicketPromedioCartera    decimal.Decimal `json:"ticket_promedio_cartera"    validate:"min=0"`
	ComisionAgentePorcentaje decimal.Decimal `json:"comision_agente_porcentaje" validate:"min=0,max=100"`
	ObjetivoFacturacionTotal decimal.Decimal `json:"objetivo_facturacion_total" validate:"min=0"`

	GastosPersonalesAnio decimal.Decimal `json:"gastos_personales_anio" validate:"min=0"`
	InversionNegocioAnio decimal.Decimal `json:"inversion_negocio_anio" validate:"min=0"`
	AhorroAnio           decimal.Decimal `json:"ahorro_anio"            validate:"min=0"`
	SuenosAnio           decimal.Decimal `json:"suenos_anio"            validate:"min=0"`

	Pesos PesosMensualesDTO `json:"pesos"`
}

type PesosMensualesDTO struct {
	Enero      decimal.Decimal `json:"enero"      validate:"min=0,max=100"`
	Febrero    decimal.Decimal `json:"febrero"    validate:"min=0,max=100"`
	Marzo      decimal.Decimal `json:"marzo"      validate:"min=0,max=100"`
	Abril      decimal.Decimal `json:"abril"      validate:"min=0,max=100"`
	Mayo       decimal.Decimal `json:"mayo"       validate:"min=0,max=100"`
	Junio      decimal.Decimal `json:"junio"      validate:"min=0,max=100"`
	Julio      decimal.Decimal `json:"julio"      validate:"min=0,max=100"`
	Agosto     decimal.Decimal `json:"agosto"     validate:"min=0,max=100"`
	Septiembre decimal.Decimal `json:"septiembre" validate:"min=0,max=100"`
	Octubre    decimal.Decimal `json:"octubre"    validate:"min=0,max=100"`
	Noviembre  decimal.Decimal `json:"noviembre"  validate:"min=0,max=100"`
	Diciembre  decimal.Decimal `json:"diciembre"  validate:"min=0,max=100"`
}

// EnOrden returns the weights in calendar order.
func (p PesosMensualesDTO) EnOrden() [12]decimal.Decimal {
	return [12]decimal.Decimal{
		p.Enero, p.Febrero, p.Marzo, p.Abril, p.Mayo, p.Junio,
		p.Julio, p.Agosto, p.Septiembre, p.Octubre, p.Noviembre, p.Diciembre,
	}
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ObjetivoResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Anio   int    `json:"anio"`

	TicketPromedioCartera    decimal.Decimal `json:"ticket_promedio_cartera"`
	ComisionAgentePorcentaje decimal.Decimal `json:"comision_agente_porcentaje"`
	ObjetivoPuntas           int             `json:"objetivo_puntas"`
	ObjetivoFacturacionTotal decimal.Decimal `json:"objetivo_facturacion_total"`
	ObjetivoComisionesAgente decimal.Decimal `json:"objetivo_comisiones_agente"`

	GastosPersonalesAnio decimal.Decimal `json:"gastos_personales_anio"`
	InversionNegocioAnio decimal.Decimal `json:"inversion_negocio_anio"`
	AhorroAnio           decimal.Decimal `json:"ahorro_anio"`
	SuenosAnio           decimal.Decimal `json:"suenos_anio"`

	Pesos PesosMensualesDTO `json:"pesos"`
}

// SubObjetivoMes is the proportional allocation of the annual targets to one month.
type SubObjetivoMes struct {
	Mes         int             `json:"mes"` // 1-12
	Nombre      string          `json:"nombre"`
	Peso        decimal.Decimal `json:"peso"`
	Puntas      decimal.Decimal `json:"puntas"`
	Facturacion decimal.Decimal `json:"facturacion"`
	Comisiones  decimal.Decimal `json:"comisiones"`
}

// SubObjetivoTrimestre groups three consecutive months (Q1 = Ene-Mar, etc.).
type SubObjetivoTrimestre struct {
	Trimestre   int             `json:"trimestre"` // 1-4
	Peso        decimal.Decimal `json:"peso"`
	Puntas      decimal.Decimal `json:"puntas"`
	Facturacion decimal.Decimal `json:"facturacion"`
	Comisiones  decimal.Decimal `json:"comisiones"`
}

type SubObjetivosResponse struct {
	Anio       int                    `json:"anio"`
	Mensuales  []SubObjetivoMes       `json:"mensuales"`  // always 12 entries
	Trimestres []SubObjetivoTrimestre `json:"trimestres"` // always 4 entries
}

type ObjetivoListResponse struct {
	Data  []ObjetivoResponse `json:"data"`
	Total int                `json:"total"`
}
