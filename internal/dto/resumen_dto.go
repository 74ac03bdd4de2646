package dto

import "github.com/shopspring/decimal"

// ─── Annual summary (single vendedor) ────────────────────────────────────────

// MesBucket is one of the 12 fixed monthly buckets of the annual breakdown.
// Buckets are zero-filled so charts always get a full axis.
type MesBucket struct {
	Mes          int             `json:"mes"` // 1-12
	Nombre       string          `json:"nombre"`
	Cierres      int             `json:"cierres"`
	Puntas       int             `json:"puntas"`
	ValorCerrado decimal.Decimal `json:"valor_cerrado"`
	Honorarios   decimal.Decimal `json:"honorarios"`
	Comisiones   decimal.Decimal `json:"comisiones"`
}

// CaptacionesResumen is the portfolio partition. Activa means both fecha_baja
// and fecha_cierre are null; Cerradas means fecha_cierre is set regardless of
// baja; Total is unconditional, so the three counts are not a partition of it.
type CaptacionesResumen struct {
	Total    int `json:"total"`
	Activas  int `json:"activas"`
	Cerradas int `json:"cerradas"`
}

type TrackeoResumen struct {
	DiasRegistrados   int             `json:"dias_registrados"`
	Llamadas          int             `json:"llamadas"`
	Visitas           int             `json:"visitas"`
	Consultas         int             `json:"consultas"`
	Busquedas         int             `json:"busquedas"`
	Captaciones       int             `json:"captaciones"`
	ReservasPuntas    int             `json:"reservas_puntas"`
	CierresPuntas     int             `json:"cierres_puntas"`
	CierresHonorarios decimal.Decimal `json:"cierres_honorarios"`
}

// ObjetivoAvance compares actuals against the annual goal. Attainment
// percentages are nil when the corresponding target is zero or there is no
// goal row: "sin objetivo" is not 0%.
type ObjetivoAvance struct {
	Anio                     int              `json:"anio"`
	ObjetivoPuntas           int              `json:"objetivo_puntas"`
	ObjetivoFacturacionTotal decimal.Decimal  `json:"objetivo_facturacion_total"`
	ObjetivoComisionesAgente decimal.Decimal  `json:"objetivo_comisiones_agente"`
	AvancePuntasPct          *decimal.Decimal `json:"avance_puntas_pct"`
	AvanceFacturacionPct     *decimal.Decimal `json:"avance_facturacion_pct"`
	AvanceComisionesPct      *decimal.Decimal `json:"avance_comisiones_pct"`
}

type ResumenAnualResponse struct {
	UserID string `json:"user_id"`
	Anio   int    `json:"anio"`

	TotalCierres    int             `json:"total_cierres"`
	TotalPuntas     int             `json:"total_puntas"`
	ValorCerrado    decimal.Decimal `json:"valor_cerrado"`
	HonorariosTotal decimal.Decimal `json:"honorarios_total"`
	ComisionesTotal decimal.Decimal `json:"comisiones_total"`

	Captaciones CaptacionesResumen `json:"captaciones"`
	Trackeo     TrackeoResumen     `json:"trackeo"`
	Objetivo    *ObjetivoAvance    `json:"objetivo"`

	PorMes []MesBucket `json:"por_mes"` // always 12 entries
}

// ─── Team summary (manager scope) ────────────────────────────────────────────

type VendedorResumen struct {
	VendedorID string  `json:"vendedor_id"`
	Nombre     *string `json:"nombre"`
	Email      string  `json:"email"`

	ResumenAnualResponse
}

type ResumenEquipoResponse struct {
	ManagerID  string            `json:"manager_id"`
	Anio       int               `json:"anio"`
	Vendedores []VendedorResumen `json:"vendedores"`

	// Equipo holds the team totals: per-vendor metrics summed, monthly buckets
	// merged bucket-by-bucket.
	Equipo ResumenAnualResponse `json:"equipo"`
}
