package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Captacion represents a property (or client search) under the agent's
// representation. Operacion: "Venta" | "Alquiler" | "Temporario".
// Moneda: "USD" | "ARS".
//
// Lifecycle is tracked with two independent nullable dates: FechaBaja
// (deactivated) and FechaCierre (closed). A captacion is "activa" only when
// both are null. Deleting a captacion cascades to its cierres.
type Captacion struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	FechaAlta    time.Time `gorm:"type:date;not null;index"`
	Autorizacion *string
	Direccion    string `gorm:"not null"`
	Barrio       *string
	Ciudad       *string
	Vence        *time.Time `gorm:"type:date"`
	Adenda       *string
	Operacion    string     `gorm:"type:varchar(20);not null;index"`
	Moneda       string     `gorm:"type:varchar(10);not null;default:'USD'"`
	FechaBaja    *time.Time `gorm:"type:date"`

	ValorPublicado decimal.Decimal  `gorm:"type:decimal(14,2);not null;default:0"`
	Oferta         *decimal.Decimal `gorm:"type:decimal(14,2)"`
	// PorcentajeDiferenciaPrecio is derived from (oferta - publicado) / publicado * 100
	PorcentajeDiferenciaPrecio *decimal.Decimal `gorm:"type:decimal(6,1)"`

	FechaReserva      *time.Time `gorm:"type:date"`
	FechaAceptacion   *time.Time `gorm:"type:date"`
	FechaNotificacion *time.Time `gorm:"type:date"`
	FechaRefuerzo     *time.Time `gorm:"type:date"`
	FechaCierre       *time.Time `gorm:"type:date"`

	HonorariosPorcentaje1 *decimal.Decimal `gorm:"type:decimal(5,2)"`
	HonorariosPorcentaje2 *decimal.Decimal `gorm:"type:decimal(5,2)"`
	// HonorariosTotales is derived from oferta * (pct1 + pct2) / 100
	HonorariosTotales        *decimal.Decimal `gorm:"type:decimal(14,2)"`
	ComisionAgentePorcentaje *decimal.Decimal `gorm:"type:decimal(5,2)"`
	// ComisionAgenteMonto is derived from honorarios_totales * pct / 100
	ComisionAgenteMonto *decimal.Decimal `gorm:"type:decimal(14,2)"`

	MillasViajes  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Observaciones *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Cierres []Cierre `gorm:"foreignKey:CaptacionID;constraint:OnDelete:CASCADE"`
}
