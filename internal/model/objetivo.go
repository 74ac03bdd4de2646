package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Objetivo holds the annual goals of a vendedor: one row per user per year.
// The twelve peso_* columns distribute the annual targets across months; they
// are expected to sum to 100 but that is deliberately not enforced as a hard
// constraint (a lopsided distribution is the user's problem, not an error).
type Objetivo struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_objetivo_user_anio"`
	Anio   int       `gorm:"not null;uniqueIndex:idx_objetivo_user_anio"`

	TicketPromedioCartera    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ComisionAgentePorcentaje decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	// ObjetivoPuntas and ObjetivoComisionesAgente are derived server-side from
	// facturacion, ticket promedio and comision pct on every save.
	ObjetivoPuntas           int             `gorm:"not null;default:0"`
	ObjetivoFacturacionTotal decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ObjetivoComisionesAgente decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	GastosPersonalesAnio decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	InversionNegocioAnio decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	AhorroAnio           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	SuenosAnio           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	PesoEnero      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoFebrero    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoMarzo      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoAbril      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoMayo       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoJunio      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoJulio      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoAgosto     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoSeptiembre decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoOctubre    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoNoviembre  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PesoDiciembre  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PesosMensuales returns the twelve monthly weights in calendar order.
func (o *Objetivo) PesosMensuales() [12]decimal.Decimal {
	return [12]decimal.Decimal{
		o.PesoEnero, o.PesoFebrero, o.PesoMarzo, o.PesoAbril,
		o.PesoMayo, o.PesoJunio, o.PesoJulio, o.PesoAgosto,
		o.PesoSeptiembre, o.PesoOctubre, o.PesoNoviembre, o.PesoDiciembre,
	}
}
