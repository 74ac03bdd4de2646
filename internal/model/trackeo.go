package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trackeo is the daily self-reported activity log: one row per user per
// calendar date, enforced by a composite unique index.
type Trackeo struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trackeo_user_fecha"`
	Fecha  time.Time `gorm:"type:date;not null;uniqueIndex:idx_trackeo_user_fecha"`

	Llamadas                 int             `gorm:"not null;default:0"`
	R1                       int             `gorm:"not null;default:0"`
	Expertise                int             `gorm:"not null;default:0"`
	Captaciones              int             `gorm:"not null;default:0"`
	CaptacionesValor         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Busquedas                int             `gorm:"not null;default:0"`
	Consultas                int             `gorm:"not null;default:0"`
	Visitas                  int             `gorm:"not null;default:0"`
	R2                       int             `gorm:"not null;default:0"`
	ReservasPuntas           int             `gorm:"not null;default:0"`
	ReservasValorOferta      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	DevolucionesPuntas       int             `gorm:"not null;default:0"`
	DevolucionesHonorarios   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CierresOperacionesPuntas int             `gorm:"not null;default:0"`
	CierresHonorarios        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	CreatedAt time.Time
}
