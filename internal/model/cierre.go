package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cierre is a realized transaction against a captacion.
// Honorarios and comision are NOT stored: they are derived at presentation time
// from valor_cierre and the two percentages, so edits never leave stale money
// fields behind.
type Cierre struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	CaptacionID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Fecha                time.Time       `gorm:"type:date;not null;index"`
	ValorCierre          decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PorcentajeHonorarios decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	PorcentajeAgente     decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	// Puntas counts the transaction sides credited to the agent (0-4 by convention)
	Puntas    int `gorm:"not null;default:0"`
	Notas     *string
	CreatedAt time.Time

	Captacion *Captacion `gorm:"foreignKey:CaptacionID"`
}
