package model

import (
	"time"

	"github.com/google/uuid"
)

// Contacto is a lead/client record.
// Estado: "Nuevo" | "Contactado" | "En reunion" | "Negociacion" | "Cerrado" | "Perdido"
// Any estado is reachable from any other — there is no enforced transition graph.
type Contacto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Nombre    string    `gorm:"not null"`
	Apellido  *string
	Telefono  string `gorm:"not null"`
	Email     *string
	Ubicacion *string
	Estado    string  `gorm:"type:varchar(20);not null;default:'Nuevo';index"`
	TipoCliente *string `gorm:"type:varchar(30)"`
	FormaPago   *string `gorm:"type:varchar(40)"`
	Motivacion  []string `gorm:"type:jsonb;serializer:json"`
	MotivacionOtro *string
	Notas          *string

	SeguimientoFecha        *time.Time `gorm:"type:date;index"`
	SeguimientoRecordatorio bool       `gorm:"not null;default:false"`
	SeguimientoPrioridad    string     `gorm:"type:varchar(10);not null;default:'Media'"`
	SeguimientoHecho        bool       `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Tags        []ContactoTag `gorm:"many2many:contacto_tag_links;constraint:OnDelete:CASCADE"`
	Captaciones []Captacion   `gorm:"many2many:contacto_propiedades;constraint:OnDelete:CASCADE"`
}

// ContactoTag is a user-owned label, linked many-to-many to contactos.
type ContactoTag struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tag_user_nombre"`
	Nombre    string    `gorm:"not null;uniqueIndex:idx_tag_user_nombre"`
	CreatedAt time.Time
}
