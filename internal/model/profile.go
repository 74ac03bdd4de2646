package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile stores system users with role-based access.
// Role: "admin" | "vendedor" | "encargado"
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FullName     *string
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'vendedor'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ManagerVendedor is the assignment edge that defines an encargado's visibility
// scope. Created and deleted only by admins.
type ManagerVendedor struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ManagerID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_vendedor"`
	VendedorID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_manager_vendedor"`
	CreatedAt  time.Time
}
