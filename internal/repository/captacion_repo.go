package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CaptacionRepository interface {
	Create(ctx context.Context, c *model.Captacion) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Captacion, error)
	Update(ctx context.Context, c *model.Captacion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerIDs []uuid.UUID, filter dto.CaptacionFilter) ([]model.Captacion, error)
}

type captacionRepo struct{ db *gorm.DB }

func NewCaptacionRepository(db *gorm.DB) CaptacionRepository { return &captacionRepo{db: db} }

func (r *captacionRepo) Create(ctx context.Context, c *model.Captacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *captacionRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Captacion, error) {
	var c model.Captacion
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return &c, err
}

func (r *captacionRepo) Update(ctx context.Context, c *model.Captacion) error {
	return r.db.WithContext(ctx).Save(c).Error
}

// Delete removes the captacion; dependent cierres go with it via the FK
// cascade declared on the model.
func (r *captacionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Cierres").Delete(&model.Captacion{ID: id}).Error
}

func (r *captacionRepo) List(ctx context.Context, ownerIDs []uuid.UUID, filter dto.CaptacionFilter) ([]model.Captacion, error) {
	if err := guardScope(ownerIDs); err != nil {
		return nil, err
	}

	lim := filter.Limit
	if lim <= 0 {
		lim = 200
	}
	if lim > MaxCaptaciones {
		lim = MaxCaptaciones
	}

	q := r.db.WithContext(ctx).Where("user_id IN ?", ownerIDs)

	switch filter.Operacion {
	case "Venta", "Alquiler", "Temporario":
		q = q.Where("operacion = ?", filter.Operacion)
	}
	if filter.ConCierre {
		q = q.Where("fecha_cierre IS NOT NULL")
	}
	if filter.SinCierre {
		q = q.Where("fecha_cierre IS NULL")
	}

	var captaciones []model.Captacion
	err := q.Order("fecha_alta DESC").Limit(lim).Find(&captaciones).Error
	return captaciones, err
}
