package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CierreRepository interface {
	Create(ctx context.Context, c *model.Cierre) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Cierre, error)
	Update(ctx context.Context, c *model.Cierre) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerIDs []uuid.UUID, rango *dto.Rango, limit int) ([]model.Cierre, error)
}

type cierreRepo struct{ db *gorm.DB }

func NewCierreRepository(db *gorm.DB) CierreRepository { return &cierreRepo{db: db} }

func (r *cierreRepo) Create(ctx context.Context, c *model.Cierre) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cierreRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Cierre, error) {
	var c model.Cierre
	err := r.db.WithContext(ctx).Preload("Captacion").First(&c, "id = ?", id).Error
	return &c, err
}

func (r *cierreRepo) Update(ctx context.Context, c *model.Cierre) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cierreRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Cierre{}, "id = ?", id).Error
}

// List returns cierres with the joined captacion, newest first, capped at
// limit rows. Listing pages at MaxCierres; the resumen fetch passes the wider
// MaxCierresResumen so annual totals cover the whole year.
func (r *cierreRepo) List(ctx context.Context, ownerIDs []uuid.UUID, rango *dto.Rango, limit int) ([]model.Cierre, error) {
	if err := guardScope(ownerIDs); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("user_id IN ?", ownerIDs)
	if rango != nil {
		q = q.Where("fecha >= ? AND fecha <= ?", rango.Desde, rango.Hasta)
	}

	var cierres []model.Cierre
	err := q.Preload("Captacion").
		Order("fecha DESC").
		Limit(limit).
		Find(&cierres).Error
	return cierres, err
}
