package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ObjetivoRepository interface {
	Create(ctx context.Context, o *model.Objetivo) error
	Update(ctx context.Context, o *model.Objetivo) error
	FindByUserAnio(ctx context.Context, userID uuid.UUID, anio int) (*model.Objetivo, error)
	List(ctx context.Context, ownerIDs []uuid.UUID, anio int) ([]model.Objetivo, error)
}

type objetivoRepo struct{ db *gorm.DB }

func NewObjetivoRepository(db *gorm.DB) ObjetivoRepository { return &objetivoRepo{db: db} }

func (r *objetivoRepo) Create(ctx context.Context, o *model.Objetivo) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *objetivoRepo) Update(ctx context.Context, o *model.Objetivo) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *objetivoRepo) FindByUserAnio(ctx context.Context, userID uuid.UUID, anio int) (*model.Objetivo, error) {
	var o model.Objetivo
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND anio = ?", userID, anio).
		First(&o).Error
	return &o, err
}

// List returns objetivos newest-year first; anio = 0 lists every year. The
// cap scales with the owner set so a team query still gets one row per
// vendedor per year.
func (r *objetivoRepo) List(ctx context.Context, ownerIDs []uuid.UUID, anio int) ([]model.Objetivo, error) {
	if err := guardScope(ownerIDs); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("user_id IN ?", ownerIDs)
	if anio != 0 {
		q = q.Where("anio = ?", anio)
	}

	var objetivos []model.Objetivo
	err := q.Order("anio DESC").Limit(MaxObjetivos * len(ownerIDs)).Find(&objetivos).Error
	return objetivos, err
}
