package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTrackeoDuplicado signals a second row for the same (user, fecha) pair.
var ErrTrackeoDuplicado = errors.New("ya existe un registro de trackeo para esa fecha")

type TrackeoRepository interface {
	Create(ctx context.Context, t *model.Trackeo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trackeo, error)
	Update(ctx context.Context, t *model.Trackeo) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerIDs []uuid.UUID, rango *dto.Rango) ([]model.Trackeo, error)
}

type trackeoRepo struct{ db *gorm.DB }

func NewTrackeoRepository(db *gorm.DB) TrackeoRepository { return &trackeoRepo{db: db} }

func (r *trackeoRepo) Create(ctx context.Context, t *model.Trackeo) error {
	err := r.db.WithContext(ctx).Create(t).Error
	if err != nil && isUniqueViolation(err) {
		return ErrTrackeoDuplicado
	}
	return err
}

func (r *trackeoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Trackeo, error) {
	var t model.Trackeo
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *trackeoRepo) Update(ctx context.Context, t *model.Trackeo) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *trackeoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Trackeo{}, "id = ?", id).Error
}

func (r *trackeoRepo) List(ctx context.Context, ownerIDs []uuid.UUID, rango *dto.Rango) ([]model.Trackeo, error) {
	if err := guardScope(ownerIDs); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("user_id IN ?", ownerIDs)
	if rango != nil {
		q = q.Where("fecha >= ? AND fecha <= ?", rango.Desde, rango.Hasta)
	}

	var rows []model.Trackeo
	err := q.Order("fecha DESC").Limit(MaxTrackeo).Find(&rows).Error
	return rows, err
}

// isUniqueViolation detects a postgres unique-index violation without tying
// the repository to the driver's error types.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "23505")
}
