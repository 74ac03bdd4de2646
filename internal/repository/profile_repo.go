package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(ctx context.Context, p *model.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error)
	FindByEmail(ctx context.Context, email string) (*model.Profile, error)
	FindRoleByID(ctx context.Context, id uuid.UUID) (string, error)
	List(ctx context.Context) ([]model.Profile, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error)
	UpdateRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role string) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type profileRepo struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) ProfileRepository { return &profileRepo{db: db} }

func (r *profileRepo) DB() *gorm.DB { return r.db }

func (r *profileRepo) Create(ctx context.Context, p *model.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *profileRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *profileRepo) FindByEmail(ctx context.Context, email string) (*model.Profile, error) {
	var p model.Profile
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error
	return &p, err
}

func (r *profileRepo) FindRoleByID(ctx context.Context, id uuid.UUID) (string, error) {
	var role string
	err := r.db.WithContext(ctx).Model(&model.Profile{}).
		Select("role").Where("id = ?", id).Scan(&role).Error
	if err != nil {
		return "", err
	}
	if role == "" {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

func (r *profileRepo) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Profile, error) {
	if err := guardScope(ids); err != nil {
		return nil, err
	}
	var profiles []model.Profile
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&profiles).Error
	return profiles, err
}

func (r *profileRepo) UpdateRole(ctx context.Context, tx *gorm.DB, id uuid.UUID, role string) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", id).Update("role", role).Error
}
