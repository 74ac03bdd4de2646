package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ManagerRepository interface {
	ListVendedorIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error)
	ListAssignments(ctx context.Context) ([]model.ManagerVendedor, error)
	CreateAssignment(ctx context.Context, a *model.ManagerVendedor) error
	DeleteAssignment(ctx context.Context, managerID, vendedorID uuid.UUID) error
	DeleteAssignmentsByManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID) error
}

type managerRepo struct{ db *gorm.DB }

func NewManagerRepository(db *gorm.DB) ManagerRepository { return &managerRepo{db: db} }

func (r *managerRepo) ListVendedorIDs(ctx context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&model.ManagerVendedor{}).
		Where("manager_id = ?", managerID).
		Pluck("vendedor_id", &ids).Error
	return ids, err
}

func (r *managerRepo) ListAssignments(ctx context.Context) ([]model.ManagerVendedor, error) {
	var edges []model.ManagerVendedor
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&edges).Error
	return edges, err
}

func (r *managerRepo) CreateAssignment(ctx context.Context, a *model.ManagerVendedor) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *managerRepo) DeleteAssignment(ctx context.Context, managerID, vendedorID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("manager_id = ? AND vendedor_id = ?", managerID, vendedorID).
		Delete(&model.ManagerVendedor{}).Error
}

// DeleteAssignmentsByManager removes every edge of a manager. Used inside the
// role-demotion transaction so a demoted encargado keeps no visibility.
func (r *managerRepo) DeleteAssignmentsByManager(ctx context.Context, tx *gorm.DB, managerID uuid.UUID) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.WithContext(ctx).
		Where("manager_id = ?", managerID).
		Delete(&model.ManagerVendedor{}).Error
}
