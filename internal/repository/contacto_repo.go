package repository

import (
	"context"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactoRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Contacto) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contacto, error)
	Update(ctx context.Context, tx *gorm.DB, c *model.Contacto) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, ownerIDs []uuid.UUID, filter dto.ContactoFilter) ([]model.Contacto, error)
	ListConSeguimientoVencido(ctx context.Context, hasta time.Time) ([]model.Contacto, error)

	ReplaceTags(ctx context.Context, tx *gorm.DB, c *model.Contacto, tags []model.ContactoTag) error
	ReplaceCaptaciones(ctx context.Context, tx *gorm.DB, c *model.Contacto, caps []model.Captacion) error

	CreateTag(ctx context.Context, t *model.ContactoTag) error
	ListTags(ctx context.Context, userID uuid.UUID) ([]model.ContactoTag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type contactoRepo struct{ db *gorm.DB }

func NewContactoRepository(db *gorm.DB) ContactoRepository { return &contactoRepo{db: db} }

func (r *contactoRepo) DB() *gorm.DB { return r.db }

func (r *contactoRepo) withTx(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *contactoRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Contacto) error {
	// Omit associations: tag/captacion links are managed explicitly via the
	// Replace* methods inside the same transaction.
	return r.withTx(tx).WithContext(ctx).Omit("Tags", "Captaciones").Create(c).Error
}

func (r *contactoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Contacto, error) {
	var c model.Contacto
	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Captaciones").
		First(&c, "id = ?", id).Error
	return &c, err
}

func (r *contactoRepo) Update(ctx context.Context, tx *gorm.DB, c *model.Contacto) error {
	return r.withTx(tx).WithContext(ctx).Omit("Tags", "Captaciones").Save(c).Error
}

func (r *contactoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Select("Tags", "Captaciones").
		Delete(&model.Contacto{ID: id}).Error
}

func (r *contactoRepo) List(ctx context.Context, ownerIDs []uuid.UUID, filter dto.ContactoFilter) ([]model.Contacto, error) {
	if err := guardScope(ownerIDs); err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).Where("user_id IN ?", ownerIDs)
	if filter.Estado != "" {
		q = q.Where("estado = ?", filter.Estado)
	}
	if filter.TagID != "" {
		q = q.Joins("JOIN contacto_tag_links l ON l.contacto_id = contactos.id").
			Where("l.contacto_tag_id = ?", filter.TagID)
	}

	var contactos []model.Contacto
	err := q.Preload("Tags").Preload("Captaciones").
		Order("created_at DESC").
		Limit(MaxContactos).
		Find(&contactos).Error
	return contactos, err
}

// ListConSeguimientoVencido returns contacts whose follow-up reminder is due:
// recordatorio on, not yet done, fecha <= hasta. Feeds the reminder worker.
func (r *contactoRepo) ListConSeguimientoVencido(ctx context.Context, hasta time.Time) ([]model.Contacto, error) {
	var contactos []model.Contacto
	err := r.db.WithContext(ctx).
		Where("seguimiento_recordatorio = TRUE AND seguimiento_hecho = FALSE AND seguimiento_fecha <= ?", hasta).
		Order("seguimiento_fecha ASC").
		Limit(MaxContactos).
		Find(&contactos).Error
	return contactos, err
}

// ReplaceTags swaps the tag link set in one association replace. Callers run
// it inside a transaction together with ReplaceCaptaciones so a failed relink
// never leaves a half-updated link set.
func (r *contactoRepo) ReplaceTags(ctx context.Context, tx *gorm.DB, c *model.Contacto, tags []model.ContactoTag) error {
	return r.withTx(tx).WithContext(ctx).Model(c).Association("Tags").Replace(tags)
}

func (r *contactoRepo) ReplaceCaptaciones(ctx context.Context, tx *gorm.DB, c *model.Contacto, caps []model.Captacion) error {
	return r.withTx(tx).WithContext(ctx).Model(c).Association("Captaciones").Replace(caps)
}

func (r *contactoRepo) CreateTag(ctx context.Context, t *model.ContactoTag) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *contactoRepo) ListTags(ctx context.Context, userID uuid.UUID) ([]model.ContactoTag, error) {
	var tags []model.ContactoTag
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("nombre ASC").
		Find(&tags).Error
	return tags, err
}

func (r *contactoRepo) DeleteTag(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM contacto_tag_links WHERE contacto_tag_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ContactoTag{}, "id = ?", id).Error
	})
}
