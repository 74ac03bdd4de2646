package repository

import (
	"context"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatHistoryLimit is how many turns travel with each relay request.
const ChatHistoryLimit = 20

type ChatRepository interface {
	Create(ctx context.Context, msg *model.ChatMessage) error
	// History returns the last ChatHistoryLimit messages for the
	// (user, scope, target) conversation, oldest first.
	History(ctx context.Context, userID uuid.UUID, scope string, targetUserID *uuid.UUID) ([]model.ChatMessage, error)
}

type chatRepo struct{ db *gorm.DB }

func NewChatRepository(db *gorm.DB) ChatRepository { return &chatRepo{db: db} }

func (r *chatRepo) Create(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepo) History(ctx context.Context, userID uuid.UUID, scope string, targetUserID *uuid.UUID) ([]model.ChatMessage, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ? AND scope = ?", userID, scope)
	if targetUserID != nil {
		q = q.Where("target_user_id = ?", *targetUserID)
	} else {
		q = q.Where("target_user_id IS NULL")
	}

	var msgs []model.ChatMessage
	err := q.Order("created_at DESC").Limit(ChatHistoryLimit).Find(&msgs).Error
	if err != nil {
		return nil, err
	}
	// Reverse into chronological order for the relay payload.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
