package service

import (
	"context"
	"errors"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
)

// ChatRelay forwards one turn to the workflow endpoint selected by role.
type ChatRelay interface {
	Enviar(ctx context.Context, role scope.Role, payload infra.ChatPayload) (string, error)
}

type ChatService interface {
	Enviar(ctx context.Context, userID uuid.UUID, req dto.ChatRequest) (*dto.ChatResponse, error)
	Historial(ctx context.Context, userID uuid.UUID, scopeTag string, targetUserID *uuid.UUID) (*dto.ChatHistoryResponse, error)
}

type chatService struct {
	repo     repository.ChatRepository
	resolver *scope.Resolver
	relay    ChatRelay
}

func NewChatService(repo repository.ChatRepository, resolver *scope.Resolver, relay ChatRelay) ChatService {
	return &chatService{repo: repo, resolver: resolver, relay: relay}
}

// Enviar runs one chat turn: validate the scope tuple, load the tuple's recent
// history, persist the user message, relay to n8n, persist the reply.
// The user message is stored before the relay call; a relay failure leaves no
// assistant turn behind, so the client can retry without duplicate replies.
func (s *chatService) Enviar(ctx context.Context, userID uuid.UUID, req dto.ChatRequest) (*dto.ChatResponse, error) {
	scopeTag := req.Scope
	if scopeTag == "" {
		scopeTag = "personal"
	}

	role, target, err := s.validarTupla(ctx, userID, scopeTag, req.TargetUserID)
	if err != nil {
		return nil, err
	}

	historia, err := s.repo.History(ctx, userID, scopeTag, target)
	if err != nil {
		return nil, err
	}

	userMsg := &model.ChatMessage{
		UserID:       userID,
		Role:         "user",
		Content:      req.Message,
		Scope:        scopeTag,
		TargetUserID: target,
	}
	if err := s.repo.Create(ctx, userMsg); err != nil {
		return nil, err
	}

	payload := infra.ChatPayload{
		Message: req.Message,
		History: make([]infra.ChatTurn, len(historia)),
		UserID:  userID.String(),
		Role:    string(role),
		Scope:   scopeTag,
	}
	if target != nil {
		payload.TargetUserID = target.String()
	}
	for i, m := range historia {
		payload.History[i] = infra.ChatTurn{Role: m.Role, Content: m.Content}
	}

	reply, err := s.relay.Enviar(ctx, role, payload)
	if err != nil {
		return nil, err
	}

	asistente := &model.ChatMessage{
		UserID:       userID,
		Role:         "assistant",
		Content:      reply,
		Scope:        scopeTag,
		TargetUserID: target,
	}
	if err := s.repo.Create(ctx, asistente); err != nil {
		return nil, err
	}

	return &dto.ChatResponse{Reply: reply}, nil
}

func (s *chatService) Historial(ctx context.Context, userID uuid.UUID, scopeTag string, targetUserID *uuid.UUID) (*dto.ChatHistoryResponse, error) {
	if scopeTag == "" {
		scopeTag = "personal"
	}
	if _, _, err := s.validarTupla(ctx, userID, scopeTag, uuidPtrToString(targetUserID)); err != nil {
		return nil, err
	}

	msgs, err := s.repo.History(ctx, userID, scopeTag, targetUserID)
	if err != nil {
		return nil, err
	}
	resp := &dto.ChatHistoryResponse{Data: make([]dto.ChatMessageResponse, len(msgs)), Total: len(msgs)}
	for i, m := range msgs {
		resp.Data[i] = dto.ChatMessageResponse{
			ID:        m.ID.String(),
			Role:      m.Role,
			Content:   m.Content,
			CreatedAt: m.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}
	return resp, nil
}

// validarTupla enforces the conversation tuple rules: "personal" is open to
// every role; "equipo" and "vendedor" reuse the manager resolution, and a
// "vendedor" target outside the assigned set fails closed.
func (s *chatService) validarTupla(ctx context.Context, userID uuid.UUID, scopeTag, targetRaw string) (scope.Role, *uuid.UUID, error) {
	sc, err := s.resolver.ResolveUser(ctx, userID)
	if err != nil {
		return "", nil, err
	}

	switch scopeTag {
	case "personal":
		return sc.Role, nil, nil

	case "equipo":
		if _, err := s.resolver.ResolveManager(ctx, userID, nil); err != nil {
			return "", nil, err
		}
		return sc.Role, nil, nil

	case "vendedor":
		if targetRaw == "" {
			return "", nil, errors.New("targetUserId es requerido para el scope vendedor")
		}
		target, err := uuid.Parse(targetRaw)
		if err != nil {
			return "", nil, scope.ErrValidation
		}
		if _, err := s.resolver.ResolveManager(ctx, userID, &target); err != nil {
			return "", nil, err
		}
		return sc.Role, &target, nil

	default:
		return "", nil, errors.New("scope invalido")
	}
}

func uuidPtrToString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
