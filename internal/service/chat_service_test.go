package service

import (
	"context"
	"testing"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memChatRepo struct {
	msgs []model.ChatMessage
}

func (r *memChatRepo) Create(_ context.Context, msg *model.ChatMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *memChatRepo) History(_ context.Context, userID uuid.UUID, scopeTag string, targetUserID *uuid.UUID) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, m := range r.msgs {
		if m.UserID != userID || m.Scope != scopeTag {
			continue
		}
		if (m.TargetUserID == nil) != (targetUserID == nil) {
			continue
		}
		if targetUserID != nil && *m.TargetUserID != *targetUserID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

type stubRelay struct {
	reply    string
	err      error
	llamadas []infra.ChatPayload
	roles    []scope.Role
}

func (s *stubRelay) Enviar(_ context.Context, role scope.Role, payload infra.ChatPayload) (string, error) {
	s.llamadas = append(s.llamadas, payload)
	s.roles = append(s.roles, role)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type chatFixture struct {
	repo  *memChatRepo
	relay *stubRelay
	svc   ChatService
}

func newChatFixture(roles map[uuid.UUID]string, asignaciones map[uuid.UUID][]uuid.UUID) *chatFixture {
	repo := &memChatRepo{}
	relay := &stubRelay{reply: "respuesta del asistente"}
	resolver := scope.NewResolver(
		&memProfileSource{roles: roles},
		&memAssignmentSource{porManager: asignaciones},
		nil,
	)
	return &chatFixture{
		repo:  repo,
		relay: relay,
		svc:   NewChatService(repo, resolver, relay),
	}
}

type memProfileSource struct {
	roles map[uuid.UUID]string
}

func (m *memProfileSource) FindRoleByID(_ context.Context, id uuid.UUID) (string, error) {
	role, ok := m.roles[id]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

type memAssignmentSource struct {
	porManager map[uuid.UUID][]uuid.UUID
}

func (m *memAssignmentSource) ListVendedorIDs(_ context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	return m.porManager[managerID], nil
}

func TestChatPersonalPersisteAmbosTurnos(t *testing.T) {
	userID := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{userID: "vendedor"}, nil)

	resp, err := f.svc.Enviar(context.Background(), userID, dto.ChatRequest{Message: "hola"})
	require.NoError(t, err)
	assert.Equal(t, "respuesta del asistente", resp.Reply)

	require.Len(t, f.repo.msgs, 2)
	assert.Equal(t, "user", f.repo.msgs[0].Role)
	assert.Equal(t, "hola", f.repo.msgs[0].Content)
	assert.Equal(t, "personal", f.repo.msgs[0].Scope)
	assert.Equal(t, "assistant", f.repo.msgs[1].Role)

	require.Len(t, f.relay.roles, 1)
	assert.Equal(t, scope.RoleVendedor, f.relay.roles[0])
}

func TestChatRelayCaidoNoDejaTurnoAsistente(t *testing.T) {
	userID := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{userID: "vendedor"}, nil)
	f.relay.err = infra.ErrWebhookFallo

	_, err := f.svc.Enviar(context.Background(), userID, dto.ChatRequest{Message: "hola"})
	require.ErrorIs(t, err, infra.ErrWebhookFallo)

	// The user turn stays so the client can retry without losing input.
	require.Len(t, f.repo.msgs, 1)
	assert.Equal(t, "user", f.repo.msgs[0].Role)
}

func TestChatIncluyeHistoriaPrevia(t *testing.T) {
	userID := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{userID: "vendedor"}, nil)

	_, err := f.svc.Enviar(context.Background(), userID, dto.ChatRequest{Message: "primera"})
	require.NoError(t, err)
	_, err = f.svc.Enviar(context.Background(), userID, dto.ChatRequest{Message: "segunda"})
	require.NoError(t, err)

	require.Len(t, f.relay.llamadas, 2)
	assert.Empty(t, f.relay.llamadas[0].History)
	require.Len(t, f.relay.llamadas[1].History, 2)
	assert.Equal(t, "primera", f.relay.llamadas[1].History[0].Content)
	assert.Equal(t, "assistant", f.relay.llamadas[1].History[1].Role)
}

func TestChatEquipoExigeRolDeManager(t *testing.T) {
	vendedor := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{vendedor: "vendedor"}, nil)

	_, err := f.svc.Enviar(context.Background(), vendedor, dto.ChatRequest{Message: "hola", Scope: "equipo"})
	assert.ErrorIs(t, err, scope.ErrForbidden)
	assert.Empty(t, f.repo.msgs)
}

func TestChatVendedorSinTarget(t *testing.T) {
	manager := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{manager: "encargado"}, nil)

	_, err := f.svc.Enviar(context.Background(), manager, dto.ChatRequest{Message: "hola", Scope: "vendedor"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "targetUserId es requerido")
}

func TestChatVendedorNoAsignado(t *testing.T) {
	manager := uuid.New()
	propio := uuid.New()
	ajeno := uuid.New()
	f := newChatFixture(
		map[uuid.UUID]string{manager: "encargado"},
		map[uuid.UUID][]uuid.UUID{manager: {propio}},
	)

	_, err := f.svc.Enviar(context.Background(), manager, dto.ChatRequest{
		Message: "hola", Scope: "vendedor", TargetUserID: ajeno.String(),
	})
	assert.ErrorIs(t, err, scope.ErrForbidden)
}

func TestChatTuplasSeparanConversaciones(t *testing.T) {
	manager := uuid.New()
	v1, v2 := uuid.New(), uuid.New()
	f := newChatFixture(
		map[uuid.UUID]string{manager: "encargado"},
		map[uuid.UUID][]uuid.UUID{manager: {v1, v2}},
	)

	_, err := f.svc.Enviar(context.Background(), manager, dto.ChatRequest{
		Message: "sobre v1", Scope: "vendedor", TargetUserID: v1.String(),
	})
	require.NoError(t, err)

	_, err = f.svc.Enviar(context.Background(), manager, dto.ChatRequest{
		Message: "sobre v2", Scope: "vendedor", TargetUserID: v2.String(),
	})
	require.NoError(t, err)

	// The second conversation starts clean.
	require.Len(t, f.relay.llamadas, 2)
	assert.Empty(t, f.relay.llamadas[1].History)

	hist, err := f.svc.Historial(context.Background(), manager, "vendedor", &v1)
	require.NoError(t, err)
	assert.Equal(t, 2, hist.Total)
	assert.Equal(t, "sobre v1", hist.Data[0].Content)
}

func TestChatScopeInvalido(t *testing.T) {
	userID := uuid.New()
	f := newChatFixture(map[uuid.UUID]string{userID: "vendedor"}, nil)

	_, err := f.svc.Enviar(context.Background(), userID, dto.ChatRequest{Message: "hola", Scope: "global"})
	require.Error(t, err)
	assert.EqualError(t, err, "scope invalido")
}
