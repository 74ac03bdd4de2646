package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memProfiles struct {
	roles map[uuid.UUID]string
	err   error
}

func (m *memProfiles) FindRoleByID(_ context.Context, id uuid.UUID) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	role, ok := m.roles[id]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return role, nil
}

type memAssignments struct {
	porManager map[uuid.UUID][]uuid.UUID
}

func (m *memAssignments) ListVendedorIDs(_ context.Context, managerID uuid.UUID) ([]uuid.UUID, error) {
	return m.porManager[managerID], nil
}

func newTestResolver(roles map[uuid.UUID]string, asignaciones map[uuid.UUID][]uuid.UUID) *Resolver {
	return NewResolver(
		&memProfiles{roles: roles},
		&memAssignments{porManager: asignaciones},
		nil, // sin cache
	)
}

func TestResolveUser(t *testing.T) {
	vendedor := uuid.New()
	r := newTestResolver(map[uuid.UUID]string{vendedor: "vendedor"}, nil)

	sc, err := r.ResolveUser(context.Background(), vendedor)
	require.NoError(t, err)
	assert.Equal(t, RoleVendedor, sc.Role)
	assert.Equal(t, []uuid.UUID{vendedor}, sc.OwnerIDs)
	assert.False(t, sc.Unrestricted)
}

func TestResolveUserPerfilInexistente(t *testing.T) {
	r := newTestResolver(map[uuid.UUID]string{}, nil)

	_, err := r.ResolveUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveUserFallaDeBackendNoEsValidacion(t *testing.T) {
	caida := errors.New("db caida")
	r := NewResolver(&memProfiles{err: caida}, &memAssignments{}, nil)

	_, err := r.ResolveUser(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, caida)
}

func TestResolveUserRolDesconocido(t *testing.T) {
	raro := uuid.New()
	r := newTestResolver(map[uuid.UUID]string{raro: "superusuario"}, nil)

	_, err := r.ResolveUser(context.Background(), raro)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rol desconocido")
}

func TestResolveManagerEquipoCompleto(t *testing.T) {
	manager := uuid.New()
	v1, v2 := uuid.New(), uuid.New()
	r := newTestResolver(
		map[uuid.UUID]string{manager: "encargado"},
		map[uuid.UUID][]uuid.UUID{manager: {v1, v2}},
	)

	sc, err := r.ResolveManager(context.Background(), manager, nil)
	require.NoError(t, err)
	assert.Equal(t, RoleEncargado, sc.Role)
	assert.ElementsMatch(t, []uuid.UUID{v1, v2}, sc.OwnerIDs)
}

func TestResolveManagerNarrowAVendedorAsignado(t *testing.T) {
	manager := uuid.New()
	v1, v2 := uuid.New(), uuid.New()
	r := newTestResolver(
		map[uuid.UUID]string{manager: "encargado"},
		map[uuid.UUID][]uuid.UUID{manager: {v1, v2}},
	)

	sc, err := r.ResolveManager(context.Background(), manager, &v2)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{v2}, sc.OwnerIDs)
}

func TestResolveManagerVendedorNoAsignadoFallaCerrado(t *testing.T) {
	manager := uuid.New()
	v1 := uuid.New()
	ajeno := uuid.New()
	r := newTestResolver(
		map[uuid.UUID]string{manager: "encargado"},
		map[uuid.UUID][]uuid.UUID{manager: {v1}},
	)

	_, err := r.ResolveManager(context.Background(), manager, &ajeno)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolveManagerSinAsignaciones(t *testing.T) {
	manager := uuid.New()
	v := uuid.New()
	r := newTestResolver(map[uuid.UUID]string{manager: "encargado"}, nil)

	_, err := r.ResolveManager(context.Background(), manager, nil)
	assert.ErrorIs(t, err, ErrEmptyScope)

	// Empty set dominates: even a concrete vendedor request yields empty scope.
	_, err = r.ResolveManager(context.Background(), manager, &v)
	assert.ErrorIs(t, err, ErrEmptyScope)
}

func TestResolveManagerRechazaVendedor(t *testing.T) {
	caller := uuid.New()
	r := newTestResolver(map[uuid.UUID]string{caller: "vendedor"}, nil)

	_, err := r.ResolveManager(context.Background(), caller, nil)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestResolveAdmin(t *testing.T) {
	admin := uuid.New()
	encargado := uuid.New()
	r := newTestResolver(map[uuid.UUID]string{
		admin:     "admin",
		encargado: "encargado",
	}, nil)

	sc, err := r.ResolveAdmin(context.Background(), admin)
	require.NoError(t, err)
	assert.True(t, sc.Unrestricted)
	assert.Empty(t, sc.OwnerIDs)

	_, err = r.ResolveAdmin(context.Background(), encargado)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestScopeContains(t *testing.T) {
	dentro := uuid.New()
	fuera := uuid.New()

	sc := Single(RoleVendedor, dentro)
	assert.True(t, sc.Contains(dentro))
	assert.False(t, sc.Contains(fuera))

	admin := Scope{Role: RoleAdmin, Unrestricted: true}
	assert.True(t, admin.Contains(fuera))
}
