package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTrackeoRepo struct {
	rows map[uuid.UUID]*model.Trackeo
}

func newMemTrackeoRepo() *memTrackeoRepo {
	return &memTrackeoRepo{rows: make(map[uuid.UUID]*model.Trackeo)}
}

func (r *memTrackeoRepo) Create(_ context.Context, t *model.Trackeo) error {
	for _, row := range r.rows {
		if row.UserID == t.UserID && row.Fecha.Equal(t.Fecha) {
			return repository.ErrTrackeoDuplicado
		}
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	clone := *t
	r.rows[t.ID] = &clone
	return nil
}

func (r *memTrackeoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Trackeo, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *t
	return &clone, nil
}

func (r *memTrackeoRepo) Update(_ context.Context, t *model.Trackeo) error {
	clone := *t
	r.rows[t.ID] = &clone
	return nil
}

func (r *memTrackeoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *memTrackeoRepo) List(_ context.Context, ownerIDs []uuid.UUID, rango *dto.Rango) ([]model.Trackeo, error) {
	var out []model.Trackeo
	for _, t := range r.rows {
		for _, owner := range ownerIDs {
			if t.UserID != owner {
				continue
			}
			if rango != nil && (t.Fecha.Before(rango.Desde) || t.Fecha.After(rango.Hasta)) {
				continue
			}
			out = append(out, *t)
		}
	}
	return out, nil
}

func TestCrearTrackeoDiaDuplicado(t *testing.T) {
	userID := uuid.New()
	svc := NewTrackeoService(newMemTrackeoRepo())

	req := dto.TrackeoRequest{Fecha: "2025-05-12", Llamadas: 15}
	_, err := svc.Crear(context.Background(), userID, req)
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), userID, req)
	assert.ErrorIs(t, err, repository.ErrTrackeoDuplicado)

	// Same day, different user: fine.
	_, err = svc.Crear(context.Background(), uuid.New(), req)
	assert.NoError(t, err)
}

func TestCrearTrackeoFechaInvalida(t *testing.T) {
	svc := NewTrackeoService(newMemTrackeoRepo())

	_, err := svc.Crear(context.Background(), uuid.New(), dto.TrackeoRequest{Fecha: "12/05/2025"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fecha invalida")
}

func TestActualizarTrackeoConservaIdentidad(t *testing.T) {
	userID := uuid.New()
	repo := newMemTrackeoRepo()
	svc := NewTrackeoService(repo)

	creado, err := svc.Crear(context.Background(), userID, dto.TrackeoRequest{Fecha: "2025-05-12", Llamadas: 15})
	require.NoError(t, err)

	id, err := uuid.Parse(creado.ID)
	require.NoError(t, err)

	resp, err := svc.Actualizar(context.Background(), scope.Single(scope.RoleVendedor, userID), id, dto.TrackeoRequest{
		Fecha: "2025-05-12", Llamadas: 20, Visitas: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, creado.ID, resp.ID)
	assert.Equal(t, 20, resp.Llamadas)

	row := repo.rows[id]
	assert.Equal(t, userID, row.UserID)
}

func TestListarTrackeoFiltraPorRango(t *testing.T) {
	userID := uuid.New()
	repo := newMemTrackeoRepo()
	svc := NewTrackeoService(repo)

	for _, fecha := range []string{"2025-04-01", "2025-04-15", "2025-05-01"} {
		_, err := svc.Crear(context.Background(), userID, dto.TrackeoRequest{Fecha: fecha})
		require.NoError(t, err)
	}

	resp, err := svc.Listar(context.Background(), scope.Single(scope.RoleVendedor, userID), dto.FechaFilter{Mes: 4, Anio: 2025})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestEliminarTrackeoFueraDeScope(t *testing.T) {
	userID := uuid.New()
	repo := newMemTrackeoRepo()
	c := &model.Trackeo{UserID: userID, Fecha: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.Create(context.Background(), c))

	svc := NewTrackeoService(repo)

	err := svc.Eliminar(context.Background(), scope.Single(scope.RoleVendedor, uuid.New()), c.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "registro de trackeo no encontrado")
}
