package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── In-memory repos ──────────────────────────────────────────────────────────

type memCierreRepo struct {
	rows map[uuid.UUID]*model.Cierre
}

func newMemCierreRepo() *memCierreRepo {
	return &memCierreRepo{rows: make(map[uuid.UUID]*model.Cierre)}
}

func (r *memCierreRepo) Create(_ context.Context, c *model.Cierre) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *memCierreRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cierre, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *c
	return &clone, nil
}

func (r *memCierreRepo) Update(_ context.Context, c *model.Cierre) error {
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *memCierreRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *memCierreRepo) List(_ context.Context, ownerIDs []uuid.UUID, rango *dto.Rango, limit int) ([]model.Cierre, error) {
	var out []model.Cierre
	for _, c := range r.rows {
		for _, owner := range ownerIDs {
			if c.UserID != owner {
				continue
			}
			if rango != nil && (c.Fecha.Before(rango.Desde) || c.Fecha.After(rango.Hasta)) {
				continue
			}
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Fecha.After(out[j].Fecha) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memCaptacionRepo struct {
	rows map[uuid.UUID]*model.Captacion
}

func newMemCaptacionRepo() *memCaptacionRepo {
	return &memCaptacionRepo{rows: make(map[uuid.UUID]*model.Captacion)}
}

func (r *memCaptacionRepo) Create(_ context.Context, c *model.Captacion) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *memCaptacionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Captacion, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *c
	return &clone, nil
}

func (r *memCaptacionRepo) Update(_ context.Context, c *model.Captacion) error {
	clone := *c
	r.rows[c.ID] = &clone
	return nil
}

func (r *memCaptacionRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.rows, id)
	return nil
}

func (r *memCaptacionRepo) List(_ context.Context, ownerIDs []uuid.UUID, filter dto.CaptacionFilter) ([]model.Captacion, error) {
	var out []model.Captacion
	for _, c := range r.rows {
		for _, owner := range ownerIDs {
			if c.UserID == owner {
				out = append(out, *c)
			}
		}
	}
	return out, nil
}

func seedCaptacion(t *testing.T, repo *memCaptacionRepo, userID uuid.UUID) *model.Captacion {
	t.Helper()
	c := &model.Captacion{
		UserID:    userID,
		FechaAlta: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Direccion: "Av. Libertador 1234",
		Operacion: "Venta",
		Moneda:    "USD",
	}
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

// ── Commission math ──────────────────────────────────────────────────────────

func TestCrearCierreDerivaHonorariosYComision(t *testing.T) {
	userID := uuid.New()
	capRepo := newMemCaptacionRepo()
	capta := seedCaptacion(t, capRepo, userID)

	svc := NewCierreService(newMemCierreRepo(), capRepo)

	resp, err := svc.Crear(context.Background(), userID, dto.CierreRequest{
		CaptacionID:          capta.ID.String(),
		Fecha:                "2025-03-15",
		ValorCierre:          decimal.NewFromInt(100000),
		PorcentajeHonorarios: decimal.NewFromInt(3),
		PorcentajeAgente:     decimal.NewFromInt(50),
		Puntas:               2,
	})
	require.NoError(t, err)

	assert.Equal(t, "3000.00", resp.HonorariosTotales.StringFixed(2))
	assert.Equal(t, "1500.00", resp.ComisionAgente.StringFixed(2))
	assert.Nil(t, resp.Acumulado)
	require.NotNil(t, resp.Captacion)
	assert.Equal(t, "Av. Libertador 1234", resp.Captacion.Direccion)
}

func TestCrearCierreRechazaCaptacionAjena(t *testing.T) {
	capRepo := newMemCaptacionRepo()
	capta := seedCaptacion(t, capRepo, uuid.New())

	svc := NewCierreService(newMemCierreRepo(), capRepo)

	otro := uuid.New()
	_, err := svc.Crear(context.Background(), otro, dto.CierreRequest{
		CaptacionID: capta.ID.String(),
		Fecha:       "2025-03-15",
		ValorCierre: decimal.NewFromInt(50000),
	})
	require.Error(t, err)
	assert.EqualError(t, err, "captacion no encontrada")
}

// ── Acumulado ────────────────────────────────────────────────────────────────

func cierreEn(userID uuid.UUID, fecha time.Time, valor int64) model.Cierre {
	return model.Cierre{
		ID:                   uuid.New(),
		UserID:               userID,
		CaptacionID:          uuid.New(),
		Fecha:                fecha,
		ValorCierre:          decimal.NewFromInt(valor),
		PorcentajeHonorarios: decimal.NewFromInt(3),
		PorcentajeAgente:     decimal.NewFromInt(50),
		Puntas:               1,
	}
}

func TestEnriquecerCierresOrdenaYAcumula(t *testing.T) {
	userID := uuid.New()
	// Deliberately out of order.
	rows := []model.Cierre{
		cierreEn(userID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 200000),
		cierreEn(userID, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 100000),
		cierreEn(userID, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), 100000),
	}

	out := EnriquecerCierres(rows)
	require.Len(t, out, 3)

	assert.Equal(t, "2025-01-01", out[0].Fecha)
	assert.Equal(t, "2025-03-01", out[1].Fecha)
	assert.Equal(t, "2025-06-01", out[2].Fecha)

	require.NotNil(t, out[0].Acumulado)
	assert.Equal(t, "3000.00", out[0].Acumulado.StringFixed(2))
	assert.Equal(t, "6000.00", out[1].Acumulado.StringFixed(2))
	assert.Equal(t, "12000.00", out[2].Acumulado.StringFixed(2))

	// Monotonic.
	assert.True(t, out[1].Acumulado.GreaterThanOrEqual(*out[0].Acumulado))
	assert.True(t, out[2].Acumulado.GreaterThanOrEqual(*out[1].Acumulado))
}

func TestEnriquecerCierresEsIdempotentePorOrdenDeEntrada(t *testing.T) {
	userID := uuid.New()
	a := cierreEn(userID, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 80000)
	b := cierreEn(userID, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 120000)

	directo := EnriquecerCierres([]model.Cierre{a, b})
	invertido := EnriquecerCierres([]model.Cierre{b, a})

	require.Len(t, directo, 2)
	require.Len(t, invertido, 2)
	for i := range directo {
		assert.Equal(t, directo[i].ID, invertido[i].ID)
		assert.True(t, directo[i].Acumulado.Equal(*invertido[i].Acumulado))
	}
}

func TestEnriquecerCierresNoMutaLaEntrada(t *testing.T) {
	userID := uuid.New()
	rows := []model.Cierre{
		cierreEn(userID, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), 100000),
		cierreEn(userID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 100000),
	}
	primero := rows[0].ID

	_ = EnriquecerCierres(rows)
	assert.Equal(t, primero, rows[0].ID)
}

// ── Visibility ───────────────────────────────────────────────────────────────

func TestEliminarCierreFueraDeScope(t *testing.T) {
	userID := uuid.New()
	repo := newMemCierreRepo()
	c := cierreEn(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 100000)
	require.NoError(t, repo.Create(context.Background(), &c))

	svc := NewCierreService(repo, newMemCaptacionRepo())

	ajeno := scope.Single(scope.RoleVendedor, uuid.New())
	err := svc.Eliminar(context.Background(), ajeno, c.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "cierre no encontrado")

	propio := scope.Single(scope.RoleVendedor, userID)
	require.NoError(t, svc.Eliminar(context.Background(), propio, c.ID))
}

// ── CSV export ───────────────────────────────────────────────────────────────

func TestExportarCSVIncluyeEncabezadoYFilas(t *testing.T) {
	userID := uuid.New()
	repo := newMemCierreRepo()
	c := cierreEn(userID, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 100000)
	require.NoError(t, repo.Create(context.Background(), &c))

	svc := NewCierreService(repo, newMemCaptacionRepo())

	raw, err := svc.ExportarCSV(context.Background(), scope.Single(scope.RoleVendedor, userID), dto.FechaFilter{Anio: 2025})
	require.NoError(t, err)

	csv := string(raw)
	assert.Contains(t, csv, "fecha,direccion,operacion")
	assert.Contains(t, csv, "2025-04-01")
	assert.Contains(t, csv, "3000.00")
	assert.Contains(t, csv, "1500.00")
}
