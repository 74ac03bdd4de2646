package service

import (
	"context"
	"testing"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type objetivoKey struct {
	userID uuid.UUID
	anio   int
}

type memObjetivoRepo struct {
	rows map[objetivoKey]*model.Objetivo
}

func newMemObjetivoRepo() *memObjetivoRepo {
	return &memObjetivoRepo{rows: make(map[objetivoKey]*model.Objetivo)}
}

func (r *memObjetivoRepo) Create(_ context.Context, o *model.Objetivo) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	clone := *o
	r.rows[objetivoKey{o.UserID, o.Anio}] = &clone
	return nil
}

func (r *memObjetivoRepo) Update(_ context.Context, o *model.Objetivo) error {
	clone := *o
	r.rows[objetivoKey{o.UserID, o.Anio}] = &clone
	return nil
}

func (r *memObjetivoRepo) FindByUserAnio(_ context.Context, userID uuid.UUID, anio int) (*model.Objetivo, error) {
	o, ok := r.rows[objetivoKey{userID, anio}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *o
	return &clone, nil
}

func (r *memObjetivoRepo) List(_ context.Context, ownerIDs []uuid.UUID, anio int) ([]model.Objetivo, error) {
	var out []model.Objetivo
	for k, o := range r.rows {
		if k.anio != anio {
			continue
		}
		for _, owner := range ownerIDs {
			if k.userID == owner {
				out = append(out, *o)
			}
		}
	}
	return out, nil
}

func pesosUniformes() dto.PesosMensualesDTO {
	p := decimal.NewFromFloat(8.33)
	return dto.PesosMensualesDTO{
		Enero: p, Febrero: p, Marzo: p, Abril: p, Mayo: p, Junio: p,
		Julio: p, Agosto: p, Septiembre: p, Octubre: p, Noviembre: p,
		Diciembre: decimal.NewFromFloat(8.37),
	}
}

func TestGuardarDerivaObjetivos(t *testing.T) {
	userID := uuid.New()
	svc := NewObjetivoService(newMemObjetivoRepo())

	resp, err := svc.Guardar(context.Background(), userID, dto.ObjetivoRequest{
		Anio:                     2025,
		TicketPromedioCartera:    decimal.NewFromInt(100000),
		ComisionAgentePorcentaje: decimal.NewFromInt(50),
		ObjetivoFacturacionTotal: decimal.NewFromInt(60000),
		Pesos:                    pesosUniformes(),
	})
	require.NoError(t, err)

	// comisiones = 60000 * 50% = 30000; puntas = 60000 / 0.03 / 100000 = 20.
	assert.Equal(t, "30000.00", resp.ObjetivoComisionesAgente.StringFixed(2))
	assert.Equal(t, 20, resp.ObjetivoPuntas)
}

func TestGuardarEsUpsertPorAnio(t *testing.T) {
	userID := uuid.New()
	repo := newMemObjetivoRepo()
	svc := NewObjetivoService(repo)

	req := dto.ObjetivoRequest{
		Anio:                     2025,
		TicketPromedioCartera:    decimal.NewFromInt(100000),
		ComisionAgentePorcentaje: decimal.NewFromInt(50),
		ObjetivoFacturacionTotal: decimal.NewFromInt(60000),
		Pesos:                    pesosUniformes(),
	}
	primero, err := svc.Guardar(context.Background(), userID, req)
	require.NoError(t, err)

	req.ObjetivoFacturacionTotal = decimal.NewFromInt(90000)
	segundo, err := svc.Guardar(context.Background(), userID, req)
	require.NoError(t, err)

	assert.Equal(t, primero.ID, segundo.ID)
	assert.Equal(t, "45000.00", segundo.ObjetivoComisionesAgente.StringFixed(2))
	assert.Len(t, repo.rows, 1)
}

func TestGuardarTicketCeroAnulaPuntas(t *testing.T) {
	svc := NewObjetivoService(newMemObjetivoRepo())

	resp, err := svc.Guardar(context.Background(), uuid.New(), dto.ObjetivoRequest{
		Anio:                     2025,
		ObjetivoFacturacionTotal: decimal.NewFromInt(60000),
		Pesos:                    pesosUniformes(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.ObjetivoPuntas)
}

func TestObtenerFueraDeScope(t *testing.T) {
	userID := uuid.New()
	repo := newMemObjetivoRepo()
	require.NoError(t, repo.Create(context.Background(), &model.Objetivo{UserID: userID, Anio: 2025}))

	svc := NewObjetivoService(repo)

	_, err := svc.Obtener(context.Background(), scope.Single(scope.RoleVendedor, uuid.New()), userID, 2025)
	require.Error(t, err)
	assert.EqualError(t, err, "objetivo no encontrado")
}

func TestSubObjetivosDeRepartePorPeso(t *testing.T) {
	o := &model.Objetivo{
		Anio:                     2025,
		ObjetivoPuntas:           20,
		ObjetivoFacturacionTotal: decimal.NewFromInt(60000),
		ObjetivoComisionesAgente: decimal.NewFromInt(30000),
		PesoEnero:                decimal.NewFromInt(10),
		PesoFebrero:              decimal.NewFromInt(20),
	}

	resp := SubObjetivosDe(o)
	require.Len(t, resp.Mensuales, 12)
	require.Len(t, resp.Trimestres, 4)

	enero := resp.Mensuales[0]
	assert.Equal(t, "Enero", enero.Nombre)
	assert.Equal(t, "2.00", enero.Puntas.StringFixed(2))
	assert.Equal(t, "6000.00", enero.Facturacion.StringFixed(2))
	assert.Equal(t, "3000.00", enero.Comisiones.StringFixed(2))

	// Q1 = enero + febrero + marzo = 30% del anual.
	q1 := resp.Trimestres[0]
	assert.Equal(t, "30", q1.Peso.String())
	assert.Equal(t, "18000.00", q1.Facturacion.StringFixed(2))

	// Months without weight allocate nothing.
	assert.Equal(t, "0.00", resp.Mensuales[5].Facturacion.StringFixed(2))
}
