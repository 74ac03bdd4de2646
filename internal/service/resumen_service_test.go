package service

import (
	"context"
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

func TestArmarResumenAnioVacio(t *testing.T) {
	r := ArmarResumen(uuid.New(), 2025, nil, nil, nil, nil)

	assert.Equal(t, 2025, r.Anio)
	assert.Equal(t, 0, r.TotalCierres)
	assert.True(t, r.ValorCerrado.IsZero())
	assert.Nil(t, r.Objetivo)

	require.Len(t, r.PorMes, 12)
	assert.Equal(t, 1, r.PorMes[0].Mes)
	assert.Equal(t, "Enero", r.PorMes[0].Nombre)
	assert.Equal(t, "Diciembre", r.PorMes[11].Nombre)
	for _, b := range r.PorMes {
		assert.Zero(t, b.Cierres)
		assert.True(t, b.Honorarios.IsZero())
	}
}

func TestArmarResumenUbicaCierresPorMes(t *testing.T) {
	userID := uuid.New()
	cierres := []model.Cierre{
		cierreEn(userID, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), 100000),
		cierreEn(userID, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC), 100000),
		cierreEn(userID, time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC), 200000),
	}

	r := ArmarResumen(userID, 2025, cierres, nil, nil, nil)

	assert.Equal(t, 3, r.TotalCierres)
	assert.Equal(t, 3, r.TotalPuntas)
	assert.Equal(t, "400000.00", r.ValorCerrado.StringFixed(2))
	assert.Equal(t, "12000.00", r.HonorariosTotal.StringFixed(2))
	assert.Equal(t, "6000.00", r.ComisionesTotal.StringFixed(2))

	marzo := r.PorMes[2]
	assert.Equal(t, 2, marzo.Cierres)
	assert.Equal(t, "200000.00", marzo.ValorCerrado.StringFixed(2))
	assert.Equal(t, "6000.00", marzo.Honorarios.StringFixed(2))

	noviembre := r.PorMes[10]
	assert.Equal(t, 1, noviembre.Cierres)
	assert.Equal(t, "6000.00", noviembre.Honorarios.StringFixed(2))

	assert.Zero(t, r.PorMes[0].Cierres)
}

func TestArmarResumenAvanceDeObjetivo(t *testing.T) {
	userID := uuid.New()
	cierres := []model.Cierre{
		cierreEn(userID, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), 100000),
	}
	objetivo := &model.Objetivo{
		UserID:                   userID,
		Anio:                     2025,
		ObjetivoPuntas:           4,
		ObjetivoFacturacionTotal: decimal.NewFromInt(12000),
		ObjetivoComisionesAgente: decimal.NewFromInt(6000),
	}

	r := ArmarResumen(userID, 2025, cierres, nil, nil, objetivo)
	require.NotNil(t, r.Objetivo)

	// 1 punta of 4, 3000 of 12000, 1500 of 6000: all 25%.
	require.NotNil(t, r.Objetivo.AvancePuntasPct)
	assert.Equal(t, "25.00", r.Objetivo.AvancePuntasPct.StringFixed(2))
	require.NotNil(t, r.Objetivo.AvanceFacturacionPct)
	assert.Equal(t, "25.00", r.Objetivo.AvanceFacturacionPct.StringFixed(2))
	require.NotNil(t, r.Objetivo.AvanceComisionesPct)
	assert.Equal(t, "25.00", r.Objetivo.AvanceComisionesPct.StringFixed(2))
}

func TestPorcentajeAvanceObjetivoCero(t *testing.T) {
	assert.Nil(t, PorcentajeAvance(decimal.NewFromInt(500), decimal.Zero))

	pct := PorcentajeAvance(decimal.NewFromInt(1), decimal.NewFromInt(3))
	require.NotNil(t, pct)
	assert.Equal(t, "33.33", pct.StringFixed(2))
}

func TestParticionCaptaciones(t *testing.T) {
	hoy := time.Now()
	rows := []model.Captacion{
		{},                 // activa
		{FechaBaja: &hoy},  // ni activa ni cerrada
		{FechaCierre: &hoy}, // cerrada
		{FechaBaja: &hoy, FechaCierre: &hoy}, // cerrada, cuenta igual
	}

	p := particionCaptaciones(rows)
	assert.Equal(t, 4, p.Total)
	assert.Equal(t, 1, p.Activas)
	assert.Equal(t, 2, p.Cerradas)
}

func TestTotalesTrackeo(t *testing.T) {
	rows := []model.Trackeo{
		{Llamadas: 10, Visitas: 2, CierresHonorarios: decimal.NewFromFloat(1500.555)},
		{Llamadas: 5, Visitas: 1, CierresHonorarios: decimal.NewFromFloat(1000.001)},
	}

	tot := totalesTrackeo(rows)
	assert.Equal(t, 2, tot.DiasRegistrados)
	assert.Equal(t, 15, tot.Llamadas)
	assert.Equal(t, 3, tot.Visitas)
	assert.Equal(t, "2500.56", tot.CierresHonorarios.StringFixed(2))
}

func TestSumarResumenAgregaEquipo(t *testing.T) {
	equipo := resumenVacio("equipo", 2025)

	a := ArmarResumen(uuid.New(), 2025, []model.Cierre{
		cierreEn(uuid.New(), time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), 100000),
	}, []model.Captacion{{}}, nil, nil)
	b := ArmarResumen(uuid.New(), 2025, []model.Cierre{
		cierreEn(uuid.New(), time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), 200000),
	}, nil, nil, nil)

	sumarResumen(equipo, a)
	sumarResumen(equipo, b)

	assert.Equal(t, 2, equipo.TotalCierres)
	assert.Equal(t, "300000.00", equipo.ValorCerrado.StringFixed(2))
	assert.Equal(t, "9000.00", equipo.HonorariosTotal.StringFixed(2))
	assert.Equal(t, 1, equipo.Captaciones.Total)
	assert.Equal(t, 1, equipo.Captaciones.Activas)

	febrero := equipo.PorMes[1]
	assert.Equal(t, 2, febrero.Cierres)
	assert.Equal(t, "9000.00", febrero.Honorarios.StringFixed(2))
}

func TestResumenAnualCubreTodoElAnioAunqueElListadoPagine(t *testing.T) {
	userID := uuid.New()
	cierres := newMemCierreRepo()
	for i := 0; i < 250; i++ {
		c := cierreEn(userID, time.Date(2025, time.Month(i%12+1), i%28+1, 0, 0, 0, 0, time.UTC), 100000)
		require.NoError(t, cierres.Create(context.Background(), &c))
	}

	svc := NewResumenService(cierres, newMemCaptacionRepo(), newMemTrackeoRepo(), newMemObjetivoRepo(), newMemProfileRepo())
	r, err := svc.ResumenAnual(context.Background(), userID, 2025)
	require.NoError(t, err)

	assert.Equal(t, 250, r.TotalCierres)
	assert.True(t, r.ValorCerrado.Equal(decimal.NewFromInt(25000000)),
		"valor cerrado anual: %s", r.ValorCerrado)

	// el listado pagina a 200 filas; el resumen no hereda ese tope
	listado := NewCierreService(cierres, newMemCaptacionRepo())
	lista, err := listado.Listar(context.Background(), scope.Scope{OwnerIDs: []uuid.UUID{userID}}, dto.FechaFilter{})
	require.NoError(t, err)
	assert.Equal(t, 200, lista.Total)
}
