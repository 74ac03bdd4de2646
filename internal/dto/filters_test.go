package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangoVacio(t *testing.T) {
	r, err := FechaFilter{}.Rango()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestRangoFechasExplicitas(t *testing.T) {
	r, err := FechaFilter{FechaDesde: "2025-03-01", FechaHasta: "2025-03-15"}.Rango()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), r.Desde)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), r.Hasta)
}

func TestRangoDesdeSinHasta(t *testing.T) {
	r, err := FechaFilter{FechaDesde: "2025-03-01"}.Rango()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, 9999, r.Hasta.Year())
}

func TestRangoFechaMalFormada(t *testing.T) {
	_, err := FechaFilter{FechaDesde: "01/03/2025"}.Rango()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fechaDesde invalida")

	_, err = FechaFilter{FechaHasta: "ayer"}.Rango()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fechaHasta invalida")
}

func TestRangoMesYAnio(t *testing.T) {
	r, err := FechaFilter{Mes: 4, Anio: 2025}.Rango()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), r.Desde)
	assert.Equal(t, time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC), r.Hasta)
}

func TestRangoFebreroBisiesto(t *testing.T) {
	r, err := FechaFilter{Mes: 2, Anio: 2024}.Rango()
	require.NoError(t, err)
	assert.Equal(t, 29, r.Hasta.Day())

	r, err = FechaFilter{Mes: 2, Anio: 2023}.Rango()
	require.NoError(t, err)
	assert.Equal(t, 28, r.Hasta.Day())
}

func TestRangoMesFueraDeRango(t *testing.T) {
	_, err := FechaFilter{Mes: 13, Anio: 2025}.Rango()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mes debe estar entre 1 y 12")
}

func TestRangoSoloAnio(t *testing.T) {
	r, err := FechaFilter{Anio: 2025}.Rango()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), r.Desde)
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), r.Hasta)
}

func TestRangoMesSinAnioSeIgnora(t *testing.T) {
	// Un mes suelto sin anio no define intervalo.
	r, err := FechaFilter{Mes: 5}.Rango()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestFechaPtrPreservaNull(t *testing.T) {
	assert.Nil(t, FechaPtr(nil))

	d := time.Date(2025, 7, 9, 0, 0, 0, 0, time.UTC)
	s := FechaPtr(&d)
	require.NotNil(t, s)
	assert.Equal(t, "2025-07-09", *s)
}
