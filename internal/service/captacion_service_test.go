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
)

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func TestRecomputarDerivados(t *testing.T) {
	c := &model.Captacion{
		ValorPublicado:           decimal.NewFromInt(100000),
		Oferta:                   decPtr(95000),
		HonorariosPorcentaje1:    decPtr(3),
		HonorariosPorcentaje2:    decPtr(1),
		ComisionAgentePorcentaje: decPtr(50),
	}

	recomputarDerivados(c)

	require.NotNil(t, c.PorcentajeDiferenciaPrecio)
	assert.Equal(t, "-5.0", c.PorcentajeDiferenciaPrecio.StringFixed(1))
	require.NotNil(t, c.HonorariosTotales)
	assert.Equal(t, "3800.00", c.HonorariosTotales.StringFixed(2))
	require.NotNil(t, c.ComisionAgenteMonto)
	assert.Equal(t, "1900.00", c.ComisionAgenteMonto.StringFixed(2))
}

func TestRecomputarDerivadosSinOferta(t *testing.T) {
	c := &model.Captacion{
		ValorPublicado:        decimal.NewFromInt(100000),
		HonorariosPorcentaje1: decPtr(3),
		// Stale values from a previous save must be cleared.
		HonorariosTotales: decPtr(9999),
	}

	recomputarDerivados(c)

	assert.Nil(t, c.PorcentajeDiferenciaPrecio)
	assert.Nil(t, c.HonorariosTotales)
	assert.Nil(t, c.ComisionAgenteMonto)
}

func TestRecomputarDerivadosValorPublicadoCero(t *testing.T) {
	c := &model.Captacion{
		Oferta:                decPtr(95000),
		HonorariosPorcentaje1: decPtr(3),
	}

	recomputarDerivados(c)

	// No division by a zero published price.
	assert.Nil(t, c.PorcentajeDiferenciaPrecio)
	require.NotNil(t, c.HonorariosTotales)
	assert.Equal(t, "2850.00", c.HonorariosTotales.StringFixed(2))
}

func TestCrearYObtenerCaptacion(t *testing.T) {
	userID := uuid.New()
	repo := newMemCaptacionRepo()
	svc := NewCaptacionService(repo)

	resp, err := svc.Crear(context.Background(), userID, dto.CaptacionRequest{
		FechaAlta:      "2025-01-10",
		Direccion:      "Av. Santa Fe 2500",
		Operacion:      "Venta",
		Moneda:         "USD",
		ValorPublicado: decimal.NewFromInt(120000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Av. Santa Fe 2500", resp.Direccion)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	got, err := svc.Obtener(context.Background(), scope.Single(scope.RoleVendedor, userID), id)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)

	_, err = svc.Obtener(context.Background(), scope.Single(scope.RoleVendedor, uuid.New()), id)
	require.Error(t, err)
	assert.EqualError(t, err, "captacion no encontrada")
}

func TestActualizarCaptacionPreservaDuenio(t *testing.T) {
	userID := uuid.New()
	repo := newMemCaptacionRepo()
	capta := seedCaptacion(t, repo, userID)
	svc := NewCaptacionService(repo)

	resp, err := svc.Actualizar(context.Background(), scope.Single(scope.RoleEncargado, userID), capta.ID, dto.CaptacionRequest{
		FechaAlta:      "2025-01-10",
		Direccion:      "Direccion corregida",
		Operacion:      "Alquiler",
		Moneda:         "ARS",
		ValorPublicado: decimal.NewFromInt(500000),
	})
	require.NoError(t, err)
	assert.Equal(t, "Direccion corregida", resp.Direccion)
	assert.Equal(t, userID.String(), resp.UserID)
}
