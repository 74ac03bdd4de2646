package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var cien = decimal.NewFromInt(100)

type CaptacionService interface {
	Crear(ctx context.Context, userID uuid.UUID, req dto.CaptacionRequest) (*dto.CaptacionResponse, error)
	Obtener(ctx context.Context, sc scope.Scope, id uuid.UUID) (*dto.CaptacionResponse, error)
	Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.CaptacionRequest) (*dto.CaptacionResponse, error)
	Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error
	Listar(ctx context.Context, sc scope.Scope, filter dto.CaptacionFilter) (*dto.CaptacionListResponse, error)
}

type captacionService struct {
	repo repository.CaptacionRepository
}

func NewCaptacionService(repo repository.CaptacionRepository) CaptacionService {
	return &captacionService{repo: repo}
}

func (s *captacionService) Crear(ctx context.Context, userID uuid.UUID, req dto.CaptacionRequest) (*dto.CaptacionResponse, error) {
	c, err := captacionFromRequest(req)
	if err != nil {
		return nil, err
	}
	c.UserID = userID
	recomputarDerivados(c)

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return captacionToResponse(c), nil
}

func (s *captacionService) Obtener(ctx context.Context, sc scope.Scope, id uuid.UUID) (*dto.CaptacionResponse, error) {
	c, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return captacionToResponse(c), nil
}

func (s *captacionService) Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.CaptacionRequest) (*dto.CaptacionResponse, error) {
	existing, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	c, err := captacionFromRequest(req)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.UserID = existing.UserID
	c.CreatedAt = existing.CreatedAt
	recomputarDerivados(c)

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return captacionToResponse(c), nil
}

func (s *captacionService) Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error {
	if _, err := s.findVisible(ctx, sc, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *captacionService) Listar(ctx context.Context, sc scope.Scope, filter dto.CaptacionFilter) (*dto.CaptacionListResponse, error) {
	rows, err := s.repo.List(ctx, sc.OwnerIDs, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.CaptacionListResponse{Data: make([]dto.CaptacionResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = *captacionToResponse(&rows[i])
	}
	return resp, nil
}

// findVisible loads the captacion and enforces ownership against the scope.
// A row outside the scope answers the same as a missing one.
func (s *captacionService) findVisible(ctx context.Context, sc scope.Scope, id uuid.UUID) (*model.Captacion, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("captacion no encontrada")
	}
	if !sc.Contains(c.UserID) {
		return nil, errors.New("captacion no encontrada")
	}
	return c, nil
}

// recomputarDerivados refreshes the money fields the client never supplies:
//
//	porcentaje_diferencia_precio = (oferta - publicado) / publicado * 100
//	honorarios_totales           = oferta * (pct1 + pct2) / 100
//	comision_agente_monto        = honorarios_totales * pct_agente / 100
//
// Each output is nil whenever an input it depends on is missing.
func recomputarDerivados(c *model.Captacion) {
	c.PorcentajeDiferenciaPrecio = nil
	c.HonorariosTotales = nil
	c.ComisionAgenteMonto = nil

	if c.Oferta == nil {
		return
	}

	if !c.ValorPublicado.IsZero() {
		diff := c.Oferta.Sub(c.ValorPublicado).Div(c.ValorPublicado).Mul(cien).Round(1)
		c.PorcentajeDiferenciaPrecio = &diff
	}

	if c.HonorariosPorcentaje1 != nil || c.HonorariosPorcentaje2 != nil {
		pct := decimal.Zero
		if c.HonorariosPorcentaje1 != nil {
			pct = pct.Add(*c.HonorariosPorcentaje1)
		}
		if c.HonorariosPorcentaje2 != nil {
			pct = pct.Add(*c.HonorariosPorcentaje2)
		}
		hon := c.Oferta.Mul(pct).Div(cien).Round(2)
		c.HonorariosTotales = &hon

		if c.ComisionAgentePorcentaje != nil {
			com := hon.Mul(*c.ComisionAgentePorcentaje).Div(cien).Round(2)
			c.ComisionAgenteMonto = &com
		}
	}
}

func captacionFromRequest(req dto.CaptacionRequest) (*model.Captacion, error) {
	fechaAlta, err := dto.ParseFecha(req.FechaAlta)
	if err != nil {
		return nil, fmt.Errorf("fecha_alta invalida: %w", err)
	}

	c := &model.Captacion{
		FechaAlta:    fechaAlta,
		Autorizacion: req.Autorizacion,
		Direccion:    req.Direccion,
		Barrio:       req.Barrio,
		Ciudad:       req.Ciudad,
		Adenda:       req.Adenda,
		Operacion:    req.Operacion,
		Moneda:       req.Moneda,

		ValorPublicado: req.ValorPublicado,
		Oferta:         req.Oferta,

		HonorariosPorcentaje1:    req.HonorariosPorcentaje1,
		HonorariosPorcentaje2:    req.HonorariosPorcentaje2,
		ComisionAgentePorcentaje: req.ComisionAgentePorcentaje,

		MillasViajes:  req.MillasViajes,
		Observaciones: req.Observaciones,
	}
	if c.Moneda == "" {
		c.Moneda = "USD"
	}

	for _, f := range []struct {
		nombre string
		src    *string
		dst    **time.Time
	}{
		{"vence", req.Vence, &c.Vence},
		{"fecha_baja", req.FechaBaja, &c.FechaBaja},
		{"fecha_reserva", req.FechaReserva, &c.FechaReserva},
		{"fecha_aceptacion", req.FechaAceptacion, &c.FechaAceptacion},
		{"fecha_notificacion", req.FechaNotificacion, &c.FechaNotificacion},
		{"fecha_refuerzo", req.FechaRefuerzo, &c.FechaRefuerzo},
		{"fecha_cierre", req.FechaCierre, &c.FechaCierre},
	} {
		t, err := dto.ParseFechaPtr(f.src)
		if err != nil {
			return nil, fmt.Errorf("%s invalida: %w", f.nombre, err)
		}
		*f.dst = t
	}

	return c, nil
}

func captacionToResponse(c *model.Captacion) *dto.CaptacionResponse {
	return &dto.CaptacionResponse{
		ID:           c.ID.String(),
		UserID:       c.UserID.String(),
		FechaAlta:    dto.Fecha(c.FechaAlta),
		Autorizacion: c.Autorizacion,
		Direccion:    c.Direccion,
		Barrio:       c.Barrio,
		Ciudad:       c.Ciudad,
		Vence:        dto.FechaPtr(c.Vence),
		Adenda:       c.Adenda,
		Operacion:    c.Operacion,
		Moneda:       c.Moneda,

		ValorPublicado:             c.ValorPublicado,
		Oferta:                     c.Oferta,
		PorcentajeDiferenciaPrecio: c.PorcentajeDiferenciaPrecio,

		FechaBaja:         dto.FechaPtr(c.FechaBaja),
		FechaReserva:      dto.FechaPtr(c.FechaReserva),
		FechaAceptacion:   dto.FechaPtr(c.FechaAceptacion),
		FechaNotificacion: dto.FechaPtr(c.FechaNotificacion),
		FechaRefuerzo:     dto.FechaPtr(c.FechaRefuerzo),
		FechaCierre:       dto.FechaPtr(c.FechaCierre),

		HonorariosPorcentaje1:    c.HonorariosPorcentaje1,
		HonorariosPorcentaje2:    c.HonorariosPorcentaje2,
		HonorariosTotales:        c.HonorariosTotales,
		ComisionAgentePorcentaje: c.ComisionAgentePorcentaje,
		ComisionAgenteMonto:      c.ComisionAgenteMonto,

		MillasViajes:  c.MillasViajes,
		Observaciones: c.Observaciones,
		CreatedAt:     c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
