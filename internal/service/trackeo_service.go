package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
)

type TrackeoService interface {
	Crear(ctx context.Context, userID uuid.UUID, req dto.TrackeoRequest) (*dto.TrackeoResponse, error)
	Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.TrackeoRequest) (*dto.TrackeoResponse, error)
	Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error
	Listar(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) (*dto.TrackeoListResponse, error)
}

type trackeoService struct {
	repo repository.TrackeoRepository
}

func NewTrackeoService(repo repository.TrackeoRepository) TrackeoService {
	return &trackeoService{repo: repo}
}

func (s *trackeoService) Crear(ctx context.Context, userID uuid.UUID, req dto.TrackeoRequest) (*dto.TrackeoResponse, error) {
	t, err := trackeoFromRequest(req)
	if err != nil {
		return nil, err
	}
	t.UserID = userID
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return trackeoToResponse(t), nil
}

func (s *trackeoService) Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.TrackeoRequest) (*dto.TrackeoResponse, error) {
	existing, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	t, err := trackeoFromRequest(req)
	if err != nil {
		return nil, err
	}
	t.ID = existing.ID
	t.UserID = existing.UserID
	t.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return trackeoToResponse(t), nil
}

func (s *trackeoService) Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error {
	if _, err := s.findVisible(ctx, sc, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *trackeoService) Listar(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) (*dto.TrackeoListResponse, error) {
	rango, err := filter.Rango()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, sc.OwnerIDs, rango)
	if err != nil {
		return nil, err
	}
	resp := &dto.TrackeoListResponse{Data: make([]dto.TrackeoResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = *trackeoToResponse(&rows[i])
	}
	return resp, nil
}

func (s *trackeoService) findVisible(ctx context.Context, sc scope.Scope, id uuid.UUID) (*model.Trackeo, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("registro de trackeo no encontrado")
	}
	if !sc.Contains(t.UserID) {
		return nil, errors.New("registro de trackeo no encontrado")
	}
	return t, nil
}

func trackeoFromRequest(req dto.TrackeoRequest) (*model.Trackeo, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha invalida: %w", err)
	}
	return &model.Trackeo{
		Fecha:            fecha,
		Llamadas:         req.Llamadas,
		R1:               req.R1,
		Expertise:        req.Expertise,
		Captaciones:      req.Captaciones,
		CaptacionesValor: req.CaptacionesValor,
		Busquedas:        req.Busquedas,
		Consultas:        req.Consultas,
		Visitas:          req.Visitas,
		R2:               req.R2,

		ReservasPuntas:      req.ReservasPuntas,
		ReservasValorOferta: req.ReservasValorOferta,

		DevolucionesPuntas:     req.DevolucionesPuntas,
		DevolucionesHonorarios: req.DevolucionesHonorarios,

		CierresOperacionesPuntas: req.CierresOperacionesPuntas,
		CierresHonorarios:        req.CierresHonorarios,
	}, nil
}

func trackeoToResponse(t *model.Trackeo) *dto.TrackeoResponse {
	return &dto.TrackeoResponse{
		ID:               t.ID.String(),
		UserID:           t.UserID.String(),
		Fecha:            dto.Fecha(t.Fecha),
		Llamadas:         t.Llamadas,
		R1:               t.R1,
		Expertise:        t.Expertise,
		Captaciones:      t.Captaciones,
		CaptacionesValor: t.CaptacionesValor,
		Busquedas:        t.Busquedas,
		Consultas:        t.Consultas,
		Visitas:          t.Visitas,
		R2:               t.R2,

		ReservasPuntas:      t.ReservasPuntas,
		ReservasValorOferta: t.ReservasValorOferta,

		DevolucionesPuntas:     t.DevolucionesPuntas,
		DevolucionesHonorarios: t.DevolucionesHonorarios,

		CierresOperacionesPuntas: t.CierresOperacionesPuntas,
		CierresHonorarios:        t.CierresHonorarios,
	}
}
