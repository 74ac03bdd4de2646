package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"sort"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CierreService interface {
	Crear(ctx context.Context, userID uuid.UUID, req dto.CierreRequest) (*dto.CierreResponse, error)
	Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.CierreRequest) (*dto.CierreResponse, error)
	Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error
	Listar(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) (*dto.CierreListResponse, error)
	ExportarCSV(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) ([]byte, error)
}

type cierreService struct {
	repo        repository.CierreRepository
	captaciones repository.CaptacionRepository
}

func NewCierreService(repo repository.CierreRepository, captaciones repository.CaptacionRepository) CierreService {
	return &cierreService{repo: repo, captaciones: captaciones}
}

// HonorariosDe is the fee earned on a cierre: valor * pct / 100, kept raw.
// Rounding happens once, at response building, so sums never compound
// rounding error.
func HonorariosDe(c *model.Cierre) decimal.Decimal {
	return c.ValorCierre.Mul(c.PorcentajeHonorarios).Div(cien)
}

// ComisionDe is the agent's share of the fee: honorarios * pct_agente / 100.
func ComisionDe(c *model.Cierre) decimal.Decimal {
	return HonorariosDe(c).Mul(c.PorcentajeAgente).Div(cien)
}

func (s *cierreService) Crear(ctx context.Context, userID uuid.UUID, req dto.CierreRequest) (*dto.CierreResponse, error) {
	capID, err := uuid.Parse(req.CaptacionID)
	if err != nil {
		return nil, fmt.Errorf("captacion_id invalido: %w", err)
	}
	capta, err := s.captaciones.FindByID(ctx, capID)
	if err != nil || capta.UserID != userID {
		return nil, errors.New("captacion no encontrada")
	}

	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha invalida: %w", err)
	}

	c := &model.Cierre{
		UserID:               userID,
		CaptacionID:          capID,
		Fecha:                fecha,
		ValorCierre:          req.ValorCierre,
		PorcentajeHonorarios: req.PorcentajeHonorarios,
		PorcentajeAgente:     req.PorcentajeAgente,
		Puntas:               req.Puntas,
		Notas:                req.Notas,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	c.Captacion = capta
	return cierreToResponse(c, nil), nil
}

func (s *cierreService) Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.CierreRequest) (*dto.CierreResponse, error) {
	c, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	capID, err := uuid.Parse(req.CaptacionID)
	if err != nil {
		return nil, fmt.Errorf("captacion_id invalido: %w", err)
	}
	if capID != c.CaptacionID {
		capta, err := s.captaciones.FindByID(ctx, capID)
		if err != nil || capta.UserID != c.UserID {
			return nil, errors.New("captacion no encontrada")
		}
		c.CaptacionID = capID
		c.Captacion = capta
	}

	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, fmt.Errorf("fecha invalida: %w", err)
	}

	c.Fecha = fecha
	c.ValorCierre = req.ValorCierre
	c.PorcentajeHonorarios = req.PorcentajeHonorarios
	c.PorcentajeAgente = req.PorcentajeAgente
	c.Puntas = req.Puntas
	c.Notas = req.Notas

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return cierreToResponse(c, nil), nil
}

func (s *cierreService) Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error {
	if _, err := s.findVisible(ctx, sc, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *cierreService) Listar(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) (*dto.CierreListResponse, error) {
	rango, err := filter.Rango()
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.List(ctx, sc.OwnerIDs, rango, repository.MaxCierres)
	if err != nil {
		return nil, err
	}
	data := EnriquecerCierres(rows)
	return &dto.CierreListResponse{Data: data, Total: len(data)}, nil
}

// EnriquecerCierres sorts the filtered view into ascending date order, derives
// the money fields per row and threads the acumulado scan-sum through it.
// The acumulado belongs to this exact filter and ordering; it is recomputed on
// every request, never cached.
func EnriquecerCierres(rows []model.Cierre) []dto.CierreResponse {
	orden := make([]model.Cierre, len(rows))
	copy(orden, rows)
	sort.SliceStable(orden, func(i, j int) bool { return orden[i].Fecha.Before(orden[j].Fecha) })

	out := make([]dto.CierreResponse, len(orden))
	acumulado := decimal.Zero
	for i := range orden {
		acumulado = acumulado.Add(HonorariosDe(&orden[i]))
		acumRounded := acumulado.Round(2)
		out[i] = *cierreToResponse(&orden[i], &acumRounded)
	}
	return out
}

func (s *cierreService) ExportarCSV(ctx context.Context, sc scope.Scope, filter dto.FechaFilter) ([]byte, error) {
	list, err := s.Listar(ctx, sc, filter)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{
		"fecha", "direccion", "operacion", "moneda", "valor_cierre",
		"porcentaje_honorarios", "honorarios_totales",
		"porcentaje_agente", "comision_agente", "puntas", "acumulado", "notas",
	})
	for _, c := range list.Data {
		direccion, operacion, moneda := "", "", ""
		if c.Captacion != nil {
			direccion, operacion, moneda = c.Captacion.Direccion, c.Captacion.Operacion, c.Captacion.Moneda
		}
		notas := ""
		if c.Notas != nil {
			notas = *c.Notas
		}
		acum := ""
		if c.Acumulado != nil {
			acum = c.Acumulado.StringFixed(2)
		}
		_ = w.Write([]string{
			c.Fecha, direccion, operacion, moneda,
			c.ValorCierre.StringFixed(2),
			c.PorcentajeHonorarios.StringFixed(2),
			c.HonorariosTotales.StringFixed(2),
			c.PorcentajeAgente.StringFixed(2),
			c.ComisionAgente.StringFixed(2),
			fmt.Sprintf("%d", c.Puntas),
			acum, notas,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *cierreService) findVisible(ctx context.Context, sc scope.Scope, id uuid.UUID) (*model.Cierre, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("cierre no encontrado")
	}
	if !sc.Contains(c.UserID) {
		return nil, errors.New("cierre no encontrado")
	}
	return c, nil
}

func cierreToResponse(c *model.Cierre, acumulado *decimal.Decimal) *dto.CierreResponse {
	resp := &dto.CierreResponse{
		ID:                   c.ID.String(),
		UserID:               c.UserID.String(),
		CaptacionID:          c.CaptacionID.String(),
		Fecha:                dto.Fecha(c.Fecha),
		ValorCierre:          c.ValorCierre,
		PorcentajeHonorarios: c.PorcentajeHonorarios,
		PorcentajeAgente:     c.PorcentajeAgente,
		Puntas:               c.Puntas,
		Notas:                c.Notas,

		HonorariosTotales: HonorariosDe(c).Round(2),
		ComisionAgente:    ComisionDe(c).Round(2),
		Acumulado:         acumulado,
	}
	if c.Captacion != nil {
		resp.Captacion = &dto.CierreCaptacionResponse{
			ID:        c.Captacion.ID.String(),
			Direccion: c.Captacion.Direccion,
			Operacion: c.Captacion.Operacion,
			Moneda:    c.Captacion.Moneda,
		}
	}
	return resp
}
