package service

import (
	"context"
	"errors"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type ResumenService interface {
	ResumenAnual(ctx context.Context, userID uuid.UUID, anio int) (*dto.ResumenAnualResponse, error)
	ResumenEquipo(ctx context.Context, managerID uuid.UUID, sc scope.Scope, anio int) (*dto.ResumenEquipoResponse, error)
}

type resumenService struct {
	cierres     repository.CierreRepository
	captaciones repository.CaptacionRepository
	trackeos    repository.TrackeoRepository
	objetivos   repository.ObjetivoRepository
	profiles    repository.ProfileRepository
}

func NewResumenService(
	cierres repository.CierreRepository,
	captaciones repository.CaptacionRepository,
	trackeos repository.TrackeoRepository,
	objetivos repository.ObjetivoRepository,
	profiles repository.ProfileRepository,
) ResumenService {
	return &resumenService{
		cierres:     cierres,
		captaciones: captaciones,
		trackeos:    trackeos,
		objetivos:   objetivos,
		profiles:    profiles,
	}
}

// ResumenAnual builds the full annual KPI bundle of one vendedor. The four
// collection fetches run concurrently and fail fast: one rejected fetch aborts
// the whole view rather than rendering partial KPIs.
func (s *resumenService) ResumenAnual(ctx context.Context, userID uuid.UUID, anio int) (*dto.ResumenAnualResponse, error) {
	owner := []uuid.UUID{userID}
	rango := dto.RangoAnio(anio)

	var (
		cierres     []model.Cierre
		captaciones []model.Captacion
		trackeos    []model.Trackeo
		objetivo    *model.Objetivo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		cierres, err = s.cierres.List(gctx, owner, &rango, repository.MaxCierresResumen)
		return err
	})
	g.Go(func() error {
		var err error
		captaciones, err = s.captaciones.List(gctx, owner, dto.CaptacionFilter{Limit: repository.MaxCaptaciones})
		return err
	})
	g.Go(func() error {
		var err error
		trackeos, err = s.trackeos.List(gctx, owner, &rango)
		return err
	})
	g.Go(func() error {
		o, err := s.objetivos.FindByUserAnio(gctx, userID, anio)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil // sin objetivo: attainment stays null
			}
			return err
		}
		objetivo = o
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ArmarResumen(userID, anio, cierres, captaciones, trackeos, objetivo), nil
}

// ResumenEquipo computes per-vendedor metrics independently over the manager's
// resolved scope, then folds them into the team totals.
func (s *resumenService) ResumenEquipo(ctx context.Context, managerID uuid.UUID, sc scope.Scope, anio int) (*dto.ResumenEquipoResponse, error) {
	perfiles, err := s.profiles.ListByIDs(ctx, sc.OwnerIDs)
	if err != nil {
		return nil, err
	}

	resumenes := make([]*dto.ResumenAnualResponse, len(sc.OwnerIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, vid := range sc.OwnerIDs {
		i, vid := i, vid
		g.Go(func() error {
			r, err := s.ResumenAnual(gctx, vid, anio)
			if err != nil {
				return err
			}
			resumenes[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	porID := make(map[uuid.UUID]model.Profile, len(perfiles))
	for _, p := range perfiles {
		porID[p.ID] = p
	}

	resp := &dto.ResumenEquipoResponse{
		ManagerID:  managerID.String(),
		Anio:       anio,
		Vendedores: make([]dto.VendedorResumen, len(sc.OwnerIDs)),
		Equipo:     *resumenVacio("", anio),
	}
	for i, vid := range sc.OwnerIDs {
		v := dto.VendedorResumen{
			VendedorID:           vid.String(),
			ResumenAnualResponse: *resumenes[i],
		}
		if p, ok := porID[vid]; ok {
			v.Nombre = p.FullName
			v.Email = p.Email
		}
		resp.Vendedores[i] = v
		sumarResumen(&resp.Equipo, resumenes[i])
	}
	return resp, nil
}

// ArmarResumen folds raw rows into the KPI bundle. Money sums stay raw until
// the final Round(2) so aggregate rounding never compounds.
func ArmarResumen(userID uuid.UUID, anio int, cierres []model.Cierre, captaciones []model.Captacion, trackeos []model.Trackeo, objetivo *model.Objetivo) *dto.ResumenAnualResponse {
	resumen := resumenVacio(userID.String(), anio)

	valor, honorarios, comisiones := decimal.Zero, decimal.Zero, decimal.Zero
	mesValor := make([]decimal.Decimal, 12)
	mesHonorarios := make([]decimal.Decimal, 12)
	mesComisiones := make([]decimal.Decimal, 12)

	for i := range cierres {
		c := &cierres[i]
		hon := HonorariosDe(c)
		com := ComisionDe(c)

		resumen.TotalCierres++
		resumen.TotalPuntas += c.Puntas
		valor = valor.Add(c.ValorCierre)
		honorarios = honorarios.Add(hon)
		comisiones = comisiones.Add(com)

		m := int(c.Fecha.Month()) - 1
		resumen.PorMes[m].Cierres++
		resumen.PorMes[m].Puntas += c.Puntas
		mesValor[m] = mesValor[m].Add(c.ValorCierre)
		mesHonorarios[m] = mesHonorarios[m].Add(hon)
		mesComisiones[m] = mesComisiones[m].Add(com)
	}

	resumen.ValorCerrado = valor.Round(2)
	resumen.HonorariosTotal = honorarios.Round(2)
	resumen.ComisionesTotal = comisiones.Round(2)
	for m := 0; m < 12; m++ {
		resumen.PorMes[m].ValorCerrado = mesValor[m].Round(2)
		resumen.PorMes[m].Honorarios = mesHonorarios[m].Round(2)
		resumen.PorMes[m].Comisiones = mesComisiones[m].Round(2)
	}

	resumen.Captaciones = particionCaptaciones(captaciones)
	resumen.Trackeo = totalesTrackeo(trackeos)

	if objetivo != nil {
		resumen.Objetivo = &dto.ObjetivoAvance{
			Anio:                     objetivo.Anio,
			ObjetivoPuntas:           objetivo.ObjetivoPuntas,
			ObjetivoFacturacionTotal: objetivo.ObjetivoFacturacionTotal,
			ObjetivoComisionesAgente: objetivo.ObjetivoComisionesAgente,
			AvancePuntasPct: PorcentajeAvance(
				decimal.NewFromInt(int64(resumen.TotalPuntas)),
				decimal.NewFromInt(int64(objetivo.ObjetivoPuntas))),
			AvanceFacturacionPct: PorcentajeAvance(honorarios, objetivo.ObjetivoFacturacionTotal),
			AvanceComisionesPct:  PorcentajeAvance(comisiones, objetivo.ObjetivoComisionesAgente),
		}
	}

	return resumen
}

// PorcentajeAvance is actual/target as a percentage rounded to 2 decimals.
// A zero target yields nil: "sin objetivo" is not 0%.
func PorcentajeAvance(actual, target decimal.Decimal) *decimal.Decimal {
	if target.IsZero() {
		return nil
	}
	pct := actual.Div(target).Mul(cien).Round(2)
	return &pct
}

// particionCaptaciones: activa means neither baja nor cierre date is set;
// cerrada counts every row with a cierre date regardless of baja. The counts
// deliberately overlap with total instead of partitioning it.
func particionCaptaciones(rows []model.Captacion) dto.CaptacionesResumen {
	p := dto.CaptacionesResumen{Total: len(rows)}
	for i := range rows {
		if rows[i].FechaCierre != nil {
			p.Cerradas++
		}
		if rows[i].FechaBaja == nil && rows[i].FechaCierre == nil {
			p.Activas++
		}
	}
	return p
}

func totalesTrackeo(rows []model.Trackeo) dto.TrackeoResumen {
	t := dto.TrackeoResumen{DiasRegistrados: len(rows)}
	honorarios := decimal.Zero
	for i := range rows {
		r := &rows[i]
		t.Llamadas += r.Llamadas
		t.Visitas += r.Visitas
		t.Consultas += r.Consultas
		t.Busquedas += r.Busquedas
		t.Captaciones += r.Captaciones
		t.ReservasPuntas += r.ReservasPuntas
		t.CierresPuntas += r.CierresOperacionesPuntas
		honorarios = honorarios.Add(r.CierresHonorarios)
	}
	t.CierresHonorarios = honorarios.Round(2)
	return t
}

// resumenVacio builds the zero-valued bundle with its 12 fixed monthly
// buckets, so even an empty year renders a complete axis.
func resumenVacio(userID string, anio int) *dto.ResumenAnualResponse {
	r := &dto.ResumenAnualResponse{
		UserID: userID,
		Anio:   anio,
		PorMes: make([]dto.MesBucket, 12),
	}
	for m := 0; m < 12; m++ {
		r.PorMes[m] = dto.MesBucket{Mes: m + 1, Nombre: nombresMeses[m]}
	}
	return r
}

// sumarResumen folds src into the team accumulator bucket by bucket.
// Attainment percentages are per-vendedor and never summed.
func sumarResumen(equipo *dto.ResumenAnualResponse, src *dto.ResumenAnualResponse) {
	equipo.TotalCierres += src.TotalCierres
	equipo.TotalPuntas += src.TotalPuntas
	equipo.ValorCerrado = equipo.ValorCerrado.Add(src.ValorCerrado)
	equipo.HonorariosTotal = equipo.HonorariosTotal.Add(src.HonorariosTotal)
	equipo.ComisionesTotal = equipo.ComisionesTotal.Add(src.ComisionesTotal)

	equipo.Captaciones.Total += src.Captaciones.Total
	equipo.Captaciones.Activas += src.Captaciones.Activas
	equipo.Captaciones.Cerradas += src.Captaciones.Cerradas

	equipo.Trackeo.DiasRegistrados += src.Trackeo.DiasRegistrados
	equipo.Trackeo.Llamadas += src.Trackeo.Llamadas
	equipo.Trackeo.Visitas += src.Trackeo.Visitas
	equipo.Trackeo.Consultas += src.Trackeo.Consultas
	equipo.Trackeo.Busquedas += src.Trackeo.Busquedas
	equipo.Trackeo.Captaciones += src.Trackeo.Captaciones
	equipo.Trackeo.ReservasPuntas += src.Trackeo.ReservasPuntas
	equipo.Trackeo.CierresPuntas += src.Trackeo.CierresPuntas
	equipo.Trackeo.CierresHonorarios = equipo.Trackeo.CierresHonorarios.Add(src.Trackeo.CierresHonorarios)

	for m := 0; m < 12; m++ {
		equipo.PorMes[m].Cierres += src.PorMes[m].Cierres
		equipo.PorMes[m].Puntas += src.PorMes[m].Puntas
		equipo.PorMes[m].ValorCerrado = equipo.PorMes[m].ValorCerrado.Add(src.PorMes[m].ValorCerrado)
		equipo.PorMes[m].Honorarios = equipo.PorMes[m].Honorarios.Add(src.PorMes[m].Honorarios)
		equipo.PorMes[m].Comisiones = equipo.PorMes[m].Comisiones.Add(src.PorMes[m].Comisiones)
	}
}
