package service

import (
	"context"
	"errors"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ticketComisionBase: the puntas target assumes a 3% fee over the average
// portfolio ticket, so objetivo_puntas = round((facturacion / 0.03) / ticket).
var ticketComisionBase = decimal.NewFromFloat(0.03)

var nombresMeses = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

type ObjetivoService interface {
	Guardar(ctx context.Context, userID uuid.UUID, req dto.ObjetivoRequest) (*dto.ObjetivoResponse, error)
	Obtener(ctx context.Context, sc scope.Scope, userID uuid.UUID, anio int) (*dto.ObjetivoResponse, error)
	Listar(ctx context.Context, sc scope.Scope, anio int) (*dto.ObjetivoListResponse, error)
	SubObjetivos(ctx context.Context, sc scope.Scope, userID uuid.UUID, anio int) (*dto.SubObjetivosResponse, error)
}

type objetivoService struct {
	repo repository.ObjetivoRepository
}

func NewObjetivoService(repo repository.ObjetivoRepository) ObjetivoService {
	return &objetivoService{repo: repo}
}

// Guardar upserts the caller's goal row for the year. The derived targets are
// recomputed server-side on every save; a weight distribution that does not
// sum to 100 is accepted and logged, never rejected.
func (s *objetivoService) Guardar(ctx context.Context, userID uuid.UUID, req dto.ObjetivoRequest) (*dto.ObjetivoResponse, error) {
	pesos := req.Pesos.EnOrden()
	sumaPesos := decimal.Zero
	for _, p := range pesos {
		sumaPesos = sumaPesos.Add(p)
	}
	if !sumaPesos.Equal(cien) {
		log.Warn().
			Str("user_id", userID.String()).
			Int("anio", req.Anio).
			Str("suma_pesos", sumaPesos.String()).
			Msg("pesos mensuales no suman 100")
	}

	o, err := s.repo.FindByUserAnio(ctx, userID, req.Anio)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		o = &model.Objetivo{UserID: userID, Anio: req.Anio}
	}

	o.TicketPromedioCartera = req.TicketPromedioCartera
	o.ComisionAgentePorcentaje = req.ComisionAgentePorcentaje
	o.ObjetivoFacturacionTotal = req.ObjetivoFacturacionTotal
	o.GastosPersonalesAnio = req.GastosPersonalesAnio
	o.InversionNegocioAnio = req.InversionNegocioAnio
	o.AhorroAnio = req.AhorroAnio
	o.SuenosAnio = req.SuenosAnio

	o.PesoEnero, o.PesoFebrero, o.PesoMarzo, o.PesoAbril = pesos[0], pesos[1], pesos[2], pesos[3]
	o.PesoMayo, o.PesoJunio, o.PesoJulio, o.PesoAgosto = pesos[4], pesos[5], pesos[6], pesos[7]
	o.PesoSeptiembre, o.PesoOctubre, o.PesoNoviembre, o.PesoDiciembre = pesos[8], pesos[9], pesos[10], pesos[11]

	recomputarObjetivo(o)

	if o.ID == uuid.Nil {
		err = s.repo.Create(ctx, o)
	} else {
		err = s.repo.Update(ctx, o)
	}
	if err != nil {
		return nil, err
	}
	return objetivoToResponse(o), nil
}

func (s *objetivoService) Obtener(ctx context.Context, sc scope.Scope, userID uuid.UUID, anio int) (*dto.ObjetivoResponse, error) {
	if !sc.Contains(userID) {
		return nil, errors.New("objetivo no encontrado")
	}
	o, err := s.repo.FindByUserAnio(ctx, userID, anio)
	if err != nil {
		return nil, errors.New("objetivo no encontrado")
	}
	return objetivoToResponse(o), nil
}

func (s *objetivoService) Listar(ctx context.Context, sc scope.Scope, anio int) (*dto.ObjetivoListResponse, error) {
	rows, err := s.repo.List(ctx, sc.OwnerIDs, anio)
	if err != nil {
		return nil, err
	}
	resp := &dto.ObjetivoListResponse{Data: make([]dto.ObjetivoResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = *objetivoToResponse(&rows[i])
	}
	return resp, nil
}

// SubObjetivos allocates the annual targets over 12 months and 4 fixed
// quarters by the stored weight percentages.
func (s *objetivoService) SubObjetivos(ctx context.Context, sc scope.Scope, userID uuid.UUID, anio int) (*dto.SubObjetivosResponse, error) {
	if !sc.Contains(userID) {
		return nil, errors.New("objetivo no encontrado")
	}
	o, err := s.repo.FindByUserAnio(ctx, userID, anio)
	if err != nil {
		return nil, errors.New("objetivo no encontrado")
	}
	return SubObjetivosDe(o), nil
}

// SubObjetivosDe computes the monthly and quarterly proportional allocations:
// sub_target = annual_target * weight / 100. Quarters are the fixed
// consecutive month triples Q1=Ene-Mar .. Q4=Oct-Dic.
func SubObjetivosDe(o *model.Objetivo) *dto.SubObjetivosResponse {
	pesos := o.PesosMensuales()
	puntasAnual := decimal.NewFromInt(int64(o.ObjetivoPuntas))

	resp := &dto.SubObjetivosResponse{
		Anio:       o.Anio,
		Mensuales:  make([]dto.SubObjetivoMes, 12),
		Trimestres: make([]dto.SubObjetivoTrimestre, 4),
	}

	for i := 0; i < 12; i++ {
		peso := pesos[i]
		resp.Mensuales[i] = dto.SubObjetivoMes{
			Mes:         i + 1,
			Nombre:      nombresMeses[i],
			Peso:        peso,
			Puntas:      puntasAnual.Mul(peso).Div(cien).Round(2),
			Facturacion: o.ObjetivoFacturacionTotal.Mul(peso).Div(cien).Round(2),
			Comisiones:  o.ObjetivoComisionesAgente.Mul(peso).Div(cien).Round(2),
		}
	}

	for q := 0; q < 4; q++ {
		peso := pesos[q*3].Add(pesos[q*3+1]).Add(pesos[q*3+2])
		resp.Trimestres[q] = dto.SubObjetivoTrimestre{
			Trimestre:   q + 1,
			Peso:        peso,
			Puntas:      puntasAnual.Mul(peso).Div(cien).Round(2),
			Facturacion: o.ObjetivoFacturacionTotal.Mul(peso).Div(cien).Round(2),
			Comisiones:  o.ObjetivoComisionesAgente.Mul(peso).Div(cien).Round(2),
		}
	}

	return resp
}

// recomputarObjetivo refreshes the derived annual targets from the inputs.
func recomputarObjetivo(o *model.Objetivo) {
	o.ObjetivoComisionesAgente = o.ObjetivoFacturacionTotal.
		Mul(o.ComisionAgentePorcentaje).Div(cien).Round(2)

	if o.TicketPromedioCartera.IsPositive() {
		puntas := o.ObjetivoFacturacionTotal.
			Div(ticketComisionBase).
			Div(o.TicketPromedioCartera).
			Round(0)
		o.ObjetivoPuntas = int(puntas.IntPart())
	} else {
		o.ObjetivoPuntas = 0
	}
}

func objetivoToResponse(o *model.Objetivo) *dto.ObjetivoResponse {
	return &dto.ObjetivoResponse{
		ID:     o.ID.String(),
		UserID: o.UserID.String(),
		Anio:   o.Anio,

		TicketPromedioCartera:    o.TicketPromedioCartera,
		ComisionAgentePorcentaje: o.ComisionAgentePorcentaje,
		ObjetivoPuntas:           o.ObjetivoPuntas,
		ObjetivoFacturacionTotal: o.ObjetivoFacturacionTotal,
		ObjetivoComisionesAgente: o.ObjetivoComisionesAgente,

		GastosPersonalesAnio: o.GastosPersonalesAnio,
		InversionNegocioAnio: o.InversionNegocioAnio,
		AhorroAnio:           o.AhorroAnio,
		SuenosAnio:           o.SuenosAnio,

		Pesos: dto.PesosMensualesDTO{
			Enero: o.PesoEnero, Febrero: o.PesoFebrero, Marzo: o.PesoMarzo,
			Abril: o.PesoAbril, Mayo: o.PesoMayo, Junio: o.PesoJunio,
			Julio: o.PesoJulio, Agosto: o.PesoAgosto, Septiembre: o.PesoSeptiembre,
			Octubre: o.PesoOctubre, Noviembre: o.PesoNoviembre, Diciembre: o.PesoDiciembre,
		},
	}
}
