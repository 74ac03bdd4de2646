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
	"gorm.io/gorm"
)

type ContactoService interface {
	Crear(ctx context.Context, userID uuid.UUID, req dto.ContactoRequest) (*dto.ContactoResponse, error)
	Obtener(ctx context.Context, sc scope.Scope, id uuid.UUID) (*dto.ContactoResponse, error)
	Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.ContactoRequest) (*dto.ContactoResponse, error)
	Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error
	Listar(ctx context.Context, sc scope.Scope, filter dto.ContactoFilter) (*dto.ContactoListResponse, error)

	CrearTag(ctx context.Context, userID uuid.UUID, req dto.ContactoTagRequest) (*dto.ContactoTagResponse, error)
	ListarTags(ctx context.Context, userID uuid.UUID) ([]dto.ContactoTagResponse, error)
	EliminarTag(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type contactoService struct {
	repo        repository.ContactoRepository
	captaciones repository.CaptacionRepository
}

func NewContactoService(repo repository.ContactoRepository, captaciones repository.CaptacionRepository) ContactoService {
	return &contactoService{repo: repo, captaciones: captaciones}
}

func (s *contactoService) Crear(ctx context.Context, userID uuid.UUID, req dto.ContactoRequest) (*dto.ContactoResponse, error) {
	c, err := contactoFromRequest(req)
	if err != nil {
		return nil, err
	}
	c.UserID = userID

	tags, caps, err := s.resolverLinks(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	// The row and both link sets commit together; a failed relink rolls the
	// whole create back.
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Create(ctx, tx, c); err != nil {
			return err
		}
		if err := s.repo.ReplaceTags(ctx, tx, c, tags); err != nil {
			return err
		}
		return s.repo.ReplaceCaptaciones(ctx, tx, c, caps)
	})
	if txErr != nil {
		return nil, txErr
	}

	c.Tags = tags
	c.Captaciones = caps
	return contactoToResponse(c), nil
}

func (s *contactoService) Obtener(ctx context.Context, sc scope.Scope, id uuid.UUID) (*dto.ContactoResponse, error) {
	c, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}
	return contactoToResponse(c), nil
}

func (s *contactoService) Actualizar(ctx context.Context, sc scope.Scope, id uuid.UUID, req dto.ContactoRequest) (*dto.ContactoResponse, error) {
	existing, err := s.findVisible(ctx, sc, id)
	if err != nil {
		return nil, err
	}

	c, err := contactoFromRequest(req)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.UserID = existing.UserID
	c.CreatedAt = existing.CreatedAt

	tags, caps, err := s.resolverLinks(ctx, existing.UserID, req)
	if err != nil {
		return nil, err
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Update(ctx, tx, c); err != nil {
			return err
		}
		if err := s.repo.ReplaceTags(ctx, tx, c, tags); err != nil {
			return err
		}
		return s.repo.ReplaceCaptaciones(ctx, tx, c, caps)
	})
	if txErr != nil {
		return nil, txErr
	}

	c.Tags = tags
	c.Captaciones = caps
	return contactoToResponse(c), nil
}

func (s *contactoService) Eliminar(ctx context.Context, sc scope.Scope, id uuid.UUID) error {
	if _, err := s.findVisible(ctx, sc, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *contactoService) Listar(ctx context.Context, sc scope.Scope, filter dto.ContactoFilter) (*dto.ContactoListResponse, error) {
	rows, err := s.repo.List(ctx, sc.OwnerIDs, filter)
	if err != nil {
		return nil, err
	}
	resp := &dto.ContactoListResponse{Data: make([]dto.ContactoResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = *contactoToResponse(&rows[i])
	}
	return resp, nil
}

// CrearTag returns the created tag so the caller merges it into its own state;
// no shared collection is mutated in place.
func (s *contactoService) CrearTag(ctx context.Context, userID uuid.UUID, req dto.ContactoTagRequest) (*dto.ContactoTagResponse, error) {
	t := &model.ContactoTag{UserID: userID, Nombre: req.Nombre}
	if err := s.repo.CreateTag(ctx, t); err != nil {
		return nil, err
	}
	return &dto.ContactoTagResponse{ID: t.ID.String(), Nombre: t.Nombre}, nil
}

func (s *contactoService) ListarTags(ctx context.Context, userID uuid.UUID) ([]dto.ContactoTagResponse, error) {
	tags, err := s.repo.ListTags(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ContactoTagResponse, len(tags))
	for i, t := range tags {
		resp[i] = dto.ContactoTagResponse{ID: t.ID.String(), Nombre: t.Nombre}
	}
	return resp, nil
}

func (s *contactoService) EliminarTag(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	tags, err := s.repo.ListTags(ctx, userID)
	if err != nil {
		return err
	}
	for _, t := range tags {
		if t.ID == id {
			return s.repo.DeleteTag(ctx, id)
		}
	}
	return errors.New("etiqueta no encontrada")
}

// resolverLinks validates the requested link sets against the owner: a tag or
// captacion of another user never enters the link tables.
func (s *contactoService) resolverLinks(ctx context.Context, userID uuid.UUID, req dto.ContactoRequest) ([]model.ContactoTag, []model.Captacion, error) {
	tags := make([]model.ContactoTag, 0, len(req.TagIDs))
	if len(req.TagIDs) > 0 {
		propias, err := s.repo.ListTags(ctx, userID)
		if err != nil {
			return nil, nil, err
		}
		porID := make(map[uuid.UUID]model.ContactoTag, len(propias))
		for _, t := range propias {
			porID[t.ID] = t
		}
		for _, raw := range req.TagIDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("tag_id invalido: %w", err)
			}
			t, ok := porID[id]
			if !ok {
				return nil, nil, errors.New("etiqueta no encontrada")
			}
			tags = append(tags, t)
		}
	}

	caps := make([]model.Captacion, 0, len(req.CaptacionIDs))
	for _, raw := range req.CaptacionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("captacion_id invalido: %w", err)
		}
		c, err := s.captaciones.FindByID(ctx, id)
		if err != nil || c.UserID != userID {
			return nil, nil, errors.New("captacion no encontrada")
		}
		caps = append(caps, *c)
	}

	return tags, caps, nil
}

func (s *contactoService) findVisible(ctx context.Context, sc scope.Scope, id uuid.UUID) (*model.Contacto, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("contacto no encontrado")
	}
	if !sc.Contains(c.UserID) {
		return nil, errors.New("contacto no encontrado")
	}
	return c, nil
}

func contactoFromRequest(req dto.ContactoRequest) (*model.Contacto, error) {
	segFecha, err := dto.ParseFechaPtr(req.SeguimientoFecha)
	if err != nil {
		return nil, fmt.Errorf("seguimiento_fecha invalida: %w", err)
	}

	c := &model.Contacto{
		Nombre:    req.Nombre,
		Apellido:  req.Apellido,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Ubicacion: req.Ubicacion,

		Estado:         req.Estado,
		TipoCliente:    req.TipoCliente,
		FormaPago:      req.FormaPago,
		Motivacion:     req.Motivacion,
		MotivacionOtro: req.MotivacionOtro,
		Notas:          req.Notas,

		SeguimientoFecha:        segFecha,
		SeguimientoRecordatorio: req.SeguimientoRecordatorio,
		SeguimientoPrioridad:    req.SeguimientoPrioridad,
		SeguimientoHecho:        req.SeguimientoHecho,
	}
	if c.Estado == "" {
		c.Estado = "Nuevo"
	}
	if c.SeguimientoPrioridad == "" {
		c.SeguimientoPrioridad = "Media"
	}
	return c, nil
}

func contactoToResponse(c *model.Contacto) *dto.ContactoResponse {
	resp := &dto.ContactoResponse{
		ID:        c.ID.String(),
		UserID:    c.UserID.String(),
		Nombre:    c.Nombre,
		Apellido:  c.Apellido,
		Telefono:  c.Telefono,
		Email:     c.Email,
		Ubicacion: c.Ubicacion,

		Estado:         c.Estado,
		TipoCliente:    c.TipoCliente,
		FormaPago:      c.FormaPago,
		Motivacion:     c.Motivacion,
		MotivacionOtro: c.MotivacionOtro,
		Notas:          c.Notas,

		SeguimientoFecha:        dto.FechaPtr(c.SeguimientoFecha),
		SeguimientoRecordatorio: c.SeguimientoRecordatorio,
		SeguimientoPrioridad:    c.SeguimientoPrioridad,
		SeguimientoHecho:        c.SeguimientoHecho,

		Tags:        make([]dto.ContactoTagResponse, len(c.Tags)),
		Captaciones: make([]dto.ContactoCaptacionResponse, len(c.Captaciones)),
		CreatedAt:   c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	for i, t := range c.Tags {
		resp.Tags[i] = dto.ContactoTagResponse{ID: t.ID.String(), Nombre: t.Nombre}
	}
	for i, p := range c.Captaciones {
		resp.Captaciones[i] = dto.ContactoCaptacionResponse{
			ID:        p.ID.String(),
			Direccion: p.Direccion,
			Operacion: p.Operacion,
		}
	}
	return resp
}
