package service

import (
	"context"
	"errors"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AdminService interface {
	ListarPerfiles(ctx context.Context) (*dto.PerfilListResponse, error)
	CambiarRol(ctx context.Context, userID uuid.UUID, req dto.CambiarRolRequest) (*dto.PerfilResponse, error)
	ListarAsignaciones(ctx context.Context) (*dto.AsignacionListResponse, error)
	CrearAsignacion(ctx context.Context, req dto.AsignacionRequest) (*dto.AsignacionResponse, error)
	EliminarAsignacion(ctx context.Context, managerID, vendedorID uuid.UUID) error
}

type adminService struct {
	profiles repository.ProfileRepository
	managers repository.ManagerRepository
	resolver *scope.Resolver
}

func NewAdminService(profiles repository.ProfileRepository, managers repository.ManagerRepository, resolver *scope.Resolver) AdminService {
	return &adminService{profiles: profiles, managers: managers, resolver: resolver}
}

func (s *adminService) ListarPerfiles(ctx context.Context) (*dto.PerfilListResponse, error) {
	rows, err := s.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.PerfilListResponse{Data: make([]dto.PerfilResponse, len(rows)), Total: len(rows)}
	for i := range rows {
		resp.Data[i] = *perfilToResponse(&rows[i])
	}
	return resp, nil
}

// CambiarRol updates a profile's role. Demoting an encargado also drops that
// manager's assignment edges in the same transaction, so no stale visibility
// survives the demotion. The role cache entry is invalidated afterwards.
func (s *adminService) CambiarRol(ctx context.Context, userID uuid.UUID, req dto.CambiarRolRequest) (*dto.PerfilResponse, error) {
	nuevoRol, err := scope.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	p, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}

	eraEncargado := p.Role == string(scope.RoleEncargado)
	txErr := runTx(ctx, s.profiles.DB(), func(tx *gorm.DB) error {
		if eraEncargado && nuevoRol != scope.RoleEncargado {
			if err := s.managers.DeleteAssignmentsByManager(ctx, tx, userID); err != nil {
				return err
			}
		}
		return s.profiles.UpdateRole(ctx, tx, userID, string(nuevoRol))
	})
	if txErr != nil {
		return nil, txErr
	}

	if s.resolver != nil {
		s.resolver.Invalidate(ctx, userID)
	}

	p.Role = string(nuevoRol)
	return perfilToResponse(p), nil
}

func (s *adminService) ListarAsignaciones(ctx context.Context) (*dto.AsignacionListResponse, error) {
	edges, err := s.managers.ListAssignments(ctx)
	if err != nil {
		return nil, err
	}
	resp := &dto.AsignacionListResponse{Data: make([]dto.AsignacionResponse, len(edges)), Total: len(edges)}
	for i, e := range edges {
		resp.Data[i] = asignacionToResponse(&e)
	}
	return resp, nil
}

func (s *adminService) CrearAsignacion(ctx context.Context, req dto.AsignacionRequest) (*dto.AsignacionResponse, error) {
	managerID, err := uuid.Parse(req.ManagerID)
	if err != nil {
		return nil, errors.New("manager_id invalido")
	}
	vendedorID, err := uuid.Parse(req.VendedorID)
	if err != nil {
		return nil, errors.New("vendedor_id invalido")
	}
	if managerID == vendedorID {
		return nil, errors.New("un encargado no puede asignarse a si mismo")
	}

	manager, err := s.profiles.FindByID(ctx, managerID)
	if err != nil {
		return nil, errors.New("encargado no encontrado")
	}
	if manager.Role != string(scope.RoleEncargado) && manager.Role != string(scope.RoleAdmin) {
		return nil, errors.New("el perfil asignado como manager no es encargado")
	}
	vendedor, err := s.profiles.FindByID(ctx, vendedorID)
	if err != nil {
		return nil, errors.New("vendedor no encontrado")
	}
	if vendedor.Role != string(scope.RoleVendedor) {
		return nil, errors.New("el perfil asignado no es vendedor")
	}

	edge := &model.ManagerVendedor{ManagerID: managerID, VendedorID: vendedorID}
	if err := s.managers.CreateAssignment(ctx, edge); err != nil {
		return nil, err
	}
	resp := asignacionToResponse(edge)
	return &resp, nil
}

func (s *adminService) EliminarAsignacion(ctx context.Context, managerID, vendedorID uuid.UUID) error {
	return s.managers.DeleteAssignment(ctx, managerID, vendedorID)
}

func asignacionToResponse(e *model.ManagerVendedor) dto.AsignacionResponse {
	return dto.AsignacionResponse{
		ID:         e.ID.String(),
		ManagerID:  e.ManagerID.String(),
		VendedorID: e.VendedorID.String(),
		CreatedAt:  e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
