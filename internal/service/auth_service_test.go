package service

import (
	"context"
	"errors"
	"testing"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type memProfileRepo struct {
	porID    map[uuid.UUID]*model.Profile
	porEmail map[string]*model.Profile
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{
		porID:    make(map[uuid.UUID]*model.Profile),
		porEmail: make(map[string]*model.Profile),
	}
}

func (r *memProfileRepo) Create(_ context.Context, p *model.Profile) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	clone := *p
	r.porID[p.ID] = &clone
	r.porEmail[p.Email] = &clone
	return nil
}

func (r *memProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Profile, error) {
	p, ok := r.porID[id]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *p
	return &clone, nil
}

func (r *memProfileRepo) FindByEmail(_ context.Context, email string) (*model.Profile, error) {
	p, ok := r.porEmail[email]
	if !ok {
		return nil, errors.New("record not found")
	}
	clone := *p
	return &clone, nil
}

func (r *memProfileRepo) FindRoleByID(ctx context.Context, id uuid.UUID) (string, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

func (r *memProfileRepo) List(_ context.Context) ([]model.Profile, error) {
	var out []model.Profile
	for _, p := range r.porID {
		out = append(out, *p)
	}
	return out, nil
}

func (r *memProfileRepo) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.Profile, error) {
	var out []model.Profile
	for _, id := range ids {
		if p, ok := r.porID[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProfileRepo) UpdateRole(_ context.Context, _ *gorm.DB, id uuid.UUID, role string) error {
	p, ok := r.porID[id]
	if !ok {
		return errors.New("record not found")
	}
	p.Role = role
	return nil
}

func (r *memProfileRepo) DB() *gorm.DB { return nil }

func authConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "clave-de-prueba",
		JWTExpirationHours: 1,
		JWTRefreshHours:    24,
	}
}

func TestSignupCreaVendedorYDevuelveSesion(t *testing.T) {
	repo := newMemProfileRepo()
	svc := NewAuthService(repo, authConfig())

	nombre := "Ana Gomez"
	resp, err := svc.Signup(context.Background(), dto.SignupRequest{
		Email:    "ana@inmo.com",
		Password: "secreto123",
		FullName: &nombre,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "vendedor", resp.User.Role)

	guardado, err := repo.FindByEmail(context.Background(), "ana@inmo.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", guardado.PasswordHash)
}

func TestSignupEmailDuplicado(t *testing.T) {
	repo := newMemProfileRepo()
	svc := NewAuthService(repo, authConfig())

	req := dto.SignupRequest{Email: "ana@inmo.com", Password: "secreto123"}
	_, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), req)
	require.Error(t, err)
	assert.EqualError(t, err, "el email ya esta registrado")
}

func TestLogin(t *testing.T) {
	repo := newMemProfileRepo()
	svc := NewAuthService(repo, authConfig())

	_, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "ana@inmo.com", Password: "secreto123"})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.com", Password: "secreto123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// Wrong password and unknown email answer the same message.
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "ana@inmo.com", Password: "otra"})
	assert.EqualError(t, err, "credenciales invalidas")
	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "nadie@inmo.com", Password: "secreto123"})
	assert.EqualError(t, err, "credenciales invalidas")
}

func TestRefreshRenuevaSesion(t *testing.T) {
	repo := newMemProfileRepo()
	svc := NewAuthService(repo, authConfig())

	sesion, err := svc.Signup(context.Background(), dto.SignupRequest{Email: "ana@inmo.com", Password: "secreto123"})
	require.NoError(t, err)

	renovada, err := svc.Refresh(context.Background(), sesion.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, sesion.User.ID, renovada.User.ID)

	_, err = svc.Refresh(context.Background(), "no.es.un.token")
	require.Error(t, err)
	assert.EqualError(t, err, "refresh token invalido o expirado")
}
