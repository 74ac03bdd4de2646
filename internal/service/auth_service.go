package service

import (
	"context"
	"errors"
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/model"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
}

type authService struct {
	repo repository.ProfileRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.ProfileRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

// Signup registers a new profile. Everyone starts as vendedor; only an admin
// can promote afterwards.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.LoginResponse, error) {
	if _, err := s.repo.FindByEmail(ctx, req.Email); err == nil {
		return nil, errors.New("el email ya esta registrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}
	p := &model.Profile{
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		Role:         string(scope.RoleVendedor),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.buildSession(p)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	p, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("credenciales invalidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("credenciales invalidas")
	}
	return s.buildSession(p)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("refresh token invalido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("claims invalidos")
	}
	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token mal formado")
	}
	uid, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errors.New("token mal formado")
	}

	p, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return nil, errors.New("perfil no encontrado")
	}
	return s.buildSession(p)
}

func (s *authService) buildSession(p *model.Profile) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(p, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(p, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		User:         *perfilToResponse(p),
	}, nil
}

func (s *authService) generateToken(p *model.Profile, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": p.ID.String(),
		"email":   p.Email,
		"role":    p.Role,
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func perfilToResponse(p *model.Profile) *dto.PerfilResponse {
	return &dto.PerfilResponse{
		ID:       p.ID.String(),
		Email:    p.Email,
		FullName: p.FullName,
		Role:     p.Role,
	}
}
