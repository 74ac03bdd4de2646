package handler

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/apierror"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/dto"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/middleware"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
// The /v1 surface answers tag failures with 422.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	return bindAndValidateWith(c, req, http.StatusUnprocessableEntity)
}

// bindAndValidateWith is bindAndValidate with the tag-failure status chosen by
// the caller. The chat surface folds validation into the plain 400 bucket.
func bindAndValidateWith(c *gin.Context, req interface{}, invalidStatus int) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(invalidStatus, apierror.NewValidation(fields))
		return false
	}
	return true
}

// statusDe maps the shared error taxonomy to an HTTP status: validation 400,
// unauthenticated 401, forbidden 403, empty scope 404, webhook down 502,
// everything else 500.
func statusDe(err error) int {
	switch {
	case errors.Is(err, scope.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, scope.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, scope.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, scope.ErrEmptyScope):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrTrackeoDuplicado):
		return http.StatusBadRequest
	case errors.Is(err, infra.ErrWebhookFallo):
		return http.StatusBadGateway
	case errors.Is(err, infra.ErrWebhookNoConfigurado):
		return http.StatusInternalServerError
	default:
		return 0
	}
}

// fail writes the session-API error envelope. Unmapped errors surface verbatim
// as 400: services keep their messages user-presentable.
func fail(c *gin.Context, err error) {
	status := statusDe(err)
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, apierror.New(err.Error()))
}

// ── Machine API envelope ─────────────────────────────────────────────────────

// agentBind mirrors bindAndValidate for the {ok,error} envelope.
func agentBind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAgent("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.NewAgent("parametros invalidos: "+err.Error()))
		return false
	}
	return true
}

func agentOK(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, dto.NewAgentResponse(data, count))
}

func agentFail(c *gin.Context, err error) {
	status := statusDe(err)
	if status == 0 {
		status = http.StatusInternalServerError
	}
	c.JSON(status, apierror.NewAgent(err.Error()))
}

// ── Caller scope ─────────────────────────────────────────────────────────────

// callerScope builds the single-owner scope of the session caller from the
// JWT claims. Returns false after writing the error response.
func callerScope(c *gin.Context) (scope.Scope, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
		return scope.Scope{}, false
	}
	role, err := scope.ParseRole(middleware.GetClaims(c).Role)
	if err != nil {
		c.JSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
		return scope.Scope{}, false
	}
	return scope.Single(role, id), true
}

// callerID returns the authenticated caller id. Returns false after writing
// the error response.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the :id route parameter.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
