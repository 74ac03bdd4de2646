package router

import (
	"time"

	"github.com/IgnacioAlcaraz/inmobiliaria/internal/config"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/handler"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/infra"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/middleware"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/repository"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/scope"
	"github.com/IgnacioAlcaraz/inmobiliaria/internal/service"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, n8n *infra.N8NClient) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigin))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	profileRepo := repository.NewProfileRepository(db)
	managerRepo := repository.NewManagerRepository(db)
	captacionRepo := repository.NewCaptacionRepository(db)
	cierreRepo := repository.NewCierreRepository(db)
	trackeoRepo := repository.NewTrackeoRepository(db)
	objetivoRepo := repository.NewObjetivoRepository(db)
	contactoRepo := repository.NewContactoRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Resolver — every data read resolves the caller into an owner-id set here
	resolver := scope.NewResolver(profileRepo, managerRepo, rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(profileRepo, cfg)
	captacionSvc := service.NewCaptacionService(captacionRepo)
	cierreSvc := service.NewCierreService(cierreRepo, captacionRepo)
	trackeoSvc := service.NewTrackeoService(trackeoRepo)
	objetivoSvc := service.NewObjetivoService(objetivoRepo)
	contactoSvc := service.NewContactoService(contactoRepo, captacionRepo)
	resumenSvc := service.NewResumenService(cierreRepo, captacionRepo, trackeoRepo, objetivoRepo, profileRepo)
	adminSvc := service.NewAdminService(profileRepo, managerRepo, resolver)
	chatSvc := service.NewChatService(chatRepo, resolver, n8n)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	captacionesH := handler.NewCaptacionesHandler(captacionSvc)
	cierresH := handler.NewCierresHandler(cierreSvc)
	trackeoH := handler.NewTrackeoHandler(trackeoSvc)
	objetivosH := handler.NewObjetivosHandler(objetivoSvc)
	contactosH := handler.NewContactosHandler(contactoSvc)
	resumenH := handler.NewResumenHandler(resumenSvc, profileRepo, cfg.PDFStoragePath)
	equipoH := handler.NewEquipoHandler(resolver, profileRepo, captacionSvc, cierreSvc, trackeoSvc, objetivoSvc, resumenSvc)
	adminH := handler.NewAdminHandler(adminSvc)
	chatH := handler.NewChatHandler(chatSvc)
	agentH := handler.NewAgentHandler(resolver, captacionSvc, cierreSvc, trackeoSvc, objetivoSvc, resumenSvc)
	agentManagerH := handler.NewAgentManagerHandler(resolver, profileRepo, captacionSvc, cierreSvc, trackeoSvc, objetivoSvc, resumenSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, n8n.Breaker()))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/signup", middleware.LoginRateLimiter(), authH.Signup)
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Session API — JWT protected
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/captaciones", captacionesH.Crear)
		v1.GET("/captaciones", captacionesH.Listar)
		v1.GET("/captaciones/:id", captacionesH.Obtener)
		v1.PUT("/captaciones/:id", captacionesH.Actualizar)
		v1.DELETE("/captaciones/:id", captacionesH.Eliminar)

		v1.POST("/cierres", cierresH.Crear)
		v1.GET("/cierres", cierresH.Listar)
		v1.GET("/cierres/export", cierresH.Exportar)
		v1.PUT("/cierres/:id", cierresH.Actualizar)
		v1.DELETE("/cierres/:id", cierresH.Eliminar)

		v1.POST("/trackeo", trackeoH.Crear)
		v1.GET("/trackeo", trackeoH.Listar)
		v1.PUT("/trackeo/:id", trackeoH.Actualizar)
		v1.DELETE("/trackeo/:id", trackeoH.Eliminar)

		v1.PUT("/objetivos", objetivosH.Guardar)
		v1.GET("/objetivos", objetivosH.Obtener)
		v1.GET("/objetivos/subobjetivos", objetivosH.SubObjetivos)

		v1.POST("/contactos", contactosH.Crear)
		v1.GET("/contactos", contactosH.Listar)
		v1.POST("/contactos/tags", contactosH.CrearTag)
		v1.GET("/contactos/tags", contactosH.ListarTags)
		v1.DELETE("/contactos/tags/:id", contactosH.EliminarTag)
		v1.GET("/contactos/:id", contactosH.Obtener)
		v1.PUT("/contactos/:id", contactosH.Actualizar)
		v1.DELETE("/contactos/:id", contactosH.Eliminar)

		v1.GET("/resumen", resumenH.Obtener)
		v1.GET("/resumen/pdf", resumenH.PDF)

		equipo := v1.Group("/equipo", middleware.RequireRole("encargado", "admin"))
		{
			equipo.GET("/vendedores", equipoH.Vendedores)
			equipo.GET("/captaciones", equipoH.Captaciones)
			equipo.GET("/cierres", equipoH.Cierres)
			equipo.GET("/trackeo", equipoH.Trackeo)
			equipo.GET("/objetivos", equipoH.Objetivos)
			equipo.GET("/resumen", equipoH.Resumen)
		}

		admin := v1.Group("/admin", middleware.RequireRole("admin"))
		{
			admin.GET("/perfiles", adminH.ListarPerfiles)
			admin.PUT("/perfiles/:id/rol", adminH.CambiarRol)
			admin.GET("/asignaciones", adminH.ListarAsignaciones)
			admin.POST("/asignaciones", adminH.CrearAsignacion)
			admin.DELETE("/asignaciones", adminH.EliminarAsignacion)
		}
	}

	// Chat relay — session JWT, machine-style envelope on errors handled in svc
	chat := r.Group("/api/chat", jwtMW)
	{
		chat.POST("", chatH.Enviar)
		chat.GET("/historial", chatH.Historial)
	}

	// Machine API — shared secret, identity in body
	agent := r.Group("/api/agent", middleware.AgentAuth(cfg.AgentSecret))
	{
		agent.POST("/captaciones", agentH.Captaciones)
		agent.POST("/cierres", agentH.Cierres)
		agent.POST("/trackeo", agentH.Trackeo)
		agent.POST("/objetivos", agentH.Objetivos)
		agent.POST("/resumen", agentH.Resumen)

		manager := agent.Group("/manager")
		{
			manager.POST("/captaciones", agentManagerH.Captaciones)
			manager.POST("/cierres", agentManagerH.Cierres)
			manager.POST("/trackeo", agentManagerH.Trackeo)
			manager.POST("/objetivos", agentManagerH.Objetivos)
			manager.POST("/vendedores", agentManagerH.Vendedores)
			manager.POST("/resumen", agentManagerH.Resumen)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
