package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/jfrosalesgt/dicki-backend/internal/config"
	"github.com/jfrosalesgt/dicki-backend/internal/handler"
	"github.com/jfrosalesgt/dicki-backend/internal/middleware"
	"github.com/jfrosalesgt/dicki-backend/internal/model"
	"github.com/jfrosalesgt/dicki-backend/internal/repository"
	"github.com/jfrosalesgt/dicki-backend/internal/service"
	"github.com/jfrosalesgt/dicki-backend/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	perfilRepo := repository.NewPerfilRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	moduloRepo := repository.NewModuloRepository(db)
	investigacionRepo := repository.NewInvestigacionRepository(db)
	escenaRepo := repository.NewEscenaRepository(db)
	indicioRepo := repository.NewIndicioRepository(db)
	fiscaliaRepo := repository.NewFiscaliaRepository(db)
	tipoIndicioRepo := repository.NewTipoIndicioRepository(db)
	reportesRepo := repository.NewReportesRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, perfilRepo, roleRepo, moduloRepo, cfg)
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	investigacionSvc := service.NewInvestigacionService(investigacionRepo, usuarioRepo, dispatcher, cfg)
	escenaSvc := service.NewEscenaService(escenaRepo, investigacionRepo)
	indicioSvc := service.NewIndicioService(indicioRepo, escenaRepo, investigacionRepo)
	fiscaliaSvc := service.NewFiscaliaService(fiscaliaRepo)
	tipoIndicioSvc := service.NewTipoIndicioService(tipoIndicioRepo)
	reportesSvc := service.NewReportesService(reportesRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	investigacionesH := handler.NewInvestigacionesHandler(investigacionSvc)
	escenasH := handler.NewEscenasHandler(escenaSvc)
	indiciosH := handler.NewIndiciosHandler(indicioSvc)
	fiscaliasH := handler.NewFiscaliasHandler(fiscaliaSvc)
	tiposIndicioH := handler.NewTiposIndicioHandler(tipoIndicioSvc)
	reportesH := handler.NewReportesHandler(reportesSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public login, authenticated password change)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	r.POST("/v1/auth/cambiar-clave", jwtMW, authH.CambiarClave)
	r.GET("/v1/auth/me", jwtMW, authH.Me)

	// Role sets per original workflow: técnicos register, coordinadores review
	tecnico := middleware.RequireRole(model.RolTecnicoDicri, model.RolAdmin)
	coordinador := middleware.RequireRole(model.RolCoordinadorDicri, model.RolAdmin)
	registro := middleware.RequireRole(model.RolTecnicoDicri, model.RolCoordinadorDicri, model.RolAdmin)
	admin := middleware.RequireRole(model.RolAdmin)

	v1 := r.Group("/v1", jwtMW)
	{
		// Usuarios — administración de cuentas
		usuarios := v1.Group("/usuarios", admin)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.GetByID)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/activar", usuariosH.Activar)
		}

		// Catálogos — lectura para todo usuario autenticado, escritura
		// restringida a coordinación
		v1.GET("/fiscalias", fiscaliasH.Listar)
		v1.GET("/fiscalias/:id", fiscaliasH.GetByID)
		fiscalias := v1.Group("/fiscalias", coordinador)
		{
			fiscalias.POST("", fiscaliasH.Crear)
			fiscalias.PUT("/:id", fiscaliasH.Actualizar)
			fiscalias.DELETE("/:id", fiscaliasH.Eliminar)
		}

		v1.GET("/tipos-indicio", tiposIndicioH.Listar)
		v1.GET("/tipos-indicio/:id", tiposIndicioH.GetByID)
		tipos := v1.Group("/tipos-indicio", coordinador)
		{
			tipos.POST("", tiposIndicioH.Crear)
			tipos.PUT("/:id", tiposIndicioH.Actualizar)
			tipos.DELETE("/:id", tiposIndicioH.Eliminar)
		}

		// Expedientes
		v1.GET("/investigaciones", investigacionesH.Listar)
		v1.GET("/investigaciones/:id", investigacionesH.GetByID)
		v1.POST("/investigaciones", registro, investigacionesH.Crear)
		v1.PUT("/investigaciones/:id", registro, investigacionesH.Actualizar)
		v1.DELETE("/investigaciones/:id", coordinador, investigacionesH.Eliminar)

		// Flujo de revisión
		v1.POST("/investigaciones/:id/enviar-revision", tecnico, investigacionesH.EnviarARevision)
		v1.POST("/investigaciones/:id/aprobar", coordinador, investigacionesH.Aprobar)
		v1.POST("/investigaciones/:id/rechazar", coordinador, investigacionesH.Rechazar)

		// Escenas anidadas al expediente
		v1.GET("/investigaciones/:id/escenas", escenasH.ListarPorInvestigacion)
		v1.POST("/investigaciones/:id/escenas", registro, escenasH.Crear)
		v1.GET("/investigaciones/:id/indicios", indiciosH.ListarPorInvestigacion)

		v1.GET("/escenas/:id", escenasH.GetByID)
		v1.PUT("/escenas/:id", registro, escenasH.Actualizar)
		v1.DELETE("/escenas/:id", registro, escenasH.Eliminar)

		// Indicios anidados a la escena
		v1.GET("/escenas/:id/indicios", indiciosH.ListarPorEscena)
		v1.POST("/escenas/:id/indicios", registro, indiciosH.Crear)

		v1.GET("/indicios", indiciosH.Listar)
		v1.GET("/indicios/:id", indiciosH.GetByID)
		v1.PUT("/indicios/:id", registro, indiciosH.Actualizar)
		v1.DELETE("/indicios/:id", registro, indiciosH.Eliminar)

		// Reportes — coordinación
		reportes := v1.Group("/reportes", coordinador)
		{
			reportes.GET("/revision", reportesH.Revision)
			reportes.GET("/revision/pdf", reportesH.RevisionPDF)
			reportes.GET("/estadisticas", reportesH.Estadisticas)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
