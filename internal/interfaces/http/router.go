package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agenda-api/internal/application/auth"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
)

// RouterDeps agrupa las dependencias que necesita el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	CompanyUC *usecase.CompanyUseCase
	TypesUC   *usecase.AppointmentTypeUseCase
	JWTSecret string
	Actors    ActorLoader
}

// SetupRoutes registra todas las rutas de la API. Las rutas públicas llevan
// OptionalAuth: un token presente pero inválido sigue siendo 401, nunca se
// degrada a anónimo en silencio.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	userHandler := NewUserHandler(deps.UserUC)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.UserUC, deps.TypesUC)
	typesHandler := NewAppointmentTypeHandler(deps.TypesUC)

	optional := OptionalAuth(deps.JWTSecret, deps.Actors)
	required := RequireAuth(deps.JWTSecret, deps.Actors)

	api := app.Group("/api")

	// Auth
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authHandler.Logout)

	// Users: la creación es elegible para anónimos (registro self-service).
	users := api.Group("/users")
	users.Post("/", optional, userHandler.Create)
	users.Get("/", required, userHandler.List)
	users.Get("/:code", required, userHandler.GetByCode)
	users.Put("/:code", required, userHandler.Update)
	users.Delete("/:code", required, userHandler.Delete)

	// Companies
	companies := api.Group("/companies")
	companies.Get("/", required, companyHandler.List)
	companies.Post("/", required, companyHandler.Create)
	companies.Get("/:code", required, companyHandler.GetByCode)
	companies.Put("/:code", required, companyHandler.Update)
	companies.Delete("/:code", required, companyHandler.Delete)
	companies.Get("/:code/users", required, companyHandler.ListUsers)
	// El catálogo de tipos de cita de una empresa es público.
	companies.Get("/:code/appointment-types", optional, companyHandler.ListAppointmentTypes)

	// Appointment types: la lectura individual es pública.
	types := api.Group("/appointment-types")
	types.Get("/", required, typesHandler.List)
	types.Post("/", required, typesHandler.Create)
	types.Get("/:id", optional, typesHandler.GetByID)
	types.Put("/:id", required, typesHandler.Update)
	types.Delete("/:id", required, typesHandler.Delete)
}
