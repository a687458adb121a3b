package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/albaranes-api/internal/application/auth"
	"github.com/jcampos/albaranes-api/internal/application/usecase"
	"github.com/jcampos/albaranes-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	ClientUC  *usecase.ClientUseCase
	ProjectUC *usecase.ProjectUseCase
	AlbaranUC *usecase.AlbaranUseCase
	Users     repository.UserRepository
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)

	// Registro y login (público)
	user := api.Group("/user")
	user.Post("/register", authHandler.Register)
	user.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token de un usuario vivo)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Users))

	// Usuario autenticado (protegido)
	userProtected := protected.Group("/user")
	userProtected.Put("/validation", authHandler.ValidateEmail)
	userProtected.Patch("/profile", authHandler.UpdateProfile)
	userProtected.Patch("/company", authHandler.UpdateCompany)

	// Clients (protegido, alcance por propietario)
	clients := protected.Group("/client")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.Get)
	clients.Patch("/:id", clientHandler.Update)
	clients.Patch("/:id/archive", clientHandler.Archive)
	clients.Delete("/:id", clientHandler.Delete)

	// Projects (protegido, alcance por propietario o compañía)
	projects := protected.Group("/project")
	projectHandler := NewProjectHandler(deps.ProjectUC)
	projects.Post("/", projectHandler.Create)
	projects.Get("/", projectHandler.List)
	projects.Get("/:id", projectHandler.Get)
	projects.Put("/:id", projectHandler.Update)
	projects.Patch("/:id/archive", projectHandler.Archive)
	projects.Patch("/:id/unarchive", projectHandler.Unarchive)
	projects.Delete("/:id", projectHandler.Delete)

	// Albaranes (protegido, alcance estricto por propietario)
	albaranes := protected.Group("/albaranes")
	albaranHandler := NewAlbaranHandler(deps.AlbaranUC)
	albaranes.Post("/", albaranHandler.Create)
	albaranes.Get("/", albaranHandler.List)
	albaranes.Get("/:id", albaranHandler.Get)
	albaranes.Get("/:id/pdf", albaranHandler.PDF)
	albaranes.Patch("/:id", albaranHandler.Update)
	albaranes.Delete("/:id", albaranHandler.Delete)
}
