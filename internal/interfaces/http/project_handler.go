package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/usecase"
	"github.com/jcampos/albaranes-api/internal/domain"
)

// ProjectHandler maneja el CRUD de proyectos alcanzables por el sujeto.
type ProjectHandler struct {
	uc *usecase.ProjectUseCase
}

// NewProjectHandler construye el handler de proyectos.
func NewProjectHandler(uc *usecase.ProjectUseCase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proyecto
// @Tags         project
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProjectRequest  true  "name, client"
// @Success      201   {object}  dto.ProjectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/project [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProjectRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return h.mapError(c, err, "cliente no encontrado")
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar proyectos alcanzables (no archivados)
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.ProjectResponse
// @Router       /api/project [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return h.mapError(c, err, "")
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un proyecto por ID
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/project/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "proyecto no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar un proyecto
// @Tags         project
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del proyecto"
// @Param        body  body  dto.UpdateProjectRequest  true  "name, client"
// @Success      200   {object}  dto.ProjectResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/project/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProjectRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		return h.mapError(c, err, "proyecto no encontrado")
	}
	return c.JSON(out)
}

// Archive godoc
// @Summary      Archivar un proyecto
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/project/{id}/archive [patch]
func (h *ProjectHandler) Archive(c *fiber.Ctx) error {
	out, err := h.uc.Archive(GetUserID(c), c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "proyecto no encontrado")
	}
	return c.JSON(out)
}

// Unarchive godoc
// @Summary      Restaurar un proyecto archivado
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.ProjectResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/project/{id}/unarchive [patch]
func (h *ProjectHandler) Unarchive(c *fiber.Ctx) error {
	out, err := h.uc.Unarchive(GetUserID(c), c.Params("id"))
	if err != nil {
		return h.mapError(c, err, "proyecto no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar físicamente un proyecto
// @Tags         project
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del proyecto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/project/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return h.mapError(c, err, "proyecto no encontrado")
	}
	return c.JSON(dto.MessageResponse{Message: "proyecto eliminado"})
}

func (h *ProjectHandler) mapError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, notFoundMsg)
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_USER", Message: "usuario no válido"})
	default:
		return internalError(c, err)
	}
}
