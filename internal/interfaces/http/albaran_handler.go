package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jcampos/albaranes-api/internal/application/dto"
	"github.com/jcampos/albaranes-api/internal/application/usecase"
	"github.com/jcampos/albaranes-api/internal/domain"
)

// AlbaranHandler maneja el CRUD de albaranes y su descarga en PDF.
type AlbaranHandler struct {
	uc *usecase.AlbaranUseCase
}

// NewAlbaranHandler construye el handler de albaranes.
func NewAlbaranHandler(uc *usecase.AlbaranUseCase) *AlbaranHandler {
	return &AlbaranHandler{uc: uc}
}

// Create godoc
// @Summary      Crear albarán
// @Tags         albaran
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateAlbaranRequest  true  "cliente y líneas"
// @Success      201   {object}  dto.AlbaranResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/albaranes [post]
func (h *AlbaranHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAlbaranRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar albaranes del sujeto
// @Tags         albaran
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.AlbaranResponse
// @Router       /api/albaranes [get]
func (h *AlbaranHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetUserID(c))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener un albarán por ID
// @Tags         albaran
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del albarán"
// @Success      200  {object}  dto.AlbaranResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/albaranes/{id} [get]
func (h *AlbaranHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "albarán no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar parcialmente un albarán
// @Tags         albaran
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "ID del albarán"
// @Param        body  body  dto.UpdateAlbaranRequest  true  "campos a modificar"
// @Success      200   {object}  dto.AlbaranResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/albaranes/{id} [patch]
func (h *AlbaranHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAlbaranRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Update(GetUserID(c), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "albarán no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar físicamente un albarán
// @Tags         albaran
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del albarán"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/albaranes/{id} [delete]
func (h *AlbaranHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "albarán no encontrado")
		}
		return internalError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "albarán eliminado"})
}

// PDF godoc
// @Summary      Descargar el albarán en PDF
// @Tags         albaran
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del albarán"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/albaranes/{id}/pdf [get]
func (h *AlbaranHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdf, err := h.uc.PDF(GetUserID(c), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "albarán no encontrado")
		}
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=albaran-%s.pdf", id))
	return c.Send(pdf)
}
