package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
)

// AppointmentTypeHandler maneja las peticiones HTTP para AppointmentType.
type AppointmentTypeHandler struct {
	uc *usecase.AppointmentTypeUseCase
}

// NewAppointmentTypeHandler construye el handler.
func NewAppointmentTypeHandler(uc *usecase.AppointmentTypeUseCase) *AppointmentTypeHandler {
	return &AppointmentTypeHandler{uc: uc}
}

// List godoc
// @Summary      Listar tipos de cita (solo admins)
// @Tags         appointment-types
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AppointmentTypeListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/appointment-types [get]
func (h *AppointmentTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tipo de cita (admin o company admin de la empresa)
// @Tags         appointment-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAppointmentTypeRequest  true  "name, duration, company opcional"
// @Success      201   {object}  dto.AppointmentTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/appointment-types [post]
func (h *AppointmentTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAppointmentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener tipo de cita por ID (público)
// @Tags         appointment-types
// @Produce      json
// @Param        id   path  int  true  "ID del tipo de cita"
// @Success      200  {object}  dto.AppointmentTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointment-types/{id} [get]
func (h *AppointmentTypeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	out, err := h.uc.GetByID(GetActor(c), int64(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar tipo de cita (admin o company admin de la empresa)
// @Tags         appointment-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del tipo de cita"
// @Param        body  body  dto.UpdateAppointmentTypeRequest  true  "Campos a editar"
// @Success      200   {object}  dto.AppointmentTypeResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/appointment-types/{id} [put]
func (h *AppointmentTypeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	var in dto.UpdateAppointmentTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), int64(id), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de cita (admin o company admin de la empresa)
// @Tags         appointment-types
// @Security     Bearer
// @Param        id  path  int  true  "ID del tipo de cita"
// @Success      204  "sin contenido"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/appointment-types/{id} [delete]
func (h *AppointmentTypeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(GetActor(c), int64(id)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
