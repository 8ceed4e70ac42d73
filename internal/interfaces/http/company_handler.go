package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agenda-api/internal/application/dto"
	"github.com/jhoicas/agenda-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para Company y sus subrecursos.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	userUC  *usecase.UserUseCase
	typesUC *usecase.AppointmentTypeUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, userUC *usecase.UserUseCase, typesUC *usecase.AppointmentTypeUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, userUC: userUC, typesUC: typesUC}
}

// List godoc
// @Summary      Listar empresas (solo admins)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CompanyListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetActor(c), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empresa (solo admins)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "name"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetActor(c), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/companies/"+out.Code)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener empresa por code (admin o miembro)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{code} [get]
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(GetActor(c), c.Params("code"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar empresa (solo admins)
// @Tags         companies
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "name"
// @Success      200   {object}  dto.CompanyResponse
// @Router       /api/companies/{code} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetActor(c), c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar empresa (solo admins)
// @Tags         companies
// @Security     Bearer
// @Param        code  path  string  true  "Code de la empresa"
// @Success      204   "sin contenido"
// @Router       /api/companies/{code} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetActor(c), c.Params("code")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers godoc
// @Summary      Listar usuarios de una empresa (admin o miembro)
// @Tags         companies
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.UserListResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/companies/{code}/users [get]
func (h *CompanyHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.userUC.ListByCompany(GetActor(c), c.Params("code"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAppointmentTypes godoc
// @Summary      Listar tipos de cita de una empresa (público)
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Code de la empresa"
// @Success      200   {object}  dto.AppointmentTypeListResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{code}/appointment-types [get]
func (h *CompanyHandler) ListAppointmentTypes(c *fiber.Ctx) error {
	out, err := h.typesUC.ListByCompany(c.Params("code"), pageFromQuery(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
