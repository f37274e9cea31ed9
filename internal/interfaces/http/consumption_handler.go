package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/spog-api/internal/application/dto"
	"github.com/tu-usuario/spog-api/internal/application/inventory"
	"github.com/tu-usuario/spog-api/internal/domain"
	"github.com/tu-usuario/spog-api/pkg/validate"
)

// ConsumptionHandler maneja las peticiones HTTP de consumos (protegido).
type ConsumptionHandler struct {
	uc *inventory.ConsumptionUseCase
}

// NewConsumptionHandler construye el handler de consumos.
func NewConsumptionHandler(uc *inventory.ConsumptionUseCase) *ConsumptionHandler {
	return &ConsumptionHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar un consumo sobre un ítem
// @Description  Convierte la cantidad a la unidad del ítem, valida contra el
//
//	saldo disponible y descuenta en una sola transacción.
//
// @Tags         consumptions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                          true  "ID del ítem"
// @Param        body  body  dto.RegisterConsumptionRequest  true  "quantity, unit, work_order, notes"
// @Success      201   {object}  dto.RegisterConsumptionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/consumptions [post]
func (h *ConsumptionHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterConsumptionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		recordConsumption("invalid")
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.uc.RegisterConsumption(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			recordConsumption("invalid")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad o unidad inválida"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ITEM_INACTIVE", Message: "el ítem está inactivo"})
		case domain.ErrUnitMismatch:
			recordConsumption("unit_mismatch")
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNIT_MISMATCH", Message: "la unidad del consumo no es interoperable con la del ítem"})
		case domain.ErrInsufficientStock:
			recordConsumption("insufficient_stock")
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "saldo insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	recordConsumption("ok")
	return c.Status(fiber.StatusCreated).JSON(out)
}

// MaxConsumption godoc
// @Summary      Máximo consumible de un ítem en una unidad
// @Description  Devuelve el saldo actual expresado en la unidad pedida, para
//
//	pre-llenar el máximo del formulario de consumo.
//
// @Tags         consumptions
// @Security     Bearer
// @Produce      json
// @Param        id    path   string  true   "ID del ítem"
// @Param        unit  query  string  false  "Unidad deseada. Vacía = unidad del ítem."
// @Success      200   {object}  dto.MaxConsumptionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/items/{id}/max-consumption [get]
func (h *ConsumptionHandler) MaxConsumption(c *fiber.Ctx) error {
	out, err := h.uc.MaxConsumption(c.Params("id"), c.Query("unit"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		if err == domain.ErrUnitMismatch {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNIT_MISMATCH", Message: "la unidad pedida no es interoperable con la del ítem"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de consumos de un ítem
// @Tags         consumptions
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del ítem"
// @Param        limit   query  int     false  "máx 100, default 20"
// @Param        offset  query  int     false  "default 0"
// @Success      200  {array}   dto.ConsumptionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/consumptions [get]
func (h *ConsumptionHandler) History(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query params inválidos"})
	}
	events, err := h.uc.History(c.Params("id"), page)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":        len(events),
		"consumptions": events,
	})
}
