package handlers

import (
	"errors"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/internal/api/presenters"
	"digital-kuota-backend/pkg/transaksi"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TransaksiHandler interface {
		Purchase(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		DeleteTransaksi(c *fiber.Ctx) error
	}

	transaksiHandler struct {
		transaksiService transaksi.TransaksiService
		validator        *validator.Validate
	}
)

func NewTransaksiHandler(transaksiService transaksi.TransaksiService, validator *validator.Validate) TransaksiHandler {
	return &transaksiHandler{
		transaksiService: transaksiService,
		validator:        validator,
	}
}

func (h *transaksiHandler) Purchase(c *fiber.Ctx) error {
	req := new(domain.PurchaseRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchase, err)
	}

	resp, err := h.transaksiService.Purchase(c.Context(), *req)
	if err != nil {
		var partialErr *domain.PartialPurchaseError
		switch {
		case errors.Is(err, domain.ErrInsufficientSaldo):
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchase, err)
		case errors.Is(err, domain.ErrPaketNotFound):
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedPurchase, err)
		case errors.As(err, &partialErr):
			return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedPurchase, err)
		default:
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPurchase, err)
		}
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessPurchase)
}

func (h *transaksiHandler) GetHistory(c *fiber.Ctx) error {
	resp, err := h.transaksiService.GetHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTransaksi, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetTransaksi)
}

func (h *transaksiHandler) DeleteTransaksi(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.transaksiService.DeleteTransaksi(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTransaksiNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteTransaksi, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteTransaksi, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTransaksi)
}
