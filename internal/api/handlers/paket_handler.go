package handlers

import (
	"errors"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/internal/api/presenters"
	"digital-kuota-backend/pkg/paket"

	"github.com/gofiber/fiber/v2"
)

type (
	PaketHandler interface {
		GetAllPaket(c *fiber.Ctx) error
		GetPaketDetail(c *fiber.Ctx) error
	}

	paketHandler struct {
		paketService paket.PaketService
	}
)

func NewPaketHandler(paketService paket.PaketService) PaketHandler {
	return &paketHandler{
		paketService: paketService,
	}
}

func (h *paketHandler) GetAllPaket(c *fiber.Ctx) error {
	kategori := c.Query("kategori")
	search := c.Query("q")

	pakets, err := h.paketService.GetAllPaket(c.Context(), kategori, search)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPaket, err)
	}

	return presenters.SuccessResponse(c, pakets, fiber.StatusOK, domain.MessageSuccessGetPaket)
}

func (h *paketHandler) GetPaketDetail(c *fiber.Ctx) error {
	id := c.Params("id")

	resp, err := h.paketService.GetPaketByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrPaketNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetPaketDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPaketDetail, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetPaketDetail)
}
