package paket

import (
	"context"
	"strings"

	"digital-kuota-backend/domain"
	"digital-kuota-backend/entities"
	"digital-kuota-backend/internal/utils/restdb"
)

type (
	PaketService interface {
		GetAllPaket(ctx context.Context, kategori, search string) ([]*domain.PaketResponse, error)
		GetPaketByID(ctx context.Context, id string) (*domain.PaketResponse, error)
	}

	paketService struct {
		paketRepository PaketRepository
	}
)

func NewPaketService(paketRepository PaketRepository) PaketService {
	return &paketService{
		paketRepository: paketRepository,
	}
}

// GetAllPaket fetches the whole catalog and narrows it locally, the same way
// the storefront filters in the browser: kategori is an exact match, search
// matches name or description case-insensitively.
func (s *paketService) GetAllPaket(ctx context.Context, kategori, search string) ([]*domain.PaketResponse, error) {
	pakets, err := s.paketRepository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(search)
	result := make([]*domain.PaketResponse, 0, len(pakets))
	for i := range pakets {
		p := &pakets[i]
		if kategori != "" && kategori != "semua" && p.Kategori != kategori {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.NamaPaket), search) &&
			!strings.Contains(strings.ToLower(p.Deskripsi), search) {
			continue
		}
		result = append(result, toPaketResponse(p))
	}
	return result, nil
}

func (s *paketService) GetPaketByID(ctx context.Context, id string) (*domain.PaketResponse, error) {
	paket, err := s.paketRepository.GetByID(ctx, id)
	if err != nil {
		if restdb.IsNotFound(err) {
			return nil, domain.ErrPaketNotFound
		}
		return nil, err
	}
	return toPaketResponse(paket), nil
}

func toPaketResponse(paket *entities.PaketData) *domain.PaketResponse {
	return &domain.PaketResponse{
		ID:        paket.ID,
		NamaPaket: paket.NamaPaket,
		Kategori:  paket.Kategori,
		Kuota:     paket.Kuota,
		MasaAktif: paket.MasaAktif,
		Deskripsi: paket.Deskripsi,
		Harga:     paket.Harga,
	}
}
