package service

import (
	"context"

	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/models"
)

// bankService is a thin read layer over the registry; the registry itself
// is administered out of band.
type bankService struct {
	banks store.BankRepository
}

// NewBankService constructs the [BankService].
func NewBankService(banks store.BankRepository) BankService {
	return &bankService{banks: banks}
}

func (s *bankService) ListBanks(ctx context.Context) ([]models.Bank, error) {
	return s.banks.FindAll(ctx)
}

func (s *bankService) GetBank(ctx context.Context, bankID string) (models.Bank, error) {
	return s.banks.FindByID(ctx, bankID)
}
