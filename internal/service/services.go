package service

import (
	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/crypto"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/internal/vault"
)

type Services struct {
	BankService       BankService
	ConnectionService ConnectionService
	CredentialService CredentialService
}

func NewServices(storages *store.Storages, manager *source.Manager, vaultClient vault.Client, cipher crypto.CredentialCipher, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		BankService:       NewBankService(storages.BankRepository),
		ConnectionService: NewConnectionService(storages, manager, vaultClient, cfg.App, logger),
		CredentialService: NewCredentialService(storages.CredentialRepository, cipher, logger),
	}
}
