package interfaces

import (
	"context"
	"ipfiling/internal/domain/entities"
)

// ICatalogRepository reads the services catalog.
type ICatalogRepository interface {
	ListServices(ctx context.Context) ([]entities.Service, error)
	GetService(ctx context.Context, id string) (entities.Service, error)
}

// IAccountRepository looks up customer accounts.
type IAccountRepository interface {
	FindByEmail(ctx context.Context, email string) (entities.Account, error)
}
