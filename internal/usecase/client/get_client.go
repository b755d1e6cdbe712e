package client

import (
	"context"

	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/models"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	clientID uint,
) (*models.Client, error) {
	return uc.repo.GetClient(ctx, clientID)
}
