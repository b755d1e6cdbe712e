package client

import (
	"context"

	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/dto"
)

type FindClients struct {
	repo domain.Repository
}

func NewFindClients(repo domain.Repository) *FindClients {
	return &FindClients{repo: repo}
}

func (uc *FindClients) Execute(
	ctx context.Context,
	f domain.Filter,
) ([]dto.ClientSearchRow, error) {
	return uc.repo.Search(ctx, f)
}
