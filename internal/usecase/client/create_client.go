package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string

	Phones []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*models.Client, error) {

	c := &models.Client{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}

	if err := uc.repo.CreateClient(ctx, c, in.Phones); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_created",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{"phones": len(c.Phones)},
	})

	return c, nil
}
