package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
)

type CreateSchema struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateSchema(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateSchema {
	return &CreateSchema{
		repo:  repo,
		audit: audit,
	}
}

// Execute drops and recreates the tables when reset is true, otherwise
// only creates what is missing.
func (uc *CreateSchema) Execute(ctx context.Context, reset bool) error {
	if !reset {
		return uc.repo.EnsureSchema(ctx)
	}

	if err := uc.repo.CreateSchema(ctx); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "schema_recreated",
		Entity: "schema",
	})

	return nil
}
