package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute removes the client together with all of its phones.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	clientID uint,
) error {

	ok, err := uc.repo.DeleteClient(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrClientNotFound
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_deleted",
		Entity:   "client",
		EntityID: &clientID,
	})

	return nil
}
