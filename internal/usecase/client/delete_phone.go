package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
)

type DeletePhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeletePhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeletePhone {
	return &DeletePhone{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeletePhone) Execute(
	ctx context.Context,
	clientID uint,
	number string,
) error {

	ok, err := uc.repo.DeletePhone(ctx, clientID, number)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPhoneNotFound
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "phone_deleted",
		Entity:   "phone",
		Metadata: map[string]any{"client_id": clientID, "phone": number},
	})

	return nil
}
