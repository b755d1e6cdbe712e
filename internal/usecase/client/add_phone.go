package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
	"github.com/BruksfildServices01/clientbook/internal/models"
)

type AddPhone struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddPhone(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AddPhone {
	return &AddPhone{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AddPhone) Execute(
	ctx context.Context,
	clientID uint,
	number string,
) (*models.Phone, error) {

	p, err := uc.repo.AddPhone(ctx, clientID, number)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "phone_added",
		Entity:   "phone",
		EntityID: &p.ID,
		Metadata: map[string]any{"client_id": clientID},
	})

	return p, nil
}
