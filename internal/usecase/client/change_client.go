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

// ChangeClientInput carries the fields to overwrite. A nil Phones leaves
// the phone list alone; any non-nil slice, empty included, replaces it.
type ChangeClientInput struct {
	ClientID uint

	FirstName *string
	LastName  *string
	Email     *string

	Phones []string
}

// ======================================================
// USE CASE
// ======================================================

type ChangeClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewChangeClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ChangeClient {
	return &ChangeClient{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute commits the field update first and the phone replacement
// second; a failing replacement leaves the new field values in place.
func (uc *ChangeClient) Execute(
	ctx context.Context,
	in ChangeClientInput,
) (*models.Client, error) {

	// --------------------------------------------------
	// 1️⃣ Client
	// --------------------------------------------------
	if _, err := uc.repo.GetClient(ctx, in.ClientID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Fields
	// --------------------------------------------------
	changes := domain.Changes{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}

	if err := uc.repo.UpdateClient(ctx, in.ClientID, changes); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Phones (delete-all-then-reinsert)
	// --------------------------------------------------
	if in.Phones != nil {
		if err := uc.repo.ReplacePhones(ctx, in.ClientID, in.Phones); err != nil {
			return nil, err
		}
	}

	c, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "client_changed",
		Entity:   "client",
		EntityID: &c.ID,
		Metadata: map[string]any{
			"fields":         len(changes.Columns()),
			"phones_updated": in.Phones != nil,
		},
	})

	return c, nil
}
