package client

import (
	"context"

	"github.com/BruksfildServices01/clientbook/internal/dto"
	"github.com/BruksfildServices01/clientbook/internal/models"
)

type Repository interface {
	// -------- Schema --------
	CreateSchema(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// -------- Client --------
	CreateClient(
		ctx context.Context,
		c *models.Client,
		phones []string,
	) error

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	UpdateClient(
		ctx context.Context,
		id uint,
		changes Changes,
	) error

	DeleteClient(
		ctx context.Context,
		id uint,
	) (bool, error)

	// -------- Phone --------
	AddPhone(
		ctx context.Context,
		clientID uint,
		number string,
	) (*models.Phone, error)

	ListPhones(
		ctx context.Context,
		clientID uint,
	) ([]models.Phone, error)

	ReplacePhones(
		ctx context.Context,
		clientID uint,
		numbers []string,
	) error

	DeletePhone(
		ctx context.Context,
		clientID uint,
		number string,
	) (bool, error)

	// -------- Search --------
	Search(
		ctx context.Context,
		f Filter,
	) ([]dto.ClientSearchRow, error)
}
