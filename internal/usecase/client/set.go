package client

import (
	"github.com/BruksfildServices01/clientbook/internal/audit"
	domain "github.com/BruksfildServices01/clientbook/internal/domain/client"
)

// Set groups every client use case over one repository.
type Set struct {
	Schema      *CreateSchema
	Create      *CreateClient
	Get         *GetClient
	Change      *ChangeClient
	Delete      *DeleteClient
	AddPhone    *AddPhone
	DeletePhone *DeletePhone
	Find        *FindClients
}

func NewSet(repo domain.Repository, dispatcher *audit.Dispatcher) *Set {
	return &Set{
		Schema:      NewCreateSchema(repo, dispatcher),
		Create:      NewCreateClient(repo, dispatcher),
		Get:         NewGetClient(repo),
		Change:      NewChangeClient(repo, dispatcher),
		Delete:      NewDeleteClient(repo, dispatcher),
		AddPhone:    NewAddPhone(repo, dispatcher),
		DeletePhone: NewDeletePhone(repo, dispatcher),
		Find:        NewFindClients(repo),
	}
}
