package client

import "github.com/BruksfildServices01/clientbook/internal/httperr"

const (
	CodeClientNotFound = "client_not_found"
	CodePhoneNotFound  = "phone_not_found"
	CodeEmailTaken     = "email_taken"
	CodePhoneTaken     = "phone_taken"
)

var (
	ErrClientNotFound = httperr.ErrBusiness(CodeClientNotFound)
	ErrPhoneNotFound  = httperr.ErrBusiness(CodePhoneNotFound)
	ErrEmailTaken     = httperr.ErrBusiness(CodeEmailTaken)
	ErrPhoneTaken     = httperr.ErrBusiness(CodePhoneTaken)
)
