package httperr

import "errors"

// BusinessError is an expected failure identified by a stable code that
// clients can match on.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	return BusinessCode(err) == code && code != ""
}

// BusinessCode returns the code of the BusinessError in err's chain, or
// "" when there is none.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
