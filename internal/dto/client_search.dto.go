package dto

// ClientSearchRow is one row of clients LEFT JOIN phones. PhoneID and
// Phone are nil for a client without phones.
type ClientSearchRow struct {
	ClientID  uint    `json:"client_id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	PhoneID   *uint   `json:"phone_id"`
	Phone     *string `json:"phone"`
}
