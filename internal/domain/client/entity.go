package client

// Changes lists the client fields to overwrite. Nil fields are left as
// they are.
type Changes struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (c Changes) Empty() bool {
	return c.FirstName == nil && c.LastName == nil && c.Email == nil
}

// Columns returns the column/value pairs to update.
func (c Changes) Columns() map[string]any {
	cols := map[string]any{}
	if c.FirstName != nil {
		cols["name"] = *c.FirstName
	}
	if c.LastName != nil {
		cols["surname"] = *c.LastName
	}
	if c.Email != nil {
		cols["email"] = *c.Email
	}
	return cols
}

// Filter narrows a search. A nil field matches every row; set fields
// must match exactly.
type Filter struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

func (f Filter) Empty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Email == nil && f.Phone == nil
}
