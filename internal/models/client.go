package models

// Client is a person record. Email is unique across all clients.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"column:name;size:200;not null" json:"first_name"`
	LastName  string `gorm:"column:surname;size:200;not null" json:"last_name"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	Phones []Phone `gorm:"-" json:"phones,omitempty"`
}
