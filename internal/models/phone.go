package models

// Phone belongs to exactly one client. Numbers are unique across all
// clients, not per client.
type Phone struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ClientID uint   `gorm:"not null;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Number string `gorm:"column:phone;size:100;uniqueIndex;not null" json:"phone"`
}
