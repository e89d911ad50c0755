package models

import "time"

// Patient represents a patient master-data record.
// UserID links the record to a login account with role 'patient' so the
// patient dashboard can resolve "my appointments" without guessing that the
// user id and patient id happen to coincide.
type Patient struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"size:10;not null" json:"gender"`
	Ailment   string    `gorm:"size:150;not null" json:"ailment"`
	UserID    *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
