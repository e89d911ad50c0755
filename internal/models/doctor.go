package models

import "time"

// Doctor represents a doctor master-data record. UserID is optional: a
// doctor created without credentials has no login account. When the link is
// present the referenced user always has role 'doctor'.
type Doctor struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Specialization string    `gorm:"size:100;not null" json:"specialization"`
	UserID         *uint     `gorm:"uniqueIndex" json:"user_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Doctor model
func (Doctor) TableName() string {
	return "doctors"
}
