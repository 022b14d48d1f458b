package models

// Credential is the user_pass row paired one-to-one with user_info. It is
// created in the same transaction as the User and never deleted on its own.
// PasswordHash holds a bcrypt hash, never a plaintext password.
type Credential struct {
	UserID       uint   `gorm:"primaryKey" json:"user_id"`
	User         User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	PasswordHash string `gorm:"not null" json:"-"`
}

func (Credential) TableName() string {
	return "user_pass"
}
