package model

type UserRole string

const (
	Student UserRole = "student"
	Teacher UserRole = "teacher"
	Admin   UserRole = "admin"
)

// User mirrors the identity row owned by the upstream auth provider.
// Authentication itself happens at the gateway; this service only needs
// the id and role for access decisions.
type User struct {
	BaseModel
	Name  string   `gorm:"size:255;not null" json:"name"`
	Email string   `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role  UserRole `gorm:"size:20;default:'student'" json:"role"`
}

func (User) TableName() string {
	return "users"
}
