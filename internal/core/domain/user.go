package domain

import "time"

type User struct {
	ID                int
	Email             string `validate:"required,email,max=255"`
	Name              string
	EncryptedPassword string `validate:"required"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (u *User) OwnsTodoEmail(email string) bool {
	return u.Email == email
}
