package domain

import "time"

type Todo struct {
	ID        int
	Title     string `validate:"required,max=255"`
	Completed bool
	UserId    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t *Todo) BelongsToUser(userID int) bool {
	return t.UserId == userID
}
