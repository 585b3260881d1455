package usersrepo

import "time"

type User struct {
	UserID       string    `db:"user_id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}

type NewUser struct {
	Email    string
	Password string
}

type Credentials struct {
	Email    string
	Password string
}
