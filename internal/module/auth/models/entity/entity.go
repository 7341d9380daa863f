package entity

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID              uuid.UUID    `db:"id"`
	Name            string       `db:"name"`
	ShopName        string       `db:"shop_name"`
	ShopDescription string       `db:"shop_description"`
	Phone           string       `db:"phone"`
	Email           string       `db:"email"`
	PasswordHash    string       `db:"password_hash"`
	Role            string       `db:"role"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       sql.NullTime `db:"updated_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
