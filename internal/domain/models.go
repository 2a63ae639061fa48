package domain

import (
	"time"

	"github.com/icopoint/icopoint/internal/points"
)

type User struct {
	ID           int       `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
	Admin        bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

// Order is one logged unit of field work. Points is a cached derived value:
// it is recomputed from Type and Subtypes on every write and never taken from
// user input.
type Order struct {
	ID                 int            `db:"id"`
	UserID             int            `db:"user_id"`
	InstallationNumber string         `db:"installation_number"`
	Date               time.Time      `db:"order_date"`
	Type               points.JobType `db:"job_type"`
	Subtypes           []string       `db:"subtypes"`
	Points             float64        `db:"points"`
	CreatedAt          time.Time      `db:"created_at"`
}
