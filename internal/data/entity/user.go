package entity

type UserRole string

const (
	RoleGuest UserRole = "gast"
	RoleStaff UserRole = "mitarbeiter"
)

// User maps the users table. Role is not stored there; it travels with
// the session.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password"`
}
