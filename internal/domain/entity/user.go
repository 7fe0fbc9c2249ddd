package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin  = "admin"
	RoleWorker = "worker"
)

// ValidRole indica si el rol pertenece al conjunto cerrado admin|worker.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleWorker
}

// User representa un usuario del sistema. Name y Email son únicos.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin | worker
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
