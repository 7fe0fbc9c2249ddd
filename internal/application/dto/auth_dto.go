package dto

import "time"

// RegisterRequest body para POST /auth/register.
// Role solo lo puede fijar un admin; el primer usuario del sistema es admin siempre.
type RegisterRequest struct {
	Name     string `json:"nombre" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"rol,omitempty" validate:"omitempty,oneof=admin worker"`
}

// LoginRequest body para POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse usuario sin el hash de contraseña.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse token + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
