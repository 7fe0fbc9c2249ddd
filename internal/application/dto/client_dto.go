package dto

import "time"

// CreateClientRequest body para POST /clientes.
type CreateClientRequest struct {
	Name     string `json:"nombre" validate:"required"`
	Document string `json:"documento,omitempty"` // RUC o DNI
	Address  string `json:"direccion,omitempty"`
	Phone    string `json:"telefono,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateClientRequest body para PUT /clientes/:id.
type UpdateClientRequest struct {
	Name     *string `json:"nombre,omitempty"`
	Document *string `json:"documento,omitempty"`
	Address  *string `json:"direccion,omitempty"`
	Phone    *string `json:"telefono,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
}

// ClientResponse cliente para respuestas.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Document  string    `json:"documento,omitempty"`
	Address   string    `json:"direccion,omitempty"`
	Phone     string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
