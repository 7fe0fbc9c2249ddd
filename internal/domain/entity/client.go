package entity

import "time"

// Client representa un cliente de la organización (para cotizaciones).
type Client struct {
	ID        string
	Name      string
	Document  string // RUC o DNI
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
