package entity

import "time"

// Papéis válidos para User.
const (
	RoleAdmin    = "admin"
	RoleOperador = "operador"
)

// User representa um operador do painel.
type User struct {
	ID           string
	Email        string
	PasswordHash string // hash bcrypt, nunca o texto plano
	Name         string
	Role         string // admin, operador
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
