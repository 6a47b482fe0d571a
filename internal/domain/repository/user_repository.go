package repository

import "github.com/securetrack/securetrack-api/internal/domain/entity"

// UserRepository define o porto de acesso aos operadores do painel.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
