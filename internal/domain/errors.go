package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrCustomerNotFound   = errors.New("cliente não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicateAccount   = errors.New("já existe um cliente com esse número de conta")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrBudgetNotLinked    = errors.New("orçamento sem cliente vinculado")
)
