package dto

import "time"

// RegisterRequest entrada para cadastro de usuário (senha em texto, o use case faz o hash).
type RegisterRequest struct {
	Nome  string `json:"nome" validate:"required,min=1,max=100"`
	Senha string `json:"senha" validate:"required,min=6"`
	Grupo string `json:"grupo" validate:"omitempty,oneof=TI Usuario"`
}

// UsuarioResponse saída de um usuário (sem senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Grupo     string    `json:"grupo"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Nome  string `json:"nome" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// LoginResponse saída com o token JWT da sessão e os dados do usuário.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
