package entity

import "time"

// Grupos válidos para Usuario.
const (
	GrupoTI      = "TI"
	GrupoUsuario = "Usuario"
)

// GrupoValido informa se o grupo é um dos aceitos pelo sistema.
func GrupoValido(grupo string) bool {
	return grupo == GrupoTI || grupo == GrupoUsuario
}

// Usuario representa um usuário do sistema.
type Usuario struct {
	ID        string
	Nome      string // único no sistema
	SenhaHash string // bcrypt hash, nunca em claro no domínio após persistir
	Grupo     string // TI, Usuario
	CreatedAt time.Time
}
