package repository

import (
	"context"

	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
)

// UsuarioRepository define o porto de persistência para Usuario (DIP).
// FindByNome devolve (nil, nil) quando o usuário não existe: o caso de uso
// decide como apresentar a ausência.
type UsuarioRepository interface {
	Create(ctx context.Context, usuario *entity.Usuario) error
	FindByID(ctx context.Context, id string) (*entity.Usuario, error)
	FindByNome(ctx context.Context, nome string) (*entity.Usuario, error)
}
