package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoquedev/controle-estoque-api/internal/domain"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação do porto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador de persistência para usuários.
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um novo usuário. Nome duplicado (unique em usuarios.nome)
// vira domain.ErrNomeJaExiste.
func (r *UsuarioRepo) Create(ctx context.Context, usuario *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (id, nome, senha, grupo, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		usuario.ID, usuario.Nome, usuario.SenhaHash, usuario.Grupo, usuario.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrNomeJaExiste
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByID obtém um usuário por ID; (nil, nil) se não existir.
func (r *UsuarioRepo) FindByID(ctx context.Context, id string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, senha, grupo, created_at
		FROM usuarios WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// FindByNome obtém um usuário pelo nome; (nil, nil) se não existir.
func (r *UsuarioRepo) FindByNome(ctx context.Context, nome string) (*entity.Usuario, error) {
	query := `
		SELECT id, nome, senha, grupo, created_at
		FROM usuarios WHERE nome = $1`
	return r.scanOne(ctx, query, nome)
}

func (r *UsuarioRepo) scanOne(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Nome, &u.SenhaHash, &u.Grupo, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
