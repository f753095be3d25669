package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
	"github.com/estoquedev/controle-estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens de sessão.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: cadastro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: faz o hash da senha com bcrypt (salt por chamada,
// embutido no hash) e persiste. Devolve domain.ErrNomeJaExiste se o nome já
// estiver cadastrado; a unicidade é garantida pelo store e a violação é
// mapeada pelo repositório.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UsuarioResponse, error) {
	if in.Nome == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	grupo := in.Grupo
	if grupo == "" {
		grupo = entity.GrupoUsuario
	}
	if !entity.GrupoValido(grupo) {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      in.Nome,
		SenhaHash: string(hash),
		Grupo:     grupo,
		CreatedAt: time.Now(),
	}
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica nome/senha, gera o JWT da sessão e retorna token + usuário.
// Usuário inexistente e senha incorreta produzem o mesmo ErrUnauthorized,
// para não permitir enumeração de nomes de usuário.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Nome == "" || in.Senha == "" {
		return nil, domain.ErrInvalidInput
	}
	usuario, err := uc.usuarioRepo.FindByNome(ctx, in.Nome)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nome, usuario.Grupo, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(usuario),
	}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Grupo:     u.Grupo,
		CreatedAt: u.CreatedAt,
	}
}
