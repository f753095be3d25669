package auth_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquedev/controle-estoque-api/internal/application/auth"
	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
	pkgjwt "github.com/estoquedev/controle-estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UsuarioRepository em memória (unicidade de nome como no store real)
// ──────────────────────────────────────────────────────────────────────────────

type usuarioRepoFake struct {
	mu       sync.Mutex
	usuarios map[string]entity.Usuario // chave: nome
}

var _ repository.UsuarioRepository = (*usuarioRepoFake)(nil)

func newUsuarioRepoFake() *usuarioRepoFake {
	return &usuarioRepoFake{usuarios: map[string]entity.Usuario{}}
}

func (f *usuarioRepoFake) Create(_ context.Context, u *entity.Usuario) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.usuarios[u.Nome]; ok {
		return domain.ErrNomeJaExiste
	}
	f.usuarios[u.Nome] = *u
	return nil
}

func (f *usuarioRepoFake) FindByID(_ context.Context, id string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.usuarios {
		if u.ID == id {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *usuarioRepoFake) FindByNome(_ context.Context, nome string) (*entity.Usuario, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.usuarios[nome]; ok {
		cp := u
		return &cp, nil
	}
	return nil, nil
}

func newAuthUC(repo repository.UsuarioRepository) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "segredo-de-teste",
		ExpMinutes: 60,
		Issuer:     "controle-estoque-test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Cadastro seguido de login com a mesma senha devolve o grupo cadastrado.
func TestRegister_LoginRoundTrip(t *testing.T) {
	uc := newAuthUC(newUsuarioRepoFake())
	ctx := context.Background()

	criado, err := uc.Register(ctx, dto.RegisterRequest{Nome: "maria", Senha: "s3nh4-forte", Grupo: "TI"})
	require.NoError(t, err)
	assert.Equal(t, "TI", criado.Grupo, "o grupo cadastrado deve ser preservado")
	assert.NotEmpty(t, criado.ID)

	out, err := uc.Login(ctx, dto.LoginRequest{Nome: "maria", Senha: "s3nh4-forte"})
	require.NoError(t, err, "login com as credenciais cadastradas deve funcionar")
	assert.Equal(t, "maria", out.Usuario.Nome)
	assert.Equal(t, "TI", out.Usuario.Grupo, "o login deve devolver o grupo armazenado")

	// O token da sessão carrega nome e grupo
	_, nome, grupo, err := pkgjwt.Parse("segredo-de-teste", out.Token)
	require.NoError(t, err, "o token emitido deve ser válido")
	assert.Equal(t, "maria", nome)
	assert.Equal(t, "TI", grupo)
}

// A senha nunca é persistida em claro: o hash bcrypt embute o salt.
func TestRegister_SenhaHasheada(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := newAuthUC(repo)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{Nome: "ana", Senha: "minha-senha"})
	require.NoError(t, err)

	armazenado := repo.usuarios["ana"]
	assert.NotEqual(t, "minha-senha", armazenado.SenhaHash, "a senha não pode ser persistida em claro")
	assert.NotEmpty(t, armazenado.SenhaHash)
}

// Grupo em branco assume Usuario; grupo desconhecido é rejeitado.
func TestRegister_GrupoPadraoEValidacao(t *testing.T) {
	uc := newAuthUC(newUsuarioRepoFake())
	ctx := context.Background()

	criado, err := uc.Register(ctx, dto.RegisterRequest{Nome: "joao", Senha: "123456"})
	require.NoError(t, err)
	assert.Equal(t, entity.GrupoUsuario, criado.Grupo, "grupo em branco deve assumir Usuario")

	_, err = uc.Register(ctx, dto.RegisterRequest{Nome: "pedro", Senha: "123456", Grupo: "Administrador"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "grupo fora de {TI, Usuario} deve ser rejeitado")
}

// Cadastro duplicado devolve ErrNomeJaExiste e não persiste segunda linha.
func TestRegister_NomeDuplicado(t *testing.T) {
	repo := newUsuarioRepoFake()
	uc := newAuthUC(repo)
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Nome: "carlos", Senha: "123456"})
	require.NoError(t, err)

	_, err = uc.Register(ctx, dto.RegisterRequest{Nome: "carlos", Senha: "outra-senha"})
	assert.ErrorIs(t, err, domain.ErrNomeJaExiste)
	assert.Len(t, repo.usuarios, 1, "a segunda tentativa não pode persistir outra linha")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

// Senha errada e usuário inexistente produzem o mesmo erro, sem distinção.
func TestLogin_CredenciaisInvalidas(t *testing.T) {
	uc := newAuthUC(newUsuarioRepoFake())
	ctx := context.Background()

	_, err := uc.Register(ctx, dto.RegisterRequest{Nome: "maria", Senha: "correta"})
	require.NoError(t, err)

	_, err = uc.Login(ctx, dto.LoginRequest{Nome: "maria", Senha: "errada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "senha errada deve falhar")

	_, err = uc.Login(ctx, dto.LoginRequest{Nome: "nao-existe", Senha: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"usuário inexistente deve produzir o mesmo erro da senha errada (sem enumeração)")
}

func TestLogin_CamposObrigatorios(t *testing.T) {
	uc := newAuthUC(newUsuarioRepoFake())

	_, err := uc.Login(context.Background(), dto.LoginRequest{Nome: "", Senha: ""})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
