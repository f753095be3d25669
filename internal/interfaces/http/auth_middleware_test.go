package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/estoquedev/controle-estoque-api/internal/interfaces/http"
	pkgjwt "github.com/estoquedev/controle-estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "controle-estoque-test"
	testExpMin    = 60
)

// buildTestApp constrói uma aplicação Fiber mínima com:
//   - AuthMiddleware para validar o JWT e carregar os locals
//   - RequireGrupo para autorizar o acesso
//   - Um handler dummy que devolve 200 se passar pelos middlewares
func buildTestApp(gruposPermitidos ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequireGrupo(gruposPermitidos...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":    true,
				"grupo": apphttp.GetGrupo(c),
			})
		},
	)
	return app
}

// tokenParaGrupo gera um JWT de sessão com o grupo indicado.
func tokenParaGrupo(t *testing.T, nome, grupo string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, nome, grupo, testIssuer, testExpMin)
	require.NoError(t, err, "deve gerar um token JWT válido")
	return "Bearer " + tok
}

// doRequest dispara GET /protegida e devolve a resposta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protegida", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Testes RequireGrupo
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: sessão TI acessa rota restrita a TI → HTTP 200.
func TestRequireGrupo_TIAcessaRotaTI(t *testing.T) {
	app := buildTestApp("TI")
	resp := doRequest(t, app, tokenParaGrupo(t, "maria", "TI"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"sessão do grupo TI deve acessar o cadastro de usuários")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "TI", body["grupo"])
}

// Caso 2: sessão Usuario bloqueada em rota TI → HTTP 403 com aviso de permissão.
func TestRequireGrupo_UsuarioBloqueadoEmRotaTI(t *testing.T) {
	app := buildTestApp("TI")
	resp := doRequest(t, app, tokenParaGrupo(t, "jose", "Usuario"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"grupo Usuario não pode acessar o cadastro de usuários")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "permissão",
		"a resposta deve conter o aviso de permissão, não um erro genérico")
}

// Caso 3: token sem grupo (sessão legada) → HTTP 401.
func TestRequireGrupo_TokenSemGrupo(t *testing.T) {
	app := buildTestApp("TI")
	resp := doRequest(t, app, tokenParaGrupo(t, "maria", ""))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_GRUPO")
}

// Caso 4: sem header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequireGrupo_SemAuthHeader(t *testing.T) {
	app := buildTestApp("TI")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 5: token assinado com outro secret → HTTP 401 INVALID_TOKEN.
func TestRequireGrupo_TokenInvalido(t *testing.T) {
	app := buildTestApp("TI")
	tok, err := pkgjwt.Generate("outro-secret", testUserID, "maria", "TI", testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}
