package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/pkg/jwt"
)

// Locals keys da sessão no Fiber.
const (
	LocalUserID = "user_id"
	LocalNome   = "nome"
	LocalGrupo  = "grupo"
)

// AuthMiddleware valida o Bearer Token JWT e carrega UserID, Nome e Grupo
// em c.Locals. O token é a sessão: sem token válido não há sessão.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, nome, grupo, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalNome, nome)
		c.Locals(LocalGrupo, grupo)
		return c.Next()
	}
}

// RequireGrupo autoriza apenas sessões de um dos grupos indicados. Usar
// DEPOIS de AuthMiddleware. Grupo ausente no token responde 401; grupo não
// permitido responde 403 com mensagem de permissão (não é erro fatal: o
// cliente apenas exibe o aviso).
func RequireGrupo(grupos ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		grupo := GetGrupo(c)
		if grupo == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_GRUPO", Message: "grupo não encontrado no token"})
		}
		for _, g := range grupos {
			if grupo == g {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "Você não tem permissão para acessar esta página.",
		})
	}
}

// GetUserID devolve o UserID do contexto (depois do middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetNome devolve o nome do usuário da sessão.
func GetNome(c *fiber.Ctx) string {
	return localString(c, LocalNome)
}

// GetGrupo devolve o grupo da sessão.
func GetGrupo(c *fiber.Ctx) string {
	return localString(c, LocalGrupo)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
