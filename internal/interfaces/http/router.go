package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/estoquedev/controle-estoque-api/internal/application/analytics"
	"github.com/estoquedev/controle-estoque-api/internal/application/auth"
	"github.com/estoquedev/controle-estoque-api/internal/application/inventory"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	EquipamentoUC *inventory.EquipamentoUseCase
	MovimentoUC   *inventory.MovimentoUseCase
	DashboardUC   *appanalytics.DashboardUseCase
	JWTSecret     string
}

// Router registra as rotas da API.
//
// Todas as rotas além do login exigem sessão (Bearer Token). O cadastro de
// usuários é restrito ao grupo TI; as demais rotas aplicam a visibilidade
// por grupo dentro dos casos de uso.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cadastro de usuários (somente TI)
	protected.Post("/usuarios", RequireGrupo(entity.GrupoTI), authHandler.Register)

	// Equipamentos
	equipamentoHandler := NewEquipamentoHandler(deps.EquipamentoUC)
	protected.Get("/equipamentos", equipamentoHandler.List)
	protected.Post("/equipamentos", equipamentoHandler.Create)

	// Movimentos de estoque
	movimentoHandler := NewMovimentoHandler(deps.MovimentoUC)
	protected.Post("/movimentos/entradas", movimentoHandler.RegisterEntrada)
	protected.Get("/movimentos/entradas", movimentoHandler.ListEntradas)
	protected.Post("/movimentos/saidas", movimentoHandler.RegisterSaida)
	protected.Get("/movimentos/saidas", movimentoHandler.ListSaidas)

	// Dashboard de estoque
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetDashboard)
}
