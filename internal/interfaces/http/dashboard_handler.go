package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/estoquedev/controle-estoque-api/internal/application/analytics"
	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
)

// DashboardHandler trata o Dashboard de Estoque.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler constrói o handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetDashboard godoc
// @Summary      Dashboard de estoque do grupo da sessão
// @Tags         dashboard
// @Produce      json
// @Param        incluir_gerais  query  bool  false  "TI: incluir também itens Geral"
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
//
// Devolve os equipamentos visíveis e os alertas de estoque baixo
// (quantidade_atual < quantidade_minima) calculados sobre esse conjunto.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	out, err := h.uc.GetDashboard(c.Context(), GetGrupo(c), c.QueryBool("incluir_gerais"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao montar o dashboard"})
	}
	return c.JSON(out)
}
