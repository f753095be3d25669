package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/application/inventory"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
)

// EquipamentoHandler trata o catálogo de equipamentos.
type EquipamentoHandler struct {
	uc *inventory.EquipamentoUseCase
}

// NewEquipamentoHandler constrói o handler.
func NewEquipamentoHandler(uc *inventory.EquipamentoUseCase) *EquipamentoHandler {
	return &EquipamentoHandler{uc: uc}
}

// List godoc
// @Summary      Listar equipamentos visíveis ao grupo da sessão
// @Tags         equipamentos
// @Produce      json
// @Param        incluir_gerais  query  bool  false  "TI: incluir também itens Geral"
// @Success      200  {array}  dto.EquipamentoResponse
// @Router       /api/equipamentos [get]
func (h *EquipamentoHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), GetGrupo(c), c.QueryBool("incluir_gerais"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar equipamentos"})
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Cadastrar equipamento
// @Tags         equipamentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipamentoRequest  true  "nome, marca, modelo, quantidade_minima, localizacao, tipo"
// @Success      201   {object}  dto.EquipamentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/equipamentos [post]
func (h *EquipamentoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipamentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Nome == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "O nome do equipamento é obrigatório."})
	}
	equipamento, err := h.uc.Create(c.Context(), GetGrupo(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "dados do equipamento inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao cadastrar o equipamento."})
	}
	return c.Status(fiber.StatusCreated).JSON(equipamento)
}
