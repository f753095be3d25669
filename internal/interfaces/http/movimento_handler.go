package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/application/inventory"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
)

// MovimentoHandler trata o registro e a consulta de entradas e saídas.
type MovimentoHandler struct {
	uc *inventory.MovimentoUseCase
}

// NewMovimentoHandler constrói o handler.
func NewMovimentoHandler(uc *inventory.MovimentoUseCase) *MovimentoHandler {
	return &MovimentoHandler{uc: uc}
}

// RegisterEntrada godoc
// @Summary      Registrar entrada de equipamento
// @Tags         movimentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntradaRequest  true  "equipamento_id, quantidade, responsavel, localizacao"
// @Success      201   {object}  dto.EntradaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movimentos/entradas [post]
func (h *MovimentoHandler) RegisterEntrada(c *fiber.Ctx) error {
	var in dto.RegisterEntradaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	// Responsável em branco assume o usuário da sessão, como o formulário original
	if in.Responsavel == "" {
		in.Responsavel = GetNome(c)
	}
	entrada, err := h.uc.RegisterEntrada(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipamento e quantidade (mínimo 1) são obrigatórios"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipamento não encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao registrar a entrada."})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(entrada)
}

// RegisterSaida godoc
// @Summary      Registrar saída de equipamento
// @Tags         movimentos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaidaRequest  true  "equipamento_id, quantidade, recebedor"
// @Success      201   {object}  dto.SaidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimentos/saidas [post]
func (h *MovimentoHandler) RegisterSaida(c *fiber.Ctx) error {
	var in dto.RegisterSaidaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Recebedor == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "O nome do recebedor é obrigatório."})
	}
	saida, err := h.uc.RegisterSaida(c.Context(), in)
	if err != nil {
		var insuficiente *domain.EstoqueInsuficienteError
		switch {
		case errors.As(err, &insuficiente):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code:    "ESTOQUE_INSUFICIENTE",
				Message: fmt.Sprintf("Estoque insuficiente. Quantidade disponível: %d", insuficiente.Disponivel),
			})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "equipamento, quantidade (mínimo 1) e recebedor são obrigatórios"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipamento não encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Erro ao registrar a saída."})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(saida)
}

// ListEntradas godoc
// @Summary      Histórico de entradas dos equipamentos visíveis
// @Tags         movimentos
// @Produce      json
// @Param        incluir_gerais  query  bool  false  "TI: incluir também itens Geral"
// @Success      200  {array}  dto.EntradaResponse
// @Router       /api/movimentos/entradas [get]
func (h *MovimentoHandler) ListEntradas(c *fiber.Ctx) error {
	list, err := h.uc.ListEntradas(c.Context(), GetGrupo(c), c.QueryBool("incluir_gerais"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar entradas"})
	}
	return c.JSON(list)
}

// ListSaidas godoc
// @Summary      Histórico de saídas dos equipamentos visíveis
// @Tags         movimentos
// @Produce      json
// @Param        incluir_gerais  query  bool  false  "TI: incluir também itens Geral"
// @Success      200  {array}  dto.SaidaResponse
// @Router       /api/movimentos/saidas [get]
func (h *MovimentoHandler) ListSaidas(c *fiber.Ctx) error {
	list, err := h.uc.ListSaidas(c.Context(), GetGrupo(c), c.QueryBool("incluir_gerais"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "erro ao listar saídas"})
	}
	return c.JSON(list)
}
