package inventory

import (
	"context"
	"time"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

// MovimentoUseCase registra entradas e saídas de estoque de forma
// transacional: o insert do movimento e o ajuste de quantidade_atual do
// equipamento acontecem na mesma transação (Commit ou Rollback juntos).
type MovimentoUseCase struct {
	txRunner      TxRunner
	movimentoRepo repository.MovimentoRepository
}

// NewMovimentoUseCase constrói o caso de uso.
func NewMovimentoUseCase(txRunner TxRunner, movimentoRepo repository.MovimentoRepository) *MovimentoUseCase {
	return &MovimentoUseCase{txRunner: txRunner, movimentoRepo: movimentoRepo}
}

// RegisterEntrada grava o registro de entrada e soma a quantidade ao
// equipamento, como unidade atômica. Equipamento inexistente devolve
// domain.ErrNotFound.
func (uc *MovimentoUseCase) RegisterEntrada(ctx context.Context, in dto.RegisterEntradaRequest) (*dto.EntradaResponse, error) {
	if in.EquipamentoID <= 0 || in.Quantidade <= 0 {
		return nil, domain.ErrInvalidInput
	}

	entrada := &entity.Entrada{
		EquipamentoID: in.EquipamentoID,
		Quantidade:    in.Quantidade,
		Responsavel:   in.Responsavel,
		Localizacao:   in.Localizacao,
		CreatedAt:     time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		equipamentoRepo repository.EquipamentoRepository,
		movimentoRepo repository.MovimentoRepository,
	) error {
		equipamento, err := equipamentoRepo.GetByID(ctx, in.EquipamentoID)
		if err != nil {
			return err
		}
		if equipamento == nil {
			return domain.ErrNotFound
		}
		if err := movimentoRepo.CreateEntrada(ctx, entrada); err != nil {
			return err
		}
		return equipamentoRepo.Increment(ctx, in.EquipamentoID, in.Quantidade)
	})
	if err != nil {
		return nil, err
	}
	return toEntradaResponse(*entrada), nil
}

// RegisterSaida grava o registro de saída e subtrai a quantidade do
// equipamento. O decremento é condicional no próprio store
// (quantidade_atual >= quantidade): duas saídas concorrentes sobre o mesmo
// equipamento nunca levam o estoque a negativo; no máximo uma passa.
// Quando não há estoque, devolve EstoqueInsuficienteError com a quantidade
// disponível e nenhuma escrita é feita.
func (uc *MovimentoUseCase) RegisterSaida(ctx context.Context, in dto.RegisterSaidaRequest) (*dto.SaidaResponse, error) {
	if in.EquipamentoID <= 0 || in.Quantidade <= 0 || in.Recebedor == "" {
		return nil, domain.ErrInvalidInput
	}

	saida := &entity.Saida{
		EquipamentoID: in.EquipamentoID,
		Quantidade:    in.Quantidade,
		Recebedor:     in.Recebedor,
		CreatedAt:     time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		equipamentoRepo repository.EquipamentoRepository,
		movimentoRepo repository.MovimentoRepository,
	) error {
		ok, err := equipamentoRepo.TryDecrement(ctx, in.EquipamentoID, in.Quantidade)
		if err != nil {
			return err
		}
		if !ok {
			// Nada foi decrementado: ou o equipamento não existe, ou o
			// estoque é insuficiente. Releitura na mesma tx decide qual.
			equipamento, err := equipamentoRepo.GetByID(ctx, in.EquipamentoID)
			if err != nil {
				return err
			}
			if equipamento == nil {
				return domain.ErrNotFound
			}
			return &domain.EstoqueInsuficienteError{Disponivel: equipamento.QuantidadeAtual}
		}
		return movimentoRepo.CreateSaida(ctx, saida)
	})
	if err != nil {
		return nil, err
	}
	return toSaidaResponse(*saida), nil
}

// ListEntradas devolve o histórico de entradas dos equipamentos visíveis ao
// grupo, mais recentes primeiro.
func (uc *MovimentoUseCase) ListEntradas(ctx context.Context, grupo string, incluirGerais bool) ([]dto.EntradaResponse, error) {
	tipos := entity.TiposVisiveis(grupo, incluirGerais)
	entradas, err := uc.movimentoRepo.ListEntradas(ctx, tipos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntradaResponse, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, *toEntradaResponse(e))
	}
	return out, nil
}

// ListSaidas devolve o histórico de saídas dos equipamentos visíveis ao
// grupo, mais recentes primeiro.
func (uc *MovimentoUseCase) ListSaidas(ctx context.Context, grupo string, incluirGerais bool) ([]dto.SaidaResponse, error) {
	tipos := entity.TiposVisiveis(grupo, incluirGerais)
	saidas, err := uc.movimentoRepo.ListSaidas(ctx, tipos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaidaResponse, 0, len(saidas))
	for _, s := range saidas {
		out = append(out, *toSaidaResponse(s))
	}
	return out, nil
}

func toEntradaResponse(e entity.Entrada) *dto.EntradaResponse {
	return &dto.EntradaResponse{
		ID:            e.ID,
		EquipamentoID: e.EquipamentoID,
		Quantidade:    e.Quantidade,
		Responsavel:   e.Responsavel,
		Localizacao:   e.Localizacao,
		CreatedAt:     e.CreatedAt,
	}
}

func toSaidaResponse(s entity.Saida) *dto.SaidaResponse {
	return &dto.SaidaResponse{
		ID:            s.ID,
		EquipamentoID: s.EquipamentoID,
		Quantidade:    s.Quantidade,
		Recebedor:     s.Recebedor,
		CreatedAt:     s.CreatedAt,
	}
}
