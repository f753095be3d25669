package inventory

import (
	"context"

	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o registro do movimento e o
// ajuste da quantidade do equipamento sejam uma unidade atômica: ou os dois
// commits acontecem, ou nenhum.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		equipamentoRepo repository.EquipamentoRepository,
		movimentoRepo repository.MovimentoRepository,
	) error) error
}
