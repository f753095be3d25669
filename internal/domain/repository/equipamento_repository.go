package repository

import (
	"context"

	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
)

// EquipamentoRepository define o porto de persistência para Equipamento.
//
// List filtra pelos tipos visíveis ao grupo da sessão e devolve os itens
// ordenados por nome ascendente.
//
// Increment e TryDecrement existem separados do CRUD porque a quantidade
// atual só muda junto com a gravação de um movimento, dentro da mesma
// transação (ver inventory.TxRunner). TryDecrement é condicional: só
// decrementa se quantidade_atual >= quantidade, devolvendo false caso
// contrário. Mantém o invariante de estoque não negativo mesmo com
// saídas concorrentes.
type EquipamentoRepository interface {
	Create(ctx context.Context, equipamento *entity.Equipamento) error
	GetByID(ctx context.Context, id int64) (*entity.Equipamento, error)
	List(ctx context.Context, tipos []string) ([]entity.Equipamento, error)
	Increment(ctx context.Context, id int64, quantidade int) error
	TryDecrement(ctx context.Context, id int64, quantidade int) (bool, error)
}
