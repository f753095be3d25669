package repository

import (
	"context"

	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
)

// MovimentoRepository define o porto de persistência para os movimentos de
// estoque (entradas e saídas). Movimentos são fatos históricos: só existem
// Create e List, nunca Update ou Delete.
//
// Os List filtram pelos tipos de equipamento visíveis ao grupo da sessão
// e devolvem os movimentos mais recentes primeiro.
type MovimentoRepository interface {
	CreateEntrada(ctx context.Context, entrada *entity.Entrada) error
	CreateSaida(ctx context.Context, saida *entity.Saida) error
	ListEntradas(ctx context.Context, tipos []string) ([]entity.Entrada, error)
	ListSaidas(ctx context.Context, tipos []string) ([]entity.Saida, error)
}
