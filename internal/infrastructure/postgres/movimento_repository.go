package postgres

import (
	"context"
	"fmt"

	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo implementação de MovimentoRepository sobre PostgreSQL
// (usável com pool ou tx).
type MovimentoRepo struct {
	q Querier
}

// NewMovimentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// CreateEntrada persiste um registro de entrada e preenche o ID gerado.
func (r *MovimentoRepo) CreateEntrada(ctx context.Context, entrada *entity.Entrada) error {
	query := `
		INSERT INTO entradas (equipamento_id, quantidade, responsavel, localizacao, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		entrada.EquipamentoID, entrada.Quantidade, entrada.Responsavel,
		entrada.Localizacao, entrada.CreatedAt,
	).Scan(&entrada.ID)
	if err != nil {
		return fmt.Errorf("insert entrada: %w", err)
	}
	return nil
}

// CreateSaida persiste um registro de saída e preenche o ID gerado.
func (r *MovimentoRepo) CreateSaida(ctx context.Context, saida *entity.Saida) error {
	query := `
		INSERT INTO saidas (equipamento_id, quantidade, recebedor, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		saida.EquipamentoID, saida.Quantidade, saida.Recebedor, saida.CreatedAt,
	).Scan(&saida.ID)
	if err != nil {
		return fmt.Errorf("insert saida: %w", err)
	}
	return nil
}

// ListEntradas devolve as entradas de equipamentos dos tipos indicados,
// mais recentes primeiro.
func (r *MovimentoRepo) ListEntradas(ctx context.Context, tipos []string) ([]entity.Entrada, error) {
	query := `
		SELECT en.id, en.equipamento_id, en.quantidade, en.responsavel, en.localizacao, en.created_at
		FROM entradas en
		JOIN equipamentos eq ON eq.id = en.equipamento_id
		WHERE eq.tipo = ANY($1)
		ORDER BY en.created_at DESC, en.id DESC`
	rows, err := r.q.Query(ctx, query, tipos)
	if err != nil {
		return nil, fmt.Errorf("list entradas: %w", err)
	}
	defer rows.Close()

	list := []entity.Entrada{}
	for rows.Next() {
		var e entity.Entrada
		if err := rows.Scan(&e.ID, &e.EquipamentoID, &e.Quantidade, &e.Responsavel, &e.Localizacao, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan entrada: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// ListSaidas devolve as saídas de equipamentos dos tipos indicados,
// mais recentes primeiro.
func (r *MovimentoRepo) ListSaidas(ctx context.Context, tipos []string) ([]entity.Saida, error) {
	query := `
		SELECT sa.id, sa.equipamento_id, sa.quantidade, sa.recebedor, sa.created_at
		FROM saidas sa
		JOIN equipamentos eq ON eq.id = sa.equipamento_id
		WHERE eq.tipo = ANY($1)
		ORDER BY sa.created_at DESC, sa.id DESC`
	rows, err := r.q.Query(ctx, query, tipos)
	if err != nil {
		return nil, fmt.Errorf("list saidas: %w", err)
	}
	defer rows.Close()

	list := []entity.Saida{}
	for rows.Next() {
		var s entity.Saida
		if err := rows.Scan(&s.ID, &s.EquipamentoID, &s.Quantidade, &s.Recebedor, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan saida: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
