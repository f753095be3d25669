package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

var _ repository.EquipamentoRepository = (*EquipamentoRepo)(nil)

// EquipamentoRepo implementação de EquipamentoRepository sobre PostgreSQL
// (usável com pool ou tx).
type EquipamentoRepo struct {
	q Querier
}

// NewEquipamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewEquipamentoRepository(q Querier) *EquipamentoRepo {
	return &EquipamentoRepo{q: q}
}

// Create persiste um equipamento e preenche o ID gerado.
// quantidade_atual fica com o default 0 da tabela.
func (r *EquipamentoRepo) Create(ctx context.Context, equipamento *entity.Equipamento) error {
	query := `
		INSERT INTO equipamentos (nome, marca, modelo, quantidade_minima, localizacao, tipo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, quantidade_atual`
	err := r.q.QueryRow(ctx, query,
		equipamento.Nome, equipamento.Marca, equipamento.Modelo,
		equipamento.QuantidadeMinima, equipamento.Localizacao, equipamento.Tipo,
		equipamento.CreatedAt,
	).Scan(&equipamento.ID, &equipamento.QuantidadeAtual)
	if err != nil {
		return fmt.Errorf("insert equipamento: %w", err)
	}
	return nil
}

// GetByID obtém um equipamento por ID; (nil, nil) se não existir.
func (r *EquipamentoRepo) GetByID(ctx context.Context, id int64) (*entity.Equipamento, error) {
	query := `
		SELECT id, nome, marca, modelo, quantidade_atual, quantidade_minima, localizacao, tipo, created_at
		FROM equipamentos WHERE id = $1`
	var e entity.Equipamento
	err := r.q.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Nome, &e.Marca, &e.Modelo, &e.QuantidadeAtual,
		&e.QuantidadeMinima, &e.Localizacao, &e.Tipo, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipamento: %w", err)
	}
	return &e, nil
}

// List devolve os equipamentos dos tipos indicados, ordenados por nome.
func (r *EquipamentoRepo) List(ctx context.Context, tipos []string) ([]entity.Equipamento, error) {
	query := `
		SELECT id, nome, marca, modelo, quantidade_atual, quantidade_minima, localizacao, tipo, created_at
		FROM equipamentos
		WHERE tipo = ANY($1)
		ORDER BY nome ASC`
	rows, err := r.q.Query(ctx, query, tipos)
	if err != nil {
		return nil, fmt.Errorf("list equipamentos: %w", err)
	}
	defer rows.Close()

	list := []entity.Equipamento{}
	for rows.Next() {
		var e entity.Equipamento
		if err := rows.Scan(
			&e.ID, &e.Nome, &e.Marca, &e.Modelo, &e.QuantidadeAtual,
			&e.QuantidadeMinima, &e.Localizacao, &e.Tipo, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan equipamento: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Increment soma quantidade ao estoque do equipamento.
func (r *EquipamentoRepo) Increment(ctx context.Context, id int64, quantidade int) error {
	query := `
		UPDATE equipamentos SET quantidade_atual = quantidade_atual + $2
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, quantidade)
	if err != nil {
		return fmt.Errorf("increment equipamento: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("increment equipamento: id %d não encontrado", id)
	}
	return nil
}

// TryDecrement subtrai quantidade do estoque apenas se houver saldo
// suficiente, num único UPDATE condicional. Devolve false quando nenhuma
// linha foi afetada (equipamento inexistente ou estoque insuficiente).
// O comando único fecha a janela entre checagem e escrita sob
// concorrência.
func (r *EquipamentoRepo) TryDecrement(ctx context.Context, id int64, quantidade int) (bool, error) {
	query := `
		UPDATE equipamentos SET quantidade_atual = quantidade_atual - $2
		WHERE id = $1 AND quantidade_atual >= $2`
	tag, err := r.q.Exec(ctx, query, id, quantidade)
	if err != nil {
		return false, fmt.Errorf("decrement equipamento: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
