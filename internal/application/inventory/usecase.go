// Package inventory contém os casos de uso do catálogo de equipamentos e
// dos movimentos de estoque (entradas e saídas).
package inventory

import (
	"context"
	"time"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/domain"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

// EquipamentoUseCase CRUD do catálogo de equipamentos, aplicando a regra de
// visibilidade por grupo nas leituras.
type EquipamentoUseCase struct {
	equipamentoRepo repository.EquipamentoRepository
}

// NewEquipamentoUseCase constrói o caso de uso.
func NewEquipamentoUseCase(equipamentoRepo repository.EquipamentoRepository) *EquipamentoUseCase {
	return &EquipamentoUseCase{equipamentoRepo: equipamentoRepo}
}

// List devolve os equipamentos visíveis ao grupo, ordenados por nome.
// incluirGerais só tem efeito para o grupo TI (o checkbox "Mostrar Itens Gerais").
func (uc *EquipamentoUseCase) List(ctx context.Context, grupo string, incluirGerais bool) ([]dto.EquipamentoResponse, error) {
	tipos := entity.TiposVisiveis(grupo, incluirGerais)
	equipamentos, err := uc.equipamentoRepo.List(ctx, tipos)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EquipamentoResponse, 0, len(equipamentos))
	for _, e := range equipamentos {
		out = append(out, toEquipamentoResponse(e))
	}
	return out, nil
}

// Create cadastra um equipamento. O nome é obrigatório; a quantidade atual
// nasce em zero (default do store). Para o grupo Usuario o tipo é sempre
// 'Geral'; para TI o tipo em branco assume 'TI'.
func (uc *EquipamentoUseCase) Create(ctx context.Context, grupo string, in dto.CreateEquipamentoRequest) (*dto.EquipamentoResponse, error) {
	if in.Nome == "" || in.QuantidadeMinima < 0 {
		return nil, domain.ErrInvalidInput
	}

	tipo := in.Tipo
	if grupo != entity.GrupoTI {
		tipo = entity.TipoGeral
	} else if tipo == "" {
		tipo = entity.TipoTI
	}
	if !entity.TipoValido(tipo) {
		return nil, domain.ErrInvalidInput
	}

	equipamento := &entity.Equipamento{
		Nome:             in.Nome,
		Marca:            in.Marca,
		Modelo:           in.Modelo,
		QuantidadeMinima: in.QuantidadeMinima,
		Localizacao:      in.Localizacao,
		Tipo:             tipo,
		CreatedAt:        time.Now(),
	}
	if err := uc.equipamentoRepo.Create(ctx, equipamento); err != nil {
		return nil, err
	}
	resp := toEquipamentoResponse(*equipamento)
	return &resp, nil
}

func toEquipamentoResponse(e entity.Equipamento) dto.EquipamentoResponse {
	return dto.EquipamentoResponse{
		ID:               e.ID,
		Nome:             e.Nome,
		Marca:            e.Marca,
		Modelo:           e.Modelo,
		QuantidadeAtual:  e.QuantidadeAtual,
		QuantidadeMinima: e.QuantidadeMinima,
		Localizacao:      e.Localizacao,
		Tipo:             e.Tipo,
		CreatedAt:        e.CreatedAt,
	}
}
