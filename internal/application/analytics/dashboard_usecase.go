// Package analytics contém o caso de uso do Dashboard de Estoque.
package analytics

import (
	"context"
	"fmt"

	"github.com/estoquedev/controle-estoque-api/internal/application/dto"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

// DashboardUseCase monta a visão do estoque para o grupo da sessão: o
// conjunto de equipamentos visível e os alertas de estoque baixo calculados
// sobre esse conjunto.
//
// Fonte de dados: EquipamentoRepository (consulta read-only).
type DashboardUseCase struct {
	equipamentoRepo repository.EquipamentoRepository
}

// NewDashboardUseCase constrói o caso de uso.
func NewDashboardUseCase(equipamentoRepo repository.EquipamentoRepository) *DashboardUseCase {
	return &DashboardUseCase{equipamentoRepo: equipamentoRepo}
}

// GetDashboard devolve os equipamentos visíveis (ordenados por nome) e um
// alerta para cada item com quantidade_atual < quantidade_minima.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context, grupo string, incluirGerais bool) (*dto.DashboardResponse, error) {
	tipos := entity.TiposVisiveis(grupo, incluirGerais)
	equipamentos, err := uc.equipamentoRepo.List(ctx, tipos)
	if err != nil {
		return nil, fmt.Errorf("dashboard: listar equipamentos: %w", err)
	}

	resp := &dto.DashboardResponse{
		Equipamentos: make([]dto.EquipamentoResponse, 0, len(equipamentos)),
		Alertas:      []dto.AlertaEstoqueBaixoDTO{},
	}
	for _, e := range equipamentos {
		resp.Equipamentos = append(resp.Equipamentos, dto.EquipamentoResponse{
			ID:               e.ID,
			Nome:             e.Nome,
			Marca:            e.Marca,
			Modelo:           e.Modelo,
			QuantidadeAtual:  e.QuantidadeAtual,
			QuantidadeMinima: e.QuantidadeMinima,
			Localizacao:      e.Localizacao,
			Tipo:             e.Tipo,
			CreatedAt:        e.CreatedAt,
		})
		if e.EstoqueBaixo() {
			resp.Alertas = append(resp.Alertas, dto.AlertaEstoqueBaixoDTO{
				EquipamentoID:    e.ID,
				Nome:             e.Nome,
				QuantidadeAtual:  e.QuantidadeAtual,
				QuantidadeMinima: e.QuantidadeMinima,
				Mensagem: fmt.Sprintf(
					"O item '%s' está com estoque baixo! Quantidade atual: %d, Mínima: %d",
					e.Nome, e.QuantidadeAtual, e.QuantidadeMinima,
				),
			})
		}
	}
	return resp, nil
}
