package inventory_test

import (
	"context"
	"sort"
	"sync"

	"github.com/estoquedev/controle-estoque-api/internal/application/inventory"
	"github.com/estoquedev/controle-estoque-api/internal/domain/entity"
	"github.com/estoquedev/controle-estoque-api/internal/domain/repository"
)

// storeFake simula o banco em memória: catálogo, movimentos e o UPDATE
// condicional de decremento. O txRunnerFake segura o mutex durante toda a
// transação, reproduzindo a serialização que o PostgreSQL dá ao UPDATE
// condicional. O teste de concorrência exercita essa serialização.
type storeFake struct {
	mu           sync.Mutex
	equipamentos map[int64]*entity.Equipamento
	entradas     []entity.Entrada
	saidas       []entity.Saida
	nextEquipID  int64
	nextMovID    int64
}

var (
	_ repository.EquipamentoRepository = (*storeFake)(nil)
	_ repository.MovimentoRepository   = (*storeFake)(nil)
)

func newStoreFake() *storeFake {
	return &storeFake{equipamentos: map[int64]*entity.Equipamento{}}
}

// seed insere um equipamento direto no catálogo e devolve o ID.
func (s *storeFake) seed(e entity.Equipamento) int64 {
	s.nextEquipID++
	e.ID = s.nextEquipID
	s.equipamentos[e.ID] = &e
	return e.ID
}

func (s *storeFake) Create(_ context.Context, e *entity.Equipamento) error {
	s.nextEquipID++
	e.ID = s.nextEquipID
	e.QuantidadeAtual = 0 // default da tabela
	cp := *e
	s.equipamentos[e.ID] = &cp
	return nil
}

func (s *storeFake) GetByID(_ context.Context, id int64) (*entity.Equipamento, error) {
	if e, ok := s.equipamentos[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (s *storeFake) List(_ context.Context, tipos []string) ([]entity.Equipamento, error) {
	visivel := map[string]bool{}
	for _, t := range tipos {
		visivel[t] = true
	}
	list := []entity.Equipamento{}
	for _, e := range s.equipamentos {
		if visivel[e.Tipo] {
			list = append(list, *e)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Nome < list[j].Nome })
	return list, nil
}

func (s *storeFake) Increment(_ context.Context, id int64, quantidade int) error {
	e, ok := s.equipamentos[id]
	if !ok {
		return nil
	}
	e.QuantidadeAtual += quantidade
	return nil
}

func (s *storeFake) TryDecrement(_ context.Context, id int64, quantidade int) (bool, error) {
	e, ok := s.equipamentos[id]
	if !ok || e.QuantidadeAtual < quantidade {
		return false, nil
	}
	e.QuantidadeAtual -= quantidade
	return true, nil
}

func (s *storeFake) CreateEntrada(_ context.Context, e *entity.Entrada) error {
	s.nextMovID++
	e.ID = s.nextMovID
	s.entradas = append(s.entradas, *e)
	return nil
}

func (s *storeFake) CreateSaida(_ context.Context, sa *entity.Saida) error {
	s.nextMovID++
	sa.ID = s.nextMovID
	s.saidas = append(s.saidas, *sa)
	return nil
}

func (s *storeFake) ListEntradas(_ context.Context, tipos []string) ([]entity.Entrada, error) {
	visivel := map[string]bool{}
	for _, t := range tipos {
		visivel[t] = true
	}
	list := []entity.Entrada{}
	for i := len(s.entradas) - 1; i >= 0; i-- {
		if e, ok := s.equipamentos[s.entradas[i].EquipamentoID]; ok && visivel[e.Tipo] {
			list = append(list, s.entradas[i])
		}
	}
	return list, nil
}

func (s *storeFake) ListSaidas(_ context.Context, tipos []string) ([]entity.Saida, error) {
	visivel := map[string]bool{}
	for _, t := range tipos {
		visivel[t] = true
	}
	list := []entity.Saida{}
	for i := len(s.saidas) - 1; i >= 0; i-- {
		if e, ok := s.equipamentos[s.saidas[i].EquipamentoID]; ok && visivel[e.Tipo] {
			list = append(list, s.saidas[i])
		}
	}
	return list, nil
}

// txRunnerFake serializa cada transação com o mutex do store.
type txRunnerFake struct {
	store *storeFake
}

var _ inventory.TxRunner = (*txRunnerFake)(nil)

func (r *txRunnerFake) Run(_ context.Context, fn func(
	equipamentoRepo repository.EquipamentoRepository,
	movimentoRepo repository.MovimentoRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store, r.store)
}
