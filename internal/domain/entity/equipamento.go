package entity

import "time"

// Tipos válidos para Equipamento (regem a visibilidade por grupo).
const (
	TipoGeral = "Geral"
	TipoTI    = "TI"
)

// TipoValido informa se o tipo é um dos aceitos pelo sistema.
func TipoValido(tipo string) bool {
	return tipo == TipoGeral || tipo == TipoTI
}

// Equipamento representa um item do catálogo de estoque.
// QuantidadeAtual só muda através das movimentações (Entrada/Saida)
// e nunca fica negativa.
type Equipamento struct {
	ID               int64
	Nome             string
	Marca            string
	Modelo           string
	QuantidadeAtual  int
	QuantidadeMinima int
	Localizacao      string
	Tipo             string // Geral, TI
	CreatedAt        time.Time
}

// EstoqueBaixo informa se o item está abaixo da quantidade mínima.
func (e Equipamento) EstoqueBaixo() bool {
	return e.QuantidadeAtual < e.QuantidadeMinima
}

// TiposVisiveis devolve os tipos de equipamento que o grupo enxerga.
// A mesma regra vale para dashboard, listagens e movimentos:
//   - Usuario: apenas itens 'Geral'
//   - TI: apenas itens 'TI'; com incluirGerais também os 'Geral'
func TiposVisiveis(grupo string, incluirGerais bool) []string {
	if grupo == GrupoTI {
		if incluirGerais {
			return []string{TipoTI, TipoGeral}
		}
		return []string{TipoTI}
	}
	return []string{TipoGeral}
}
