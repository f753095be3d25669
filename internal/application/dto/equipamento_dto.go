package dto

import "time"

// CreateEquipamentoRequest body para POST /api/equipamentos.
// A quantidade atual não é informada: todo equipamento nasce com estoque 0
// e só muda via movimentos.
type CreateEquipamentoRequest struct {
	Nome             string `json:"nome" validate:"required,min=1,max=200"`
	Marca            string `json:"marca" validate:"omitempty,max=100"`
	Modelo           string `json:"modelo" validate:"omitempty,max=100"`
	QuantidadeMinima int    `json:"quantidade_minima" validate:"min=0"`
	Localizacao      string `json:"localizacao" validate:"omitempty,max=200"`
	Tipo             string `json:"tipo" validate:"omitempty,oneof=Geral TI"`
}

// EquipamentoResponse saída de um equipamento do catálogo.
type EquipamentoResponse struct {
	ID               int64     `json:"id"`
	Nome             string    `json:"nome"`
	Marca            string    `json:"marca"`
	Modelo           string    `json:"modelo"`
	QuantidadeAtual  int       `json:"quantidade_atual"`
	QuantidadeMinima int       `json:"quantidade_minima"`
	Localizacao      string    `json:"localizacao"`
	Tipo             string    `json:"tipo"`
	CreatedAt        time.Time `json:"created_at"`
}
