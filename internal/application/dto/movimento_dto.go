package dto

import "time"

// RegisterEntradaRequest body para POST /api/movimentos/entradas.
type RegisterEntradaRequest struct {
	EquipamentoID int64  `json:"equipamento_id" validate:"required,min=1"`
	Quantidade    int    `json:"quantidade" validate:"required,min=1"`
	Responsavel   string `json:"responsavel" validate:"omitempty,max=100"`
	Localizacao   string `json:"localizacao" validate:"omitempty,max=200"`
}

// RegisterSaidaRequest body para POST /api/movimentos/saidas.
type RegisterSaidaRequest struct {
	EquipamentoID int64  `json:"equipamento_id" validate:"required,min=1"`
	Quantidade    int    `json:"quantidade" validate:"required,min=1"`
	Recebedor     string `json:"recebedor" validate:"required,max=100"`
}

// EntradaResponse saída de um registro de entrada.
type EntradaResponse struct {
	ID            int64     `json:"id"`
	EquipamentoID int64     `json:"equipamento_id"`
	Quantidade    int       `json:"quantidade"`
	Responsavel   string    `json:"responsavel"`
	Localizacao   string    `json:"localizacao"`
	CreatedAt     time.Time `json:"created_at"`
}

// SaidaResponse saída de um registro de saída.
type SaidaResponse struct {
	ID            int64     `json:"id"`
	EquipamentoID int64     `json:"equipamento_id"`
	Quantidade    int       `json:"quantidade"`
	Recebedor     string    `json:"recebedor"`
	CreatedAt     time.Time `json:"created_at"`
}
