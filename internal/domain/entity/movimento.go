package entity

import "time"

// Entrada é um movimento de estoque para dentro: imutável depois de criado,
// incrementa a quantidade atual do equipamento referenciado.
type Entrada struct {
	ID            int64
	EquipamentoID int64
	Quantidade    int // > 0
	Responsavel   string
	Localizacao   string
	CreatedAt     time.Time
}

// Saida é um movimento de estoque para fora: imutável depois de criado,
// decrementa a quantidade atual do equipamento referenciado quando há
// estoque suficiente.
type Saida struct {
	ID            int64
	EquipamentoID int64
	Quantidade    int // > 0
	Recebedor     string
	CreatedAt     time.Time
}
