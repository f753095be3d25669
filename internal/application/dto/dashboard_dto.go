package dto

// AlertaEstoqueBaixoDTO um equipamento visível cuja quantidade atual está
// abaixo da mínima, com a mensagem pronta para exibição.
type AlertaEstoqueBaixoDTO struct {
	EquipamentoID    int64  `json:"equipamento_id"`
	Nome             string `json:"nome"`
	QuantidadeAtual  int    `json:"quantidade_atual"`
	QuantidadeMinima int    `json:"quantidade_minima"`
	Mensagem         string `json:"mensagem"`
}

// DashboardResponse resposta de GET /api/dashboard: o conjunto de
// equipamentos visível ao grupo da sessão e os alertas de estoque baixo
// calculados sobre esse mesmo conjunto.
type DashboardResponse struct {
	Equipamentos []EquipamentoResponse   `json:"equipamentos"`
	Alertas      []AlertaEstoqueBaixoDTO `json:"alertas"`
}
