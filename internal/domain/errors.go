package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrNomeJaExiste        = errors.New("o nome de usuário já está cadastrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("não autorizado")
	ErrForbidden           = errors.New("acesso negado")
	ErrEstoqueInsuficiente = errors.New("estoque insuficiente")
)

// EstoqueInsuficienteError sinaliza uma saída maior que o estoque disponível,
// carregando a quantidade disponível lida na mesma transação para a mensagem
// ao usuário. errors.Is(err, ErrEstoqueInsuficiente) retorna true.
type EstoqueInsuficienteError struct {
	Disponivel int
}

func (e *EstoqueInsuficienteError) Error() string {
	return fmt.Sprintf("estoque insuficiente. Quantidade disponível: %d", e.Disponivel)
}

// Is permite comparar com o sentinel ErrEstoqueInsuficiente.
func (e *EstoqueInsuficienteError) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}
