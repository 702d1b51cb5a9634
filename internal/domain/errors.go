package domain

import "errors"

// Domain errors.
var (
	ErrUserLocaleNotFound = errors.New("preferência de idioma não encontrada")
	ErrUnsupportedLocale  = errors.New("idioma não suportado")
	ErrNotGameMaster      = errors.New("apenas o mestre pode executar esta ação")
	ErrGuildOnly          = errors.New("comando disponível apenas em servidores")
	ErrEmptyKey           = errors.New("chave de mensagem vazia")
)
