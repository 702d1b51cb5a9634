package discord

import (
	"errors"

	"mesabot/internal/domain"
)

// Message keys for user-facing errors.
const (
	KeyErrGeneric           = "errors.generic"
	KeyErrUnsupportedLocale = "errors.unsupported_locale"
	KeyErrNotGameMaster     = "errors.not_game_master"
	KeyErrGuildOnly         = "errors.guild_only"
	KeyErrEmptyKey          = "errors.empty_key"
)

// DomainErrorKey maps a domain error to the message key shown to the user.
// This is the single place where domain errors meet the message catalog.
func DomainErrorKey(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnsupportedLocale):
		return KeyErrUnsupportedLocale
	case errors.Is(err, domain.ErrNotGameMaster):
		return KeyErrNotGameMaster
	case errors.Is(err, domain.ErrGuildOnly):
		return KeyErrGuildOnly
	case errors.Is(err, domain.ErrEmptyKey):
		return KeyErrEmptyKey
	default:
		return KeyErrGeneric
	}
}

// DomainErrorFallback is the built-in text used when the catalog cannot
// render the message returned by DomainErrorKey.
func DomainErrorFallback(err error) string {
	switch DomainErrorKey(err) {
	case KeyErrUnsupportedLocale:
		return "Idioma não suportado."
	case KeyErrNotGameMaster:
		return "Apenas o mestre pode executar esta ação."
	case KeyErrGuildOnly:
		return "Este comando só funciona em servidores."
	case KeyErrEmptyKey:
		return "Informe uma chave de mensagem."
	default:
		return "Ocorreu um erro."
	}
}
