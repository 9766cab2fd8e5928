package userservice

import (
	"time"

	"gocadastro/internal/domain"
	"gocadastro/internal/pkg/validator"
)

// Mensagens das regras de cadastro, na ordem de avaliação.
const (
	MsgInvalidCPF          = "CPF é obrigatório e deve conter exatamente 11 dígitos numéricos."
	MsgInvalidName         = "Nome é obrigatório e deve conter entre 3 e 100 caracteres."
	MsgInvalidBirthDate    = "Data de nascimento é obrigatória e deve estar no formato dd/mm/aaaa."
	MsgUnderage            = "Usuário deve ter 18 anos ou mais para se cadastrar."
	MsgInvalidPassword     = "Senha é obrigatória, deve ser alfanumérica e conter entre 5 e 12 caracteres."
	MsgInvalidConfirmation = "Confirmação de senha é obrigatória e deve ser igual à senha."
	MsgInvalidEmail        = "E-mail é obrigatório e deve possuir um formato válido."
	MsgInvalidAddress      = "Endereço deve conter entre 3 e 200 caracteres quando informado."
	MsgInvalidCity         = "Cidade deve conter entre 3 e 100 caracteres quando informada."
	MsgInvalidState        = "Estado deve ser informado com 2 letras (sigla), quando informado."
	MsgInvalidPhone        = "Telefone deve conter 11 dígitos (incluindo DDD), quando informado."
)

const (
	addressMinLength = 3
	addressMaxLength = 200
	cityMinLength    = 3
	cityMaxLength    = 100
)

// filled indica campo obrigatório informado e não vazio.
func filled(v *string) bool {
	return v != nil && *v != ""
}

// ValidateRegistration aplica as regras de cadastro e retorna as violações em ordem fixa:
// CPF, nome, data de nascimento (idade só se a data for válida), senha, confirmação,
// e-mail, endereço, cidade, estado e telefone. Lista vazia significa payload aceito.
// Cada regra contribui no máximo com uma mensagem.
func ValidateRegistration(reg domain.UserRegistration, now time.Time) []string {
	violations := []string{}

	if !filled(reg.CPF) || !validator.IsValidCPF(*reg.CPF) {
		violations = append(violations, MsgInvalidCPF)
	}

	if !filled(reg.FullName) || !validator.IsValidName(*reg.FullName) {
		violations = append(violations, MsgInvalidName)
	}

	if !filled(reg.BirthDate) || !validator.IsValidDatePtBr(*reg.BirthDate) {
		violations = append(violations, MsgInvalidBirthDate)
	} else if !validator.IsAdult(*reg.BirthDate, now) {
		violations = append(violations, MsgUnderage)
	}

	if !filled(reg.Secret) || !validator.IsValidPassword(*reg.Secret) {
		violations = append(violations, MsgInvalidPassword)
	}

	// A confirmação é checada mesmo quando a senha é inválida.
	if !filled(reg.ConfirmSecret) || !filled(reg.Secret) || *reg.ConfirmSecret != *reg.Secret {
		violations = append(violations, MsgInvalidConfirmation)
	}

	if !filled(reg.Email) || !validator.IsValidEmail(*reg.Email) {
		violations = append(violations, MsgInvalidEmail)
	}

	// Campos opcionais: só validados quando informados.
	if reg.Address != nil && !validator.IsValidOptionalText(*reg.Address, addressMinLength, addressMaxLength) {
		violations = append(violations, MsgInvalidAddress)
	}

	if reg.City != nil && !validator.IsValidOptionalText(*reg.City, cityMinLength, cityMaxLength) {
		violations = append(violations, MsgInvalidCity)
	}

	if reg.State != nil && !validator.IsValidState(*reg.State) {
		violations = append(violations, MsgInvalidState)
	}

	if reg.Phone != nil && !validator.IsValidPhone(*reg.Phone) {
		violations = append(violations, MsgInvalidPhone)
	}

	return violations
}
