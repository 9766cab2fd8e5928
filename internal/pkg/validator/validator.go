// Package validator reúne os predicados puros usados nas regras de cadastro e login.
// Nenhuma função entra em pânico ou retorna erro: todas respondem apenas sim/não
// (ou um inteiro, no caso da idade).
package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	NameMinLength     = 3
	NameMaxLength     = 100
	PasswordMinLength = 5
	PasswordMaxLength = 12
	AdultAge          = 18
)

var (
	cpfRegex      = regexp.MustCompile(`^\d{11}$`)
	phoneRegex    = regexp.MustCompile(`^\d{11}$`)
	stateRegex    = regexp.MustCompile(`^[A-Za-z]{2}$`)
	passwordRegex = regexp.MustCompile(`^[A-Za-z0-9]{5,12}$`)
	emailRegex    = regexp.MustCompile(`^[^\s\x0B\x{FEFF}\p{Z}@]+@[^\s\x0B\x{FEFF}\p{Z}@]+\.[^\s\x0B\x{FEFF}\p{Z}@]+$`)
	dateRegex     = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
)

// IsValidCPF valida CPF com exatamente 11 dígitos numéricos (pode iniciar com 0).
// Não há verificação de dígitos verificadores.
func IsValidCPF(cpf string) bool {
	return cpfRegex.MatchString(cpf)
}

// TextLength conta os caracteres do texto após trim e normalização NFC.
func TextLength(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(strings.TrimSpace(s)))
}

// IsValidName valida nome entre 3 e 100 caracteres (após trim).
func IsValidName(name string) bool {
	n := TextLength(name)
	return n >= NameMinLength && n <= NameMaxLength
}

// ParseDatePtBr extrai dia, mês e ano de uma data dd/mm/aaaa, validando o calendário
// (meses de 30 dias e fevereiro com a regra gregoriana de ano bissexto).
func ParseDatePtBr(date string) (day, month, year int, ok bool) {
	m := dateRegex.FindStringSubmatch(date)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])

	if month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	if day < 1 || day > daysInMonth(month, year) {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

func daysInMonth(month, year int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// IsLeapYear aplica a regra gregoriana: divisível por 4 e (não por 100 ou por 400).
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// IsValidDatePtBr valida data no formato dd/mm/aaaa.
func IsValidDatePtBr(date string) bool {
	_, _, _, ok := ParseDatePtBr(date)
	return ok
}

// Age calcula a idade em anos completos na data de now, a partir de uma data dd/mm/aaaa.
// Subtrai um ano se o dia/mês de now ainda não alcançou o aniversário.
// Retorna -1 se a data for inválida.
func Age(birthDate string, now time.Time) int {
	day, month, year, ok := ParseDatePtBr(birthDate)
	if !ok {
		return -1
	}
	age := now.Year() - year
	if int(now.Month()) < month || (int(now.Month()) == month && now.Day() < day) {
		age--
	}
	return age
}

// IsAdult verifica se a data dd/mm/aaaa representa idade >= 18 anos em now.
func IsAdult(birthDate string, now time.Time) bool {
	if !IsValidDatePtBr(birthDate) {
		return false
	}
	return Age(birthDate, now) >= AdultAge
}

// IsValidPassword valida senha alfanumérica entre 5 e 12 caracteres.
func IsValidPassword(password string) bool {
	return passwordRegex.MatchString(password)
}

// IsValidEmail valida e-mail em formato simples: local@dominio.tld, sem espaços.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidOptionalText valida um campo textual informado: após trim não pode ser
// vazio e o tamanho deve estar em [min, max].
func IsValidOptionalText(text string, min, max int) bool {
	n := TextLength(text)
	if n == 0 {
		return false
	}
	return n >= min && n <= max
}

// IsValidState valida UF com exatamente 2 letras.
func IsValidState(uf string) bool {
	return stateRegex.MatchString(uf)
}

// IsValidPhone valida telefone com 11 dígitos numéricos (DDD + número).
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
