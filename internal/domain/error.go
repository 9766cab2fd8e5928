package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int      `json:"code" example:"400"`
	Category string   `json:"category" example:"VALIDATION_FAILED"`
	Message  string   `json:"message" example:"CPF é obrigatório e deve conter exatamente 11 dígitos numéricos."`
	Details  []string `json:"details,omitempty"`
}
