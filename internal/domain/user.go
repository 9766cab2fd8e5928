package domain

import (
	"context"
	"time"
)

// User representa o registro de usuário armazenado.
// O registro é imutável depois de criado e a senha nunca é serializada.
type User struct {
	ID        int64     `json:"id"`
	CPF       string    `json:"cpf"`
	FullName  string    `json:"nome"`
	BirthDate string    `json:"dataNascimento"` // dd/mm/aaaa
	Secret    string    `json:"-"`              // Oculta a senha no JSON de resposta
	Email     string    `json:"email"`
	Address   *string   `json:"endereco,omitempty"`
	City      *string   `json:"cidade,omitempty"`
	State     *string   `json:"estado,omitempty"`
	Phone     *string   `json:"telefone,omitempty"`
	CreatedAt time.Time `json:"criadoEm"`
}

// PublicUser é a projeção pública do usuário: todos os campos exceto a senha.
type PublicUser struct {
	ID        int64     `json:"id" example:"1"`
	CPF       string    `json:"cpf" example:"01234567890"`
	FullName  string    `json:"nome" example:"Maria Silva"`
	BirthDate string    `json:"dataNascimento" example:"10/03/1995"`
	Email     string    `json:"email" example:"maria@example.com"`
	Address   *string   `json:"endereco,omitempty" example:"Rua das Flores, 123"`
	City      *string   `json:"cidade,omitempty" example:"Recife"`
	State     *string   `json:"estado,omitempty" example:"PE"`
	Phone     *string   `json:"telefone,omitempty" example:"81999998888"`
	CreatedAt time.Time `json:"criadoEm"`
}

// Public retorna a visão pública do usuário.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		CPF:       u.CPF,
		FullName:  u.FullName,
		BirthDate: u.BirthDate,
		Email:     u.Email,
		Address:   u.Address,
		City:      u.City,
		State:     u.State,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// UserRegistration representa o payload de entrada para o cadastro.
// Todos os campos são ponteiros: nil significa "não informado".
type UserRegistration struct {
	CPF           *string `json:"cpf" example:"01234567890"`
	FullName      *string `json:"nome" example:"Maria Silva"`
	BirthDate     *string `json:"dataNascimento" example:"10/03/1995"`
	Secret        *string `json:"senha" example:"abc12"`
	ConfirmSecret *string `json:"confirmaSenha" example:"abc12"`
	Email         *string `json:"email" example:"maria@example.com"`
	Address       *string `json:"endereco,omitempty" example:"Rua das Flores, 123"`
	City          *string `json:"cidade,omitempty" example:"Recife"`
	State         *string `json:"estado,omitempty" example:"pe"`
	Phone         *string `json:"telefone,omitempty" example:"81999998888"`
}

// UserLogin representa o payload de entrada para o login (CPF ou e-mail + senha).
type UserLogin struct {
	CPF    *string `json:"cpf,omitempty" example:"01234567890"`
	Email  *string `json:"email,omitempty" example:"maria@example.com"`
	Secret *string `json:"senha" example:"abc12"`
}

// UserResponse é o corpo de sucesso de cadastro e login.
type UserResponse struct {
	Message string     `json:"message" example:"Usuário cadastrado com sucesso"`
	User    PublicUser `json:"user"`
}

// UserRepository define o contrato de armazenamento para a entidade User.
// Não existem operações de atualização ou remoção.
type UserRepository interface {
	FindByCPF(ctx context.Context, cpf string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Create(ctx context.Context, user User) (User, error)
}
