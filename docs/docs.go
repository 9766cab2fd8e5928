// Package docs registra o documento Swagger (OpenAPI 2.0) servido em /api-docs.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/users": {
            "post": {
                "description": "Valida os dados de cadastro, garante CPF único e grava o usuário. A senha nunca é devolvida.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Cadastra um novo usuário",
                "parameters": [
                    {
                        "description": "Dados de cadastro",
                        "name": "registration",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.UserRegistration"}
                    }
                ],
                "responses": {
                    "201": {"description": "Usuário cadastrado com sucesso", "schema": {"$ref": "#/definitions/domain.UserResponse"}},
                    "400": {"description": "Erros de validação ou payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Já existe um usuário com este CPF", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "429": {"description": "Limite de requisições excedido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Confere CPF (prioritário) ou e-mail e a senha. Não emite token nem cria sessão.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário por CPF ou e-mail",
                "parameters": [
                    {
                        "description": "Credenciais (cpf ou email, e senha)",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.UserLogin"}
                    }
                ],
                "responses": {
                    "200": {"description": "Login realizado com sucesso", "schema": {"$ref": "#/definitions/domain.UserResponse"}},
                    "400": {"description": "Senha ausente, identificador ausente ou em formato inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "429": {"description": "Limite de requisições excedido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Verifica se o serviço está no ar",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_FAILED"},
                "message": {"type": "string", "example": "CPF é obrigatório e deve conter exatamente 11 dígitos numéricos."},
                "details": {"type": "array", "items": {"type": "string"}}
            }
        },
        "domain.PublicUser": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "example": 1},
                "cpf": {"type": "string", "example": "01234567890"},
                "nome": {"type": "string", "example": "Maria Silva"},
                "dataNascimento": {"type": "string", "example": "10/03/1995"},
                "email": {"type": "string", "example": "maria@example.com"},
                "endereco": {"type": "string", "example": "Rua das Flores, 123"},
                "cidade": {"type": "string", "example": "Recife"},
                "estado": {"type": "string", "example": "PE"},
                "telefone": {"type": "string", "example": "81999998888"},
                "criadoEm": {"type": "string", "format": "date-time"}
            }
        },
        "domain.UserLogin": {
            "type": "object",
            "properties": {
                "cpf": {"type": "string", "example": "01234567890"},
                "email": {"type": "string", "example": "maria@example.com"},
                "senha": {"type": "string", "example": "abc12"}
            }
        },
        "domain.UserRegistration": {
            "type": "object",
            "required": ["cpf", "nome", "dataNascimento", "senha", "confirmaSenha", "email"],
            "properties": {
                "cpf": {"type": "string", "example": "01234567890"},
                "nome": {"type": "string", "example": "Maria Silva"},
                "dataNascimento": {"type": "string", "example": "10/03/1995"},
                "senha": {"type": "string", "example": "abc12"},
                "confirmaSenha": {"type": "string", "example": "abc12"},
                "email": {"type": "string", "example": "maria@example.com"},
                "endereco": {"type": "string", "example": "Rua das Flores, 123"},
                "cidade": {"type": "string", "example": "Recife"},
                "estado": {"type": "string", "example": "pe"},
                "telefone": {"type": "string", "example": "81999998888"}
            }
        },
        "domain.UserResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Usuário cadastrado com sucesso"},
                "user": {"$ref": "#/definitions/domain.PublicUser"}
            }
        }
    }
}`

// SwaggerInfo guarda as informações exportadas do documento, que podem ser alteradas em tempo de execução.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "API de Cadastro de Usuários",
	Description:      "Cadastro e login de usuários por CPF ou e-mail.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
