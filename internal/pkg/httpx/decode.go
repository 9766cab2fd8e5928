package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	apperror "gocadastro/internal/errors"
)

// MaxBodyBytes é o tamanho máximo aceito para o corpo das requisições.
const MaxBodyBytes = 1 << 20 // 1 MiB

const msgInvalidJSON = "Corpo da requisição deve ser um JSON válido."

// DecodeJSON decodifica o corpo em dst (um ponteiro para struct).
// As chaves são comparadas de forma exata com as tags json de dst: chaves com outra
// grafia (ex.: "SENHA") são ignoradas como qualquer chave desconhecida.
// Corpo vazio deixa dst intacto; JSON inválido, conteúdo após o objeto ou campo de
// tipo errado viram PayloadError (400).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)

	var raw map[string]json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return payloadError(err)
	}

	// Só um valor JSON é aceito no corpo.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return payloadError(err)
		}
		return apperror.NewPayloadError(msgInvalidJSON)
	}

	exact := make(map[string]json.RawMessage, len(raw))
	for _, name := range jsonFieldNames(dst) {
		if v, ok := raw[name]; ok {
			exact[name] = v
		}
	}

	b, err := json.Marshal(exact)
	if err != nil {
		return apperror.NewInternalError("falha ao remontar payload", err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return payloadError(err)
	}
	return nil
}

func payloadError(err error) error {
	var (
		typeErr   *json.UnmarshalTypeError
		syntaxErr *json.SyntaxError
		maxErr    *http.MaxBytesError
	)
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperror.NewPayloadError(fmt.Sprintf("Campo '%s' deve ser do tipo texto.", typeErr.Field))
	case errors.As(err, &typeErr):
		return apperror.NewPayloadError("Corpo da requisição deve ser um objeto JSON.")
	case errors.As(err, &maxErr):
		return apperror.NewPayloadError("Corpo da requisição excede o tamanho máximo permitido.")
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperror.NewPayloadError(msgInvalidJSON)
	default:
		return apperror.NewPayloadError("Payload JSON inválido.")
	}
}

// jsonFieldNames lista os nomes das tags json da struct apontada por dst.
func jsonFieldNames(dst interface{}) []string {
	t := reflect.TypeOf(dst)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}
