// Copyright 2026 The Embryotech Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/embryotech/console/lib/api"
)

func TestLoginErrorMapsStatusesToMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		category ErrorCategory
		message  string
	}{
		{
			name:     "missing credentials",
			err:      &api.Error{StatusCode: http.StatusBadRequest, Message: "campos obrigatórios"},
			category: CategoryValidation,
			message:  "Nome de usuário e senha são obrigatórios",
		},
		{
			name:     "wrong credentials",
			err:      &api.Error{StatusCode: http.StatusUnauthorized},
			category: CategoryForbidden,
			message:  "Usuário ou senha incorretos",
		},
		{
			name:     "server failure",
			err:      &api.Error{StatusCode: http.StatusInternalServerError},
			category: CategoryTransient,
			message:  "Problema no servidor. Tente novamente mais tarde.",
		},
		{
			name:     "unexpected status",
			err:      &api.Error{StatusCode: http.StatusTeapot},
			category: CategoryInternal,
			message:  "Erro ao fazer login",
		},
		{
			name:     "wrapped api error",
			err:      fmt.Errorf("login: %w", &api.Error{StatusCode: http.StatusUnauthorized}),
			category: CategoryForbidden,
			message:  "Usuário ou senha incorretos",
		},
		{
			name:     "transport failure",
			err:      errors.New("dial tcp 172.16.1.22:5001: connection refused"),
			category: CategoryTransient,
			message:  "Não foi possível conectar ao servidor. Verifique sua conexão.",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			mapped := loginError(test.err)

			var toolError *ToolError
			if !errors.As(mapped, &toolError) {
				t.Fatalf("loginError returned %T, want *ToolError", mapped)
			}
			if toolError.Category != test.category {
				t.Errorf("category = %q, want %q", toolError.Category, test.category)
			}
			if mapped.Error() != test.message {
				t.Errorf("message = %q, want %q", mapped.Error(), test.message)
			}
		})
	}
}
