package services

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validación", validationError("op", "inválido"), KindValidation},
		{"base de datos", wrapDB("op", errors.New("violates check constraint")), KindDatabase},
		{"conexión rechazada", wrapDB("op", errors.New("dial tcp: connection refused")), KindConnection},
		{"sesión perdida", wrapDB("op", driver.ErrBadConn), KindConnection},
		{"db inválida", wrapDB("op", gorm.ErrInvalidDB), KindConnection},
		{"error plano", errors.New("algo falló"), KindDatabase},
		{"envuelto", fmt.Errorf("contexto: %w", validationError("op", "inválido")), KindValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind = %v, se esperaba %v", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	base := gorm.ErrRecordNotFound
	err := wrapDB("obtener producto", base)

	if !errors.Is(err, base) {
		t.Error("el error envuelto debe conservar la causa original")
	}
	if err.Error() != "obtener producto: record not found" {
		t.Errorf("mensaje inesperado: %q", err.Error())
	}
}
