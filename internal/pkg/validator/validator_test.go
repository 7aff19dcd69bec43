package validator

import (
	"strings"
	"testing"
)

type createRequest struct {
	Nombre string `json:"nombre" validate:"required,max=5"`
	Estado string `json:"estado,omitempty" validate:"omitempty,estado"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		req        createRequest
		wantFields []string
	}{
		{name: "valid", req: createRequest{Nombre: "Ana"}},
		{name: "lowercase estado", req: createRequest{Nombre: "Ana", Estado: "inactivo"}},
		{name: "missing nombre", req: createRequest{}, wantFields: []string{"nombre"}},
		{name: "too long and bad estado", req: createRequest{Nombre: "Anastasia", Estado: "BORRADO"}, wantFields: []string{"nombre", "estado"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.req)
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("Validate() = %+v, want fields %v", errs, tt.wantFields)
			}
			for i, field := range tt.wantFields {
				if errs[i].Field != field {
					t.Errorf("errs[%d].Field = %q, want %q", i, errs[i].Field, field)
				}
			}
		})
	}
}

func TestSummary(t *testing.T) {
	errs := New().Validate(createRequest{Estado: "x"})

	summary := Summary(errs)
	if !strings.Contains(summary, "nombre is required") || !strings.Contains(summary, "estado must be one of") {
		t.Errorf("Summary() = %q", summary)
	}
}
