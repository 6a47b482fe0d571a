package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/securetrack/securetrack-api/internal/application/dto"
)

func TestLooseDecimal_EntradasTolerantes(t *testing.T) {
	type payload struct {
		Value dto.LooseDecimal `json:"value"`
	}

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"número", `{"value": 123.45}`, "123.45"},
		{"string numérica", `{"value": "99.90"}`, "99.9"},
		{"string malformada vira zero", `{"value": "abc"}`, "0"},
		{"null vira zero", `{"value": null}`, "0"},
		{"ausente vira zero", `{}`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &p),
				"entrada inválida nunca rejeita o request")
			assert.Equal(t, tc.want, p.Value.String())
		})
	}
}
