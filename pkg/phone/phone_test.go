package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vanshit011/nandan-bottling/pkg/phone"
)

func TestNormalize_FormatosValidos(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"diez dígitos limpios", "9876543210", "9876543210"},
		{"con prefijo de país", "919876543210", "9876543210"},
		{"con + y espacios", "+91 98765 43210", "9876543210"},
		{"con cero inicial", "09876543210", "9876543210"},
		{"con guiones y paréntesis", "(0)98765-43210", "9876543210"},
		{"cero inicial y prefijo", "0919876543210", "9876543210"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := phone.Normalize(tc.in, "91")
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_Invalidos(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"vacío", ""},
		{"sin dígitos", "abc-def"},
		{"muy corto", "12345"},
		{"muy largo sin prefijo", "123456789012345"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := phone.Normalize(tc.in, "91")
			assert.Error(t, err)
		})
	}
}

// El prefijo solo se quita cuando el largo coincide exactamente con
// prefijo + 10 dígitos: un número nacional que empiece por "91" no se toca.
func TestNormalize_NacionalQueEmpiezaPorPrefijo(t *testing.T) {
	got, err := phone.Normalize("9198765432", "91")
	require.NoError(t, err)
	assert.Equal(t, "9198765432", got)
}
