package textutil_test

import (
	"testing"

	"github.com/jhoicas/ElectroPos-api/pkg/textutil"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchTerm(t *testing.T) {
	cases := map[string]string{
		"  Teléfono ":  "telefono",
		"CÁMARA":       "camara",
		"audífonos":    "audifonos",
		"mouse":        "mouse",
		"":             "",
	}
	for in, want := range cases {
		assert.Equal(t, want, textutil.NormalizeSearchTerm(in), "entrada: %q", in)
	}
}
