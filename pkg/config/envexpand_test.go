package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_TOKEN", "secret-value")

	t.Run("expands template variables", func(t *testing.T) {
		out := ExpandEnv([]byte("token: {{.TEST_TOKEN}}"))
		assert.Equal(t, "token: secret-value", string(out))
	})

	t.Run("missing variables expand to empty", func(t *testing.T) {
		out := ExpandEnv([]byte("token: {{.NO_SUCH_VARIABLE_SET}}"))
		assert.Equal(t, "token: ", string(out))
	})

	t.Run("dollar signs pass through", func(t *testing.T) {
		in := []byte(`pattern: (?i)password\s*[:=]\s*\S+$ cost: $100`)
		assert.Equal(t, in, ExpandEnv(in))
	})

	t.Run("malformed template returns input unchanged", func(t *testing.T) {
		in := []byte("broken: {{.unclosed")
		assert.Equal(t, in, ExpandEnv(in))
	})
}
