package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tareas/domain"
)

func TestDecodePayload(t *testing.T) {
	payload, err := DecodePayload([]byte(`{"titulo":"Leer","completada":true}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"titulo": "Leer", "completada": true}, payload)

	payload, err = DecodePayload([]byte("  \n"))
	require.NoError(t, err)
	assert.Empty(t, payload)
	assert.NotNil(t, payload)
}

func TestDecodePayload_Malformed(t *testing.T) {
	for _, body := range []string{`{"titulo":`, `"texto"`, `[]`, `null`} {
		_, err := DecodePayload([]byte(body))
		require.Error(t, err, body)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeMalformed), body)
	}
}

func TestEnvelope_String(t *testing.T) {
	env := NewError("INVALID", "Datos inválidos", nil).WithDetails([]string{"a"})
	assert.JSONEq(t, `{"status":"error","code":"INVALID","error":"Datos inválidos","details":["a"]}`, env.String())
}
