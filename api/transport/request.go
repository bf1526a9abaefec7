package transport

import (
	"bytes"
	"encoding/json"

	"github.com/fastygo/tareas/domain"
)

// DecodePayload parses a JSON object body. An empty body decodes to an empty payload.
func DecodePayload(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.WrapError(domain.ErrCodeMalformed, domain.ErrMalformedPayload.Message, err)
	}
	if payload == nil {
		// a literal null body
		return nil, domain.ErrMalformedPayload
	}
	return payload, nil
}
