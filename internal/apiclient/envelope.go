package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decodeEnvelope accepts both shapes the backend uses for a resource: the
// bare value, or an object wrapping it under one of keys next to a message.
// The first key present and non-null wins.
func decodeEnvelope[T any](body []byte, keys ...string) (T, error) {
	var out T
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return out, nil
	}

	if body[0] == '{' && len(keys) > 0 {
		var wrapper map[string]json.RawMessage
		if err := json.Unmarshal(body, &wrapper); err != nil {
			return out, fmt.Errorf("decode envelope: %w", err)
		}
		for _, k := range keys {
			raw, ok := wrapper[k]
			if !ok {
				continue
			}
			raw = bytes.TrimSpace(raw)
			if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
				return out, nil
			}
			if err := json.Unmarshal(raw, &out); err != nil {
				return out, fmt.Errorf("decode %q: %w", k, err)
			}
			return out, nil
		}
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode body: %w", err)
	}
	return out, nil
}
