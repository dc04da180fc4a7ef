package eventbrite

import (
	json "github.com/goccy/go-json"
)

// Codec decodes response payloads into generic values and encodes them back.
type Codec interface {
	Unmarshal(data []byte) (any, error)
	Marshal(v any) ([]byte, error)
}

// JSONCodec is the default Codec. Objects decode to map[string]any,
// arrays to []any and numbers to float64.
type JSONCodec struct{}

func (JSONCodec) Unmarshal(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
