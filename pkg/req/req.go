package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode - читает и декодирует JSON тело запроса в структуру T
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	err := json.NewDecoder(body).Decode(&payload)
	if err != nil {
		return payload, fmt.Errorf("decode request body: %w", err)
	}
	return payload, nil
}
