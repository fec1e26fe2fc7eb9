package dto

import "encoding/json"

// Envelope is the `{success, data, count}` wrapper every backend response uses.
// Data stays raw until the caller knows the concrete payload shape.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	Count   int             `json:"count,omitempty"`
}
