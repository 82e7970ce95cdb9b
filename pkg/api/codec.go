// Package api defines the gradebook's Connect RPC surface: message types,
// procedure names, handler constructors and clients.
//
// Messages are plain Go structs carried as JSON over the Connect protocol,
// so any HTTP client can call the API with
//
//	POST /gradebook.v1.GradeService/ListSemesters
//	Content-Type: application/json
//
//	{}
package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec marshals messages with encoding/json. It registers under the
// name "json", so it serves the application/json content type.
type Codec struct{}

var _ connect.Codec = Codec{}

// Name implements connect.Codec.
func (Codec) Name() string { return "json" }

// Marshal implements connect.Codec.
func (Codec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

// Unmarshal implements connect.Codec. An empty body decodes to the zero message.
func (Codec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
