/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: request.go
Description: Invocation boundary for the inference engine. Decodes a JSON
request carrying the raw corpus and runs a single inference pass. A decode
failure is the only caller-visible error; the engine itself always produces
a well-formed grammar.
*/

package inference

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request is the JSON payload accepted at the boundary.
type Request struct {
	Corpus string `json:"corpus"`
}

// DecodeRequest parses a JSON request payload. An empty payload is treated
// as an empty request, matching an empty corpus.
func DecodeRequest(data []byte) (*Request, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &Request{}, nil
	}
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode inference request: %w", err)
	}
	return &req, nil
}

// InferRequest decodes a request payload and runs the default engine on its
// corpus.
func InferRequest(data []byte) (*Result, error) {
	req, err := DecodeRequest(data)
	if err != nil {
		return nil, err
	}
	return NewEngine().Infer(req.Corpus)
}
