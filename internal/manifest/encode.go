package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Indent is the indentation used for generated JSON documents.
const Indent = "    "

// Marshal serializes m as indented JSON with a trailing newline.
func Marshal(m *Manifest) ([]byte, error) {
	return encode(m)
}

// MarshalPackage serializes p as indented JSON with a trailing newline.
func MarshalPackage(p *Package) ([]byte, error) {
	return encode(p)
}

// Parse decodes a manifest.json document.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}
