package pixi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/vertextoedge/pixi-assistant/internal/domain"
)

const cacheDirField = "cache_dir"

// DecodeInfo parses the JSON object printed by `pixi info --json`.
// The cache_dir field must appear exactly once and be a string; all other
// fields are ignored. Input that is not valid UTF-8 is rejected.
func DecodeInfo(data []byte) (*domain.Info, error) {
	if !utf8.Valid(data) {
		return nil, decodeError(errors.New("invalid UTF-8 in input"))
	}

	raw, err := cacheDirValue(data)
	if err != nil {
		return nil, decodeError(err)
	}

	// json.Unmarshal leaves a string untouched on null
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, decodeError(fmt.Errorf("field %q is null", cacheDirField))
	}

	var cacheDir string
	if err := json.Unmarshal(raw, &cacheDir); err != nil {
		return nil, decodeError(fmt.Errorf("field %q is not a string: %w", cacheDirField, err))
	}

	return &domain.Info{CacheDir: cacheDir}, nil
}

// cacheDirValue walks the top-level object and returns the raw cache_dir value.
func cacheDirValue(data []byte) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("unexpected end of JSON input")
		}
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("expected a JSON object")
	}

	var raw json.RawMessage
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, _ := tok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if key != cacheDirField {
			continue
		}
		if raw != nil {
			return nil, fmt.Errorf("duplicate field %q", cacheDirField)
		}
		raw = value
	}

	// closing brace, then nothing but whitespace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON object")
	}

	if raw == nil {
		return nil, fmt.Errorf("missing field %q", cacheDirField)
	}
	return raw, nil
}

func decodeError(err error) error {
	return domain.NewCheckError(domain.ErrDecode,
		fmt.Sprintf("Error: Failed to parse pixi info JSON: %v", err),
		err)
}
