package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONParser parses files whose top-level keys are language codes.
// Top-level entries that are not objects are skipped.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

func (p *JSONParser) Parse(ctx context.Context, content string) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrJSONParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseJSON, err)
	}

	result := make(map[string]map[string]any, len(data))
	for lang, translations := range data {
		if transMap, ok := translations.(map[string]any); ok {
			result[lang] = transMap
		}
	}

	return result, nil
}

func (p *JSONParser) SupportsFileExtension(ext string) bool {
	return strings.EqualFold(strings.TrimPrefix(ext, "."), "json")
}
