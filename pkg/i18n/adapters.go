package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"dario.cat/mergo"
)

// TranslationAdapter loads translations as lang -> nested key map.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every translation file in a directory of an fs.FS,
// typically an embed.FS. Files of the same language are deep-merged; later
// files in directory order win on key conflicts.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns an adapter reading dir from fsys. With a nil parser
// each file is parsed according to its extension and files with unknown
// extensions are skipped.
func NewFSAdapter(fsys fs.FS, dir string, parser Parser) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		parser := a.parserFor(entry.Name())
		if parser == nil {
			continue
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, fmt.Errorf("%s: %w", filePath, err))
		}

		parsed, err := parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}

		for lang, translations := range parsed {
			dst := all[lang]
			if dst == nil {
				dst = make(map[string]any, len(translations))
			}
			if err := mergo.Merge(&dst, translations, mergo.WithOverride); err != nil {
				return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: merge %s: %w", filePath, lang, err))
			}
			all[lang] = dst
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

func (a *FSAdapter) parserFor(name string) Parser {
	if a.parser == nil {
		return NewParserForFile(name)
	}
	if a.parser.SupportsFileExtension(path.Ext(name)) {
		return a.parser
	}
	return nil
}
