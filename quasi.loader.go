package quasi

import (
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// LoadTemplates registers every file in fsys matching pattern as a named
// template and returns the names registered. Patterns use doublestar syntax
// ("**/*.tpl"). A template is named after its slash path with the final
// extension removed, so "impls/getter.tpl" becomes "impls/getter".
//
// Files are loaded in lexical order and loading stops at the first failure;
// templates registered before the failure stay registered.
func (e *Engine) LoadTemplates(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, NewTemplatePatternError(pattern, err)
	}
	sort.Strings(matches)

	names := make([]string, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSuffix(match, path.Ext(match))
		data, err := fs.ReadFile(fsys, match)
		if err != nil {
			return names, NewTemplateLoadError(name, err)
		}
		if err := e.RegisterTemplate(name, string(data)); err != nil {
			return names, NewTemplateLoadError(name, err)
		}
		names = append(names, name)
	}

	e.logger.Debug(LogMsgTemplatesLoaded,
		zap.String(LogFieldPattern, pattern),
		zap.Int(LogFieldTemplateCount, len(names)))
	return names, nil
}
