package quasi

import (
	"sort"
	"sync"

	"github.com/itsatony/go-quasi/internal"
	"go.uber.org/zap"
)

// Engine bundles parsing, expansion and a registry of named templates behind
// one configuration and logger. The expansion itself is the package-level
// Interpolate; Engine adds the text-facing layer around it.
type Engine struct {
	templates map[string]TokenStream // Named templates
	tmplMu    sync.RWMutex           // Protects templates map
	config    *engineConfig
	logger    *zap.Logger
}

// New creates a new Engine with the given options.
func New(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgEngineCreated, zap.Int(LogFieldMaxDepth, config.maxDepth))

	return &Engine{
		templates: make(map[string]TokenStream),
		config:    config,
		logger:    logger,
	}, nil
}

// MustNew creates a new Engine and panics if there's an error.
func MustNew(opts ...Option) *Engine {
	engine, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// Parse parses source into a token stream honoring the engine's nesting limit.
func (e *Engine) Parse(source string) (TokenStream, error) {
	e.logger.Debug(LogMsgParseStart, zap.Int(LogFieldSourceLength, len(source)))

	stream, err := parseWithConfig(source, internal.ParserConfig{MaxDepth: e.config.maxDepth}, e.logger)
	if err != nil {
		e.logger.Debug(LogMsgParseFailed, zap.Error(err))
		return nil, err
	}

	e.logger.Debug(LogMsgParseComplete, zap.Int(LogFieldTokens, stream.Len()))
	return stream, nil
}

// Expand interpolates template with replacements. It never fails.
func (e *Engine) Expand(template TokenStream, replacements Replacements) TokenStream {
	out := Interpolate(template, replacements)
	e.logger.Debug(LogMsgExpandComplete,
		zap.Int(LogFieldTokens, template.Len()),
		zap.Int(LogFieldBindings, len(replacements)),
		zap.Int(LogFieldOutputTokens, out.Len()))
	return out
}

// ExpandEach expands template once per replacement set and concatenates the
// results in order.
func (e *Engine) ExpandEach(template TokenStream, items []Replacements) TokenStream {
	out := InterpolateEach(items, template)
	e.logger.Debug(LogMsgExpandEachComplete,
		zap.Int(LogFieldTokens, template.Len()),
		zap.Int(LogFieldItems, len(items)),
		zap.Int(LogFieldOutputTokens, out.Len()))
	return out
}

// CompileReplacements parses every textual binding into a fragment. Keys must
// be identifiers, since any other key could never match. Bindings are
// compiled in key order, so the first failing key is always the one reported.
func (e *Engine) CompileReplacements(bindings map[string]string) (Replacements, error) {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	replacements := make(Replacements, len(bindings))
	for _, name := range names {
		source := bindings[name]
		if !IsIdent(name) {
			return nil, NewInvalidPlaceholderError(name)
		}
		fragment, err := e.Parse(source)
		if err != nil {
			return nil, NewInvalidFragmentError(name, err)
		}
		replacements[name] = fragment
	}
	e.logger.Debug(LogMsgBindingsCompiled, zap.Int(LogFieldBindings, len(replacements)))
	return replacements, nil
}

// ExpandSource parses template and bindings, expands, and prints the result.
func (e *Engine) ExpandSource(template string, bindings map[string]string) (string, error) {
	stream, err := e.Parse(template)
	if err != nil {
		return "", err
	}
	replacements, err := e.CompileReplacements(bindings)
	if err != nil {
		return "", err
	}
	return e.Expand(stream, replacements).String(), nil
}

// ExpandEachSource is ExpandSource for a list of binding sets; the template
// is expanded once per set and the outputs concatenated.
func (e *Engine) ExpandEachSource(template string, items []map[string]string) (string, error) {
	stream, err := e.Parse(template)
	if err != nil {
		return "", err
	}
	compiled, err := e.compileItems(items)
	if err != nil {
		return "", err
	}
	return e.ExpandEach(stream, compiled).String(), nil
}

func (e *Engine) compileItems(items []map[string]string) ([]Replacements, error) {
	compiled := make([]Replacements, 0, len(items))
	for i, bindings := range items {
		replacements, err := e.CompileReplacements(bindings)
		if err != nil {
			return nil, NewInvalidItemError(i, err)
		}
		compiled = append(compiled, replacements)
	}
	return compiled, nil
}

// RegisterTemplate parses source and stores it under name for later use
// with ExpandTemplate. Names are first-come-wins.
func (e *Engine) RegisterTemplate(name, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}

	stream, err := e.Parse(source)
	if err != nil {
		return err
	}

	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		return NewTemplateExistsError(name)
	}
	e.templates[name] = stream
	e.logger.Debug(LogMsgTemplateRegistered,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldTokens, stream.Len()))
	return nil
}

// MustRegisterTemplate registers a template and panics on error.
func (e *Engine) MustRegisterTemplate(name, source string) {
	if err := e.RegisterTemplate(name, source); err != nil {
		panic(err)
	}
}

// Template returns the parsed template registered under name.
// The returned stream must be treated as read-only.
func (e *Engine) Template(name string) (TokenStream, bool) {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()
	stream, ok := e.templates[name]
	return stream, ok
}

// TemplateNames returns the registered template names in sorted order.
func (e *Engine) TemplateNames() []string {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExpandTemplate expands the named template with item's own bindings.
func (e *Engine) ExpandTemplate(name string, item Interpolator) (TokenStream, error) {
	stream, ok := e.Template(name)
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}
	out := item.Interpolate(stream)
	e.logger.Debug(LogMsgExpandComplete,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldOutputTokens, out.Len()))
	return out, nil
}
