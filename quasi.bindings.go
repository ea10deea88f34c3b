package quasi

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Bindings is a YAML binding document: a template plus either one mapping
// or a list of mappings, one per expansion.
//
//	template: |
//	  let _: KEY = VALUE;
//	items:
//	  - { KEY: usize, VALUE: "10" }
//	  - { KEY: bool, VALUE: "false" }
type Bindings struct {
	Template string              `yaml:"template" json:"template"`
	Bindings map[string]string   `yaml:"bindings,omitempty" json:"bindings,omitempty"`
	Items    []map[string]string `yaml:"items,omitempty" json:"items,omitempty"`
}

// ParseBindings decodes a binding document. A document may omit the
// template when one is supplied separately.
func ParseBindings(data []byte) (*Bindings, error) {
	var b Bindings
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, NewInvalidBindingsError(err)
	}
	return b.check()
}

// ParseBindingsJSONC decodes a binding document written as JSON extended
// with // and /* */ comments and trailing commas. As in YAML, number and
// boolean values are taken as their source text and null as empty.
func ParseBindingsJSONC(data []byte) (*Bindings, error) {
	var b Bindings
	if len(data) == 0 {
		return &b, nil
	}

	var doc jsoncDocument
	if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
		return nil, NewInvalidBindingsError(err)
	}
	b.Template = doc.Template
	b.Bindings = doc.Bindings.strings()
	for _, item := range doc.Items {
		b.Items = append(b.Items, item.strings())
	}
	return b.check()
}

type jsoncDocument struct {
	Template string         `json:"template"`
	Bindings jsoncMapping   `json:"bindings"`
	Items    []jsoncMapping `json:"items"`
}

type jsoncMapping map[string]jsonScalar

func (m jsoncMapping) strings() map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = string(v)
	}
	return out
}

// jsonScalar is a binding value: a string, or the literal text of a number
// or boolean
type jsonScalar string

func (s *jsonScalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte(JSONNull)):
		*s = ""
	case data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = jsonScalar(str)
	case data[0] == '{' || data[0] == '[':
		return errors.New(ErrMsgNonScalarBinding)
	default:
		*s = jsonScalar(data)
	}
	return nil
}

func (b *Bindings) check() (*Bindings, error) {
	if len(b.Bindings) > 0 && len(b.Items) > 0 {
		return nil, NewBindingsConflictError()
	}
	return b, nil
}

// IsEach reports whether the document expands the template once per item
func (b *Bindings) IsEach() bool {
	return len(b.Items) > 0
}

// Placeholders returns every bound placeholder name, in first-seen order
// across the mapping and all items
func (b *Bindings) Placeholders() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(m map[string]string) {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}
	add(b.Bindings)
	for _, item := range b.Items {
		add(item)
	}
	return names
}

// ExpandBindings expands template, or b.Template when template is empty,
// with the document's bindings and returns the printed result.
func (e *Engine) ExpandBindings(b *Bindings, template string) (string, error) {
	if template == "" {
		template = b.Template
	}
	if template == "" {
		return "", NewMissingTemplateError()
	}
	if b.IsEach() {
		return e.ExpandEachSource(template, b.Items)
	}
	return e.ExpandSource(template, b.Bindings)
}

// ExpandTemplateBindings expands the registered template name with the
// document's bindings. The document's own template is ignored.
func (e *Engine) ExpandTemplateBindings(name string, b *Bindings) (string, error) {
	stream, ok := e.Template(name)
	if !ok {
		return "", NewTemplateNotFoundError(name)
	}
	if b.IsEach() {
		items, err := e.compileItems(b.Items)
		if err != nil {
			return "", err
		}
		return e.ExpandEach(stream, items).String(), nil
	}
	replacements, err := e.CompileReplacements(b.Bindings)
	if err != nil {
		return "", err
	}
	return e.Expand(stream, replacements).String(), nil
}
