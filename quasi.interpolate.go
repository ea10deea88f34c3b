package quasi

// Replacements maps placeholder names to the fragments that replace them.
// A nil Replacements is valid and replaces nothing.
type Replacements map[string]ToTokens

// Interpolate returns a copy of stream in which every identifier whose name
// is a key of replacements is replaced by that fragment.
//
// The walk is depth-first and single pass. Literals and puncts are copied
// unchanged; groups keep their delimiter and position and get their stream
// interpolated recursively; unmatched identifiers are copied unchanged. Tokens
// produced by a fragment are appended as-is and never re-scanned, so a
// fragment may safely contain its own placeholder name. A nil fragment
// removes the placeholder.
//
// Pointer tokens (*Group, *Ident, ...) are treated like their values and
// copied into the output as values.
//
// An empty stream, at any level, comes back as nil. Identity under
// reflect.DeepEqual therefore holds for trees that use nil for empty group
// bodies, as Parse produces, but not for hand-built TokenStream{} bodies.
//
// Interpolate never fails, does not modify stream or replacements, and keeps
// no reference to either after returning. It is safe for concurrent use as
// long as replacements is not mutated meanwhile.
func Interpolate(stream TokenStream, replacements Replacements) TokenStream {
	if len(stream) == 0 {
		return nil
	}

	out := make(TokenStream, 0, len(stream))
	for _, tok := range stream {
		switch t := tokenValue(tok).(type) {
		case Group:
			out = append(out, Group{
				Delimiter: t.Delimiter,
				Position:  t.Position,
				Stream:    Interpolate(t.Stream, replacements),
			})
		case Ident:
			if fragment, ok := replacements[t.Name]; ok {
				if fragment != nil {
					fragment.ToTokens(&out)
				}
				continue
			}
			out = append(out, t)
		default:
			out = append(out, t)
		}
	}
	return out
}

// tokenValue dereferences pointer tokens. Nil pointers are returned as-is.
func tokenValue(tok Token) Token {
	switch t := tok.(type) {
	case *Literal:
		if t != nil {
			return *t
		}
	case *Punct:
		if t != nil {
			return *t
		}
	case *Ident:
		if t != nil {
			return *t
		}
	case *Group:
		if t != nil {
			return *t
		}
	}
	return tok
}

// Interpolate implements Interpolator, so a plain mapping can be used as an
// item of InterpolateEach.
func (r Replacements) Interpolate(template TokenStream) TokenStream {
	return Interpolate(template, r)
}
