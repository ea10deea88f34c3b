package quasi

// Interpolator is implemented by types that bind their own placeholders.
// An implementation builds Replacements from its fields and delegates to
// the package-level Interpolate:
//
//	type KeyValue struct {
//	    Key, Value quasi.ToTokens
//	}
//
//	func (kv KeyValue) Interpolate(template quasi.TokenStream) quasi.TokenStream {
//	    return quasi.Interpolate(template, quasi.Replacements{
//	        "KEY":   kv.Key,
//	        "VALUE": kv.Value,
//	    })
//	}
type Interpolator interface {
	Interpolate(template TokenStream) TokenStream
}

// InterpolateEach expands template once per item, in order, and concatenates
// the results. Every item sees the same template and only its own bindings.
// An empty items slice yields an empty stream.
func InterpolateEach[T Interpolator](items []T, template TokenStream) TokenStream {
	var out TokenStream
	for _, item := range items {
		out = append(out, item.Interpolate(template)...)
	}
	return out
}

// Punctuated is an ordered list of items that is itself an Interpolator,
// so lists can be nested or bound as single values.
type Punctuated[T Interpolator] []T

// Interpolate expands template for every item via InterpolateEach
func (p Punctuated[T]) Interpolate(template TokenStream) TokenStream {
	return InterpolateEach([]T(p), template)
}
