// Package quasi performs run-time quasi-quote interpolation on token trees.
//
// A template is an ordinary token stream in which some identifiers act as
// placeholders. Interpolate walks the tree once and replaces every
// identifier whose name is bound in a Replacements map by the bound fragment;
// everything else, including group delimiters and source positions, is
// copied unchanged:
//
//	template := quasi.MustParse("let NAME: int = 5;")
//	out := quasi.Interpolate(template, quasi.Replacements{
//	    "NAME": quasi.NewIdent("age", quasi.Position{}),
//	})
//	// out.String(): "let age : int = 5 ;"
//
// # Fragments
//
// Anything implementing ToTokens can be bound: single tokens, whole
// TokenStreams, or a FragmentFunc. Fragments are inserted as-is and never
// re-scanned, so the expansion always terminates and a fragment may mention
// its own placeholder name.
//
// # Interpolators
//
// Domain types implement Interpolator by binding their own fields to
// placeholder names and delegating to Interpolate. InterpolateEach (and the
// Punctuated list type) expand one template per item and concatenate:
//
//	type TraitImpl struct{ Trait, Concrete quasi.Ident }
//
//	func (t TraitImpl) Interpolate(tpl quasi.TokenStream) quasi.TokenStream {
//	    return quasi.Interpolate(tpl, quasi.Replacements{
//	        "TRAIT":    t.Trait,
//	        "CONCRETE": t.Concrete,
//	    })
//	}
//
//	out := quasi.InterpolateEach(impls, quasi.MustParse("let _: TRAIT = CONCRETE{};"))
//
// # Parsing and printing
//
// Parse turns Rust-like source text into a TokenStream and
// TokenStream.String prints one back. Parse errors are go-cuserr custom
// errors carrying line, column and offset metadata. Interpolation itself
// cannot fail.
//
// # Engine
//
// Engine adds a configured parser (nesting limit, logger), text-in text-out
// helpers, YAML binding documents and a registry of named templates:
//
//	engine, _ := quasi.New(
//	    quasi.WithMaxDepth(50),
//	    quasi.WithLogger(logger),
//	)
//	out, err := engine.ExpandSource("let _: KEY = VALUE;", map[string]string{
//	    "KEY":   "usize",
//	    "VALUE": "10",
//	})
package quasi
