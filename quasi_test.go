package quasi_test

import (
	"sync"
	"testing"

	"github.com/itsatony/go-quasi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// E2E tests: text in, text out through the public API only.

type traitImpl struct {
	trait    quasi.Ident
	concrete quasi.TokenStream
}

func (ti traitImpl) Interpolate(template quasi.TokenStream) quasi.TokenStream {
	return quasi.Interpolate(template, quasi.Replacements{
		"TRAIT":    ti.trait,
		"CONCRETE": ti.concrete,
	})
}

func TestE2E_CompleteReplacements(t *testing.T) {
	template := quasi.MustParse(`
		let VAR: TRAIT = if true {
			CONCRETE{}
		} else {
			Alternative{}
		}
	`)

	out := quasi.Interpolate(template, quasi.Replacements{
		"VAR":      quasi.MustParse("var"),
		"TRAIT":    quasi.MustParse("abstract_type"),
		"CONCRETE": quasi.MustParse("concrete"),
	})

	assert.Equal(t, "let var : abstract_type = if true { concrete {} } else { Alternative {} }", out.String())
}

func TestE2E_PartialReplacements(t *testing.T) {
	template := quasi.MustParse("let VAR: TRAIT = CONCRETE{};")

	out := quasi.Interpolate(template, quasi.Replacements{
		"TRAIT": quasi.MustParse("Widget"),
	})

	assert.Equal(t, "let VAR : Widget = CONCRETE {} ;", out.String())
}

func TestE2E_InterpolateOnCollection(t *testing.T) {
	button, err := quasi.ParseIdent("IButton")
	require.NoError(t, err)
	window, err := quasi.ParseIdent("IWindow")
	require.NoError(t, err)

	impls := quasi.Punctuated[traitImpl]{
		{trait: button, concrete: quasi.MustParse("BigButton")},
		{trait: window, concrete: quasi.MustParse("MinimalWindow")},
	}

	out := impls.Interpolate(quasi.MustParse("let _: TRAIT = CONCRETE{};"))

	assert.Equal(t, "let _ : IButton = BigButton {} ; let _ : IWindow = MinimalWindow {} ;", out.String())
}

func TestE2E_OutputReparsesToSameTree(t *testing.T) {
	engine := quasi.MustNew()
	out, err := engine.ExpandSource("fn NAME(x: T) -> T { x BODY }", map[string]string{
		"NAME": "identity",
		"T":    "Vec<u8>",
		"BODY": "",
	})
	require.NoError(t, err)
	assert.Equal(t, "fn identity (x : Vec < u8 >) -> Vec < u8 > { x }", out)

	reparsed, err := quasi.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, out, reparsed.String())
}

func TestE2E_BindingDocument(t *testing.T) {
	doc, err := quasi.ParseBindings([]byte(`
template: |
  impl TRAIT for TYPE {}
items:
  - { TRAIT: Clone, TYPE: Point }
  - { TRAIT: "Into<f64>", TYPE: Meters }
`))
	require.NoError(t, err)

	out, err := quasi.MustNew().ExpandBindings(doc, "")
	require.NoError(t, err)
	assert.Equal(t, "impl Clone for Point {} impl Into < f64 > for Meters {}", out)
}

func TestE2E_ParseOnceExpandMany(t *testing.T) {
	engine := quasi.MustNew()
	engine.MustRegisterTemplate("const", "const NAME: u32 = VALUE;")

	names := []string{"A", "B", "C", "D"}
	results := make([]string, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		go func(i int, name string) {
			defer wg.Done()
			ident, err := quasi.ParseIdent(name)
			if err != nil {
				return
			}
			out, err := engine.ExpandTemplate("const", quasi.Replacements{
				"NAME":  ident,
				"VALUE": quasi.NewLiteral("1", quasi.Position{}),
			})
			if err != nil {
				return
			}
			results[i] = out.String()
		}(i, name)
	}
	wg.Wait()

	for i, name := range names {
		assert.Equal(t, "const "+name+" : u32 = 1 ;", results[i])
	}
}
