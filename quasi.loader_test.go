package quasi

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LoadTemplates(t *testing.T) {
	fsys := fstest.MapFS{
		"impls/clone.tpl":   {Data: []byte("impl Clone for TYPE {}")},
		"impls/debug.tpl":   {Data: []byte("impl Debug for TYPE {}")},
		"getter.tpl":        {Data: []byte("fn NAME(&self) -> T { self.NAME }")},
		"notes.md":          {Data: []byte("not a template")},
		"impls/nested/x.rs": {Data: []byte("ignored")},
	}

	t.Run("recursive pattern", func(t *testing.T) {
		engine := MustNew()
		names, err := engine.LoadTemplates(fsys, "**/*.tpl")
		require.NoError(t, err)
		assert.Equal(t, []string{"getter", "impls/clone", "impls/debug"}, names)
		assert.Equal(t, names, engine.TemplateNames())

		out, err := engine.ExpandTemplate("impls/clone", Replacements{"TYPE": MustParse("Point")})
		require.NoError(t, err)
		assert.Equal(t, "impl Clone for Point {}", out.String())
	})

	t.Run("single directory", func(t *testing.T) {
		engine := MustNew()
		names, err := engine.LoadTemplates(fsys, "impls/*")
		require.NoError(t, err)
		assert.Equal(t, []string{"impls/clone", "impls/debug"}, names)
	})

	t.Run("no matches", func(t *testing.T) {
		engine := MustNew()
		names, err := engine.LoadTemplates(fsys, "*.none")
		require.NoError(t, err)
		assert.Empty(t, names)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := MustNew().LoadTemplates(fsys, "[")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTemplatePattern)
	})

	t.Run("unparseable template", func(t *testing.T) {
		broken := fstest.MapFS{
			"a.tpl": {Data: []byte("ok")},
			"b.tpl": {Data: []byte("f(")},
		}
		engine := MustNew()
		names, err := engine.LoadTemplates(broken, "*.tpl")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgTemplateLoad)
		assert.Equal(t, []string{"a"}, names)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		name, ok := customErr.GetMetadata(MetaKeyTemplateName)
		assert.True(t, ok)
		assert.Equal(t, "b", name)
	})
}
