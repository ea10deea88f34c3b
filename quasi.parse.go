package quasi

import (
	"github.com/itsatony/go-quasi/internal"
	"go.uber.org/zap"
)

// Parse parses source text into a token stream using the default nesting
// limit. Whitespace and comments are dropped; positions are kept.
func Parse(source string) (TokenStream, error) {
	return parseWithConfig(source, internal.DefaultParserConfig(), zap.NewNop())
}

// MustParse is like Parse but panics on error. Intended for templates and
// fragments that are constants in the calling program.
func MustParse(source string) TokenStream {
	stream, err := Parse(source)
	if err != nil {
		panic(err)
	}
	return stream
}

// ParseIdent parses source that must consist of exactly one identifier
func ParseIdent(source string) (Ident, error) {
	stream, err := Parse(source)
	if err != nil {
		return Ident{}, err
	}
	if len(stream) != 1 {
		return Ident{}, NewNotSingleIdentError(source)
	}
	ident, ok := stream[0].(Ident)
	if !ok {
		return Ident{}, NewNotSingleIdentError(source)
	}
	return ident, nil
}

// IsIdent reports whether name is a valid identifier, i.e. whether an
// identifier token with this name can appear in parsed source
func IsIdent(name string) bool {
	return internal.IsIdent(name)
}

// Idents returns the distinct identifier names in stream, including those
// nested in groups, in order of first occurrence
func Idents(stream TokenStream) []string {
	seen := make(map[string]bool)
	var names []string
	var walk func(TokenStream)
	walk = func(s TokenStream) {
		for _, tok := range s {
			switch t := tok.(type) {
			case Ident:
				if !seen[t.Name] {
					seen[t.Name] = true
					names = append(names, t.Name)
				}
			case Group:
				walk(t.Stream)
			}
		}
	}
	walk(stream)
	return names
}

func parseWithConfig(source string, config internal.ParserConfig, logger *zap.Logger) (TokenStream, error) {
	nodes, err := internal.ParseSource(source, config, logger)
	if err != nil {
		return nil, wrapSyntaxError(err, config.MaxDepth)
	}
	return streamFromNodes(nodes), nil
}

// streamFromNodes converts parser output into public tokens; empty node
// slices become nil streams
func streamFromNodes(nodes []internal.Node) TokenStream {
	if len(nodes) == 0 {
		return nil
	}

	stream := make(TokenStream, 0, len(nodes))
	for _, n := range nodes {
		pos := positionFromInternal(n.Position)
		switch n.Type {
		case internal.NodeTypeIdent:
			stream = append(stream, NewIdent(n.Value, pos))
		case internal.NodeTypeLiteral:
			stream = append(stream, NewLiteral(n.Value, pos))
		case internal.NodeTypePunct:
			spacing := SpacingAlone
			if n.Joint {
				spacing = SpacingJoint
			}
			stream = append(stream, NewPunct([]rune(n.Value)[0], spacing, pos))
		case internal.NodeTypeGroup:
			stream = append(stream, NewGroup(delimiterFromOpen(n.Value), pos, streamFromNodes(n.Children)))
		}
	}
	return stream
}

func delimiterFromOpen(open string) Delimiter {
	switch open {
	case StrOpenParen:
		return DelimiterParenthesis
	case StrOpenBrace:
		return DelimiterBrace
	case StrOpenBracket:
		return DelimiterBracket
	default:
		return DelimiterNone
	}
}

func positionFromInternal(pos internal.Position) Position {
	return Position{Offset: pos.Offset, Line: pos.Line, Column: pos.Column}
}
