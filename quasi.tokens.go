package quasi

import "fmt"

// Position represents a location in the source text a token was parsed from.
// Tokens built in code carry the zero Position.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// TokenKind classifies a Token
type TokenKind int

// Token kind constants
const (
	TokenKindLiteral TokenKind = iota
	TokenKindPunct
	TokenKindIdent
	TokenKindGroup
)

// String returns the string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenKindLiteral:
		return TokenKindNameLiteral
	case TokenKindPunct:
		return TokenKindNamePunct
	case TokenKindIdent:
		return TokenKindNameIdent
	case TokenKindGroup:
		return TokenKindNameGroup
	default:
		return TokenKindNameUnknown
	}
}

// Spacing tells whether a Punct is immediately followed by another Punct
type Spacing int

// Spacing constants
const (
	SpacingAlone Spacing = iota
	SpacingJoint
)

// Delimiter is the bracket kind enclosing a Group
type Delimiter int

// Delimiter constants. DelimiterNone marks an invisible group, used to keep
// a substituted fragment together as a single tree.
const (
	DelimiterParenthesis Delimiter = iota
	DelimiterBrace
	DelimiterBracket
	DelimiterNone
)

// Open returns the opening delimiter text ("" for DelimiterNone)
func (d Delimiter) Open() string {
	switch d {
	case DelimiterParenthesis:
		return StrOpenParen
	case DelimiterBrace:
		return StrOpenBrace
	case DelimiterBracket:
		return StrOpenBracket
	default:
		return ""
	}
}

// Close returns the closing delimiter text ("" for DelimiterNone)
func (d Delimiter) Close() string {
	switch d {
	case DelimiterParenthesis:
		return StrCloseParen
	case DelimiterBrace:
		return StrCloseBrace
	case DelimiterBracket:
		return StrCloseBracket
	default:
		return ""
	}
}

// ToTokens is implemented by anything that can render itself as tokens.
// Implementations append zero or more tokens to out and must not retain it.
type ToTokens interface {
	ToTokens(out *TokenStream)
}

// Token is one node of a token tree: a Literal, Punct, Ident or Group.
// Tokens are values and are never modified after construction.
type Token interface {
	ToTokens
	// Kind returns the token variant
	Kind() TokenKind
	// Pos returns the source position of this token
	Pos() Position
	// String returns the token as source text
	String() string

	token()
}

// Literal is a number, string, character or byte literal kept as raw text
type Literal struct {
	Text     string
	Position Position
}

// NewLiteral creates a literal token
func NewLiteral(text string, pos Position) Literal {
	return Literal{Text: text, Position: pos}
}

func (t Literal) Kind() TokenKind { return TokenKindLiteral }
func (t Literal) Pos() Position   { return t.Position }
func (t Literal) String() string  { return t.Text }
func (Literal) token()            {}

// ToTokens appends the literal itself
func (t Literal) ToTokens(out *TokenStream) { out.Append(t) }

// Punct is a single punctuation character
type Punct struct {
	Char     rune
	Spacing  Spacing
	Position Position
}

// NewPunct creates a punctuation token
func NewPunct(ch rune, spacing Spacing, pos Position) Punct {
	return Punct{Char: ch, Spacing: spacing, Position: pos}
}

func (t Punct) Kind() TokenKind { return TokenKindPunct }
func (t Punct) Pos() Position   { return t.Position }
func (t Punct) String() string  { return string(t.Char) }
func (Punct) token()            {}

// ToTokens appends the punct itself
func (t Punct) ToTokens(out *TokenStream) { out.Append(t) }

// Ident is an identifier, keyword or placeholder name
type Ident struct {
	Name     string
	Position Position
}

// NewIdent creates an identifier token without validating the name.
// Use ParseIdent to validate untrusted names.
func NewIdent(name string, pos Position) Ident {
	return Ident{Name: name, Position: pos}
}

func (t Ident) Kind() TokenKind { return TokenKindIdent }
func (t Ident) Pos() Position   { return t.Position }
func (t Ident) String() string  { return t.Name }
func (Ident) token()            {}

// ToTokens appends the identifier itself
func (t Ident) ToTokens(out *TokenStream) { out.Append(t) }

// Group is a delimited token sequence. Stream must be treated as read-only.
type Group struct {
	Delimiter Delimiter
	Position  Position
	Stream    TokenStream
}

// NewGroup creates a group token
func NewGroup(delim Delimiter, pos Position, stream TokenStream) Group {
	return Group{Delimiter: delim, Position: pos, Stream: stream}
}

func (t Group) Kind() TokenKind { return TokenKindGroup }
func (t Group) Pos() Position   { return t.Position }
func (t Group) String() string  { return TokenStream{t}.String() }
func (Group) token()            {}

// ToTokens appends the group itself
func (t Group) ToTokens(out *TokenStream) { out.Append(t) }

// TokenStream is an ordered sequence of tokens
type TokenStream []Token

// Append adds tokens to the end of the stream
func (s *TokenStream) Append(tokens ...Token) {
	*s = append(*s, tokens...)
}

// Extend renders each provider onto the end of the stream
func (s *TokenStream) Extend(providers ...ToTokens) {
	for _, p := range providers {
		p.ToTokens(s)
	}
}

// Len returns the number of top-level tokens
func (s TokenStream) Len() int {
	return len(s)
}

// IsEmpty reports whether the stream has no tokens
func (s TokenStream) IsEmpty() bool {
	return len(s) == 0
}

// ToTokens appends every token of the stream
func (s TokenStream) ToTokens(out *TokenStream) {
	out.Append(s...)
}

// FragmentFunc adapts an ordinary function to a ToTokens provider
type FragmentFunc func(out *TokenStream)

// ToTokens calls f(out)
func (f FragmentFunc) ToTokens(out *TokenStream) {
	f(out)
}

// Empty returns a provider that renders nothing. Binding a placeholder to
// Empty deletes it from the output.
func Empty() ToTokens {
	return FragmentFunc(func(*TokenStream) {})
}
