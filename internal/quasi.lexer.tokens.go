package internal

import "fmt"

// Position represents a location in the source text
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// String returns a human-readable position string
func (p Position) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Column)
}

// LexemeType represents the type of a flat lexical unit
type LexemeType string

// Lexeme type constants
const (
	LexemeTypeIdent   LexemeType = "IDENT"
	LexemeTypeLiteral LexemeType = "LITERAL"
	LexemeTypePunct   LexemeType = "PUNCT"
	LexemeTypeOpen    LexemeType = "OPEN"
	LexemeTypeClose   LexemeType = "CLOSE"
	LexemeTypeEOF     LexemeType = "EOF"
)

// Lexeme is a flat token produced by the lexer. Delimiters are still
// unpaired at this stage; the parser folds them into groups.
type Lexeme struct {
	Type     LexemeType
	Value    string   // Identifier name, literal text, punct or delimiter char
	Joint    bool     // Punct only: immediately followed by another punct char
	Position Position // Source position
}

// String returns a human-readable representation of the lexeme
func (l Lexeme) String() string {
	if l.Value == "" {
		return fmt.Sprintf("Lexeme{%s @ %s}", l.Type, l.Position)
	}
	return fmt.Sprintf("Lexeme{%s: %q @ %s}", l.Type, l.Value, l.Position)
}

// IsEOF returns true if this is an end-of-input lexeme
func (l Lexeme) IsEOF() bool {
	return l.Type == LexemeTypeEOF
}

// NewIdentLexeme creates an identifier lexeme
func NewIdentLexeme(name string, pos Position) Lexeme {
	return Lexeme{Type: LexemeTypeIdent, Value: name, Position: pos}
}

// NewLiteralLexeme creates a literal lexeme holding the raw source text
func NewLiteralLexeme(text string, pos Position) Lexeme {
	return Lexeme{Type: LexemeTypeLiteral, Value: text, Position: pos}
}

// NewPunctLexeme creates a punctuation lexeme
func NewPunctLexeme(ch string, joint bool, pos Position) Lexeme {
	return Lexeme{Type: LexemeTypePunct, Value: ch, Joint: joint, Position: pos}
}

// NewOpenLexeme creates an opening delimiter lexeme
func NewOpenLexeme(ch byte, pos Position) Lexeme {
	return Lexeme{Type: LexemeTypeOpen, Value: string(ch), Position: pos}
}

// NewCloseLexeme creates a closing delimiter lexeme
func NewCloseLexeme(ch byte, pos Position) Lexeme {
	return Lexeme{Type: LexemeTypeClose, Value: string(ch), Position: pos}
}

// NewEOFLexeme creates an end-of-input lexeme at the given position
func NewEOFLexeme(pos Position) Lexeme {
	return Lexeme{Type: LexemeTypeEOF, Position: pos}
}

// SyntaxError represents a lexer or parser error with position
type SyntaxError struct {
	Message  string
	Position Position
	Expected string // Set for mismatched delimiters
	Actual   string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf(ErrFmtWithPosition, e.Message, e.Position)
}

// NewSyntaxError creates a syntax error at the given position
func NewSyntaxError(message string, pos Position) *SyntaxError {
	return &SyntaxError{Message: message, Position: pos}
}
