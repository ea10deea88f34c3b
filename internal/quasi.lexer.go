package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Lexer splits source text into a flat lexeme stream
type Lexer struct {
	source string
	pos    int // Current byte position
	line   int // Current line (1-indexed)
	column int // Current column (1-indexed, counted in runes)
	logger *zap.Logger
}

// NewLexer creates a new lexer for the given source
func NewLexer(source string, logger *zap.Logger) *Lexer {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgLexerCreated, zap.Int(LogFieldSource, len(source)))
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		logger: logger,
	}
}

// Tokenize processes the source and returns the lexeme stream, terminated
// by an EOF lexeme.
func (l *Lexer) Tokenize() ([]Lexeme, error) {
	l.logger.Debug(LogMsgTokenizerStart)
	var lexemes []Lexeme

	for {
		if err := l.skipTrivia(); err != nil {
			return nil, err
		}
		if l.isAtEnd() {
			break
		}

		lx, err := l.scanLexeme()
		if err != nil {
			return nil, err
		}
		lexemes = append(lexemes, lx)
	}

	lexemes = append(lexemes, NewEOFLexeme(l.currentPosition()))
	l.logger.Debug(LogMsgTokenizerEnd, zap.Int(LogFieldLexemes, len(lexemes)))
	return lexemes, nil
}

// scanLexeme scans exactly one lexeme starting at the current position
func (l *Lexer) scanLexeme() (Lexeme, error) {
	pos := l.currentPosition()
	ch := l.peek()
	next := l.peekAt(1)

	switch {
	case isOpenDelim(ch):
		l.advance()
		return NewOpenLexeme(byte(ch), pos), nil
	case isCloseDelim(ch):
		l.advance()
		return NewCloseLexeme(byte(ch), pos), nil
	case ch == CharDoubleQuote:
		return l.scanString(pos)
	case ch == CharSingleQuote:
		return l.scanQuote(pos)
	case ch == CharBytePrefix && next == CharDoubleQuote:
		l.advance()
		return l.scanString(pos)
	case ch == CharBytePrefix && next == CharSingleQuote:
		l.advance()
		return l.scanCharLiteral(pos)
	case ch == CharBytePrefix && next == CharRawPrefix && l.isRawStringAt(2):
		l.advanceN(2)
		return l.scanRawString(pos)
	case ch == CharRawPrefix && l.isRawStringAt(1):
		l.advance()
		return l.scanRawString(pos)
	case ch == CharRawPrefix && next == CharHash && isIdentStart(l.peekAt(2)):
		l.advanceN(2)
		return l.scanIdent(pos)
	case isDigit(ch):
		return l.scanNumber(pos), nil
	case isIdentStart(ch):
		return l.scanIdent(pos)
	case isPunct(ch):
		l.advance()
		return NewPunctLexeme(string(ch), l.isJoint(), pos), nil
	default:
		return Lexeme{}, NewSyntaxError(ErrMsgUnexpectedChar, pos)
	}
}

// scanIdent scans an identifier; a consumed raw prefix is kept in the name
func (l *Lexer) scanIdent(start Position) (Lexeme, error) {
	for !l.isAtEnd() && isIdentContinue(l.peek()) {
		l.advance()
	}
	return NewIdentLexeme(l.source[start.Offset:l.pos], start), nil
}

// scanNumber scans a numeric literal including any type suffix
func (l *Lexer) scanNumber(start Position) Lexeme {
	for !l.isAtEnd() {
		ch := l.peek()
		switch {
		case isIdentContinue(ch):
		case ch == CharDot && isDigit(l.peekAt(1)):
		case (ch == '+' || ch == '-') && isDecimalExponent(l.source[start.Offset:l.pos]):
		default:
			return NewLiteralLexeme(l.source[start.Offset:l.pos], start)
		}
		l.advance()
	}
	return NewLiteralLexeme(l.source[start.Offset:l.pos], start)
}

// isDecimalExponent reports whether text is a decimal mantissa ending in an
// exponent marker, so that a following sign belongs to the literal (1e-5).
func isDecimalExponent(text string) bool {
	if len(text) < 2 {
		return false
	}
	last := text[len(text)-1]
	if last != CharExponentLower && last != CharExponentUpper {
		return false
	}
	for i := 0; i < len(text)-1; i++ {
		ch := text[i]
		if !isDigit(rune(ch)) && ch != CharUnderscore && ch != CharDot {
			return false
		}
	}
	return true
}

// scanString scans a quoted string literal, honoring backslash escapes
func (l *Lexer) scanString(start Position) (Lexeme, error) {
	l.advance() // opening quote
	for !l.isAtEnd() {
		ch := l.advance()
		if ch == CharBackslash {
			l.advance()
			continue
		}
		if ch == CharDoubleQuote {
			return NewLiteralLexeme(l.source[start.Offset:l.pos], start), nil
		}
	}
	return Lexeme{}, NewSyntaxError(ErrMsgUnterminatedStr, start)
}

// isRawStringAt reports whether a raw string body (#*") starts at offset n
func (l *Lexer) isRawStringAt(n int) bool {
	for {
		switch l.peekAt(n) {
		case CharHash:
			n++
		case CharDoubleQuote:
			return true
		default:
			return false
		}
	}
}

// scanRawString scans r"..." or r#"..."# after the r prefix was consumed
func (l *Lexer) scanRawString(start Position) (Lexeme, error) {
	hashes := 0
	for l.peek() == CharHash {
		l.advance()
		hashes++
	}
	if l.peek() != CharDoubleQuote {
		return Lexeme{}, NewSyntaxError(ErrMsgInvalidRawStringStart, start)
	}
	l.advance()

	terminator := "\"" + strings.Repeat("#", hashes)
	for !l.isAtEnd() {
		if l.matchStr(terminator) {
			l.advanceN(len(terminator))
			return NewLiteralLexeme(l.source[start.Offset:l.pos], start), nil
		}
		l.advance()
	}
	return Lexeme{}, NewSyntaxError(ErrMsgUnterminatedStr, start)
}

// scanQuote distinguishes a character literal from a lifetime or label.
// A lifetime is emitted as a joint apostrophe; the identifier after it is
// scanned as a separate lexeme.
func (l *Lexer) scanQuote(start Position) (Lexeme, error) {
	if l.peekAt(1) == CharBackslash || l.peekAt(2) == CharSingleQuote {
		return l.scanCharLiteral(start)
	}
	l.advance()
	return NewPunctLexeme(string(CharSingleQuote), isIdentStart(l.peek()) || isPunct(l.peek()), start), nil
}

// scanCharLiteral scans 'x' or '\n' style literals at the opening quote
func (l *Lexer) scanCharLiteral(start Position) (Lexeme, error) {
	l.advance() // opening quote
	for !l.isAtEnd() {
		ch := l.advance()
		switch ch {
		case CharBackslash:
			l.advance()
		case CharSingleQuote:
			return NewLiteralLexeme(l.source[start.Offset:l.pos], start), nil
		case CharNewline:
			return Lexeme{}, NewSyntaxError(ErrMsgUnterminatedChar, start)
		}
	}
	return Lexeme{}, NewSyntaxError(ErrMsgUnterminatedChar, start)
}

// skipTrivia skips whitespace and comments. Block comments nest.
func (l *Lexer) skipTrivia() error {
	for !l.isAtEnd() {
		switch {
		case isWhitespace(l.peek()):
			l.advance()
		case l.matchStr(StrLineComment):
			for !l.isAtEnd() && l.peek() != CharNewline {
				l.advance()
			}
		case l.matchStr(StrBlockCommentOpen):
			if err := l.skipBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) skipBlockComment() error {
	start := l.currentPosition()
	depth := 0
	for !l.isAtEnd() {
		switch {
		case l.matchStr(StrBlockCommentOpen):
			l.advanceN(len(StrBlockCommentOpen))
			depth++
		case l.matchStr(StrBlockCommentClose):
			l.advanceN(len(StrBlockCommentClose))
			depth--
			if depth == 0 {
				return nil
			}
		default:
			l.advance()
		}
	}
	return NewSyntaxError(ErrMsgUnterminatedComment, start)
}

// Helper methods

// currentPosition returns the current position
func (l *Lexer) currentPosition() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

// isAtEnd returns true if we've reached the end of source
func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

// peek returns the current rune without advancing
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune n runes ahead without advancing, or 0 past the end
func (l *Lexer) peekAt(n int) rune {
	offset := l.pos
	for i := 0; ; i++ {
		if offset >= len(l.source) {
			return 0
		}
		r, size := utf8.DecodeRuneInString(l.source[offset:])
		if i == n {
			return r
		}
		offset += size
	}
}

// advance consumes and returns the current rune
func (l *Lexer) advance() rune {
	if l.isAtEnd() {
		return 0
	}
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	if r == CharNewline {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

// advanceN advances by n runes
func (l *Lexer) advanceN(n int) {
	for i := 0; i < n && !l.isAtEnd(); i++ {
		l.advance()
	}
}

// matchStr returns true if the remaining source starts with s
func (l *Lexer) matchStr(s string) bool {
	return strings.HasPrefix(l.source[l.pos:], s)
}

// isJoint reports whether the punct just consumed is immediately followed by
// another punct. A comment start is trivia, not a punct.
func (l *Lexer) isJoint() bool {
	return isPunct(l.peek()) && !l.matchStr(StrLineComment) && !l.matchStr(StrBlockCommentOpen)
}

// Character classification helpers

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch rune) bool {
	return ch == CharUnderscore || unicode.IsLetter(ch)
}

func isIdentContinue(ch rune) bool {
	return ch == CharUnderscore || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}

func isPunct(ch rune) bool {
	return ch != 0 && ch < utf8.RuneSelf && strings.IndexByte(PunctChars, byte(ch)) >= 0
}

func isWhitespace(ch rune) bool {
	switch ch {
	case CharSpace, CharTab, CharNewline, CharCarriageRet, CharFormFeed:
		return true
	}
	return false
}

func isOpenDelim(ch rune) bool {
	return ch == CharOpenParen || ch == CharOpenBrace || ch == CharOpenBracket
}

func isCloseDelim(ch rune) bool {
	return ch == CharCloseParen || ch == CharCloseBrace || ch == CharCloseBracket
}

// IsIdent reports whether name lexes as exactly one identifier
func IsIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		if i == 0 && !isIdentStart(r) {
			return false
		}
		if !isIdentContinue(r) {
			return false
		}
	}
	return true
}
