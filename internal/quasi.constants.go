package internal

// Character constants
const (
	CharNewline       = '\n'
	CharSpace         = ' '
	CharTab           = '\t'
	CharCarriageRet   = '\r'
	CharFormFeed      = '\f'
	CharUnderscore    = '_'
	CharDot           = '.'
	CharDoubleQuote   = '"'
	CharSingleQuote   = '\''
	CharBackslash     = '\\'
	CharHash          = '#'
	CharRawPrefix     = 'r'
	CharBytePrefix    = 'b'
	CharOpenParen     = '('
	CharCloseParen    = ')'
	CharOpenBrace     = '{'
	CharCloseBrace    = '}'
	CharOpenBracket   = '['
	CharCloseBracket  = ']'
	CharExponentLower = 'e'
	CharExponentUpper = 'E'
)

// String constants for comment matching
const (
	StrLineComment       = "//"
	StrBlockCommentOpen  = "/*"
	StrBlockCommentClose = "*/"
)

// PunctChars lists every character lexed as punctuation
const PunctChars = "~!@#$%^&*-=+|;:,<.>/?'"

// DefaultMaxDepth is the default maximum group nesting depth
const DefaultMaxDepth = 100

// Log message constants
const (
	LogMsgLexerCreated   = "lexer created"
	LogMsgTokenizerStart = "starting tokenization"
	LogMsgTokenizerEnd   = "tokenization complete"
	LogMsgParserCreated  = "parser created"
	LogMsgParserStart    = "starting parse"
	LogMsgParserEnd      = "parse complete"
)

// Log field names
const (
	LogFieldSource   = "source_length"
	LogFieldLexemes  = "lexeme_count"
	LogFieldNodes    = "node_count"
	LogFieldMaxDepth = "max_depth"
)

// Error message constants
const (
	ErrMsgUnexpectedChar        = "unexpected character"
	ErrMsgUnterminatedStr       = "unterminated string literal"
	ErrMsgUnterminatedChar      = "unterminated character literal"
	ErrMsgUnterminatedComment   = "unterminated block comment"
	ErrMsgUnbalancedClose       = "unexpected closing delimiter"
	ErrMsgMismatchedDelimiter   = "mismatched closing delimiter"
	ErrMsgUnclosedDelimiter     = "unclosed delimiter"
	ErrMsgMaxDepthExceeded      = "maximum nesting depth exceeded"
	ErrMsgInvalidRawStringStart = "invalid raw string prefix"
)

// Error format string constants
const (
	ErrFmtWithPosition = "%s at %s"
)
