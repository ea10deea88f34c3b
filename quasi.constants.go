package quasi

import "github.com/itsatony/go-quasi/internal"

// Default configuration values
const (
	DefaultMaxDepth = internal.DefaultMaxDepth
)

// Delimiter and separator strings used by the printer
const (
	StrOpenParen    = "("
	StrCloseParen   = ")"
	StrOpenBrace    = "{"
	StrCloseBrace   = "}"
	StrOpenBracket  = "["
	StrCloseBracket = "]"
	StrSpace        = " "
)

// Token kind names for debugging
const (
	TokenKindNameLiteral = "LITERAL"
	TokenKindNamePunct   = "PUNCT"
	TokenKindNameIdent   = "IDENT"
	TokenKindNameGroup   = "GROUP"
	TokenKindNameUnknown = "UNKNOWN"
)

// Metadata keys attached to errors
const (
	MetaKeyLine         = "line"
	MetaKeyColumn       = "column"
	MetaKeyOffset       = "offset"
	MetaKeyExpected     = "expected"
	MetaKeyActual       = "actual"
	MetaKeyPlaceholder  = "placeholder"
	MetaKeyTemplateName = "template_name"
	MetaKeyMaxDepth     = "max_depth"
	MetaKeyItem         = "item"
	MetaKeyPattern      = "pattern"
	MetaKeyResource     = "template"
)

// Log message constants
const (
	LogMsgEngineCreated      = "engine created"
	LogMsgParseStart         = "parsing source"
	LogMsgParseComplete      = "source parsed"
	LogMsgParseFailed        = "source parsing failed"
	LogMsgExpandComplete     = "template expanded"
	LogMsgExpandEachComplete = "template expanded for each item"
	LogMsgTemplateRegistered = "template registered"
	LogMsgBindingsCompiled   = "bindings compiled"
	LogMsgTemplatesLoaded    = "templates loaded"
)

// Log field names
const (
	LogFieldSourceLength  = "source_length"
	LogFieldTokens        = "token_count"
	LogFieldOutputTokens  = "output_token_count"
	LogFieldBindings      = "binding_count"
	LogFieldItems         = "item_count"
	LogFieldTemplateName  = "template_name"
	LogFieldMaxDepth      = "max_depth"
	LogFieldPattern       = "pattern"
	LogFieldTemplateCount = "template_count"
)

// Binding document keys
const (
	BindingKeyTemplate = "template"
	BindingKeyBindings = "bindings"
	BindingKeyItems    = "items"
)

// JSONNull is the JSON null literal, decoded as an empty binding
const JSONNull = "null"
