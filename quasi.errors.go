package quasi

import (
	"errors"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-quasi/internal"
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	// Parse errors
	ErrMsgParseFailed         = "token source parsing failed"
	ErrMsgUnexpectedChar      = internal.ErrMsgUnexpectedChar
	ErrMsgUnterminatedStr     = internal.ErrMsgUnterminatedStr
	ErrMsgUnterminatedChar    = internal.ErrMsgUnterminatedChar
	ErrMsgUnterminatedComment = internal.ErrMsgUnterminatedComment
	ErrMsgUnbalancedClose     = internal.ErrMsgUnbalancedClose
	ErrMsgMismatchedDelimiter = internal.ErrMsgMismatchedDelimiter
	ErrMsgUnclosedDelimiter   = internal.ErrMsgUnclosedDelimiter
	ErrMsgMaxDepthExceeded    = internal.ErrMsgMaxDepthExceeded
	ErrMsgNotSingleIdent      = "source is not a single identifier"

	// Binding errors
	ErrMsgInvalidPlaceholder = "placeholder name is not an identifier"
	ErrMsgInvalidFragment    = "replacement fragment could not be parsed"
	ErrMsgInvalidItem        = "binding item could not be compiled"
	ErrMsgInvalidBindings    = "binding document could not be decoded"
	ErrMsgBindingsConflict   = "binding document sets both bindings and items"
	ErrMsgNonScalarBinding   = "binding value must be a scalar"
	ErrMsgMissingTemplate    = "binding document has no template"

	// Registry errors
	ErrMsgTemplateNotFound  = "template not found"
	ErrMsgTemplateExists    = "template already registered"
	ErrMsgEmptyTemplateName = "template name cannot be empty"
	ErrMsgTemplateLoad      = "template file could not be loaded"
	ErrMsgTemplatePattern   = "invalid template file pattern"
)

// Error code constants for categorization
const (
	ErrCodeParse    = "QUASI_PARSE"
	ErrCodeBinding  = "QUASI_BINDING"
	ErrCodeRegistry = "QUASI_REGISTRY"
)

// NewParseError creates a parse error with position context
func NewParseError(msg string, pos Position, cause error) error {
	var err *cuserr.CustomError
	if cause != nil {
		err = cuserr.WrapStdError(cause, ErrCodeParse, msg)
	} else {
		err = cuserr.NewValidationError(ErrCodeParse, msg)
	}
	return withPosition(err, pos)
}

// NewMismatchedDelimiterError creates an error for a closing delimiter that
// does not match the innermost open group
func NewMismatchedDelimiterError(expected, actual string, pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeParse, ErrMsgMismatchedDelimiter), pos).
		WithMetadata(MetaKeyExpected, expected).
		WithMetadata(MetaKeyActual, actual)
}

// NewUnclosedDelimiterError creates an error for a group left open at end of input
func NewUnclosedDelimiterError(expected string, pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeParse, ErrMsgUnclosedDelimiter), pos).
		WithMetadata(MetaKeyExpected, expected)
}

// NewMaxDepthError creates an error for input nested deeper than allowed
func NewMaxDepthError(maxDepth int, pos Position) error {
	return withPosition(cuserr.NewValidationError(ErrCodeParse, ErrMsgMaxDepthExceeded), pos).
		WithMetadata(MetaKeyMaxDepth, strconv.Itoa(maxDepth))
}

// NewNotSingleIdentError creates an error for ParseIdent input that is not
// exactly one identifier
func NewNotSingleIdentError(source string) error {
	return cuserr.NewValidationError(ErrCodeParse, ErrMsgNotSingleIdent).
		WithMetadata(MetaKeyActual, source)
}

// NewInvalidPlaceholderError creates an error for a binding key that can
// never match an identifier
func NewInvalidPlaceholderError(name string) error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgInvalidPlaceholder).
		WithMetadata(MetaKeyPlaceholder, name)
}

// NewInvalidFragmentError wraps the parse failure of a replacement fragment
func NewInvalidFragmentError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeBinding, ErrMsgInvalidFragment).
		WithMetadata(MetaKeyPlaceholder, name)
}

// NewInvalidItemError wraps the failure of one item of a binding list
func NewInvalidItemError(index int, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeBinding, ErrMsgInvalidItem).
		WithMetadata(MetaKeyItem, strconv.Itoa(index))
}

// NewInvalidBindingsError wraps a binding document decoding failure
func NewInvalidBindingsError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeBinding, ErrMsgInvalidBindings)
}

// NewBindingsConflictError creates an error for a document that sets both
// a single mapping and a list of items
func NewBindingsConflictError() error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgBindingsConflict).
		WithMetadata(MetaKeyExpected, BindingKeyBindings).
		WithMetadata(MetaKeyActual, BindingKeyItems)
}

// NewMissingTemplateError creates an error for a binding document without template
func NewMissingTemplateError() error {
	return cuserr.NewValidationError(ErrCodeBinding, ErrMsgMissingTemplate).
		WithMetadata(MetaKeyExpected, BindingKeyTemplate)
}

// NewTemplateNotFoundError creates a template not found error
func NewTemplateNotFoundError(name string) error {
	return cuserr.NewNotFoundError(MetaKeyResource, ErrMsgTemplateNotFound).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplateExistsError creates a template name collision error
func NewTemplateExistsError(name string) error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgTemplateExists).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewEmptyTemplateNameError creates an error for registering an unnamed template
func NewEmptyTemplateNameError() error {
	return cuserr.NewValidationError(ErrCodeRegistry, ErrMsgEmptyTemplateName)
}

// NewTemplateLoadError wraps a failure to read or register a template file
func NewTemplateLoadError(name string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgTemplateLoad).
		WithMetadata(MetaKeyTemplateName, name)
}

// NewTemplatePatternError wraps a malformed template glob pattern
func NewTemplatePatternError(pattern string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRegistry, ErrMsgTemplatePattern).
		WithMetadata(MetaKeyPattern, pattern)
}

func withPosition(err *cuserr.CustomError, pos Position) *cuserr.CustomError {
	return err.
		WithMetadata(MetaKeyLine, strconv.Itoa(pos.Line)).
		WithMetadata(MetaKeyColumn, strconv.Itoa(pos.Column)).
		WithMetadata(MetaKeyOffset, strconv.Itoa(pos.Offset))
}

// wrapSyntaxError converts an internal lexer or parser error into a public
// error carrying position metadata
func wrapSyntaxError(err error, maxDepth int) error {
	var synErr *internal.SyntaxError
	if !errors.As(err, &synErr) {
		return NewParseError(ErrMsgParseFailed, Position{}, err)
	}

	pos := positionFromInternal(synErr.Position)
	switch synErr.Message {
	case internal.ErrMsgMismatchedDelimiter:
		return NewMismatchedDelimiterError(synErr.Expected, synErr.Actual, pos)
	case internal.ErrMsgUnclosedDelimiter:
		return NewUnclosedDelimiterError(synErr.Expected, pos)
	case internal.ErrMsgMaxDepthExceeded:
		return NewMaxDepthError(maxDepth, pos)
	default:
		return NewParseError(synErr.Message, pos, nil)
	}
}
