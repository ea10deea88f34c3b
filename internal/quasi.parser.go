package internal

import (
	"fmt"

	"go.uber.org/zap"
)

// NodeType identifies token tree node types
type NodeType int

// Node type constants
const (
	NodeTypeIdent NodeType = iota
	NodeTypeLiteral
	NodeTypePunct
	NodeTypeGroup
)

// Node type string names for debugging
const (
	NodeTypeNameIdent   = "IDENT"
	NodeTypeNameLiteral = "LITERAL"
	NodeTypeNamePunct   = "PUNCT"
	NodeTypeNameGroup   = "GROUP"
)

// String returns the string representation of the node type
func (n NodeType) String() string {
	switch n {
	case NodeTypeIdent:
		return NodeTypeNameIdent
	case NodeTypeLiteral:
		return NodeTypeNameLiteral
	case NodeTypePunct:
		return NodeTypeNamePunct
	case NodeTypeGroup:
		return NodeTypeNameGroup
	default:
		return NodeTypeNameIdent
	}
}

// Node is one element of a parsed token tree. For groups Value holds the
// opening delimiter and Children the nested nodes (nil when empty).
type Node struct {
	Type     NodeType
	Value    string
	Joint    bool
	Position Position
	Children []Node
}

// String returns a human-readable representation
func (n Node) String() string {
	if n.Type == NodeTypeGroup {
		return fmt.Sprintf("Node{%s %s, children=%d @ %s}", n.Type, n.Value, len(n.Children), n.Position)
	}
	return fmt.Sprintf("Node{%s: %q @ %s}", n.Type, n.Value, n.Position)
}

// ParserConfig holds parser configuration
type ParserConfig struct {
	MaxDepth int // Maximum group nesting depth (0 = unlimited)
}

// DefaultParserConfig returns the default parser configuration
func DefaultParserConfig() ParserConfig {
	return ParserConfig{MaxDepth: DefaultMaxDepth}
}

// Parser folds a flat lexeme stream into a token tree
type Parser struct {
	lexemes []Lexeme
	config  ParserConfig
	logger  *zap.Logger
}

// frame is an open group awaiting its closing delimiter
type frame struct {
	open     Lexeme
	children []Node
}

// NewParser creates a new parser with default configuration
func NewParser(lexemes []Lexeme, logger *zap.Logger) *Parser {
	return NewParserWithConfig(lexemes, DefaultParserConfig(), logger)
}

// NewParserWithConfig creates a parser with custom configuration
func NewParserWithConfig(lexemes []Lexeme, config ParserConfig, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug(LogMsgParserCreated,
		zap.Int(LogFieldLexemes, len(lexemes)),
		zap.Int(LogFieldMaxDepth, config.MaxDepth))
	return &Parser{
		lexemes: lexemes,
		config:  config,
		logger:  logger,
	}
}

// Parse produces the top-level node sequence. Nesting is tracked on an
// explicit stack so deeply nested input cannot exhaust the call stack.
func (p *Parser) Parse() ([]Node, error) {
	p.logger.Debug(LogMsgParserStart)

	stack := []frame{{}}
	for _, lx := range p.lexemes {
		top := &stack[len(stack)-1]

		switch lx.Type {
		case LexemeTypeIdent:
			top.children = append(top.children, Node{Type: NodeTypeIdent, Value: lx.Value, Position: lx.Position})
		case LexemeTypeLiteral:
			top.children = append(top.children, Node{Type: NodeTypeLiteral, Value: lx.Value, Position: lx.Position})
		case LexemeTypePunct:
			top.children = append(top.children, Node{Type: NodeTypePunct, Value: lx.Value, Joint: lx.Joint, Position: lx.Position})
		case LexemeTypeOpen:
			if p.config.MaxDepth > 0 && len(stack) > p.config.MaxDepth {
				return nil, NewSyntaxError(ErrMsgMaxDepthExceeded, lx.Position)
			}
			stack = append(stack, frame{open: lx})
		case LexemeTypeClose:
			if len(stack) == 1 {
				return nil, NewSyntaxError(ErrMsgUnbalancedClose, lx.Position)
			}
			expected := ClosingDelimiter(top.open.Value)
			if lx.Value != expected {
				return nil, &SyntaxError{
					Message:  ErrMsgMismatchedDelimiter,
					Position: lx.Position,
					Expected: expected,
					Actual:   lx.Value,
				}
			}
			group := Node{
				Type:     NodeTypeGroup,
				Value:    top.open.Value,
				Position: top.open.Position,
				Children: top.children,
			}
			stack = stack[:len(stack)-1]
			parent := &stack[len(stack)-1]
			parent.children = append(parent.children, group)
		case LexemeTypeEOF:
		}
	}

	if len(stack) > 1 {
		open := stack[len(stack)-1].open
		return nil, &SyntaxError{
			Message:  ErrMsgUnclosedDelimiter,
			Position: open.Position,
			Expected: ClosingDelimiter(open.Value),
		}
	}

	nodes := stack[0].children
	p.logger.Debug(LogMsgParserEnd, zap.Int(LogFieldNodes, len(nodes)))
	return nodes, nil
}

// ClosingDelimiter returns the closing counterpart of an opening delimiter
func ClosingDelimiter(open string) string {
	switch open {
	case string(CharOpenParen):
		return string(CharCloseParen)
	case string(CharOpenBrace):
		return string(CharCloseBrace)
	case string(CharOpenBracket):
		return string(CharCloseBracket)
	default:
		return ""
	}
}

// ParseSource lexes and parses source in one step
func ParseSource(source string, config ParserConfig, logger *zap.Logger) ([]Node, error) {
	lexemes, err := NewLexer(source, logger).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParserWithConfig(lexemes, config, logger).Parse()
}
