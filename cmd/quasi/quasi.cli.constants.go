package main

// Command names
const (
	CmdNameExpand   = "expand"
	CmdNameValidate = "validate"
	CmdNameVersion  = "version"
	CmdNameHelp     = "help"
)

// Flag names - long form
const (
	FlagTemplate    = "template"
	FlagTemplateDir = "template-dir"
	FlagName        = "name"
	FlagBindings    = "bindings"
	FlagSet         = "set"
	FlagOutput      = "output"
	FlagFormat      = "format"
	FlagStrictMode  = "strict"
	FlagMaxDepth    = "max-depth"
	FlagVerbose     = "verbose"
)

// Flag names - short form
const (
	FlagTemplateShort = "t"
	FlagNameShort     = "n"
	FlagBindingsShort = "b"
	FlagSetShort      = "s"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
	FlagVerboseShort  = "v"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin   = "-"
	BindingSeparator   = "="
	TemplateDirPattern = "**/*"
)

// Bindings file extensions decoded as JSONC
const (
	ExtJSON  = ".json"
	ExtJSONC = ".jsonc"
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand      = "unknown command"
	ErrMsgInvalidFlags        = "invalid arguments"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgNameWithoutDir      = "--name requires --template-dir"
	ErrMsgNameWithTemplate    = "--name and --template are mutually exclusive"
	ErrMsgLoadTemplatesFailed = "failed to load templates"
	ErrMsgBothStdin           = "template and bindings cannot both be read from stdin"
	ErrMsgInvalidSet          = "binding override must have the form KEY=VALUE"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgInvalidBindings     = "invalid bindings document"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgExpandFailed        = "template expansion failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgUnusedPlaceholder   = "placeholder is bound but never used"
)

// Help text templates
const (
	HelpMainUsage = `go-quasi - Token tree template expansion CLI

Usage:
    quasi <command> [options]

Commands:
    expand      Expand a template with bindings
    validate    Check a template and its bindings without expanding
    version     Show version information
    help        Show help for a command

Use "quasi help <command>" for more information about a command.`

	HelpExpandUsage = `Expand a template with bindings

Usage:
    quasi expand [options]

Options:
    -t, --template <file>    Template file (use "-" for stdin)
    --template-dir <dir>     Load every file below dir as a named template
    -n, --name <name>        Expand the named template from --template-dir
    -b, --bindings <file>    YAML or JSONC bindings document (use "-" for stdin)
    -s, --set KEY=VALUE      Bind a placeholder; repeatable, overrides the document
    -o, --output <file>      Output file (default: stdout)
    --max-depth <n>          Maximum group nesting (default: 100, 0 = unlimited)
    -v, --verbose            Log engine activity to stderr

Examples:
    quasi expand -t impl.rs.tpl -s TRAIT=Clone -s TYPE=Point
    quasi expand -b impls.yaml
    quasi expand --template-dir templates -n impls/derive -b derives.yaml
    cat impl.rs.tpl | quasi expand -t - -b impls.yaml -o impls.rs`

	HelpValidateUsage = `Check a template and its bindings without expanding

Usage:
    quasi validate [options]

Options:
    -t, --template <file>   Template file (use "-" for stdin)
    -b, --bindings <file>   YAML or JSONC bindings document
    -F, --format <format>   Output format: text, json (default: text)
    --strict                Treat warnings as errors

Examples:
    quasi validate -t impl.rs.tpl
    quasi validate -b impls.yaml --strict
    cat impl.rs.tpl | quasi validate -t - -F json`

	HelpVersionUsage = `Show version information

Usage:
    quasi version [options]

Options:
    -F, --format <format>   Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    quasi help [command]

Commands:
    expand      Show help for expand command
    validate    Show help for validate command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-quasi version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
	VersionsFileName    = "versions.yaml"
)

// Validation output format templates
const (
	ValidationTextSuccess      = "Template is valid"
	ValidationTextIssueHeader  = "Validation issues:"
	ValidationTextIssueFormat  = "  [%s] %s at line %d, column %d"
	ValidationTextNamedFormat  = "  [%s] %s: %s"
	ValidationTextErrorSummary = "%d error(s), %d warning(s)"
)

// Severity names for output
const (
	SeverityNameError   = "ERROR"
	SeverityNameWarning = "WARNING"
)

// CLI metadata
const (
	CLIName = "quasi"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
	JSONIndent         = "  "
)
