package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-quasi"
	"github.com/spf13/pflag"
)

// validateConfig holds parsed validate command configuration
type validateConfig struct {
	templatePath string
	bindingsPath string
	format       string
	strict       bool
}

// validationIssue is one finding about a template or its bindings
type validationIssue struct {
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Line        int    `json:"line,omitempty"`
	Column      int    `json:"column,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

// validationOutput represents JSON output for validation
type validationOutput struct {
	Valid  bool              `json:"valid"`
	Issues []validationIssue `json:"issues,omitempty"`
}

func runValidate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseValidateFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	bindings, err := loadBindings(cfg.bindingsPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidBindings, err)
		return ExitCodeInputError
	}

	template, err := resolveTemplate(cfg.templatePath, bindings, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
		return ExitCodeInputError
	}

	issues := validate(quasi.MustNew(), template, bindings)

	if cfg.format == OutputFormatJSON {
		return outputValidationJSON(issues, cfg.strict, stdout)
	}
	return outputValidationText(issues, cfg.strict, stdout)
}

func parseValidateFlags(args []string) (*validateConfig, error) {
	fs := pflag.NewFlagSet(CmdNameValidate, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &validateConfig{}

	fs.StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", "")
	fs.StringVarP(&cfg.bindingsPath, FlagBindings, FlagBindingsShort, "", "")
	fs.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templatePath == "" && cfg.bindingsPath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.templatePath == InputSourceStdin && cfg.bindingsPath == InputSourceStdin {
		return nil, errors.New(ErrMsgBothStdin)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

// validate parses the template and every binding set. Parse failures are
// errors; placeholders bound but absent from the template are warnings.
func validate(engine *quasi.Engine, template string, bindings *quasi.Bindings) []validationIssue {
	var issues []validationIssue

	stream, parseErr := engine.Parse(template)
	if parseErr != nil {
		issues = append(issues, issueFromError(parseErr))
	}

	sets := bindings.Items
	if !bindings.IsEach() {
		sets = []map[string]string{bindings.Bindings}
	}
	for _, set := range sets {
		if _, err := engine.CompileReplacements(set); err != nil {
			issues = append(issues, issueFromError(err))
		}
	}

	if parseErr != nil {
		return issues
	}
	used := make(map[string]bool)
	for _, name := range quasi.Idents(stream) {
		used[name] = true
	}
	for _, name := range bindings.Placeholders() {
		if !used[name] {
			issues = append(issues, validationIssue{
				Severity:    SeverityNameWarning,
				Message:     ErrMsgUnusedPlaceholder,
				Placeholder: name,
			})
		}
	}
	return issues
}

// issueFromError turns an error into an ERROR issue, lifting position and
// placeholder metadata when present
func issueFromError(err error) validationIssue {
	issue := validationIssue{Severity: SeverityNameError, Message: err.Error()}

	var customErr *cuserr.CustomError
	if !errors.As(err, &customErr) {
		return issue
	}
	if line, ok := customErr.GetMetadata(quasi.MetaKeyLine); ok {
		issue.Line, _ = strconv.Atoi(line)
	}
	if column, ok := customErr.GetMetadata(quasi.MetaKeyColumn); ok {
		issue.Column, _ = strconv.Atoi(column)
	}
	if name, ok := customErr.GetMetadata(quasi.MetaKeyPlaceholder); ok {
		issue.Placeholder = name
	}
	return issue
}

func countIssues(issues []validationIssue) (errs, warnings int) {
	for _, issue := range issues {
		if issue.Severity == SeverityNameError {
			errs++
		} else {
			warnings++
		}
	}
	return errs, warnings
}

func outputValidationText(issues []validationIssue, strict bool, stdout io.Writer) int {
	if len(issues) == 0 {
		fmt.Fprintln(stdout, ValidationTextSuccess)
		return ExitCodeSuccess
	}

	fmt.Fprintln(stdout, ValidationTextIssueHeader)
	for _, issue := range issues {
		switch {
		case issue.Line > 0:
			fmt.Fprintf(stdout, ValidationTextIssueFormat+FmtNewline,
				issue.Severity, issue.Message, issue.Line, issue.Column)
		case issue.Placeholder != "":
			fmt.Fprintf(stdout, ValidationTextNamedFormat+FmtNewline,
				issue.Severity, issue.Message, issue.Placeholder)
		default:
			fmt.Fprintf(stdout, FmtErrorWithDetail, issue.Severity, issue.Message)
		}
	}

	errs, warnings := countIssues(issues)
	fmt.Fprintf(stdout, ValidationTextErrorSummary+FmtNewline, errs, warnings)

	if errs > 0 || (strict && warnings > 0) {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func outputValidationJSON(issues []validationIssue, strict bool, stdout io.Writer) int {
	errs, warnings := countIssues(issues)

	output := validationOutput{
		Valid:  errs == 0 && (!strict || warnings == 0),
		Issues: issues,
	}

	jsonBytes, _ := json.MarshalIndent(output, "", JSONIndent)
	fmt.Fprintln(stdout, string(jsonBytes))

	if !output.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}
