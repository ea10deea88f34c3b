package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/itsatony/go-quasi"
	"github.com/spf13/pflag"
)

// expandConfig holds parsed expand command configuration
type expandConfig struct {
	templatePath string
	templateDir  string
	templateName string
	bindingsPath string
	sets         []string
	outputPath   string
	maxDepth     int
	verbose      bool
}

func runExpand(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseExpandFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	bindings, err := loadBindings(cfg.bindingsPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidBindings, err)
		return ExitCodeInputError
	}
	if err := applyOverrides(bindings, cfg.sets); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFlags, err)
		return ExitCodeUsageError
	}

	logger := newLogger(cfg.verbose, stderr)
	defer func() { _ = logger.Sync() }()

	engine := quasi.MustNew(
		quasi.WithMaxDepth(cfg.maxDepth),
		quasi.WithLogger(logger),
	)

	var result string
	if cfg.templateName != "" {
		if _, err := engine.LoadTemplates(os.DirFS(cfg.templateDir), TemplateDirPattern); err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgLoadTemplatesFailed, err)
			return ExitCodeInputError
		}
		result, err = engine.ExpandTemplateBindings(cfg.templateName, bindings)
	} else {
		template, readErr := resolveTemplate(cfg.templatePath, bindings, stdin)
		if readErr != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, readErr)
			return ExitCodeInputError
		}
		result, err = engine.ExpandBindings(bindings, template)
	}
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgExpandFailed, err)
		return ExitCodeError
	}

	if err := writeOutput(cfg.outputPath, []byte(result+FmtNewline), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	return ExitCodeSuccess
}

func parseExpandFlags(args []string) (*expandConfig, error) {
	fs := pflag.NewFlagSet(CmdNameExpand, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &expandConfig{}

	fs.StringVarP(&cfg.templatePath, FlagTemplate, FlagTemplateShort, "", "")
	fs.StringVar(&cfg.templateDir, FlagTemplateDir, "", "")
	fs.StringVarP(&cfg.templateName, FlagName, FlagNameShort, "", "")
	fs.StringVarP(&cfg.bindingsPath, FlagBindings, FlagBindingsShort, "", "")
	fs.StringArrayVarP(&cfg.sets, FlagSet, FlagSetShort, nil, "")
	fs.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, "")
	fs.IntVar(&cfg.maxDepth, FlagMaxDepth, quasi.DefaultMaxDepth, "")
	fs.BoolVarP(&cfg.verbose, FlagVerbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.templateName != "" {
		if cfg.templateDir == "" {
			return nil, errors.New(ErrMsgNameWithoutDir)
		}
		if cfg.templatePath != "" {
			return nil, errors.New(ErrMsgNameWithTemplate)
		}
		return cfg, nil
	}
	if cfg.templatePath == "" && cfg.bindingsPath == "" {
		return nil, errors.New(ErrMsgMissingTemplate)
	}
	if cfg.templatePath == InputSourceStdin && cfg.bindingsPath == InputSourceStdin {
		return nil, errors.New(ErrMsgBothStdin)
	}

	return cfg, nil
}
