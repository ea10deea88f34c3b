package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/itsatony/go-quasi"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadBindings reads and decodes a bindings document, as JSONC for .json and
// .jsonc files and as YAML otherwise. An empty path yields an empty document.
func loadBindings(path string, stdin io.Reader) (*quasi.Bindings, error) {
	if path == "" {
		return &quasi.Bindings{}, nil
	}
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtJSON, ExtJSONC:
		return quasi.ParseBindingsJSONC(data)
	default:
		return quasi.ParseBindings(data)
	}
}

// applyOverrides merges KEY=VALUE pairs into the document. For an item list
// every item receives the override.
func applyOverrides(b *quasi.Bindings, sets []string) error {
	for _, set := range sets {
		key, value, ok := strings.Cut(set, BindingSeparator)
		if !ok || key == "" {
			return errors.New(ErrMsgInvalidSet)
		}
		if b.IsEach() {
			for i := range b.Items {
				if b.Items[i] == nil {
					b.Items[i] = make(map[string]string)
				}
				b.Items[i][key] = value
			}
			continue
		}
		if b.Bindings == nil {
			b.Bindings = make(map[string]string)
		}
		b.Bindings[key] = value
	}
	return nil
}

// resolveTemplate returns the template text from path, falling back to the
// template embedded in the bindings document
func resolveTemplate(path string, b *quasi.Bindings, stdin io.Reader) (string, error) {
	if path == "" {
		if b.Template == "" {
			return "", errors.New(ErrMsgMissingTemplate)
		}
		return b.Template, nil
	}
	data, err := readInput(path, stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// newLogger returns a console logger on stderr when verbose, otherwise a no-op
func newLogger(verbose bool, stderr io.Writer) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
