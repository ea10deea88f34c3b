package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-quasi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testTemplateContent = "let NAME: TYPE = VALUE;"
	testExpectedOutput  = "let age : u32 = 5 ;\n"
	testInvalidContent  = "fn f( {"
	testBindingsContent = `bindings:
  NAME: age
  TYPE: u32
  VALUE: "5"
`
	testItemsContent = `template: "impl TRAIT for TYPE {}"
items:
  - { TRAIT: Clone }
  - { TRAIT: Debug }
`
	testUnusedContent = `bindings:
  NAME: age
  TYPE: u32
  VALUE: "5"
  EXTRA: x
`
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := map[string]string{
		"template.tpl":  testTemplateContent,
		"invalid.tpl":   testInvalidContent,
		"bindings.yaml": testBindingsContent,
		"items.yaml":    testItemsContent,
		"unused.yaml":   testUnusedContent,
		"broken.yaml":   "bindings: [",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), FilePermissions))
	}

	return tmpDir
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := run(args, strings.NewReader(stdin), stdout, stderr)
	return exitCode, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameExpand)
}

func TestRun_UnknownCommand(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", "unknown")

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

// ==================== Help command tests ====================

func TestHelp_Commands(t *testing.T) {
	tests := []struct {
		cmd      string
		expected string
	}{
		{cmd: CmdNameExpand, expected: HelpExpandUsage},
		{cmd: CmdNameValidate, expected: HelpValidateUsage},
		{cmd: CmdNameVersion, expected: HelpVersionUsage},
		{cmd: CmdNameHelp, expected: HelpHelpUsage},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			exitCode, stdout, _ := runCLI(t, "", CmdNameHelp, tt.cmd)
			assert.Equal(t, ExitCodeSuccess, exitCode)
			assert.Contains(t, stdout, tt.expected)
		})
	}
}

// ==================== Expand command tests ====================

func TestExpand_WithSetFlags(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, stderr := runCLI(t, "", CmdNameExpand,
		"-t", filepath.Join(tmpDir, "template.tpl"),
		"-s", "NAME=age", "--set", "TYPE=u32", "-s", "VALUE=5")

	assert.Equal(t, ExitCodeSuccess, exitCode, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestExpand_WithBindingsFile(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI(t, "", CmdNameExpand,
		"--template", filepath.Join(tmpDir, "template.tpl"),
		"--bindings", filepath.Join(tmpDir, "bindings.yaml"))

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestExpand_SetOverridesBindingsFile(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI(t, "", CmdNameExpand,
		"-t", filepath.Join(tmpDir, "template.tpl"),
		"-b", filepath.Join(tmpDir, "bindings.yaml"),
		"-s", "VALUE=6")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "let age : u32 = 6 ;\n", stdout)
}

func TestExpand_ItemsWithEmbeddedTemplate(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI(t, "", CmdNameExpand,
		"-b", filepath.Join(tmpDir, "items.yaml"),
		"-s", "TYPE=Point")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "impl Clone for Point {} impl Debug for Point {}\n", stdout)
}

func TestExpand_TemplateFromStdin(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "f(X)", CmdNameExpand, "-t", "-", "-s", "X=1 + 2")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, "f (1 + 2)\n", stdout)
}

func TestExpand_OutputFile(t *testing.T) {
	tmpDir := setupTestData(t)
	outPath := filepath.Join(tmpDir, "out.rs")

	exitCode, stdout, _ := runCLI(t, "", CmdNameExpand,
		"-t", filepath.Join(tmpDir, "template.tpl"),
		"-b", filepath.Join(tmpDir, "bindings.yaml"),
		"-o", outPath)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(content))
}

func TestExpand_Verbose(t *testing.T) {
	exitCode, _, stderr := runCLI(t, "a", CmdNameExpand, "-t", "-", "-v")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stderr, quasi.LogMsgExpandComplete)
}

func TestExpand_Errors(t *testing.T) {
	tmpDir := setupTestData(t)

	tests := []struct {
		name     string
		args     []string
		exitCode int
		stderr   string
	}{
		{
			name:     "no template",
			args:     []string{},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgMissingTemplate,
		},
		{
			name:     "both from stdin",
			args:     []string{"-t", "-", "-b", "-"},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgBothStdin,
		},
		{
			name:     "unknown flag",
			args:     []string{"-t", "x", "--nope"},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgInvalidFlags,
		},
		{
			name:     "name without template dir",
			args:     []string{"-n", "impls/derive"},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgNameWithoutDir,
		},
		{
			name:     "name with template",
			args:     []string{"-n", "x", "--template-dir", tmpDir, "-t", "x.tpl"},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgNameWithTemplate,
		},
		{
			name:     "template dir with broken template",
			args:     []string{"-n", "template", "--template-dir", tmpDir},
			exitCode: ExitCodeInputError,
			stderr:   ErrMsgLoadTemplatesFailed,
		},
		{
			name:     "malformed set",
			args:     []string{"-t", filepath.Join(tmpDir, "template.tpl"), "-s", "NAME"},
			exitCode: ExitCodeUsageError,
			stderr:   ErrMsgInvalidSet,
		},
		{
			name:     "missing template file",
			args:     []string{"-t", filepath.Join(tmpDir, "missing.tpl")},
			exitCode: ExitCodeInputError,
			stderr:   ErrMsgReadFileFailed,
		},
		{
			name:     "document without template",
			args:     []string{"-b", filepath.Join(tmpDir, "bindings.yaml")},
			exitCode: ExitCodeInputError,
			stderr:   ErrMsgMissingTemplate,
		},
		{
			name:     "broken bindings",
			args:     []string{"-t", filepath.Join(tmpDir, "template.tpl"), "-b", filepath.Join(tmpDir, "broken.yaml")},
			exitCode: ExitCodeInputError,
			stderr:   ErrMsgInvalidBindings,
		},
		{
			name:     "template does not parse",
			args:     []string{"-t", filepath.Join(tmpDir, "invalid.tpl")},
			exitCode: ExitCodeError,
			stderr:   quasi.ErrMsgUnclosedDelimiter,
		},
		{
			name:     "invalid placeholder",
			args:     []string{"-t", filepath.Join(tmpDir, "template.tpl"), "-s", "1x=y"},
			exitCode: ExitCodeError,
			stderr:   quasi.ErrMsgInvalidPlaceholder,
		},
		{
			name:     "nesting too deep",
			args:     []string{"-t", filepath.Join(tmpDir, "template.tpl"), "-s", "VALUE=((1))", "--max-depth", "1"},
			exitCode: ExitCodeError,
			stderr:   ErrMsgExpandFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, _, stderr := runCLI(t, "", append([]string{CmdNameExpand}, tt.args...)...)
			assert.Equal(t, tt.exitCode, exitCode)
			assert.Contains(t, stderr, tt.stderr)
		})
	}
}

// ==================== Validate command tests ====================

func TestValidate_Valid(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI(t, "", CmdNameValidate,
		"-t", filepath.Join(tmpDir, "template.tpl"),
		"-b", filepath.Join(tmpDir, "bindings.yaml"))

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, ValidationTextSuccess)
}

func TestValidate_UnusedPlaceholder(t *testing.T) {
	tmpDir := setupTestData(t)
	args := []string{CmdNameValidate,
		"-t", filepath.Join(tmpDir, "template.tpl"),
		"-b", filepath.Join(tmpDir, "unused.yaml")}

	t.Run("warning", func(t *testing.T) {
		exitCode, stdout, _ := runCLI(t, "", args...)
		assert.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout, SeverityNameWarning)
		assert.Contains(t, stdout, "EXTRA")
		assert.Contains(t, stdout, "0 error(s), 1 warning(s)")
	})

	t.Run("strict", func(t *testing.T) {
		exitCode, _, _ := runCLI(t, "", append(args, "--strict")...)
		assert.Equal(t, ExitCodeValidationError, exitCode)
	})
}

func TestValidate_ParseError(t *testing.T) {
	tmpDir := setupTestData(t)

	exitCode, stdout, _ := runCLI(t, "", CmdNameValidate, "-t", filepath.Join(tmpDir, "invalid.tpl"))

	assert.Equal(t, ExitCodeValidationError, exitCode)
	assert.Contains(t, stdout, SeverityNameError)
	assert.Contains(t, stdout, "line 1, column 7")
}

func TestValidate_JSON(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "a\n  (", CmdNameValidate, "-t", "-", "-F", "json")

	assert.Equal(t, ExitCodeValidationError, exitCode)

	var output validationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	assert.False(t, output.Valid)
	require.Len(t, output.Issues, 1)
	assert.Equal(t, SeverityNameError, output.Issues[0].Severity)
	assert.Equal(t, 2, output.Issues[0].Line)
	assert.Equal(t, 3, output.Issues[0].Column)
}

func TestValidate_InvalidFragment(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "bindings: {A: \"(\"}\ntemplate: A", CmdNameValidate, "-b", "-", "-F", "json")

	assert.Equal(t, ExitCodeValidationError, exitCode)

	var output validationOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &output))
	require.Len(t, output.Issues, 1)
	assert.Equal(t, "A", output.Issues[0].Placeholder)
}

func TestValidate_InvalidFormat(t *testing.T) {
	exitCode, _, stderr := runCLI(t, "", CmdNameValidate, "-t", "x", "-F", "xml")

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

// ==================== Version command tests ====================

func TestVersion_Text(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameVersion)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
}

func TestVersion_JSON(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameVersion, "--format", "json")

	assert.Equal(t, ExitCodeSuccess, exitCode)

	var info versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	exitCode, _, _ := runCLI(t, "", CmdNameVersion, "-F", "xml")
	assert.Equal(t, ExitCodeUsageError, exitCode)
}
