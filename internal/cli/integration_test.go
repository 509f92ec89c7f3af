package cli_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliDocument = `
header: Generated routes
declarations:
  - kind: import
    from: ./views/Home.vue
    names: Home
  - kind: import
    from: vue-router
    names: [createRouter, createWebHistory]
  - kind: variable
    name: routes
    export: true
    value:
      array:
        - { path: "'/'", component: Home }
  - kind: infer
    name: route_meta
    export: true
    sample:
      title: Home
      auth: false
`

// runCLI runs the command with the given stdin and arguments
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "../../main.go"}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// TestCLI_FileInputOutput tests the CLI with file input and output
func TestCLI_FileInputOutput(t *testing.T) {
	tempDir := t.TempDir()

	inputFile := filepath.Join(tempDir, "router.yaml")
	require.NoError(t, os.WriteFile(inputFile, []byte(cliDocument), 0644))
	outputFile := filepath.Join(tempDir, "router.ts")

	cmd := exec.Command("go", "run", "../../main.go", "-i", inputFile, "-o", outputFile)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	generated, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	expected := `// Generated routes

import Home from "./views/Home.vue";

import { createRouter, createWebHistory } from "vue-router";

export const routes = [
  {
    path: '/',
    component: Home
  }
]

export interface RouteMeta {
  title: string
  auth: boolean
}
`
	assert.Equal(t, expected, string(generated))
	assert.Contains(t, string(output), "Generated code written to")
}

// TestCLI_StdinStdout tests the CLI with stdin input and stdout output
func TestCLI_StdinStdout(t *testing.T) {
	stdout, stderr, err := runCLI(t, cliDocument)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Contains(t, stdout, "// Generated routes")
	assert.Contains(t, stdout, "export interface RouteMeta {")
}

// TestCLI_ConfigFile tests the CLI with formatting options from a config file
func TestCLI_ConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "tsgen.yml")
	require.NoError(t, os.WriteFile(configFile, []byte(`
strings:
  single_quotes: true
formatting:
  enabled: true
  use_tabs: true
  sort_imports: true
`), 0644))

	stdout, stderr, err := runCLI(t, cliDocument, "-c", configFile)
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Contains(t, stdout, "import { createRouter, createWebHistory } from 'vue-router';\n\nimport Home from './views/Home.vue';")
	assert.Contains(t, stdout, "\ttitle: string\n")
}

// TestCLI_SingleQuotes tests the single quotes flag
func TestCLI_SingleQuotes(t *testing.T) {
	stdout, stderr, err := runCLI(t, cliDocument, "-s")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Contains(t, stdout, `import { createRouter, createWebHistory } from 'vue-router';`)
}

// TestCLI_RootName tests inference with a custom root name
func TestCLI_RootName(t *testing.T) {
	document := "declarations:\n  - kind: infer\n    sample: { id: 1 }\n"

	stdout, stderr, err := runCLI(t, document, "-r", "Payload")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Contains(t, stdout, "interface Payload {\n  id: number\n}")
}

// TestCLI_Value tests serializing bare data as an object literal
func TestCLI_Value(t *testing.T) {
	stdout, stderr, err := runCLI(t, `{"name": "app", "ports": [80, 443]}`, "--value", "--name", "settings")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	expected := `export const settings = {
  name: "app",
  ports: [
    80,
    443
  ]
}`
	assert.Equal(t, expected, strings.TrimSpace(stdout))
}

// TestCLI_NoFormatting tests the CLI with formatting disabled
func TestCLI_NoFormatting(t *testing.T) {
	document := "declarations:\n  - kind: raw\n    code: \"let a = 1;\"\n"

	stdout, stderr, err := runCLI(t, document, "--no-format")
	require.NoError(t, err, "CLI command failed: %s", stderr)

	assert.Equal(t, "let a = 1;\n", stdout)
}

// TestCLI_InvalidDocument tests the CLI with malformed input
func TestCLI_InvalidDocument(t *testing.T) {
	_, stderr, err := runCLI(t, `{"declarations": [`)
	assert.Error(t, err, "CLI should fail with an invalid document")
	assert.Contains(t, stderr, "Document parsing error")
}

// TestCLI_UnknownKind tests the CLI with an unsupported declaration
func TestCLI_UnknownKind(t *testing.T) {
	_, stderr, err := runCLI(t, "declarations:\n  - kind: macro\n")
	assert.Error(t, err, "CLI should fail with an unknown kind")
	assert.Contains(t, stderr, "Declaration error")
}

// TestCLI_EmptyInput tests the CLI with empty input
func TestCLI_EmptyInput(t *testing.T) {
	_, stderr, err := runCLI(t, "")
	assert.Error(t, err, "CLI should fail with empty input")
	assert.Contains(t, stderr, "empty input")
}

// TestCLI_Version tests the version flag
func TestCLI_Version(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "-v")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)
	assert.Contains(t, string(output), "tsgen version")
}

// TestCLI_Help tests the help output
func TestCLI_Help(t *testing.T) {
	cmd := exec.Command("go", "run", "../../main.go", "--help")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err)

	helpOutput := string(output)
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "-i, --input")
	assert.Contains(t, helpOutput, "-o, --output")
	assert.Contains(t, helpOutput, "-c, --config")
	assert.Contains(t, helpOutput, "-r, --root-name")
	assert.Contains(t, helpOutput, "-s, --single-quotes")
	assert.Contains(t, helpOutput, "--value")
}
