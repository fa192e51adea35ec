package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const serverSchema = `
package: demo
containers:
  - name: Server
    directives: "rename_all='snake_case', default"
    fields:
      - name: Port
        type: int
        directives: "rename='listen_port', default=DefaultPort"
      - name: MaxConns
        type: int
`

const brokenSchema = `
containers:
  - name: Server
    fields:
      - name: X
        type: int
        directives: "frobnicate=true"
      - name: Y
        type: bool
        directives: "skip='yes'"
`

const keywordSchema = `
containers:
  - name: Settings
    fields:
      - name: Name
        type: string
      - name: Count
        type: int
        directives: "default=my::default"
`

const unorderedSchema = `
containers:
  - name: Zeta
    fields:
      - name: A
        type: int
        directives: "frobnicate"
  - name: Alpha
    fields:
      - name: B
        type: int
        directives: "skip='yes'"
      - name: A
        type: int
        directives: "rename=a"
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func writeSchema(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "schema.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestResolve_Schema(t *testing.T) {
	out, _, err := run(t, "resolve", "--schema", writeSchema(t, serverSchema))
	require.NoError(t, err)

	var doc struct {
		Package    string `yaml:"package"`
		Containers []struct {
			Name       string `yaml:"name"`
			RenameRule string `yaml:"rename_all"`
			Default    any    `yaml:"default"`
			Fields     []struct {
				NameInStruct string         `yaml:"name_in_struct"`
				NameInAttr   string         `yaml:"name_in_attr"`
				Default      map[string]any `yaml:"default"`
				With         string         `yaml:"with"`
			} `yaml:"fields"`
		} `yaml:"containers"`
	}

	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "demo", doc.Package)
	require.Len(t, doc.Containers, 1)

	server := doc.Containers[0]
	assert.Equal(t, "snake_case", server.RenameRule)
	assert.Equal(t, "trait", server.Default)
	require.Len(t, server.Fields, 2)
	assert.Equal(t, "listen_port", server.Fields[0].NameInAttr)
	assert.Equal(t, map[string]any{"explicit": "DefaultPort"}, server.Fields[0].Default)
	assert.Equal(t, "max_conns", server.Fields[1].NameInAttr)
	assert.Equal(t, map[string]any{"inherit": "MaxConns"}, server.Fields[1].Default)
	assert.Equal(t, "fromvalue.Parse", server.Fields[1].With)
}

func TestResolve_Dump(t *testing.T) {
	out, _, err := run(t, "resolve", "--dump", "--schema", writeSchema(t, serverSchema))
	require.NoError(t, err)

	assert.Contains(t, out, "NameInAttr: (string) (len=11) \"listen_port\"")
}

func TestResolve_Packages(t *testing.T) {
	out, _, err := run(t, "resolve", "optgen/examples/settings")
	require.NoError(t, err)

	assert.Contains(t, out, "package: settings")
	assert.Contains(t, out, "name: Server")
	assert.Contains(t, out, "name: Client")
	assert.Contains(t, out, "name_in_attr: listen_port")
	assert.Contains(t, out, "with: durations.Parse")
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "--schema", writeSchema(t, serverSchema))
	require.NoError(t, err)
	assert.Equal(t, "ok: 1 containers\n", out)

	_, stderr, err := run(t, "check", "--schema", writeSchema(t, brokenSchema))
	require.ErrorIs(t, err, errHasDiagnostics)
	assert.Contains(t, stderr, `Server.X: [unknown_directive] unknown directive "frobnicate"`)
	assert.Contains(t, stderr, "Server.Y: [value_shape_mismatch]")
}

func TestGen_Schema(t *testing.T) {
	outDir := t.TempDir()

	out, _, err := run(t, "gen", "--schema", writeSchema(t, serverSchema), "-o", outDir)
	require.NoError(t, err)
	assert.Equal(t, "server_optgen.go\n", out)

	code, err := os.ReadFile(filepath.Join(outDir, "server_optgen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(code), "package demo")
	assert.Contains(t, string(code), "func ParseServer(values map[string]any) (Server, error) {")
}

func TestGen_FailsOnDiagnostics(t *testing.T) {
	outDir := t.TempDir()

	_, _, err := run(t, "gen", "--schema", writeSchema(t, brokenSchema), "-o", outDir)
	require.ErrorIs(t, err, errHasDiagnostics)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCheck_SortsDiagnostics(t *testing.T) {
	_, stderr, err := run(t, "check", "--schema", writeSchema(t, unorderedSchema))
	require.ErrorIs(t, err, errHasDiagnostics)

	alphaA := strings.Index(stderr, "Alpha.A:")
	alphaB := strings.Index(stderr, "Alpha.B:")
	zetaA := strings.Index(stderr, "Zeta.A:")
	require.NotEqual(t, -1, alphaA)
	require.NotEqual(t, -1, alphaB)
	require.NotEqual(t, -1, zetaA)
	assert.Less(t, alphaA, alphaB)
	assert.Less(t, alphaB, zetaA)
}

func TestGen_KeywordPathFails(t *testing.T) {
	outDir := t.TempDir()

	_, stderr, err := run(t, "gen", "--schema", writeSchema(t, keywordSchema), "-o", outDir)
	require.ErrorIs(t, err, errHasDiagnostics)
	assert.Contains(t, stderr, "Settings.Count: [invalid_path]")
	assert.Contains(t, stderr, "my.default")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "neither the file nor a sidecar is written")
}

func TestSchemaWithPackagesRejected(t *testing.T) {
	_, _, err := run(t, "resolve", "--schema", writeSchema(t, serverSchema), "./...")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}
