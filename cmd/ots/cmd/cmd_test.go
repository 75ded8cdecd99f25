package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/netlist"
	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

const dividerScript = `
place v 0 0 value=5
place g 0 48
place r 64 0 r=1k name=R1
wire 0 0 to 64 0
wire 64 48 to 0 48
`

// execute runs the root command with a throwaway config file and returns
// what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag variables are package globals; reset them between runs
	verbose, configPath = false, ""
	labelOutput, labelClipboard = "", false
	netlistFormat, netlistOutput, netlistClipboard = "json", "", false
	renderOutput, renderWidth, renderHeight, renderTheme, renderFit = "", 0, 0, "", false
	applyInput, applyOutput = "", ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "config.json")))
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// divider builds the test schematic through the apply command.
func divider(t *testing.T) string {
	t.Helper()
	script := writeFile(t, "divider.ots", dividerScript)
	out := filepath.Join(t.TempDir(), "divider.json")
	_, err := execute(t, "apply", script, "-o", out)
	require.NoError(t, err)
	return out
}

func TestApplyWritesSchematic(t *testing.T) {
	path := divider(t)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	d, err := schematic.Load(f)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())
}

func TestApplyOnInput(t *testing.T) {
	in := divider(t)
	script := writeFile(t, "more.ots", "place c 200 0\n")

	out, err := execute(t, "apply", script, "-i", in)
	require.NoError(t, err)
	d, err := schematic.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 6, d.Len())
}

func TestApplyScriptError(t *testing.T) {
	script := writeFile(t, "bad.ots", "place q 0 0\n")
	_, err := execute(t, "apply", script)
	require.Error(t, err)
	assert.ErrorIs(t, err, schematic.ErrUnknownKind)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info", divider(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Components:")
	assert.Contains(t, out, "resistor:")
	assert.Contains(t, out, "Nodes: 2")
	assert.Contains(t, out, "View: origin 0,0 scale 2")
}

func TestLabel(t *testing.T) {
	out, err := execute(t, "label", divider(t))
	require.NoError(t, err)

	var entries []json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Len(t, entries, 6, "five components and the view")
	assert.Contains(t, out, `"0"`, "ground node label is written")
}

func TestNetlistFormats(t *testing.T) {
	path := divider(t)

	out, err := execute(t, "netlist", path)
	require.NoError(t, err)
	var doc struct {
		NetCount int `json:"net_count"`
		Parts    []netlist.Part
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.NetCount)
	assert.Len(t, doc.Parts, 2)

	file := filepath.Join(t.TempDir(), "divider.net")
	_, err = execute(t, "netlist", path, "-f", "kicad", "-o", file)
	require.NoError(t, err)
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "(export")
	assert.Contains(t, string(data), `"R1"`)

	_, err = execute(t, "netlist", path, "-f", "spice")
	assert.ErrorContains(t, err, `unknown netlist format "spice"`)
}

func TestCheck(t *testing.T) {
	out, err := execute(t, "check", divider(t))
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "2 parts, 2 nets")
}

func TestCheckLabeledFile(t *testing.T) {
	labeled := filepath.Join(t.TempDir(), "labeled.json")
	_, err := execute(t, "label", divider(t), "-o", labeled)
	require.NoError(t, err)

	out, err := execute(t, "check", labeled)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, labeled)
	assert.Contains(t, out, "2 parts, 2 nets")
}

func TestCheckIgnoresStoredLabels(t *testing.T) {
	// the ground and the joined resistor pin disagree, and both resistor
	// pins claim the same node
	path := writeFile(t, "stale.json", `[
  ["g", [0, 0, 0], {}, ["5"]],
  ["w", [0, 0, 32, 0]],
  ["r", [32, 0, 0], {"name": "R1", "r": "1k"}, ["1", "1"]],
  ["view", 0, 0, 2]
]`)

	out, err := execute(t, "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK")
	assert.Contains(t, out, "1 parts, 2 nets")
	assert.NotContains(t, out, "FAIL")
}

func TestRender(t *testing.T) {
	png := filepath.Join(t.TempDir(), "divider.png")
	_, err := execute(t, "render", divider(t), "-o", png, "--width", "200", "--height", "120", "--theme", "dark", "--fit")
	require.NoError(t, err)
	info, err := os.Stat(png)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	_, err = execute(t, "render", divider(t), "-o", png, "--theme", "neon")
	assert.Error(t, err)
}

func TestLoadErrorsAreReported(t *testing.T) {
	bad := writeFile(t, "bad.json", `[["r", [0, 0, 9], {}, [null, null]]]`)
	_, err := execute(t, "info", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, schematic.ErrMalformed)
	assert.Contains(t, err.Error(), bad)

	_, err = execute(t, "info", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
