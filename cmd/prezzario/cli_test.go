package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/maxsviluppo/prezzario/cmd/prezzario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()

	expectedCommands := []string{"import", "import-url", "discover", "import-dataset", "search", "list", "delete", "stats", "categories"}
	for _, cmd := range expectedCommands {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run_HelpShowsKongOutput(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.StorePath = filepath.Join(t.TempDir(), "store.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	helpOutput := stdout.String()
	assert.Contains(t, helpOutput, "Usage:")
	assert.Contains(t, helpOutput, "search")
}

func TestMain_Run_NoCommandIsError(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.StorePath = filepath.Join(t.TempDir(), "store.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), nil, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestMain_Run_NetworkCommandsRequireProxy(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.StorePath = filepath.Join(t.TempDir(), "store.json")
	m.ProxyURL = ""

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"discover", "prezzario"}, stdout, stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PREZZARIO_PROXY")
}

func TestMain_Run_ListAgainstFileStore(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.StorePath = filepath.Join(t.TempDir(), "store.json")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{"list"}, stdout, stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "No price lists found")
}
