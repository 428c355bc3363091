package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tableside/tableside/internal/adapters/inbound/cli"
)

func TestRootCommand_Help(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"--help"})
	assert.NoError(t, cmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "tableside")
}

func TestMenuCommand_RendersEmbeddedMenu(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"menu"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Classic Cheeseburger")
	assert.Contains(t, out.String(), "burger-01")
}

func TestMenuCommand_CategoryFilter(t *testing.T) {
	var out bytes.Buffer
	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"menu", "--category", "desserts"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Chocolate Lava Cake")
	assert.NotContains(t, out.String(), "Classic Cheeseburger")
}
