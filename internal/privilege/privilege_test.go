package privilege

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSudoCommandArgv(t *testing.T) {
	cmd := SudoCommand([]string{"yubiswitch", "on", "-d"})
	require.NotNil(t, cmd)
	assert.Equal(t, []string{"sudo", "yubiswitch", "on", "-d"}, cmd.Args)
	assert.Equal(t, os.Stdin, cmd.Stdin)
	assert.Equal(t, os.Stdout, cmd.Stdout)
	assert.Equal(t, os.Stderr, cmd.Stderr)
}

func TestIsRootMatchesEffectiveUID(t *testing.T) {
	assert.Equal(t, os.Geteuid() == 0, IsRoot())
}
