package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	for _, sub := range []string{"serve", "migrate", "hash-password"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
	assert.Contains(t, output, "--database-driver")
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	configFile = ""

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config=/etc/planner.yaml", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/etc/planner.yaml", configFile)
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
	}{
		{"argument", []string{"hash-password", "--cost", "4", "secret1"}, ""},
		{"piped stdin", []string{"hash-password", "--cost", "4"}, "secret1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			out := new(bytes.Buffer)
			cmd.SetOut(out)
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())

			hash := strings.TrimSpace(out.String())
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret1")))
			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			require.Equal(t, 4, cost)
		})
	}
}

func TestHashPassword_Terminal(t *testing.T) {
	origRead, origIsTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = origRead, origIsTerm })

	readPassword = func(int) ([]byte, error) { return []byte("secret1"), nil }
	isTerminal = func(int) bool { return true }

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	cmd := NewRootCmd()
	out, prompt := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(prompt)
	cmd.SetIn(f)
	cmd.SetArgs([]string{"hash-password", "--cost", "4"})

	require.NoError(t, cmd.Execute())
	require.Contains(t, prompt.String(), "Password:")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(strings.TrimSpace(out.String())), []byte("secret1")))
}

func TestHashPassword_EmptyInput(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"hash-password"})

	require.Error(t, cmd.Execute())
}

func TestMigrate_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "planner.db")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", dsn)

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"migrate"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Migrations completed successfully")

	// Second run is a no-op.
	cmd = NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
}
