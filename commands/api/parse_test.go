package api

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jsonpeek/args"

	tea "github.com/charmbracelet/bubbletea"
)

type fakeCmd struct{ name string }

func (f fakeCmd) Name() string                       { return f.name }
func (f fakeCmd) Description() string                { return "" }
func (f fakeCmd) Execute(Context, args.Args) tea.Cmd { return nil }

func lookupFrom(cmds ...fakeCmd) func(string) (Command, bool) {
	return func(name string) (Command, bool) {
		for _, c := range cmds {
			if c.name == name {
				return c, true
			}
		}
		return nil, false
	}
}

func TestParseInputSimple(t *testing.T) {
	cmd, parsed, err := ParseInput("repair on", lookupFrom(fakeCmd{"repair"}))
	require.NoError(t, err)
	require.Equal(t, "repair", cmd.Name())
	require.Equal(t, []string{"on"}, parsed.Positionals)
}

func TestParseInputLongestMatch(t *testing.T) {
	cmd, _, err := ParseInput("expand all", lookupFrom(fakeCmd{"expand"}, fakeCmd{"expand all"}))
	require.NoError(t, err)
	require.Equal(t, "expand all", cmd.Name())
}

func TestParseInputFlags(t *testing.T) {
	_, parsed, err := ParseInput("repair --force --mode=loose x", lookupFrom(fakeCmd{"repair"}))
	require.NoError(t, err)
	require.Equal(t, "true", parsed.Get("force"))
	require.Equal(t, "loose", parsed.Get("mode"))
	require.Equal(t, []string{"x"}, parsed.Positionals)
}

func TestParseInputErrors(t *testing.T) {
	_, _, err := ParseInput("   ", lookupFrom())
	require.ErrorIs(t, err, ErrEmptyCommand)

	_, _, err = ParseInput("nope", lookupFrom(fakeCmd{"repair"}))
	require.Error(t, err)
}
