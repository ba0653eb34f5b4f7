package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dayadevraha/devraha/internal/client/forms"
)

// outputLines splits what the REPL wrote into lines.
func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	var out bytes.Buffer

	var calls []string
	record := func(name string) func(context.Context, []string) error {
		return func(_ context.Context, args []string) error {
			calls = append(calls, name+":"+strings.Join(args, ","))
			return nil
		}
	}
	cmds := newCommandSet(
		&command{name: "register", aliases: []string{"signup"}, run: record("register")},
		&command{name: "login", run: record("login")},
	)

	input := strings.Join([]string{
		"help",
		"",
		"login admin",
		"SIGNUP",
		"foobar",
		"exit",
		"login",
	}, "\n")

	runREPL(context.Background(), cmds, func() string { return "(x) " }, rdr(input), &out)

	lines := outputLines(&out)
	require.Equal(t, []string{"login:admin", "register:"}, calls)
	require.Contains(t, lines, "devraha (x) > ")
	require.Contains(t, lines, "Unknown command: foobar (type 'help' for commands)")
	require.Contains(t, lines, "Bye!")
	require.Contains(t, lines, "Available commands:")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	n := 0
	cmds := newCommandSet(&command{name: "ping", run: func(context.Context, []string) error { n++; return nil }})

	runREPL(context.Background(), cmds, func() string { return "" }, rdr("ping\nping"), &bytes.Buffer{})
	require.Equal(t, 2, n)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	cmds := newCommandSet(&command{name: "ping", run: func(context.Context, []string) error {
		n++
		cancel()
		return nil
	}})

	runREPL(ctx, cmds, func() string { return "" }, rdr("ping\nping\nping\n"), &bytes.Buffer{})
	require.Equal(t, 1, n)
}

func TestRunREPL_PrintsErrors(t *testing.T) {
	var out bytes.Buffer
	cmds := newCommandSet(
		&command{name: "fail", run: func(context.Context, []string) error { return errors.New("nope") }},
		&command{name: "form", run: func(context.Context, []string) error {
			return forms.Validate(forms.Email{Email: "bad"})
		}},
	)

	runREPL(context.Background(), cmds, func() string { return "" }, rdr("fail\nform\n"), &out)

	lines := outputLines(&out)
	require.Contains(t, lines, "Error: nope")
	found := false
	for _, l := range lines {
		if strings.HasPrefix(l, "  - ") && strings.Contains(l, "email") {
			found = true
		}
	}
	require.True(t, found, "field error not printed: %v", lines)
}
