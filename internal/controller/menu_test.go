package controller

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []string
		require string
	}{
		{name: "unknown command",
			input:   []string{"Unknown"},
			require: lines("Invalid command")},
		{name: "command names are case sensitive",
			input:   []string{"showauthors"},
			require: lines("Invalid command")},
		{name: "blank lines are skipped",
			input:   []string{"", "   ", "Nope"},
			require: lines("Invalid command")},
		{name: "exit stops the session",
			input:   []string{"Exit", "ShowAuthors"},
			require: ""},
		{name: "end of input stops the session",
			input:   nil,
			require: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			s := initSession(t, test.input...)
			require.Equal(t, test.require, s.run(t))
		})
	}
}

func TestRun_FailureKeepsSession(t *testing.T) {
	t.Parallel()

	s := initSession(t, "AddAuthor "+tooLongName, "Bogus", "ShowAuthors")
	s.authors.EXPECT().ShowAuthors(gomock.Any()).Return(nil, errInternal)

	require.Equal(t, lines("Failed to add author", "Invalid command", "Failed to show authors"), s.run(t))
}

func TestRun_CancelledContext(t *testing.T) {
	t.Parallel()

	s := initSession(t, "ShowAuthors")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, s.service.Run(ctx), context.Canceled)
	require.Empty(t, s.output.String())
}

func TestHelp(t *testing.T) {
	t.Parallel()

	s := initSession(t, "Help")
	out := s.run(t)

	for _, c := range s.service.commands {
		require.Contains(t, out, c.name)
	}
	require.Contains(t, out, "AddBook <pub year> <title>: Adds book\n")
	require.Contains(t, out, "ShowAuthors: Shows authors\n")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), len(s.service.commands))
}
