package cli_test

import (
	"strings"
	"testing"

	"github.com/fernandofreitas03/textfmt/internal/cli"
	"github.com/fernandofreitas03/textfmt/internal/config"
	"github.com/stretchr/testify/require"
)

// testSetup contains common test setup data
type testSetup struct {
	config      cli.Config
	service     cli.Service
	preferences *config.MemoryBackend
	mockStdin   *strings.Reader
	mockStdout  *strings.Builder
	mockStderr  *strings.Builder
}

func setupTest(t *testing.T) *testSetup {
	t.Helper()

	setup := &testSetup{
		preferences: config.NewMemoryBackend(),
		mockStdin:   strings.NewReader(""),
		mockStdout:  &strings.Builder{},
		mockStderr:  &strings.Builder{},
	}

	setup.config = cli.Config{
		Preferences: setup.preferences,
		Stdin:       setup.mockStdin,
		Stdout:      setup.mockStdout,
		Stderr:      setup.mockStderr,
	}

	var err error
	setup.service, err = cli.NewService(setup.config)
	require.NoError(t, err)

	return setup
}

func (s *testSetup) stdin(t *testing.T, contents string) {
	t.Helper()
	s.mockStdin.Reset(contents)
}

// withTTY rebuilds the service as if both output streams were terminals.
func (s *testSetup) withTTY(t *testing.T) *testSetup {
	t.Helper()

	s.config.StdoutIsTTY = true
	s.config.StderrIsTTY = true

	var err error
	s.service, err = cli.NewService(s.config)
	require.NoError(t, err)

	return s
}
