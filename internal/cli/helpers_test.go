package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/cyclops/internal/tracker"
)

// cliResult is what one CLI invocation produced.
type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command with args, feeding stdin to the prompt.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	cmd := NewRootCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// jsonResponse mirrors CLIResponse with a typed payload.
type jsonResponse struct {
	Status string         `json:"status"`
	Data   tracker.Result `json:"data"`
	Error  *CLIError      `json:"error"`
}

func decodeResponse(t *testing.T, stdout string) jsonResponse {
	t.Helper()
	var resp jsonResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), "stdout: %s", stdout)
	return resp
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
