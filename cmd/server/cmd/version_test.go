package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	origVersion := Version
	origGitCommit := GitCommit
	defer func() {
		Version = origVersion
		GitCommit = origGitCommit
	}()

	Version = "1.0.0"
	GitCommit = "abc123"

	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)

	output := buf.String()
	for _, expected := range []string{"quiz-admin 1.0.0", "commit abc123", "go1"} {
		if !strings.Contains(output, expected) {
			t.Errorf("expected version output to contain %q, got:\n%s", expected, output)
		}
	}
}
