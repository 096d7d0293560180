package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/hr/login" {
			_, _ = w.Write([]byte(`{"token":"tok-hr","role":"HR","subjectId":"12","displayName":"Grace"}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	stdout, stderr, err := runStaffctl(t, binaryPath, home, server.URL,
		"login", "--role", "hr", "--username", "grace", "--password", "hunter2")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed in as Grace (HR)")

	stdout, stderr, err = runStaffctl(t, binaryPath, home, server.URL, "whoami", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.True(t, json.Valid([]byte(stdout)))
	assert.Contains(t, stdout, `"role": "HR"`)

	stdout, stderr, err = runStaffctl(t, binaryPath, home, server.URL, "logout")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Signed out.")

	stdout, stderr, err = runStaffctl(t, binaryPath, home, server.URL, "whoami", "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"authenticated": false`)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "staffctl-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/staffctl")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build staffctl binary: %s", string(output))
	return binaryPath
}

func runStaffctl(t *testing.T, binaryPath, home, apiURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"STAFFCTL_API_URL="+apiURL,
		"STAFFCTL_CREDENTIAL_STORE=file",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
