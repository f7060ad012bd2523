package e2e

import (
	"bytes"
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
	remote := newRemoteFixture(t)

	_, stderr, err := runCubesign(t, binaryPath, home, remote.URL,
		"init",
		"--class", "10421",
		"--lng", "116.397128",
		"--lat", "39.916527",
		"--session", "alice=remember_token=abc",
		"--time", "08:30",
	)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runCubesign(t, binaryPath, home, remote.URL, "status", "--verify")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "daily at 08:30")
	assert.Contains(t, stdout, "signed in as 王小明(3241319117)")

	stdout, stderr, err = runCubesign(t, binaryPath, home, remote.URL, "sign", "-q")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "alice: signed in")
}

func newRemoteFixture(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/student", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/student/account">当前账号：王小明(3241319117)</a></body></html>`))
	})
	mux.HandleFunc("/student/course/10421/punchs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div onclick="punch_gps(3045)">GPS签到</div></body></html>`))
	})
	mux.HandleFunc("/student/punchs/course/10421/3045", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div id="title">签到成功</div></body></html>`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "cubesign-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/cubesign")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build cubesign binary: %s", string(output))
	return binaryPath
}

func runCubesign(t *testing.T, binaryPath, home, remoteURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"CUBESIGN_REMOTE_URL="+remoteURL,
		"CUBESIGN_LOG_FILE="+filepath.Join(home, "cubesign.log"),
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
