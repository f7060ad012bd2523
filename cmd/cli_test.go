package cmd

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentHomeFixture = `<html><body>
<a href="/student/account">当前账号：王小明(3241319117)</a>
<a href="/student/course/10421">高等数学</a>
</body></html>`

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("CUBESIGN_LOG_FILE", filepath.Join(home, "cubesign.log"))

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfigFixture(home string) error {
	configDir := filepath.Join(home, ".cubesign")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	config := `version = 1

[[sessions]]
name = "alice"
cookie = "remember_token=abc"

[target]
class_id = "10421"
longitude = 116.397128
latitude = 39.916527
accuracy = "10"

[schedule]
fixed_time = "08:30"
`
	return os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(config), 0o600)
}

func newRemoteFixture(t *testing.T, submitBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/student", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(studentHomeFixture))
	})
	mux.HandleFunc("/student/course/10421/punchs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div onclick="punch_gps(3045)">GPS签到</div></body></html>`))
	})
	mux.HandleFunc("/student/punchs/course/10421/3045", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(submitBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestInitThenStatus(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home,
		"init",
		"--class", "10421",
		"--lng", "116.397128",
		"--lat", "39.916527",
		"--session", "alice=remember_token=abc",
		"--window", "08:00-18:00",
		"--retry-interval", "10",
		"--max-retries", "3",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "1 sessions")

	stdout, _, err = executeCLI(t, home, "status")
	require.NoError(t, err)
	assert.Contains(t, stdout, "window 08:00-18:00, retry every 10m up to 3 times")
	assert.Contains(t, stdout, "class 10421")
	assert.Contains(t, stdout, "alice")
}

func TestInitRefusesOverwriteWithoutForce(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	_, _, err := executeCLI(t, home, "init", "--class", "10421", "--session", "bob=remember_token=def")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, _, err = executeCLI(t, home, "init", "--class", "10421", "--session", "bob=remember_token=def", "--force")
	require.NoError(t, err)
}

func TestInitRejectsMalformedSession(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "init", "--class", "10421", "--session", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name=cookie")
}

func TestSignHappyPath(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	server := newRemoteFixture(t, `<html><body><div id="title">签到成功</div></body></html>`)
	t.Setenv("CUBESIGN_REMOTE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "sign", "-q")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice: signed in")
}

func TestSignReportsNoTask(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	mux := http.NewServeMux()
	mux.HandleFunc("/student", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(studentHomeFixture))
	})
	mux.HandleFunc("/student/course/10421/punchs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>本课程暂无签到</p></body></html>`))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	t.Setenv("CUBESIGN_REMOTE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "sign", "-q")
	require.NoError(t, err)
	assert.Contains(t, stdout, "alice: no active check-in task")
}

func TestSignFailsWhenEverySessionFails(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	server := newRemoteFixture(t, `<html><body><div id="title">不在签到范围内</div></body></html>`)
	t.Setenv("CUBESIGN_REMOTE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "sign", "-q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed for every session")
	assert.Contains(t, stdout, "alice: failed")
}

func TestSignWithoutSessions(t *testing.T) {
	_, _, err := executeCLI(t, t.TempDir(), "sign", "-q")
	require.Error(t, err)
}

func TestStatusVerifyShowsProfile(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	server := newRemoteFixture(t, "")
	t.Setenv("CUBESIGN_REMOTE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "status", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stdout, "signed in as 王小明(3241319117)")
	assert.Contains(t, stdout, "高等数学 (10421)")
}

func TestStatusVerifyFlagsExpiredCookie(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeConfigFixture(home))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `<html><body><form action="/login">请登录</form></body></html>`)
	}))
	t.Cleanup(server.Close)
	t.Setenv("CUBESIGN_REMOTE_URL", server.URL)

	stdout, _, err := executeCLI(t, home, "status", "--verify")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cookie expired")
}
