package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armadactl/logging/handler"
	"github.com/armadactl/logging/logger"
)

func primaryForTest(t *testing.T, useSyslog bool) (*logger.Channel, *handler.Buffer, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv(DirEnv, t.TempDir())

	var out, errOut bytes.Buffer
	reg := logger.NewRegistry()
	t.Cleanup(func() { reg.Close() })

	session, err := Primary(reg, PrimaryOptions{
		UseSyslog:  useSyslog,
		ConsoleOut: &out,
		ConsoleErr: &errOut,
	})
	require.NoError(t, err)

	return reg.Channel(PrimaryChannel), session, &out, &errOut
}

func TestPaths_RespectEnvOverride(t *testing.T) {
	t.Setenv(DirEnv, "/tmp/armada-test")

	assert.Equal(t, "/tmp/armada-test", Dir())
	assert.Equal(t, "/tmp/armada-test/logs", LogDir())
	assert.Equal(t, "/tmp/armada-test/logs/debug.log", DebugLogPath())
	assert.Equal(t, "/tmp/armada-test/logs/shell-debug.log", ShellDebugLogPath())
	assert.Equal(t, "/tmp/armada-test/logs/api-debug.log", APIDebugLogPath())
}

func TestEnsureDirs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "armada")
	t.Setenv(DirEnv, dir)

	require.NoError(t, EnsureDirs())

	info, err := os.Stat(LogDir())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestPrimary_DebugGoesToFileNotConsole(t *testing.T) {
	ch, session, out, errOut := primaryForTest(t, false)

	ch.Debug("hello")

	data, err := os.ReadFile(DebugLogPath())
	require.NoError(t, err)

	line := regexp.MustCompile(
		`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2},\d{3} PID: \d+ setup_test\.go:\d+ DEBUG - hello$`)
	assert.Regexp(t, line, strings.TrimRight(string(data), "\n"),
		"debug file line must carry timestamp, pid, and call site")

	assert.Empty(t, out.String(), "console floor is Info")
	assert.Empty(t, errOut.String())

	assert.Contains(t, session.Contents(), "DEBUG - hello",
		"session buffer floor is Debug")
}

func TestPrimary_ErrorGoesToErrorStreamAndFile(t *testing.T) {
	ch, _, out, errOut := primaryForTest(t, false)

	ch.Error("bad thing")

	assert.Equal(t, "!!! ERROR - bad thing\n", errOut.String())
	assert.Empty(t, out.String())

	data, err := os.ReadFile(DebugLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "ERROR - bad thing")
}

func TestPrimary_InfoOnNormalStream(t *testing.T) {
	ch, _, out, errOut := primaryForTest(t, false)

	ch.Info("cluster is up")

	assert.Equal(t, ">>> cluster is up\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrimary_SyslogNotRequestedNotAttached(t *testing.T) {
	ch, _, _, _ := primaryForTest(t, false)

	// discard + file + console + session, and nothing else, even when
	// the host has a syslog socket.
	assert.Len(t, ch.Handlers(), 4)
}

func TestPrimary_SyslogRequestedNeverFails(t *testing.T) {
	// Whether or not the host has a syslog socket, configuration must
	// succeed; the destination is attached only when the daemon is there.
	ch, _, _, _ := primaryForTest(t, true)

	n := len(ch.Handlers())
	assert.GreaterOrEqual(t, n, 4)
	assert.LessOrEqual(t, n, 5)
}

func TestPrimary_SessionBufferAccumulates(t *testing.T) {
	ch, session, _, _ := primaryForTest(t, false)

	ch.Debug("step one")
	ch.Info("step two")
	ch.Error("step three")

	content := session.Contents()
	assert.Contains(t, content, "DEBUG - step one")
	assert.Contains(t, content, "INFO - step two")
	assert.Contains(t, content, "ERROR - step three")
}

func TestRemoteShell_WritesSubsystemTemplate(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())

	reg := logger.NewRegistry()
	defer reg.Close()
	require.NoError(t, RemoteShell(reg))

	ch := reg.Channel(ShellChannel)
	ch.Debug("session opened")

	data, err := os.ReadFile(ShellDebugLogPath())
	require.NoError(t, err)

	line := regexp.MustCompile(
		`^PID: \d+ DEB \[\d{8}-\d{2}:\d{2}:\d{2}\.\d{3}\] thr=\d+\s+shell: session opened$`)
	assert.Regexp(t, line, strings.TrimRight(string(data), "\n"))
}

func TestCloudAPI_WritesSubsystemTemplateWithoutThread(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())

	reg := logger.NewRegistry()
	defer reg.Close()
	require.NoError(t, CloudAPI(reg))

	ch := reg.Channel(APIChannel)
	ch.Debug("request sent")

	data, err := os.ReadFile(APIDebugLogPath())
	require.NoError(t, err)

	content := string(data)
	assert.NotContains(t, content, "thr=")
	line := regexp.MustCompile(
		`^PID: \d+ DEB \[\d{8}-\d{2}:\d{2}:\d{2}\.\d{3}\] api: request sent$`)
	assert.Regexp(t, line, strings.TrimRight(content, "\n"))
}

func TestSubsystemChannels_AreIndependent(t *testing.T) {
	t.Setenv(DirEnv, t.TempDir())

	reg := logger.NewRegistry()
	defer reg.Close()
	require.NoError(t, RemoteShell(reg))
	require.NoError(t, CloudAPI(reg))

	reg.Channel(ShellChannel).Debug("only shell")
	reg.Channel(APIChannel).Debug("only api")

	shell, err := os.ReadFile(ShellDebugLogPath())
	require.NoError(t, err)
	api, err := os.ReadFile(APIDebugLogPath())
	require.NoError(t, err)

	assert.Contains(t, string(shell), "only shell")
	assert.NotContains(t, string(shell), "only api")
	assert.Contains(t, string(api), "only api")
	assert.NotContains(t, string(api), "only shell")
}

func TestPrimary_FailsWhenDirUncreatable(t *testing.T) {
	// A file where the armada dir should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	t.Setenv(DirEnv, blocker)

	reg := logger.NewRegistry()
	_, err := Primary(reg, PrimaryOptions{})
	assert.Error(t, err)
}
