package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/blogkit/credential"
	"github.com/kbukum/blogkit/httpclient"
	"github.com/kbukum/blogkit/version"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := &Config{homeDir: "/home/writer"}
	cfg.ApplyDefaults()

	assert.Equal(t, version.Product, cfg.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, httpclient.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, version.UserAgent(), cfg.API.Headers["User-Agent"])
	assert.Equal(t, filepath.Join("/home/writer", credential.DefaultDir, credential.DefaultFile), cfg.Credentials.Path)
	assert.Equal(t, cfg.Name, cfg.Telemetry.ServiceName)
	assert.False(t, cfg.Telemetry.Enabled())
	assert.Equal(t, OutputTable, cfg.Output)
	require.NoError(t, cfg.Validate())
}

func TestConfig_DebugAndOverrides(t *testing.T) {
	cfg := &Config{Output: OutputYAML}
	cfg.Debug = true
	cfg.API.Headers = map[string]string{"User-Agent": "custom"}
	cfg.ApplyDefaults()

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "custom", cfg.API.Headers["User-Agent"])
	assert.Equal(t, OutputYAML, cfg.Output)
}

func TestConfig_Validate(t *testing.T) {
	cfg := &Config{Output: "xml"}
	cfg.API.BaseURL = "not a url"
	cfg.Credentials.Provider = "keychain"
	cfg.ApplyDefaults()

	err := cfg.Validate()
	require.Error(t, err)
	for _, field := range []string{"output", "api.base_url", "credentials.provider"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, OutputTable)
	require.NoError(t, p.Print(nil, func(tb *Table) {
		tb.Header("id", "name")
		tb.Row(1, "go")
		tb.Row(22, "")
	}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID  NAME", lines[0])
	assert.Equal(t, "1   go", lines[1])
	assert.Equal(t, "22  -", lines[2])
}

func TestPrinter_Done(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, OutputTable).Done(map[string]int{"id": 3}, "Deleted %d", 3))
	assert.Equal(t, "Deleted 3\n", buf.String())

	buf.Reset()
	require.NoError(t, NewPrinter(&buf, OutputJSON).Done(map[string]int{"id": 3}, "Deleted %d", 3))
	assert.JSONEq(t, `{"id":3}`, buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "héllo w…", truncate("héllo world", 8))
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "512 B", humanSize(512))
	assert.Equal(t, "1.5 KiB", humanSize(1536))
	assert.Equal(t, "2.0 MiB", humanSize(2<<20))
}
