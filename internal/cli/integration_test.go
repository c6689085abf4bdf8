package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/seolint/internal/cli"
	"github.com/yaklabco/seolint/pkg/reporter"
)

const testPageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<title>A descriptive page title that is long enough to pass checks</title>
<meta name="description" content="A meta description that is comfortably inside the recommended range of one hundred and twenty to one hundred and sixty characters for tests.">
<meta name="viewport" content="width=device-width, initial-scale=1">
</head>
<body>
<h1>Main heading</h1>
<h2>Subheading</h2>
<p>Body text for the audit integration test page.</p>
</body>
</html>`

func newTestInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestIntegration_AuditJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPageHTML))
	}))
	defer server.Close()

	cmd := cli.NewRootCommand(newTestInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"audit", server.URL, "--format", "json", "--probes=false"})

	require.NoError(t, cmd.Execute())

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &output))
	require.Len(t, output.Pages, 1)
	assert.Equal(t, server.URL, output.Pages[0].URL)
	assert.NotEmpty(t, output.Pages[0].Categories)
	assert.Equal(t, 1, output.Summary.URLsAudited)
}

func TestIntegration_AuditFailUnder(t *testing.T) {
	// A near-empty page over plain HTTP scores poorly across categories.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><head></head><body><p>thin</p></body></html>"))
	}))
	defer server.Close()

	cmd := cli.NewRootCommand(newTestInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"audit", server.URL, "--probes=false", "--fail-under", "100"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrScoreBelowThreshold), "got %v", err)
}

func TestIntegration_AuditUnreachable(t *testing.T) {
	cmd := cli.NewRootCommand(newTestInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"audit", "http://127.0.0.1:1/", "--probes=false"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, cli.ErrAuditFailed), "got %v", err)
}

func TestIntegration_AuditOutputFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPageHTML))
	}))
	defer server.Close()

	outPath := filepath.Join(t.TempDir(), "report.html")

	cmd := cli.NewRootCommand(newTestInfo())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"audit", server.URL, "--probes=false", "--format", "html", "--output", outPath})

	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<!DOCTYPE html>")
}

func TestIntegration_InitCommand(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), ".seolint.yaml")

	cmd := cli.NewRootCommand(newTestInfo())
	cmd.SetArgs([]string{"init", "--output", outPath})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "categories:")

	// Without --force a second init must refuse to overwrite.
	cmd = cli.NewRootCommand(newTestInfo())
	cmd.SetArgs([]string{"init", "--output", outPath})
	require.Error(t, cmd.Execute())

	cmd = cli.NewRootCommand(newTestInfo())
	cmd.SetArgs([]string{"init", "--output", outPath, "--force"})
	require.NoError(t, cmd.Execute())
}

func TestIntegration_RulesCommand(t *testing.T) {
	for _, args := range [][]string{
		{"rules"},
		{"rules", "--format", "json"},
		{"rules", "--category", "technical"},
	} {
		cmd := cli.NewRootCommand(newTestInfo())
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute(), "args %v", args)
	}

	cmd := cli.NewRootCommand(newTestInfo())
	cmd.SetArgs([]string{"rules", "--category", "nonexistent"})
	require.Error(t, cmd.Execute())
}
