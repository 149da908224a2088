package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

const testPayload = `{"data": [
  {"id": "openai/gpt-4o", "name": "OpenAI: GPT-4o", "created": 1715367049,
   "canonical_slug": "openai/gpt-4o",
   "pricing": {"prompt": "0.0000025", "completion": "0.00001"},
   "architecture": {"input_modalities": ["text", "image", "file"], "output_modalities": ["text"]},
   "top_provider": {"context_length": 128000, "max_completion_tokens": 16384, "is_moderated": true},
   "supported_parameters": ["tools"]},
  {"id": "google/gemini-2.5-flash-image", "name": "Google: Gemini 2.5 Flash Image (Nano Banana)",
   "created": 1756218977, "canonical_slug": "google/gemini-2.5-flash-image-20250826",
   "pricing": {"prompt": "0.0000003", "completion": "0.0000025"},
   "architecture": {"input_modalities": ["image", "text"], "output_modalities": ["image", "text"]},
   "top_provider": {"context_length": 32768, "max_completion_tokens": 0, "is_moderated": false}}
]}`

// run executes the root command against a local catalog server.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(testPayload))
	}))
	t.Cleanup(srv.Close)

	t.Setenv("LLMCATALOG_ENDPOINT", srv.URL)
	t.Setenv("LLMCATALOG_CACHE", "none")
	t.Setenv("LLMCATALOG_SNAPSHOT", "")
	t.Setenv("LLMCATALOG_LOG_LEVEL", "error")

	listInput, listOutput = nil, nil
	listSort, listDirection, listLimit = "prompt", "desc", 0
	snapshotFormat = "json"
	configFile, cacheBackend, logLevel = "", "", ""
	closers = nil

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	assert.NoError(t, closeAll())
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := run(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "openai/gpt-4o")
	assert.Contains(t, out, "$2.5")
	assert.Contains(t, out, "2 of 2 models")

	out, err = run(t, "list", "nanobanana", "--output", "image")
	require.NoError(t, err)
	assert.Contains(t, out, "google/gemini-2.5-flash-image")
	assert.NotContains(t, out, "openai/gpt-4o")
	assert.Contains(t, out, "1 of 2 models")

	out, err = run(t, "list", "claude")
	require.NoError(t, err)
	assert.Contains(t, out, "No models match.")

	_, err = run(t, "list", "--input", "hologram")
	assert.Error(t, err)
}

func TestShowCommand(t *testing.T) {
	out, err := run(t, "show", "GPT-4o")
	require.NoError(t, err)
	assert.Contains(t, out, "OpenAI: GPT-4o")
	assert.Contains(t, out, "128,000 tokens")
	assert.Contains(t, out, "text, image, file")

	out, err = run(t, "show", "google/gemini-2.5-flash-image")
	require.NoError(t, err)
	assert.Contains(t, out, "unlimited")

	_, err = run(t, "show", "missing")
	assert.ErrorContains(t, err, `model "missing" not found`)
}

func TestModalitiesCommand(t *testing.T) {
	out, err := run(t, "modalities")
	require.NoError(t, err)
	assert.Contains(t, out, "input:  text, image, file")
	assert.Contains(t, out, "output: text, image")
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "models.json")
	out, err := run(t, "snapshot", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 2 models")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	models, err := llmcatalog.Decode(data)
	require.NoError(t, err, "snapshots can be read back as a fallback payload")
	assert.Len(t, models, 2)
}

func TestCloseAll(t *testing.T) {
	calls := 0
	boom := errors.New("close failed")
	closers = []func() error{
		func() error { calls++; return nil },
		func() error { calls++; return boom },
	}

	assert.ErrorIs(t, closeAll(), boom)
	assert.Equal(t, 2, calls)
	assert.Empty(t, closers)
	assert.NoError(t, closeAll())
}

func TestFailedCommandReleasesRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	t.Setenv("LLMCATALOG_REDIS_ADDR", mr.Addr())

	_, err := run(t, "show", "missing", "--cache", "redis")
	require.Error(t, err)
	assert.Empty(t, closers)
	assert.Eventually(t, func() bool { return mr.CurrentConnectionCount() == 0 },
		time.Second, 10*time.Millisecond, "the redis connection is closed even though the command failed")
}

func TestViewFromFlags(t *testing.T) {
	listInput = []string{"image", "File"}
	listOutput = []string{"text"}
	listSort, listDirection = "created", "asc"
	t.Cleanup(func() {
		listInput, listOutput = nil, nil
		listSort, listDirection = "prompt", "desc"
	})

	view, err := viewFromFlags("gpt")
	require.NoError(t, err)
	assert.Equal(t, "gpt", view.Filter)
	assert.Equal(t, llmcatalog.SetOf(llmcatalog.ModalityImage, llmcatalog.ModalityFile), view.Input)
	assert.Equal(t, llmcatalog.SetOf(llmcatalog.ModalityText), view.Output)
	assert.Equal(t, llmcatalog.SortByCreated, view.Sort)
	assert.Equal(t, llmcatalog.Ascending, view.Direction)

	listDirection = "sideways"
	_, err = viewFromFlags("")
	assert.Error(t, err)
}
