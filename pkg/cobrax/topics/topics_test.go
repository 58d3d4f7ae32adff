package topics_test

import (
	"testing"
	"testing/fstest"

	"github.com/arthur-debert/pipstrap/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"topics/pip-flags.md":  {Data: []byte("# pip flags\n\nWhy the flags are forced.")},
		"topics/manifests.txt": {Data: []byte("Manifest file format.")},
		"topics/notes.json":    {Data: []byte("{}")},
		"topics/sub/deep.md":   {Data: []byte("nested, ignored")},
	}
}

func TestNewScansSupportedExtensions(t *testing.T) {
	tm, err := topics.New(testFS(), "topics", topics.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"manifests", "pip-flags"}, tm.ListTopics())
}

func TestGetTopic(t *testing.T) {
	tm, err := topics.New(testFS(), "topics", topics.Options{})
	require.NoError(t, err)

	topic, ok := tm.GetTopic("pip-flags")
	require.True(t, ok)
	assert.Equal(t, ".md", topic.Ext)
	assert.Contains(t, topic.Content, "pip flags")

	// Flag-style lookup resolves to the bare topic
	topic, ok = tm.GetTopic("--pip-flags")
	require.True(t, ok)
	assert.Equal(t, "pip-flags", topic.Name)

	_, ok = tm.GetTopic("missing")
	assert.False(t, ok)
}

func TestNewMissingDir(t *testing.T) {
	_, err := topics.New(testFS(), "nope", topics.Options{})
	assert.Error(t, err)
}

func TestPlainRenderer(t *testing.T) {
	r := &topics.PlainRenderer{}
	assert.Equal(t, "text", r.Render("text", ".md"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := topics.NewGlamourRenderer()
	assert.Equal(t, "plain", r.Render("plain", ".txt"))
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{Use: "pipstrap"}

	err := topics.Initialize(rootCmd, testFS(), "topics", topics.Options{})
	require.NoError(t, err)

	var helpCmd *cobra.Command
	for _, cmd := range rootCmd.Commands() {
		if cmd.Name() == "help" {
			helpCmd = cmd
		}
	}
	require.NotNil(t, helpCmd)
}
