package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"serve", "score", "translate", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub.Name() != name {
			t.Errorf("missing subcommand: %s", name)
		}
	}
	if cmd.RunE == nil {
		t.Error("root command should serve by default")
	}
}

func TestScoreCmdFlags(t *testing.T) {
	cmd := newScoreCmd()

	output, _ := cmd.Flags().GetString("output")
	if output != "json" {
		t.Errorf("default output = %q, want json", output)
	}
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "dev")
}

func TestTranslateCmd_Word(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"translate", "Forest"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, "Forest", body["word"])
	assert.Equal(t, "יער", body["translation"])
	assert.Equal(t, "A2", body["cefr_level"])
}

func TestTranslateCmd_Sentence(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"translate", "--sentence", "The", "forest", "is", "old."})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var body map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.Equal(t, "The forest is old.", body["english"])
	assert.Equal(t, "[Hebrew translation]", body["hebrew"])
}

func TestScoreCmd_FallbackFromStdin(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("GPTSM_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("FLASK_DEBUG", "false")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("Deforestation is a problem"))
	cmd.SetArgs([]string{"score"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	var body struct {
		Words []struct {
			Word       string  `json:"word"`
			Importance int     `json:"importance"`
			Opacity    float64 `json:"opacity"`
		} `json:"words"`
		UsingMock bool    `json:"using_mock"`
		Warning   *string `json:"warning"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &body))
	assert.True(t, body.UsingMock)
	require.NotNil(t, body.Warning)
	require.Len(t, body.Words, 4)
	assert.Equal(t, 4, body.Words[0].Importance)
	assert.Equal(t, 1.0, body.Words[0].Opacity)
}

func TestScoreCmd_UnknownOutput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"score", "--output", "xml", "hello"})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
