package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so commands can be run
// repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

const fruitContent = `{
  "title": "水果",
  "items": [
    {"term": "蘋果", "definition": "apple"},
    {"term": "香蕉", "definition": "banana"},
    {"term": "葡萄", "definition": "grape"}
  ]
}`

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "educreate (devel)\n", out)
}

func TestValidate(t *testing.T) {
	path := writeFile(t, "fruit.json", fruitContent)

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "可以發布")

	out, err = execute(t, "validate", path, "--game", "memory-cards")
	require.ErrorIs(t, err, errNotPublishable)
	assert.Contains(t, err.Error(), "發現 2 個錯誤")
	assert.Contains(t, out, "記憶卡片 相容性")
}

func TestValidateYAMLAsJSON(t *testing.T) {
	path := writeFile(t, "fruit.yaml", "title: 水果\nitems:\n  - term: 蘋果\n    definition: apple\n")

	out, err := execute(t, "validate", path, "--game", "quiz", "--output", "json")
	require.NoError(t, err)

	var got struct {
		Result struct {
			CanPublish bool `json:"canPublish"`
		} `json:"result"`
		Game string `json:"game"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.True(t, got.Result.CanPublish)
	assert.Equal(t, "quiz", got.Game)
}

func TestValidateErrors(t *testing.T) {
	path := writeFile(t, "fruit.json", fruitContent)

	_, err := execute(t, "validate", path, "--game", "snake")
	assert.Error(t, err)

	_, err = execute(t, "validate", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = execute(t, "validate", path, "--output", "xml")
	assert.Error(t, err)
}

func TestTemplates(t *testing.T) {
	out, err := execute(t, "templates", "--category", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, "單字卡片")
	assert.Contains(t, out, "記憶卡片")
	assert.NotContains(t, out, "打地鼠")

	_, err = execute(t, "templates", "--category", "sports")
	assert.Error(t, err)
}

func TestRecommendHonorsConfiguredLimit(t *testing.T) {
	t.Setenv("EDUCREATE_MAX_RECOMMENDATIONS", "2")

	out, err := execute(t, "recommend", "6", "--output", "json")
	require.NoError(t, err)

	var got []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Len(t, got, 2)

	_, err = execute(t, "recommend", "-1")
	assert.Error(t, err)
}

func TestStyles(t *testing.T) {
	out, err := execute(t, "styles", "matching", "--output", "json")
	require.NoError(t, err)

	var got []struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.NotEmpty(t, got)
	assert.Equal(t, "classic", got[0].ID)
	assert.Equal(t, "wooden-desk", got[len(got)-1].ID)

	_, err = execute(t, "styles", "word-search")
	assert.Error(t, err)
}

func TestCompatible(t *testing.T) {
	out, err := execute(t, "compatible", "quiz", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "可以使用 3 個項目")

	_, err = execute(t, "compatible", "memory-cards", "3")
	assert.Error(t, err)
}

func TestConfigNewAndCheck(t *testing.T) {
	out, err := execute(t, "config", "new", "quiz", "--set", "lives=3", "--set", "timer=countUp")
	require.NoError(t, err)

	var cfg struct {
		TemplateID  string         `json:"templateId"`
		VisualStyle string         `json:"visualStyle"`
		GameOptions map[string]any `json:"gameOptions"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "quiz", cfg.TemplateID)
	assert.Equal(t, "classic", cfg.VisualStyle)
	assert.Equal(t, 3.0, cfg.GameOptions["lives"])
	assert.Equal(t, "countUp", cfg.GameOptions["timer"])
	assert.Equal(t, "abc", cfg.GameOptions["answerLabels"])

	path := writeFile(t, "config.json", out)
	out, err = execute(t, "config", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "設定有效")

	bad := writeFile(t, "bad.json", `{"templateId":"quiz","visualStyle":"wooden-desk","gameOptions":{"lives":20}}`)
	out, err = execute(t, "config", "check", bad, "--output", "json")
	require.Error(t, err)

	var res struct {
		IsValid bool     `json:"isValid"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.False(t, res.IsValid)
	assert.Len(t, res.Errors, 2)
}

func TestConfigNewRejectsBadAssignment(t *testing.T) {
	_, err := execute(t, "config", "new", "quiz", "--set", "lives")
	assert.Error(t, err)
}

func TestOptionsList(t *testing.T) {
	out, err := execute(t, "options", "list", "quiz", "--category", "timer")
	require.NoError(t, err)
	assert.Contains(t, out, "timer.duration")
	assert.NotContains(t, out, "scoring.type")

	_, err = execute(t, "options", "list", "quiz", "--category", "weather")
	assert.Error(t, err)
}

func TestOptionsDefaultsWithMerge(t *testing.T) {
	user := writeFile(t, "opts.yaml", "gameSpecific:\n  layout: columns\ntimer:\n  type: countUp\n")

	out, err := execute(t, "options", "defaults", "matching", "--with", user)
	require.NoError(t, err)

	var got struct {
		Timer struct {
			Type string `json:"type"`
		} `json:"timer"`
		GameSpecific map[string]any `json:"gameSpecific"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "countUp", got.Timer.Type)
	assert.Equal(t, "columns", got.GameSpecific["layout"])
	assert.Equal(t, true, got.GameSpecific["dragAndDrop"])
}

func TestOptionsCheck(t *testing.T) {
	good := writeFile(t, "good.json", `{"timer":{"type":"countDown","duration":90}}`)
	out, err := execute(t, "options", "check", "quiz", good)
	require.NoError(t, err)
	assert.Contains(t, out, "選項有效")

	bad := writeFile(t, "bad.json", `{"lives":{"count":3}}`)
	out, err = execute(t, "options", "check", "quiz", bad)
	require.Error(t, err)
	assert.Contains(t, out, "生命值數量 的依賴條件未滿足")
}
