package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{"rod": {"user_data_dir": "./user_data"}}`))
	require.NoError(t, err)

	assert.Equal(t, DriverRod, cfg.Browser.Driver)
	assert.Len(t, cfg.Restaurant.Categories, 20)
	assert.Equal(t, "한식", cfg.Restaurant.Categories[0])
	assert.Equal(t, []string{"div.Poi__List__Wrap", ".Poi__List__Wrap"}, cfg.Restaurant.CardSelectors)
	assert.Equal(t, RenderWaitFixed, cfg.Restaurant.RenderWait.Mode)
	assert.Equal(t, 3000, cfg.Restaurant.RenderWait.StandardMillis)
	assert.Equal(t, []string{"전체"}, cfg.Faq.ExcludedCategories)
	assert.Equal(t, 10000, cfg.Faq.ItemTimeoutMillis)
	assert.True(t, len(cfg.Rod.UserDataDir) > 0 && cfg.Rod.UserDataDir[0] == '/')
}

func TestParseConfigKeepsExplicitValues(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"browser": {"driver": "chromedp"},
		"restaurant": {"categories": ["죽"], "render_wait": {"mode": "selector", "timeout_millis": 500}},
		"faq": {"excluded_categories": []}
	}`))
	require.NoError(t, err)

	assert.Equal(t, DriverChromedp, cfg.Browser.Driver)
	assert.Equal(t, []string{"죽"}, cfg.Restaurant.Categories)
	assert.Equal(t, RenderWaitSelector, cfg.Restaurant.RenderWait.Mode)
	assert.Equal(t, 500, cfg.Restaurant.RenderWait.TimeoutMillis)
	assert.Equal(t, "div.Poi__List__Wrap", cfg.Restaurant.RenderWait.Selector)
	assert.Empty(t, cfg.Faq.ExcludedCategories)
}

func TestParseConfigRejectsUnknownDriver(t *testing.T) {
	_, err := ParseConfig([]byte(`{"browser": {"driver": "selenium"}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selenium")
}

func TestParseConfigRejectsBadJSON(t *testing.T) {
	_, err := ParseConfig([]byte(`{`))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := newConfig()
	cfg.applyDefaults()
	env := map[string]string{
		"CRAWLER_BROWSER_DRIVER": "ChromeDP",
		"CRAWLER_HEADLESS":       "true",
		"CRAWLER_ES_ADDRESS":     "http://localhost:9200",
		"CRAWLER_ES_PASSWORD":    "secret",
		"CRAWLER_OUTPUT_DIR":     "/tmp/out",
	}
	cfg.applyEnv(func(k string) string { return env[k] })

	assert.Equal(t, DriverChromedp, cfg.Browser.Driver)
	assert.True(t, cfg.Rod.Headless)
	assert.True(t, cfg.Chromedp.Headless)
	assert.True(t, cfg.Elasticsearch.Enabled)
	assert.Equal(t, "http://localhost:9200", cfg.Elasticsearch.Address)
	assert.Equal(t, "secret", cfg.Elasticsearch.Password)
	assert.Equal(t, "/tmp/out", cfg.Output.Dir)
	require.NoError(t, cfg.Validate())
}

func TestParseConfigKeepsExplicitZeroDelays(t *testing.T) {
	cfg, err := ParseConfig([]byte(`{
		"restaurant": {"render_wait": {"standard_millis": 0}},
		"faq": {"scroll_settle_millis": 0, "reveal_settle_millis": 0}
	}`))
	require.NoError(t, err)

	assert.Zero(t, cfg.Restaurant.RenderWait.StandardMillis)
	assert.Zero(t, cfg.Faq.ScrollSettleMillis)
	assert.Zero(t, cfg.Faq.RevealSettleMillis)
	assert.Equal(t, 3000, cfg.Faq.LoadSettleMillis)
	assert.Equal(t, 10000, cfg.Restaurant.RenderWait.TimeoutMillis)
}

func TestParseConfigRejectsBadDurations(t *testing.T) {
	_, err := ParseConfig([]byte(`{"faq": {"page_settle_millis": -1}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faq.page_settle_millis")

	_, err = ParseConfig([]byte(`{"faq": {"item_timeout_millis": 0}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faq.item_timeout_millis")
}
