package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

func ParseConfig(byteConfig []byte) (*Config, error) {
	cfg := newConfig()
	err := json.Unmarshal(byteConfig, &cfg)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	cfg.applyEnv(os.Getenv)
	for _, dir := range []*string{&cfg.Rod.UserDataDir, &cfg.Chromedp.UserDataDir} {
		if *dir == "" {
			continue
		}
		absPath, err := filepath.Abs(*dir)
		if err != nil {
			return nil, err
		}
		*dir = absPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Browser.Driver {
	case DriverRod, DriverChromedp:
	default:
		return fmt.Errorf("unknown browser driver %q", c.Browser.Driver)
	}
	switch c.Restaurant.RenderWait.Mode {
	case RenderWaitFixed, RenderWaitSelector:
	default:
		return fmt.Errorf("unknown render wait mode %q", c.Restaurant.RenderWait.Mode)
	}
	for name, v := range map[string]int{
		"restaurant.render_wait.standard_millis": c.Restaurant.RenderWait.StandardMillis,
		"restaurant.render_wait.random_millis":   c.Restaurant.RenderWait.RandomMillis,
		"faq.load_settle_millis":                 c.Faq.LoadSettleMillis,
		"faq.category_settle_millis":             c.Faq.CategorySettleMillis,
		"faq.scroll_settle_millis":               c.Faq.ScrollSettleMillis,
		"faq.reveal_settle_millis":               c.Faq.RevealSettleMillis,
		"faq.page_settle_millis":                 c.Faq.PageSettleMillis,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	for name, v := range map[string]int{
		"chromedp.life_time":                    c.Chromedp.LifeTime,
		"restaurant.render_wait.timeout_millis": c.Restaurant.RenderWait.TimeoutMillis,
		"faq.item_timeout_millis":               c.Faq.ItemTimeoutMillis,
	} {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %d", name, v)
		}
	}
	if len(c.Restaurant.Categories) == 0 {
		return fmt.Errorf("restaurant.categories is empty")
	}
	if c.Elasticsearch.Enabled && c.Elasticsearch.Address == "" {
		return fmt.Errorf("elasticsearch.address is required when elasticsearch is enabled")
	}
	return nil
}

// applyEnv lets deployment secrets and toggles override the embedded file.
func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv("CRAWLER_BROWSER_DRIVER"); v != "" {
		c.Browser.Driver = strings.ToLower(v)
	}
	if v := getenv("CRAWLER_HEADLESS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Rod.Headless = b
			c.Chromedp.Headless = b
		}
	}
	if v := getenv("CRAWLER_ES_ADDRESS"); v != "" {
		c.Elasticsearch.Address = v
		c.Elasticsearch.Enabled = true
	}
	if v := getenv("CRAWLER_ES_USERNAME"); v != "" {
		c.Elasticsearch.Username = v
	}
	if v := getenv("CRAWLER_ES_PASSWORD"); v != "" {
		c.Elasticsearch.Password = v
	}
	if v := getenv("CRAWLER_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
}
