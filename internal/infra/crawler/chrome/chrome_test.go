package chrome_test

import (
	"context"
	"errors"
	"testing"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome/chrometest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryReturnsFirstMatch(t *testing.T) {
	first := &chrometest.Element{TextValue: "first"}
	parent := &chrometest.Element{Children: map[string][]*chrometest.Element{
		"span": {first, {TextValue: "second"}},
	}}

	el, err := chrome.Query(parent, "span")
	require.NoError(t, err)
	text, err := el.Text()
	require.NoError(t, err)
	assert.Equal(t, "first", text)
}

func TestQueryMissingIsElementNotFound(t *testing.T) {
	_, err := chrome.Query(&chrometest.Element{}, "span")
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrElementNotFound))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Browser.Driver = "webkit"
	_, err := chrome.Open(context.Background(), cfg)
	require.Error(t, err)
}
