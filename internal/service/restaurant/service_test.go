package restaurant

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/chrome/chrometest"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/wait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingClock struct {
	slept []time.Duration
}

func (c *recordingClock) Sleep(_ context.Context, d time.Duration) error {
	c.slept = append(c.slept, d)
	return nil
}

func TestCategoryURL(t *testing.T) {
	svc := InitService(testPass(), nil, zap.NewNop())
	assert.Equal(t,
		"https://www.diningcode.com/list.dc?query=%EC%84%9C%EC%9A%B8%20%ED%95%9C%EC%8B%9D",
		svc.CategoryURL("한식"))
}

func TestRunKeepsCategoryOrderAndResetsMarkersPerPage(t *testing.T) {
	clock := &recordingClock{}
	svc := InitService(testPass("한식", "중식", "일식"), wait.Fixed{Standard: 3 * time.Second, Clock: clock}, zap.NewNop())

	session := chrometest.NewSession()
	session.Pages[svc.CategoryURL("한식")] = pageHTML(
		[]string{card(row{"1. 비빔밥집", "4.1", "(10)건"}, row{"2. 냉면집", "4.2", "(20)건"})},
		[]string{marker("1", "1")},
	)
	// no cards at all: nothing emitted, run continues
	session.Pages[svc.CategoryURL("중식")] = pageHTML(nil, nil)
	session.Pages[svc.CategoryURL("일식")] = pageHTML(
		[]string{card(row{"1. 스시", "4.9", "(1,000)건"})},
		[]string{marker("9", "9")},
	)

	harvest, err := svc.Run(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, harvest.Records, 3)

	assert.Equal(t, "비빔밥집", harvest.Records[0].Name)
	assert.Equal(t, "한식", harvest.Records[0].Category)
	assert.Equal(t, "1,1", coords(harvest.Records[0]))
	assert.Equal(t, "nil", coords(harvest.Records[1]))
	assert.Equal(t, "스시", harvest.Records[2].Name)
	assert.Equal(t, "일식", harvest.Records[2].Category)
	assert.Equal(t, "9,9", coords(harvest.Records[2]))

	assert.Len(t, session.Visited, 3)
	assert.Equal(t, []time.Duration{3 * time.Second, 3 * time.Second, 3 * time.Second}, clock.slept)
}

type failingNavigation struct {
	*chrometest.Session
	fail map[string]error
}

func (f *failingNavigation) Navigate(url string) error {
	if err, ok := f.fail[url]; ok {
		f.Session.Visited = append(f.Session.Visited, url)
		return err
	}
	return f.Session.Navigate(url)
}

var _ chrome.Session = (*failingNavigation)(nil)

func TestRunAbandonsFailedCategoryAndContinues(t *testing.T) {
	svc := InitService(testPass("한식", "중식"), wait.Fixed{Clock: &recordingClock{}}, zap.NewNop())
	session := &failingNavigation{
		Session: chrometest.NewSession(),
		fail:    map[string]error{svc.CategoryURL("한식"): errors.New("net::ERR_TIMED_OUT")},
	}
	session.Pages[svc.CategoryURL("중식")] = pageHTML([]string{card(row{"1. a", "4.0", "(1)건"})}, nil)

	harvest, err := svc.Run(context.Background(), session)
	require.NoError(t, err)
	require.Len(t, harvest.Records, 1)
	assert.Equal(t, "중식", harvest.Records[0].Category)
	require.Len(t, harvest.Skips, 1)
	assert.Equal(t, entity.ScopeCategory, harvest.Skips[0].Scope)
	assert.Equal(t, "한식", harvest.Skips[0].Category)
}

func TestRunStopsOnSessionFailureWithPartialResults(t *testing.T) {
	svc := InitService(testPass("한식", "중식", "일식"), wait.Fixed{Clock: &recordingClock{}}, zap.NewNop())
	session := &failingNavigation{
		Session: chrometest.NewSession(),
		fail:    map[string]error{svc.CategoryURL("중식"): entity.ErrSessionFailure},
	}
	session.Pages[svc.CategoryURL("한식")] = pageHTML([]string{card(row{"1. a", "4.0", "(1)건"})}, nil)

	harvest, err := svc.Run(context.Background(), session)
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrSessionFailure))
	require.Len(t, harvest.Records, 1)
	assert.Equal(t, "한식", harvest.Records[0].Category)
	assert.Len(t, session.Visited, 2)
}

func TestRunSelectorWaitTimeoutStillSnapshots(t *testing.T) {
	svc := InitService(testPass("한식"), wait.Selector{Selector: "div.Poi__List__Wrap", Timeout: time.Second}, zap.NewNop())
	session := chrometest.NewSession()
	session.Pages[svc.CategoryURL("한식")] = pageHTML([]string{card(row{"1. a", "4.0", "(1)건"})}, nil)

	harvest, err := svc.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Len(t, harvest.Records, 1)
	assert.Equal(t, []string{"div.Poi__List__Wrap"}, session.Waits)
}

func TestRunLogsPageClassesAtDebugWhenNoCards(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	svc := InitService(testPass("중식"), wait.Fixed{Clock: &recordingClock{}}, zap.New(core))
	session := chrometest.NewSession()
	session.Pages[svc.CategoryURL("중식")] = `<html><body><div class="Empty__State"></div></body></html>`

	harvest, err := svc.Run(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, harvest.Records)

	diagnosis := logs.FilterMessage("page classes").All()
	require.Len(t, diagnosis, 1)
	assert.Equal(t, zapcore.DebugLevel, diagnosis[0].Level)
	assert.Contains(t, diagnosis[0].ContextMap()["classes"], "Empty__State")
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
