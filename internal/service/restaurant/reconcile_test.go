package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LouYuanbo1/seoulcrawler/internal/config"
	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/snapshot"
	"github.com/LouYuanbo1/seoulcrawler/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPass(categories ...string) *param.RestaurantPass {
	cfg, err := config.ParseConfig([]byte(`{}`))
	if err != nil {
		panic(err)
	}
	if len(categories) > 0 {
		cfg.Restaurant.Categories = categories
	}
	return param.NewRestaurantPass(&cfg.Restaurant)
}

type row struct {
	title, score, count string
}

func card(rows ...row) string {
	var b strings.Builder
	b.WriteString(`<div class="Poi__List__Wrap">`)
	for _, r := range rows {
		fmt.Fprintf(&b, `<h2>%s</h2><p class="score-text">%s</p><span class="count-text">%s</span>`, r.title, r.score, r.count)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func marker(lat, lng string) string {
	return fmt.Sprintf(`<a class="Marker" data-lat="%s" data-lng="%s"></a>`, lat, lng)
}

func pageHTML(cards []string, markers []string) string {
	return "<html><body>" + strings.Join(cards, "") + `<div id="map">` + strings.Join(markers, "") + "</div></body></html>"
}

func reconcile(t *testing.T, html string) ([]entity.Restaurant, []entity.Skip) {
	t.Helper()
	doc, err := snapshot.Parse(html)
	require.NoError(t, err)
	p := testPass()
	return Reconcile("중식", doc.FindFirst(p.CardSelectors...), doc.Find(p.MarkerSelector), p)
}

func coords(r entity.Restaurant) string {
	if r.Latitude == nil || r.Longitude == nil {
		return "nil"
	}
	return *r.Latitude + "," + *r.Longitude
}

func TestReconcileAlignsMarkersAcrossCards(t *testing.T) {
	html := pageHTML(
		[]string{
			card(row{"1. 교동짬뽕", "4.5", "(1,234)건"}, row{"2. 홍콩반점", "3.9", "(87)건"}),
			card(row{"3. 진진", "4.8", "(560)건"}),
		},
		[]string{marker("37.1", "127.1"), marker("37.2", "127.2"), marker("37.3", "127.3")},
	)

	records, skips := reconcile(t, html)
	require.Empty(t, skips)
	require.Len(t, records, 3)

	assert.Equal(t, entity.Restaurant{
		Name: "교동짬뽕", Category: "중식", Score: 4.5, ReviewCount: 1234,
		Latitude: records[0].Latitude, Longitude: records[0].Longitude,
	}, records[0])
	assert.Equal(t, "37.1,127.1", coords(records[0]))
	assert.Equal(t, "37.2,127.2", coords(records[1]))
	assert.Equal(t, "진진", records[2].Name)
	assert.Equal(t, "37.3,127.3", coords(records[2]))
}

func TestReconcileNullPadsAfterMarkersRunOut(t *testing.T) {
	html := pageHTML(
		[]string{
			card(row{"1. a", "4.0", "(1)건"}),
			card(row{"2. b", "4.0", "(2)건"}, row{"3. c", "4.0", "(3)건"}),
		},
		[]string{marker("37.1", "127.1")},
	)

	records, _ := reconcile(t, html)
	require.Len(t, records, 3)
	assert.Equal(t, "37.1,127.1", coords(records[0]))
	assert.Equal(t, "nil", coords(records[1]))
	assert.Equal(t, "nil", coords(records[2]))
}

func TestReconcileSkipsMismatchedCardWithoutConsumingMarkers(t *testing.T) {
	broken := `<div class="Poi__List__Wrap"><h2>1. a</h2><h2>2. b</h2><p class="score-text">4.0</p><span class="count-text">(1)건</span></div>`
	html := pageHTML(
		[]string{broken, card(row{"3. c", "4.1", "(9)건"})},
		[]string{marker("37.1", "127.1"), marker("37.2", "127.2")},
	)

	records, skips := reconcile(t, html)
	require.Len(t, records, 1)
	assert.Equal(t, "c", records[0].Name)
	assert.Equal(t, "37.1,127.1", coords(records[0]))

	require.Len(t, skips, 1)
	assert.Equal(t, 0, skips[0].Index)
	assert.Equal(t, entity.ScopeCard, skips[0].Scope)
	assert.True(t, errors.Is(skips[0].Err, entity.ErrElementNotFound))
}

func TestReconcileSkipsEmptyCardAndMalformedRecord(t *testing.T) {
	html := pageHTML(
		[]string{
			`<div class="Poi__List__Wrap"><p>ad</p></div>`,
			card(row{"1. a", "4.0", "(1)건"}, row{"2. b", "N/A", "(2)건"}),
			card(row{"3. c", "4.2", "(3)건"}),
		},
		[]string{marker("37.1", "127.1"), marker("37.2", "127.2"), marker("37.3", "127.3")},
	)

	records, skips := reconcile(t, html)
	require.Len(t, records, 2)
	assert.Equal(t, "a", records[0].Name)
	assert.Equal(t, "37.1,127.1", coords(records[0]))
	// b owned the second marker, so c keeps its own
	assert.Equal(t, "c", records[1].Name)
	assert.Equal(t, "37.3,127.3", coords(records[1]))

	require.Len(t, skips, 2)
	assert.Equal(t, entity.ScopeCard, skips[0].Scope)
	assert.Equal(t, "element_not_found", skips[0].Reason())
	assert.Equal(t, entity.ScopeItem, skips[1].Scope)
	assert.Equal(t, 1, skips[1].Index)
	assert.Equal(t, "malformed_field", skips[1].Reason())
}

func TestReconcileTruncatedReviewCountIsSkipped(t *testing.T) {
	html := pageHTML(
		[]string{card(row{"1. a", "4.0", "(1,234"}, row{"2. b", "4.0", "(5)건"})},
		[]string{marker("1", "1"), marker("2", "2")},
	)

	records, skips := reconcile(t, html)
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].Name)
	assert.Equal(t, "2,2", coords(records[0]))
	require.Len(t, skips, 1)
	assert.True(t, errors.Is(skips[0].Err, entity.ErrMalformedField))
}

func TestReconcileMarkerWithoutAttributesIsStillConsumed(t *testing.T) {
	html := pageHTML(
		[]string{card(row{"1. a", "4.0", "(1)건"}, row{"2. b", "4.0", "(2)건"})},
		[]string{`<a class="Marker"></a>`, marker("37.2", "127.2")},
	)

	records, _ := reconcile(t, html)
	require.Len(t, records, 2)
	assert.Nil(t, records[0].Latitude)
	assert.Equal(t, "37.2,127.2", coords(records[1]))
}

func TestReconcileNoCards(t *testing.T) {
	records, skips := reconcile(t, pageHTML(nil, []string{marker("1", "2")}))
	assert.Empty(t, records)
	assert.Empty(t, skips)
}
