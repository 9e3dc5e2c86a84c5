package restaurant

import (
	"fmt"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/entity"
	"github.com/LouYuanbo1/seoulcrawler/internal/infra/crawler/snapshot"
	"github.com/LouYuanbo1/seoulcrawler/param"
)

// markerCursor hands out page markers in document order, each at most once.
type markerCursor struct {
	markers  []snapshot.Node
	consumed int
	latAttr  string
	lngAttr  string
}

// next returns the coordinates of the next unconsumed marker, or nils once
// the markers are exhausted.
func (c *markerCursor) next() (lat, lng *string) {
	if c.consumed >= len(c.markers) {
		return nil, nil
	}
	m := c.markers[c.consumed]
	c.consumed++
	if v, ok := m.Attr(c.latAttr); ok {
		lat = &v
	}
	if v, ok := m.Attr(c.lngAttr); ok {
		lng = &v
	}
	return lat, lng
}

// slot is one title position of a card. err is set when its fields fail to
// parse; the slot still owns a marker.
type slot struct {
	record entity.Restaurant
	err    error
}

// readCard fails only when the parallel collections are empty or differ in
// length; such a card yields no slots.
func readCard(category string, card snapshot.Node, p *param.RestaurantPass) ([]slot, error) {
	titles := card.Find(p.TitleSelector)
	scores := card.Find(p.ScoreSelector)
	counts := card.Find(p.CountSelector)
	if len(titles) == 0 || len(titles) != len(scores) || len(titles) != len(counts) {
		return nil, fmt.Errorf("card has %d titles, %d scores, %d counts: %w",
			len(titles), len(scores), len(counts), entity.ErrElementNotFound)
	}

	slots := make([]slot, len(titles))
	for i := range titles {
		slots[i] = readSlot(category, titles[i], scores[i], counts[i])
	}
	return slots, nil
}

func readSlot(category string, title, score, count snapshot.Node) slot {
	name, err := ParseTitle(title.Text())
	if err != nil {
		return slot{err: err}
	}
	s, err := ParseScore(score.Text())
	if err != nil {
		return slot{err: err}
	}
	c, err := ParseReviewCount(count.Text())
	if err != nil {
		return slot{err: err}
	}
	return slot{record: entity.Restaurant{Name: name, Category: category, Score: s, ReviewCount: c}}
}

// Reconcile aligns the cards of one rendered page with the page-wide marker
// sequence by ordinal position. A card whose parallel collections are empty or
// differ in length yields no records and consumes no markers. Inside a usable
// card every title consumes a marker, including one whose fields fail to
// parse; that record is skipped.
func Reconcile(category string, cards, markers []snapshot.Node, p *param.RestaurantPass) ([]entity.Restaurant, []entity.Skip) {
	cursor := &markerCursor{markers: markers, latAttr: p.LatAttr, lngAttr: p.LngAttr}
	var (
		records []entity.Restaurant
		skips   []entity.Skip
		ordinal int
	)
	for i, card := range cards {
		slots, err := readCard(category, card, p)
		if err != nil {
			skips = append(skips, entity.Skip{Scope: entity.ScopeCard, Category: category, Page: 1, Index: i, Err: err})
			continue
		}
		for _, s := range slots {
			lat, lng := cursor.next()
			if s.err != nil {
				skips = append(skips, entity.Skip{Scope: entity.ScopeItem, Category: category, Page: 1, Index: ordinal, Err: s.err})
			} else {
				s.record.Latitude, s.record.Longitude = lat, lng
				records = append(records, s.record)
			}
			ordinal++
		}
	}
	return records, skips
}
