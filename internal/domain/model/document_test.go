package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestaurantDocIDSeparatesBranches(t *testing.T) {
	gangnam := &RestaurantDoc{Name: "교촌치킨", Category: "치킨", Location: &GeoPoint{Lat: 37.498, Lon: 127.027}}
	hongdae := &RestaurantDoc{Name: "교촌치킨", Category: "치킨", Location: &GeoPoint{Lat: 37.556, Lon: 126.922}}
	again := &RestaurantDoc{Name: "교촌치킨", Category: "치킨", Score: 4.9, Location: &GeoPoint{Lat: 37.498, Lon: 127.027}}

	assert.NotEqual(t, gangnam.GetID(), hongdae.GetID())
	assert.Equal(t, gangnam.GetID(), again.GetID())
}

func TestRestaurantDocIDWithoutLocation(t *testing.T) {
	a := &RestaurantDoc{Name: "a", Category: "한식"}
	b := &RestaurantDoc{Name: "a", Category: "중식"}
	assert.NotEqual(t, a.GetID(), b.GetID())
	assert.Equal(t, a.GetID(), (&RestaurantDoc{Name: "a", Category: "한식"}).GetID())
}

func TestFaqDocID(t *testing.T) {
	q := &FaqDoc{Category: "교통", Question: "Q", Answer: "A"}
	assert.Equal(t, q.GetID(), (&FaqDoc{Category: "교통", Question: "Q", Answer: "changed"}).GetID())
	assert.NotEqual(t, q.GetID(), (&FaqDoc{Category: "숙박", Question: "Q"}).GetID())
}
