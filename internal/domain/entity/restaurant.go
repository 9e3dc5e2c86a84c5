package entity

import (
	"strconv"

	"github.com/LouYuanbo1/seoulcrawler/internal/domain/model"
)

// Restaurant is one row of the category pipeline. Latitude and Longitude are nil
// when the page ran out of map markers before this record was reached.
type Restaurant struct {
	Name        string
	Category    string
	Score       float64
	ReviewCount int
	Latitude    *string
	Longitude   *string
}

func (r Restaurant) ToDocument() *model.RestaurantDoc {
	doc := &model.RestaurantDoc{
		Name:        r.Name,
		Category:    r.Category,
		Score:       r.Score,
		ReviewCount: r.ReviewCount,
	}
	if r.Latitude == nil || r.Longitude == nil {
		return doc
	}
	lat, err := strconv.ParseFloat(*r.Latitude, 64)
	if err != nil {
		return doc
	}
	lon, err := strconv.ParseFloat(*r.Longitude, 64)
	if err != nil {
		return doc
	}
	doc.Location = &model.GeoPoint{Lat: lat, Lon: lon}
	return doc
}
