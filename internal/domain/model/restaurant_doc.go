package model

import (
	"strconv"

	"github.com/elastic/go-elasticsearch/v9/typedapi/types"
)

const RestaurantIndex = "seoul_restaurant"

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RestaurantDoc struct {
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Score       float64   `json:"score"`
	ReviewCount int       `json:"review_count"`
	Location    *GeoPoint `json:"location,omitempty"`
}

// GetID keys on the location too, so branches of a chain sharing a name stay
// separate documents.
func (d *RestaurantDoc) GetID() string {
	if d.Location == nil {
		return stableID(d.Category, d.Name)
	}
	return stableID(d.Category, d.Name,
		strconv.FormatFloat(d.Location.Lat, 'f', -1, 64),
		strconv.FormatFloat(d.Location.Lon, 'f', -1, 64))
}

func (d *RestaurantDoc) GetIndex() string {
	return RestaurantIndex
}

func (d *RestaurantDoc) GetTypeMapping() *types.TypeMapping {
	return &types.TypeMapping{
		Properties: map[string]types.Property{
			"name":         types.NewTextProperty(),
			"category":     types.NewKeywordProperty(),
			"score":        types.NewFloatNumberProperty(),
			"review_count": types.NewIntegerNumberProperty(),
			"location":     types.NewGeoPointProperty(),
		},
	}
}
