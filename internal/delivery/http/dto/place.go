package dto

import "parkospace/internal/domain/entity"

// SearchLocationRequest is the body of a free-text geocode call.
type SearchLocationRequest struct {
	Query string `json:"query"`
}

// ParseMapURLRequest is the body of a map-link parse call.
type ParseMapURLRequest struct {
	URL string `json:"url"`
}

// Place is a resolved location.
type Place struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

func NewPlace(p *entity.Place) Place {
	return Place{Lat: p.Point.Lat, Lng: p.Point.Lng, Address: p.Address}
}

func (p Place) Entity() *entity.Place {
	return &entity.Place{Point: entity.GeoPoint{Lat: p.Lat, Lng: p.Lng}, Address: p.Address}
}
