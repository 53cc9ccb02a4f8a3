package entity

// Place is a geocoded location with a display address.
type Place struct {
	Point   GeoPoint
	Address string
}
