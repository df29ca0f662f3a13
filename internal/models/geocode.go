package models

// GeoPoint is a resolved location: coordinates plus the display name built
// from the geocoder's best match. JSON tags cover the redis cache encoding.
type GeoPoint struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}
