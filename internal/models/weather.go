package models

// WeatherSnapshot is the normalized current-conditions payload returned to
// clients. Location carries the geocoder's display name, not the provider's
// own place label. Never persisted.
type WeatherSnapshot struct {
	Location  string  `json:"location"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"windSpeed"`
	Lat       float64 `json:"lat,omitempty"`
	Lon       float64 `json:"lon,omitempty"`
}

// ForecastInterval is one normalized forecast point. Time keeps the
// provider's timestamp string untouched.
type ForecastInterval struct {
	Time      string  `json:"time"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"windSpeed"`
}

// ForecastReport is the hourly forecast response: up to eight intervals in
// provider-supplied chronological order.
type ForecastReport struct {
	Location  string             `json:"location"`
	Intervals []ForecastInterval `json:"intervals"`
}
