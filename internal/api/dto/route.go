package dto

type RouteStopResponse struct {
	Role string  `json:"role"`
	Lng  float64 `json:"lng"`
	Lat  float64 `json:"lat"`
}

// GeoJSON LineString geometry, ready for a map line layer.
type LineStringResponse struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

type RouteResponse struct {
	Selection       string              `json:"selection"`
	TotalDistanceKm float64             `json:"total_distance_km"`
	Route           []RouteStopResponse `json:"route"`
	Geometry        LineStringResponse  `json:"geometry"`
}
