package domain

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// Immutable geographic coordinate (longitude, latitude) in degrees.
// Equality is coordinate equality, so Points can be compared with ==.
type Point struct {
	lon float64
	lat float64
}

// NewPoint accepts coordinates as given; range checks belong to the caller.
func NewPoint(lon, lat float64) Point {
	return Point{lon: lon, lat: lat}
}

func (p Point) Lon() float64 { return p.lon }

func (p Point) Lat() float64 { return p.lat }

// Coordinates returns the (longitude, latitude) pair.
func (p Point) Coordinates() (float64, float64) { return p.lon, p.lat }

// Return coordinates as [lon, lat] for GeoJSON compatibility.
func (p Point) CoordsToList() []float64 { return []float64{p.lon, p.lat} }

// DistanceTo returns the haversine great-circle distance to other in kilometers.
func (p Point) DistanceTo(other Point) float64 {
	lat1 := degreesToRadians(p.lat)
	lat2 := degreesToRadians(other.lat)
	dLat := degreesToRadians(other.lat - p.lat)
	dLon := degreesToRadians(other.lon - p.lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + sinLon*sinLon*math.Cos(lat1)*math.Cos(lat2)

	return 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)) * EarthRadiusKm
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
