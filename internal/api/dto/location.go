package dto

// Pointers distinguish a missing field from a zero coordinate.
type AddLocationRequest struct {
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
}

type LocationResponse struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

type AddLocationResponse struct {
	Role     string           `json:"role"`
	Index    int              `json:"index"`
	Location LocationResponse `json:"location"`
}

type ListLocationsResponse struct {
	Home  *LocationResponse  `json:"home"`
	Stops []LocationResponse `json:"stops"`
}
