package models

// StationCandidate is a rail or subway station near a restaurant. WalkingTimeMinutes is nil until the walking-route lookup has enriched the candidate, and stays nil when that lookup failed.
type StationCandidate struct {
	PlaceID            string `json:"place_id"`
	Name               string `json:"name"`
	Address            string `json:"address"`
	Location           LatLng `json:"location"`
	WalkingTimeMinutes *int   `json:"walking_time_minutes,omitempty"`
}

// WalkingRoute is the distance and duration of a walking route between two points.
type WalkingRoute struct {
	DistanceMeters  int `json:"distance_meters"`
	DurationSeconds int `json:"duration_seconds"`
}

// Minutes returns the route duration rounded to whole minutes.
func (r WalkingRoute) Minutes() int {
	return (r.DurationSeconds + 30) / 60
}
