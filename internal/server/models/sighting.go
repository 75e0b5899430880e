package models

import "time"

// Sighting is one observation. PhotoKey names the photo in the configured
// photo store and is turned into a URL when served.
type Sighting struct {
	ID          int64
	Name        string
	ObservedAt  time.Time
	Latitude    float64
	Longitude   float64
	Description string
	PhotoKey    string
}
