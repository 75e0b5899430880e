package models

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// SightingDetail is the full record of one animal sighting.
type SightingDetail struct {
	ID          int
	Name        string
	ObservedAt  time.Time
	Latitude    float64
	Longitude   float64
	Description string
	ImageURL    string
}

// sightingDetailJSON mirrors the wire object. Every field is required, so
// pointers tell a missing key apart from a zero value.
type sightingDetailJSON struct {
	ID          *int     `json:"id"`
	Name        *string  `json:"name"`
	TimeSeen    *float64 `json:"timeSeen"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"imageURL"`
}

// UnmarshalJSON decodes the wire form. timeSeen is seconds since
// 1970-01-01T00:00:00Z and may carry a fractional part.
func (d *SightingDetail) UnmarshalJSON(data []byte) error {
	var w sightingDetailJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	missing := func(field string) error {
		return fmt.Errorf("sighting detail: missing field %q", field)
	}

	switch {
	case w.ID == nil:
		return missing("id")
	case w.Name == nil:
		return missing("name")
	case w.TimeSeen == nil:
		return missing("timeSeen")
	case w.Latitude == nil:
		return missing("latitude")
	case w.Longitude == nil:
		return missing("longitude")
	case w.Description == nil:
		return missing("description")
	case w.ImageURL == nil:
		return missing("imageURL")
	}

	observedAt, err := EpochSeconds(*w.TimeSeen)
	if err != nil {
		return err
	}

	*d = SightingDetail{
		ID:          *w.ID,
		Name:        *w.Name,
		ObservedAt:  observedAt,
		Latitude:    *w.Latitude,
		Longitude:   *w.Longitude,
		Description: *w.Description,
		ImageURL:    *w.ImageURL,
	}
	return nil
}

// maxEpochSeconds keeps the whole seconds inside int64 with room left for
// time.Unix's internal epoch offset.
const maxEpochSeconds = 1 << 62

// EpochSeconds converts seconds since the Unix epoch into a UTC time.
func EpochSeconds(sec float64) (time.Time, error) {
	if math.IsNaN(sec) || math.IsInf(sec, 0) {
		return time.Time{}, fmt.Errorf("invalid epoch seconds %v", sec)
	}
	if math.Abs(sec) > maxEpochSeconds {
		return time.Time{}, fmt.Errorf("epoch seconds %v out of range", sec)
	}
	whole := math.Floor(sec)
	nanos := math.Round((sec - whole) * float64(time.Second))
	return time.Unix(int64(whole), int64(nanos)).UTC(), nil
}

// Coordinates renders the position the way the detail view shows it.
func (d SightingDetail) Coordinates() string {
	return fmt.Sprintf("lat: %v, long: %v", d.Latitude, d.Longitude)
}

// SeenAt renders ObservedAt as a short date and time in loc.
func (d SightingDetail) SeenAt(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return d.ObservedAt.In(loc).Format("1/2/06, 3:04 PM")
}
