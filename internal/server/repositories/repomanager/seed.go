package repomanager

import (
	"time"

	"github.com/dmitrijs2005/animalspotter/internal/server/models"
)

// DefaultSightings is the data a fresh server starts with. PhotoKey values
// are resolved against the configured photo store.
func DefaultSightings() []models.Sighting {
	return []models.Sighting{
		{
			Name:        "Red Fox",
			ObservedAt:  time.Date(2019, 3, 4, 17, 5, 0, 0, time.UTC),
			Latitude:    51.5072,
			Longitude:   -0.1276,
			Description: "Trotting along the canal path at dusk.",
			PhotoKey:    "red-fox.jpg",
		},
		{
			Name:        "Barn Owl",
			ObservedAt:  time.Date(2019, 3, 9, 21, 40, 0, 0, time.UTC),
			Latitude:    52.2053,
			Longitude:   0.1218,
			Description: "Quartering the meadow, then perched on a fence post.",
			PhotoKey:    "barn-owl.jpg",
		},
		{
			Name:        "Grey Heron",
			ObservedAt:  time.Date(2019, 4, 1, 7, 15, 0, 0, time.UTC),
			Latitude:    53.4808,
			Longitude:   -2.2426,
			Description: "Standing still in the shallows for twenty minutes.",
			PhotoKey:    "grey-heron.jpg",
		},
	}
}
