package cli

import (
	"context"
	"fmt"
)

// List prints the sighting names in server order, numbered from 1. The
// listing is remembered so that "show #n" can refer to it.
func (a *App) List(ctx context.Context) error {
	names, err := a.sightingService.List(ctx)
	if err != nil {
		a.report(err)
		return err
	}

	a.lastList = names

	if len(names) == 0 {
		fmt.Fprintln(a.out, "No sightings yet")
		return nil
	}
	for i, name := range names {
		fmt.Fprintf(a.out, "%3d. %s\n", i+1, name)
	}
	return nil
}
