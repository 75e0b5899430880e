package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/animalspotter/internal/filex"
)

var errNoSuchListPosition = errors.New("no such position in the last listing")

// resolveName turns "#n" into the n-th name of the last listing. Anything
// else is taken as a sighting name verbatim.
func (a *App) resolveName(ref string) (string, error) {
	pos, ok := strings.CutPrefix(ref, "#")
	if !ok {
		return ref, nil
	}

	n, err := strconv.Atoi(pos)
	if err != nil {
		return ref, nil
	}
	if n < 1 || n > len(a.lastList) {
		return "", fmt.Errorf("%w: %d", errNoSuchListPosition, n)
	}
	return a.lastList[n-1], nil
}

// Show prints one sighting and then waits for its photo.
//
// ref is either a name or "#n" referring to the last listing; when empty the
// user is asked for one. The photo is fetched after the detail has arrived.
// When an image directory is configured, the photo bytes are written there
// unchanged. A photo failure is reported after the detail has been printed.
func (a *App) Show(ctx context.Context, ref string) error {
	if ref == "" {
		var err error
		ref, err = askLine(a.reader, "Sighting name or #number", a.out)
		if err != nil {
			return err
		}
	}

	name, err := a.resolveName(ref)
	if err != nil {
		fmt.Fprintln(a.out, "Run 'list' first or pick a number from it")
		return err
	}

	detail, photo, err := a.sightingService.Show(ctx, name)
	if err != nil {
		a.report(err)
		return err
	}

	fmt.Fprintln(a.out, detail.Name)
	fmt.Fprintf(a.out, "  seen:        %s\n", detail.SeenAt(a.location))
	fmt.Fprintf(a.out, "  where:       %s\n", detail.Coordinates())
	fmt.Fprintf(a.out, "  description: %s\n", detail.Description)

	res := <-photo
	if res.Err != nil {
		fmt.Fprint(a.out, "  photo:       unavailable. ")
		a.report(res.Err)
		return res.Err
	}

	img := res.Value
	w, h := img.Size()
	fmt.Fprintf(a.out, "  photo:       %s %dx%d, %d bytes\n", img.Format, w, h, len(img.Data))

	if a.config != nil && a.config.ImageDir != "" {
		path, err := filex.WriteInDir(a.config.ImageDir, detail.Name, img.Format, img.Data)
		if err != nil {
			a.logger.Error(ctx, "saving photo failed", "error", err)
			return err
		}
		fmt.Fprintf(a.out, "  saved to:    %s\n", path)
	}

	return nil
}
