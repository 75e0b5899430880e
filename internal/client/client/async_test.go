package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGo_DeliversExactlyOnce(t *testing.T) {
	ch := Go(context.Background(), func(context.Context) (int, error) { return 42, nil })

	r, ok := <-ch
	require.True(t, ok)
	require.NoError(t, r.Err)
	require.Equal(t, 42, r.Value)

	_, ok = <-ch
	require.False(t, ok, "channel must be closed after the single result")
}

func TestGo_DeliversErrors(t *testing.T) {
	boom := errors.New("boom")
	r := <-Go(context.Background(), func(context.Context) (string, error) { return "", boom })
	require.ErrorIs(t, r.Err, boom)
}

func TestGo_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	r := <-Go(ctx, func(ctx context.Context) (any, error) { return ctx.Value(key{}), nil })
	require.Equal(t, "v", r.Value)
}

func TestGo_WithClientCall(t *testing.T) {
	d := (&recordingDoer{}).queue(
		stubResponse{status: http.StatusOK, body: `["fox"]`},
		stubResponse{status: http.StatusOK, body: `["owl"]`},
	)
	c := signedIn(t, d)

	first := Go(context.Background(), c.ListSightingNames)
	second := Go(context.Background(), c.ListSightingNames)

	got := map[string]bool{}
	for _, ch := range []<-chan Result[[]string]{first, second} {
		r := <-ch
		require.NoError(t, r.Err)
		require.Len(t, r.Value, 1)
		got[r.Value[0]] = true
	}
	require.Equal(t, map[string]bool{"fox": true, "owl": true}, got)
}
