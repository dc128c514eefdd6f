// SPDX-License-Identifier: MIT

package dimacs_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/dimacs"
)

func newInstanceServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/graphs/square.col", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(square))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func TestDownload(t *testing.T) {
	srv := newInstanceServer(t)
	dir := filepath.Join(t.TempDir(), "instances")

	path, err := dimacs.Download(context.Background(), srv.Client(), srv.URL+"/graphs/square.col", dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "square.col"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, square, string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")

	inst, err := dimacs.Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, inst.Graph.EdgeCount())
}

func TestDownload_Errors(t *testing.T) {
	srv := newInstanceServer(t)
	dir := t.TempDir()
	ctx := context.Background()

	_, err := dimacs.Download(ctx, srv.Client(), srv.URL+"/graphs/missing.col", dir)
	require.ErrorIs(t, err, dimacs.ErrDownload)
	require.Contains(t, err.Error(), "404")

	_, err = dimacs.Download(ctx, srv.Client(), srv.URL+"/", dir)
	require.ErrorIs(t, err, dimacs.ErrDownload)

	_, err = dimacs.Download(ctx, nil, "://bad", dir)
	require.ErrorIs(t, err, dimacs.ErrDownload)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = dimacs.Download(cancelled, srv.Client(), srv.URL+"/graphs/square.col", dir)
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}
