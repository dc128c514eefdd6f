// SPDX-License-Identifier: MIT
//
// File: download.go
// Role: Download, fetching benchmark instances over HTTP.

package dimacs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
)

// Download fetches rawURL into dir and returns the written path. The file
// is named after the last URL path segment, e.g. ".../C4000.5.col" is
// saved as dir/C4000.5.col. dir is created when missing; an existing file
// is replaced only after the whole body has arrived.
//
// A nil client means http.DefaultClient. Non-2xx responses and URLs without
// a file name yield ErrDownload.
func Download(ctx context.Context, client *http.Client, rawURL, dir string) (string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownload, err)
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" || base == "" {
		return "", fmt.Errorf("%w: no file name in %q", ErrDownload, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", errors.Wrap(err, "dimacs: build request")
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "dimacs: get %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s: %s", ErrDownload, rawURL, resp.Status)
	}

	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "dimacs: create %q", dir)
	}
	tmp, err := os.CreateTemp(dir, base+".part-*")
	if err != nil {
		return "", errors.Wrap(err, "dimacs: create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err = io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		return "", errors.Wrapf(err, "dimacs: read body of %s", rawURL)
	}
	if err = tmp.Close(); err != nil {
		return "", errors.Wrap(err, "dimacs: close temp file")
	}

	dest := filepath.Join(dir, base)
	if err = os.Rename(tmp.Name(), dest); err != nil {
		return "", errors.Wrapf(err, "dimacs: rename to %q", dest)
	}

	return dest, nil
}
