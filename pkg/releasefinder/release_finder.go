// Package releasefinder resolves a downloadable server executable from
// the BeamMP GitHub releases feed.
package releasefinder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type Release struct {
	URL string
	Tag string
}

// Find resolves the release asset with the given name. An empty version
// or "latest" selects the most recent release, anything else must match
// a release tag (a leading "v" is optional).
func Find(_ context.Context, api string, assetName string, version string) (*Release, error) {
	resp, err := http.Get(api) //nolint:bodyclose,noctx,gosec
	if err != nil {
		return nil, errors.WithMessage(err, "failed to get releases")
	}
	defer func(body io.ReadCloser) {
		err := body.Close()
		if err != nil {
			log.Println(err)
		}
	}(resp.Body)

	release, err := findRelease(resp.Body, assetName, version)
	if err != nil {
		return nil, err
	}

	return release, nil
}

type ReleaseNotFoundError struct {
	Asset   string
	Version string
}

func (e ReleaseNotFoundError) Error() string {
	return fmt.Sprintf("failed to find release asset %s (version: %s)", e.Asset, e.Version)
}

type release struct {
	TagName string  `json:"tag_name"` //nolint:tagliatelle
	Assets  []asset `json:"assets"`
}

type asset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"` //nolint:tagliatelle
}

func findRelease(reader io.Reader, assetName string, version string) (*Release, error) {
	var releases []release

	err := json.NewDecoder(reader).Decode(&releases)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to decode releases")
	}

	for _, r := range releases {
		if !tagMatches(r.TagName, version) {
			continue
		}

		a, found := lo.Find(r.Assets, func(a asset) bool {
			return a.Name == assetName
		})
		if !found {
			continue
		}

		return &Release{URL: a.BrowserDownloadURL, Tag: r.TagName}, nil
	}

	return nil, ReleaseNotFoundError{Asset: assetName, Version: version}
}

func tagMatches(tag string, version string) bool {
	if version == "" || version == "latest" {
		return true
	}

	return strings.TrimPrefix(tag, "v") == strings.TrimPrefix(version, "v")
}
