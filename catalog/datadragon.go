package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultDataDragonURL is the public Data Dragon CDN.
const DefaultDataDragonURL = "https://ddragon.leagueoflegends.com"

// FallbackVersion is used when the version list cannot be fetched.
const FallbackVersion = "15.11.1"

type championFull struct {
	Data map[string]struct {
		Spells []struct {
			Cooldown []float64 `json:"cooldown"`
		} `json:"spells"`
	} `json:"data"`
}

// ParseChampionFull reads a championFull.json document and returns the
// ultimate cooldowns of every champion. The ultimate is the last spell.
func ParseChampionFull(r io.Reader) (map[string][]float64, error) {
	doc := championFull{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse champion data: %w", err)
	}

	units := make(map[string][]float64, len(doc.Data))
	for id, champ := range doc.Data {
		if len(champ.Spells) == 0 {
			continue
		}

		ult := champ.Spells[len(champ.Spells)-1]
		if len(ult.Cooldown) == 0 {
			continue
		}

		units[id] = append([]float64(nil), ult.Cooldown...)
	}

	return units, nil
}

// LatestVersion asks Data Dragon for the newest game version. Any failure
// results in FallbackVersion.
func LatestVersion(ctx context.Context, client *http.Client, baseURL string) string {
	url := strings.TrimRight(baseURL, "/") + "/api/versions.json"

	body, err := get(ctx, client, url)
	if err != nil {
		return FallbackVersion
	}
	defer body.Close()

	var versions []string
	if err := json.NewDecoder(body).Decode(&versions); err != nil ||
		len(versions) == 0 {
		return FallbackVersion
	}

	return versions[0]
}

// Fetch builds a catalog from the latest Data Dragon champion data. The
// built-in ability table is kept; the units are replaced by the fetched
// ones.
func Fetch(ctx context.Context, client *http.Client, baseURL string) (*Table, error) {
	version := LatestVersion(ctx, client, baseURL)
	url := fmt.Sprintf("%s/cdn/%s/data/en_US/championFull.json",
		strings.TrimRight(baseURL, "/"), version)

	body, err := get(ctx, client, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	units, err := ParseChampionFull(body)
	if err != nil {
		return nil, err
	}

	t := Default()
	t.Units = units
	t.DataDragonVersion = version

	return t, nil
}

func get(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	rsp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if rsp.StatusCode != http.StatusOK {
		rsp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: status %d", url, rsp.StatusCode)
	}

	return rsp.Body, nil
}
