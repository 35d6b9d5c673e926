package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"venuebook/internal/service"
)

// ErrNoSource is returned when no seed source is configured.
var ErrNoSource = errors.New("no gallery seed source configured")

const maxSeedBytes = 10 << 20

var client = &http.Client{Timeout: 30 * time.Second}

// LoadGallery reads gallery entries ([{src, alt, category}]) from an http(s) URL or a local file.
func LoadGallery(ctx context.Context, source string) ([]service.ImageInput, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrNoSource
	}

	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch gallery seed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("gallery seed source returned status: %d", resp.StatusCode)
		}
		body = resp.Body
	} else {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("open gallery seed: %w", err)
		}
		body = f
	}
	defer body.Close()

	var entries []service.ImageInput
	if err := json.NewDecoder(io.LimitReader(body, maxSeedBytes)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode gallery seed: %w", err)
	}
	return entries, nil
}
