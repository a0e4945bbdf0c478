package compositor

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"

	_ "golang.org/x/image/webp"
)

// ImageLoadError reports that the avatar could not be fetched or decoded.
// No share image is produced when it occurs.
type ImageLoadError struct {
	URL string
	Err error
}

func (e *ImageLoadError) Error() string {
	return fmt.Sprintf("load avatar %q: %v", e.URL, e.Err)
}

func (e *ImageLoadError) Unwrap() error { return e.Err }

const maxAvatarBytes = 10 << 20

func loadAvatar(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	if url == "" {
		return nil, &ImageLoadError{URL: url, Err: fmt.Errorf("no avatar url")}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &ImageLoadError{URL: url, Err: err}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, &ImageLoadError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ImageLoadError{URL: url, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxAvatarBytes))
	if err != nil {
		return nil, &ImageLoadError{URL: url, Err: err}
	}
	return img, nil
}
