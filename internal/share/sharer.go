package share

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"

	"gh-wrapped/internal/metrics"
)

// LinkedInDelay is how long the paste hint stays up before LinkedIn opens.
const LinkedInDelay = 1500 * time.Millisecond

// Sharer performs the share actions on a composed image.
type Sharer struct {
	Opener    Opener
	Clipboard Clipboard
	Dir       string
	Product   string
	Year      int
	Delay     time.Duration
}

// Result tells the caller which path a copy-and-share took.
type Result struct {
	Copied    bool
	SavedPath string
}

// Save writes the image to Dir under its download name.
func (s *Sharer) Save(username string, png []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path := filepath.Join(s.Dir, FileName(s.Product, s.Year, username))
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	metrics.ShareActionsTotal.WithLabelValues("download").Inc()
	log.Debug().Str("path", path).Msg("Share image saved")
	return path, nil
}

// CopyAndOpen puts the image on the clipboard, calls hint, waits Delay,
// then opens the LinkedIn feed. When the clipboard write
// fails the image is saved instead and LinkedIn is not opened.
func (s *Sharer) CopyAndOpen(ctx context.Context, username string, png []byte, hint func()) (Result, error) {
	if err := s.Clipboard.WriteImage(png); err != nil {
		var ce *ClipboardError
		if !errors.As(err, &ce) {
			err = &ClipboardError{Err: err}
		}
		log.Warn().Err(err).Msg("Clipboard write failed, saving image instead")
		path, saveErr := s.Save(username, png)
		if saveErr != nil {
			return Result{}, saveErr
		}
		return Result{SavedPath: path}, nil
	}
	metrics.ShareActionsTotal.WithLabelValues("clipboard").Inc()
	if hint != nil {
		hint()
	}

	select {
	case <-ctx.Done():
		return Result{Copied: true}, ctx.Err()
	case <-time.After(s.Delay):
	}
	if err := s.Opener.Open(LinkedInFeedURL); err != nil {
		return Result{Copied: true}, fmt.Errorf("open linkedin: %w", err)
	}
	return Result{Copied: true}, nil
}

// PostToX opens the X compose page with the share text.
func (s *Sharer) PostToX(text string) error {
	metrics.ShareActionsTotal.WithLabelValues("x").Inc()
	if err := s.Opener.Open(XIntentURL(text)); err != nil {
		return fmt.Errorf("open x: %w", err)
	}
	return nil
}
