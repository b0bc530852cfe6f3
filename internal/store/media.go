package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clementmotivates/core/internal/models"
)

// DefaultMaxEncodedBytes bounds the encoded size of one media entry. It is
// deliberately below the backing-store quota so a single upload can never
// fill the whole installation.
const DefaultMaxEncodedBytes = 3_000_000

var (
	// ErrMediaTooLarge is returned when the encoded upload exceeds the limit.
	ErrMediaTooLarge = errors.New("media file too large for content storage")
	// ErrMediaRead is returned when the upload body could not be read.
	ErrMediaRead = errors.New("media file could not be read")
)

// Media returns the media library newest-first.
func (s *Store) Media() []models.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.media)
}

// AddMedia drains r, encodes the bytes as a self-contained data URL, and
// prepends the resulting entry to the media library. Entries whose encoding
// exceeds the configured limit are rejected before anything is written.
// The read happens outside the store lock; the mutation is applied in one
// step once the bytes are fully in hand.
func (s *Store) AddMedia(ctx context.Context, r io.Reader, name, mimeType string) (models.MediaItem, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return models.MediaItem{}, fmt.Errorf("%w: %v", ErrMediaRead, err)
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	encoded := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
	if len(encoded) > s.maxEncoded {
		return models.MediaItem{}, ErrMediaTooLarge
	}

	mediaType := models.MediaDocument
	if strings.HasPrefix(mimeType, "image") {
		mediaType = models.MediaImage
	}
	item := models.MediaItem{
		ID:   uuid.NewString(),
		URL:  encoded,
		Name: name,
		Date: time.Now().Format(displayDate),
		Type: mediaType,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]models.MediaItem{item}, s.media...)
	if err := s.persist(ctx, keyMedia, next); err != nil {
		return models.MediaItem{}, err
	}
	s.media = next
	return item, nil
}

func (s *Store) DeleteMedia(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.media), func(v models.MediaItem) bool { return v.ID == id })
	if len(next) == len(s.media) {
		return false, nil
	}
	if err := s.persist(ctx, keyMedia, next); err != nil {
		return true, err
	}
	s.media = next
	return true, nil
}
