package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clementmotivates/core/internal/models"
	"github.com/clementmotivates/core/internal/pkg/kv"
)

func TestAddMediaImage(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	item, err := s.AddMedia(ctx, strings.NewReader("fake-png-bytes"), "logo.png", "image/png")
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, "logo.png", item.Name)
	require.Equal(t, models.MediaImage, item.Type)
	require.True(t, strings.HasPrefix(item.URL, "data:image/png;base64,"))

	got := s.Media()
	require.Len(t, got, 1)
	require.Equal(t, item, got[0])
	slotEquals(t, backing, keyMedia, got)
}

func TestAddMediaDefaultsMimeToDocument(t *testing.T) {
	s, _ := newTestStore(t)

	item, err := s.AddMedia(context.Background(), strings.NewReader("%PDF-1.7"), "deck.pdf", "")
	require.NoError(t, err)
	require.Equal(t, models.MediaDocument, item.Type)
	require.True(t, strings.HasPrefix(item.URL, "data:application/octet-stream;base64,"))
}

func TestAddMediaPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddMedia(ctx, strings.NewReader("a"), "a.png", "image/png")
	require.NoError(t, err)
	second, err := s.AddMedia(ctx, strings.NewReader("b"), "b.png", "image/png")
	require.NoError(t, err)

	got := s.Media()
	require.Equal(t, []string{second.ID, first.ID}, []string{got[0].ID, got[1].ID})
}

func TestAddMediaRejectsOversizeBeforeWriting(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()
	s, err := New(ctx, backing, nil, WithMediaLimit(64))
	require.NoError(t, err)

	_, err = s.AddMedia(ctx, strings.NewReader(strings.Repeat("x", 200)), "big.png", "image/png")
	require.ErrorIs(t, err, ErrMediaTooLarge)
	require.Empty(t, s.Media())

	_, ok, err := backing.Get(ctx, keyMedia)
	require.NoError(t, err)
	require.False(t, ok)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestAddMediaReadFailure(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.AddMedia(context.Background(), failingReader{}, "x.png", "image/png")
	require.ErrorIs(t, err, ErrMediaRead)
	require.Empty(t, s.Media())
}

func TestDeleteMedia(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	item, err := s.AddMedia(ctx, strings.NewReader("bytes"), "x.png", "image/png")
	require.NoError(t, err)

	found, err := s.DeleteMedia(ctx, item.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Empty(t, s.Media())

	found, err = s.DeleteMedia(ctx, item.ID)
	require.NoError(t, err)
	require.False(t, found)
}
