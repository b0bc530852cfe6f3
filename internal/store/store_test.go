package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clementmotivates/core/internal/models"
	"github.com/clementmotivates/core/internal/pkg/kv"
)

func newTestStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	backing := kv.NewMemory(0)
	s, err := New(context.Background(), backing, nil)
	require.NoError(t, err)
	return s, backing
}

// slotEquals asserts the persisted copy of key decodes to want.
func slotEquals[T any](t *testing.T, backing *kv.Memory, key string, want T) {
	t.Helper()
	raw, ok, err := backing.Get(context.Background(), key)
	require.NoError(t, err)
	require.True(t, ok, "slot %s was never persisted", key)
	var got T
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Equal(t, want, got)
}

func TestHydrateEmptyBackingUsesDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	require.Equal(t, defaultServices(), s.Services())
	require.Equal(t, defaultPortfolio(), s.Portfolio())
	require.Equal(t, defaultBlogPosts(), s.BlogPosts())
	require.Equal(t, defaultHeroSlides(), s.HeroSlides())
	require.Equal(t, defaultAboutData(), s.About())
	require.Equal(t, defaultContactData(), s.Contact())
	require.Empty(t, s.Messages())
	require.Empty(t, s.Media())
}

func TestHydratePrefersStoredContent(t *testing.T) {
	backing := kv.NewMemory(0)
	stored := []models.ServiceItem{{ID: "coaching", Title: "Coaching"}}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, backing.Set(context.Background(), keyServices, string(raw)))

	s, err := New(context.Background(), backing, nil)
	require.NoError(t, err)
	require.Equal(t, stored, s.Services())
	// untouched slots still default
	require.Equal(t, defaultPortfolio(), s.Portfolio())
}

func TestHydrateCorruptSlotFallsBackToDefaults(t *testing.T) {
	backing := kv.NewMemory(0)
	require.NoError(t, backing.Set(context.Background(), keyBlog, "{definitely not json"))

	s, err := New(context.Background(), backing, nil)
	require.NoError(t, err)
	require.Equal(t, defaultBlogPosts(), s.BlogPosts())
}

func TestAddServiceMirrorsToBacking(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	item := models.ServiceItem{ID: "coaching", Title: "Coaching"}
	require.NoError(t, s.AddService(ctx, item))

	got := s.Services()
	require.Len(t, got, len(defaultServices())+1)
	require.Equal(t, item, got[len(got)-1])
	slotEquals(t, backing, keyServices, got)
}

func TestUpdateServiceMissingIsNoOp(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	found, err := s.UpdateService(ctx, models.ServiceItem{ID: "nope", Title: "x"})
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, defaultServices(), s.Services())

	// nothing was persisted either
	_, ok, err := backing.Get(ctx, keyServices)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteServiceRoundTrip(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	found, err := s.DeleteService(ctx, "web-development")
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, s.Services(), len(defaultServices())-1)
	slotEquals(t, backing, keyServices, s.Services())

	found, err = s.DeleteService(ctx, "web-development")
	require.NoError(t, err)
	require.False(t, found)
}

func TestNumericIDsAreUniqueAndSeeded(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()

	future := time.Now().Add(time.Hour).UnixMilli()
	stored := []models.PortfolioItem{{ID: future, Title: "seeded"}}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, backing.Set(ctx, keyPortfolio, string(raw)))

	s, err := New(ctx, backing, nil)
	require.NoError(t, err)

	first, err := s.AddPortfolio(ctx, models.PortfolioItem{Title: "a"})
	require.NoError(t, err)
	second, err := s.AddPortfolio(ctx, models.PortfolioItem{Title: "b"})
	require.NoError(t, err)

	require.Greater(t, first.ID, future)
	require.Greater(t, second.ID, first.ID)
}

func TestBlogPostUpdateAndDelete(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	post, err := s.AddBlogPost(ctx, models.BlogPost{Title: "Draft", Category: "Growth"})
	require.NoError(t, err)
	require.NotZero(t, post.ID)

	post.Title = "Published"
	found, err := s.UpdateBlogPost(ctx, post)
	require.NoError(t, err)
	require.True(t, found)
	slotEquals(t, backing, keyBlog, s.BlogPosts())

	found, err = s.DeleteBlogPost(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, defaultBlogPosts(), s.BlogPosts())
}

func TestDeleteHeroSlidePreservesOrder(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	slides := s.HeroSlides()
	require.GreaterOrEqual(t, len(slides), 3)

	found, err := s.DeleteHeroSlide(ctx, slides[1].ID)
	require.NoError(t, err)
	require.True(t, found)

	got := s.HeroSlides()
	require.Equal(t, slides[0], got[0])
	require.Equal(t, slides[2], got[1])
}

func TestMessagesPrependNewestFirst(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	first, err := s.AddMessage(ctx, "Ada", "ada@example.com", "General Inquiry", "hello")
	require.NoError(t, err)
	second, err := s.AddMessage(ctx, "Grace", "grace@example.com", "Web Development", "hi")
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID)
	require.False(t, first.Read)

	got := s.Messages()
	require.Len(t, got, 2)
	require.Equal(t, second.ID, got[0].ID)
	require.Equal(t, first.ID, got[1].ID)
	slotEquals(t, backing, keyMessages, got)
}

func TestMarkMessageRead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	m, err := s.AddMessage(ctx, "Ada", "ada@example.com", "General Inquiry", "hello")
	require.NoError(t, err)

	found, err := s.MarkMessageRead(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, found)
	require.True(t, s.Messages()[0].Read)

	// idempotent on an already-read message
	found, err = s.MarkMessageRead(ctx, m.ID)
	require.NoError(t, err)
	require.True(t, found)

	found, err = s.MarkMessageRead(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)
}

func TestReplaceAboutAndContact(t *testing.T) {
	s, backing := newTestStore(t)
	ctx := context.Background()

	about := models.AboutPageData{
		HeroTitle: "New Title",
		Stats:     []models.Stat{{Label: "Clients", Value: "50+"}},
	}
	require.NoError(t, s.ReplaceAbout(ctx, about))
	require.Equal(t, about, s.About())
	slotEquals(t, backing, keyAbout, about)

	contact := models.ContactPageData{Title: "Reach Out", Email: "hello@example.com"}
	require.NoError(t, s.ReplaceContact(ctx, contact))
	require.Equal(t, contact, s.Contact())
	slotEquals(t, backing, keyContact, contact)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s, _ := newTestStore(t)

	snap := s.Services()
	snap[0].Title = "mutated"
	require.NotEqual(t, "mutated", s.Services()[0].Title)

	about := s.About()
	require.NotEmpty(t, about.Stats)
	about.Stats[0].Value = "mutated"
	require.NotEqual(t, "mutated", s.About().Stats[0].Value)
}

// brokenWrites wraps a working store but fails every Set after hydration.
type brokenWrites struct {
	kv.Store
}

var errDiskFull = errors.New("disk full")

func (b brokenWrites) Set(context.Context, string, string) error { return errDiskFull }

func TestPersistFailureLeavesMemoryUntouched(t *testing.T) {
	backing := kv.NewMemory(0)
	ctx := context.Background()
	s, err := New(ctx, brokenWrites{Store: backing}, nil)
	require.NoError(t, err)

	err = s.AddService(ctx, models.ServiceItem{ID: "coaching", Title: "Coaching"})
	require.ErrorIs(t, err, errDiskFull)
	require.Equal(t, defaultServices(), s.Services())

	_, err = s.AddMessage(ctx, "Ada", "ada@example.com", "General Inquiry", "hello")
	require.ErrorIs(t, err, errDiskFull)
	require.Empty(t, s.Messages())
}

func TestQuotaExceededSurfaces(t *testing.T) {
	backing := kv.NewMemory(64)
	ctx := context.Background()
	s, err := New(ctx, backing, nil)
	require.NoError(t, err)

	err = s.AddService(ctx, models.ServiceItem{
		ID:    "big",
		Title: "An entry large enough to overflow a tiny sixty-four byte quota",
	})
	require.ErrorIs(t, err, kv.ErrQuotaExceeded)
	require.Equal(t, defaultServices(), s.Services())
}
