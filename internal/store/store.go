// Package store owns every content collection of the site and is the only
// component that touches the backing key-value store. Each slot lives in
// memory and is mirrored to the backing store on every mutation; the
// persisted copy is written first, so a storage failure never leaves memory
// and disk disagreeing.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clementmotivates/core/internal/models"
	"github.com/clementmotivates/core/internal/pkg/kv"
)

// Backing-store keys, one per slot. The cm_ names are part of the data
// format; an exported browser localStorage dump imports verbatim.
const (
	keyServices  = "cm_services"
	keyPortfolio = "cm_portfolio"
	keyBlog      = "cm_blog"
	keyHero      = "cm_hero"
	keyMessages  = "cm_messages"
	keyAbout     = "cm_about"
	keyContact   = "cm_contact"
	keyMedia     = "cm_media"
)

// displayDate renders the dates shown on messages and media entries.
const displayDate = "1/2/2006"

// Store is the single source of truth for site content.
type Store struct {
	mu  sync.RWMutex
	kv  kv.Store
	log *zap.Logger

	services   []models.ServiceItem
	portfolio  []models.PortfolioItem
	blogPosts  []models.BlogPost
	heroSlides []models.HeroSlide
	messages   []models.ContactMessage
	about      models.AboutPageData
	contact    models.ContactPageData
	media      []models.MediaItem

	lastNumericID int64
	maxEncoded    int
}

// Option customizes a Store.
type Option func(*Store)

// WithMediaLimit overrides the maximum encoded media size in bytes.
func WithMediaLimit(limit int) Option {
	return func(s *Store) {
		if limit > 0 {
			s.maxEncoded = limit
		}
	}
}

// New hydrates every slot from the backing store, falling back to the
// built-in defaults for absent or unparsable values. A backing store that
// cannot be read at all fails construction.
func New(ctx context.Context, backing kv.Store, logger *zap.Logger, opts ...Option) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{kv: backing, log: logger, maxEncoded: DefaultMaxEncodedBytes}
	for _, opt := range opts {
		opt(s)
	}

	var err error
	if s.services, err = loadSlot(ctx, s, keyServices, defaultServices()); err != nil {
		return nil, err
	}
	if s.portfolio, err = loadSlot(ctx, s, keyPortfolio, defaultPortfolio()); err != nil {
		return nil, err
	}
	if s.blogPosts, err = loadSlot(ctx, s, keyBlog, defaultBlogPosts()); err != nil {
		return nil, err
	}
	if s.heroSlides, err = loadSlot(ctx, s, keyHero, defaultHeroSlides()); err != nil {
		return nil, err
	}
	if s.messages, err = loadSlot(ctx, s, keyMessages, []models.ContactMessage{}); err != nil {
		return nil, err
	}
	if s.about, err = loadSlot(ctx, s, keyAbout, defaultAboutData()); err != nil {
		return nil, err
	}
	if s.contact, err = loadSlot(ctx, s, keyContact, defaultContactData()); err != nil {
		return nil, err
	}
	if s.media, err = loadSlot(ctx, s, keyMedia, []models.MediaItem{}); err != nil {
		return nil, err
	}

	s.seedNumericID()
	return s, nil
}

// loadSlot reads one slot. Absent keys and unparsable values both yield the
// default; only a failing backing store is an error.
func loadSlot[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return def, fmt.Errorf("hydrate %s: %w", key, err)
	}
	if !ok {
		return def, nil
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.log.Warn("stored slot is unparsable, using defaults",
			zap.String("key", key), zap.Error(err))
		return def, nil
	}
	return v, nil
}

// persist serializes a slot value and mirrors it to the backing store.
func (s *Store) persist(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// seedNumericID positions the id sequence past every numeric id already in
// the store, so hydrated content can never collide with new entries.
func (s *Store) seedNumericID() {
	for _, p := range s.portfolio {
		s.lastNumericID = max(s.lastNumericID, p.ID)
	}
	for _, b := range s.blogPosts {
		s.lastNumericID = max(s.lastNumericID, b.ID)
	}
	for _, h := range s.heroSlides {
		s.lastNumericID = max(s.lastNumericID, h.ID)
	}
}

// nextNumericID returns a strictly increasing millisecond-based id.
// Callers must hold the write lock.
func (s *Store) nextNumericID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastNumericID {
		id = s.lastNumericID + 1
	}
	s.lastNumericID = id
	return id
}

// ---- read snapshots ----

func (s *Store) Services() []models.ServiceItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.services)
}

func (s *Store) Portfolio() []models.PortfolioItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.portfolio)
}

func (s *Store) BlogPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.blogPosts)
}

func (s *Store) HeroSlides() []models.HeroSlide {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.heroSlides)
}

// Messages returns the inbox newest-first.
func (s *Store) Messages() []models.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.messages)
}

func (s *Store) About() models.AboutPageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := s.about
	out.Stats = slices.Clone(s.about.Stats)
	return out
}

func (s *Store) Contact() models.ContactPageData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contact
}

// ---- services (caller-assigned slug ids) ----

func (s *Store) AddService(ctx context.Context, item models.ServiceItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(slices.Clone(s.services), item)
	if err := s.persist(ctx, keyServices, next); err != nil {
		return err
	}
	s.services = next
	return nil
}

func (s *Store) UpdateService(ctx context.Context, item models.ServiceItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(s.services)
	found := false
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			found = true
		}
	}
	if !found {
		return false, nil
	}
	if err := s.persist(ctx, keyServices, next); err != nil {
		return true, err
	}
	s.services = next
	return true, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.services), func(v models.ServiceItem) bool { return v.ID == id })
	if len(next) == len(s.services) {
		return false, nil
	}
	if err := s.persist(ctx, keyServices, next); err != nil {
		return true, err
	}
	s.services = next
	return true, nil
}

// ---- portfolio ----

// AddPortfolio assigns an id, appends the item, and returns the stored copy.
func (s *Store) AddPortfolio(ctx context.Context, item models.PortfolioItem) (models.PortfolioItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.nextNumericID()
	next := append(slices.Clone(s.portfolio), item)
	if err := s.persist(ctx, keyPortfolio, next); err != nil {
		return models.PortfolioItem{}, err
	}
	s.portfolio = next
	return item, nil
}

func (s *Store) UpdatePortfolio(ctx context.Context, item models.PortfolioItem) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(s.portfolio)
	found := false
	for i := range next {
		if next[i].ID == item.ID {
			next[i] = item
			found = true
		}
	}
	if !found {
		return false, nil
	}
	if err := s.persist(ctx, keyPortfolio, next); err != nil {
		return true, err
	}
	s.portfolio = next
	return true, nil
}

func (s *Store) DeletePortfolio(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.portfolio), func(v models.PortfolioItem) bool { return v.ID == id })
	if len(next) == len(s.portfolio) {
		return false, nil
	}
	if err := s.persist(ctx, keyPortfolio, next); err != nil {
		return true, err
	}
	s.portfolio = next
	return true, nil
}

// ---- blog posts ----

func (s *Store) AddBlogPost(ctx context.Context, post models.BlogPost) (models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = s.nextNumericID()
	next := append(slices.Clone(s.blogPosts), post)
	if err := s.persist(ctx, keyBlog, next); err != nil {
		return models.BlogPost{}, err
	}
	s.blogPosts = next
	return post, nil
}

func (s *Store) UpdateBlogPost(ctx context.Context, post models.BlogPost) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(s.blogPosts)
	found := false
	for i := range next {
		if next[i].ID == post.ID {
			next[i] = post
			found = true
		}
	}
	if !found {
		return false, nil
	}
	if err := s.persist(ctx, keyBlog, next); err != nil {
		return true, err
	}
	s.blogPosts = next
	return true, nil
}

func (s *Store) DeleteBlogPost(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.blogPosts), func(v models.BlogPost) bool { return v.ID == id })
	if len(next) == len(s.blogPosts) {
		return false, nil
	}
	if err := s.persist(ctx, keyBlog, next); err != nil {
		return true, err
	}
	s.blogPosts = next
	return true, nil
}

// ---- hero slides (ordered, new slides append) ----

func (s *Store) AddHeroSlide(ctx context.Context, slide models.HeroSlide) (models.HeroSlide, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	slide.ID = s.nextNumericID()
	next := append(slices.Clone(s.heroSlides), slide)
	if err := s.persist(ctx, keyHero, next); err != nil {
		return models.HeroSlide{}, err
	}
	s.heroSlides = next
	return slide, nil
}

func (s *Store) UpdateHeroSlide(ctx context.Context, slide models.HeroSlide) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.Clone(s.heroSlides)
	found := false
	for i := range next {
		if next[i].ID == slide.ID {
			next[i] = slide
			found = true
		}
	}
	if !found {
		return false, nil
	}
	if err := s.persist(ctx, keyHero, next); err != nil {
		return true, err
	}
	s.heroSlides = next
	return true, nil
}

// DeleteHeroSlide removes the matching slide and preserves the relative
// order of the remainder.
func (s *Store) DeleteHeroSlide(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := slices.DeleteFunc(slices.Clone(s.heroSlides), func(v models.HeroSlide) bool { return v.ID == id })
	if len(next) == len(s.heroSlides) {
		return false, nil
	}
	if err := s.persist(ctx, keyHero, next); err != nil {
		return true, err
	}
	s.heroSlides = next
	return true, nil
}

// ---- messages (append-only inbox, newest first) ----

// AddMessage stamps the inquiry with an id and the current date and
// prepends it to the inbox.
func (s *Store) AddMessage(ctx context.Context, name, email, serviceInterest, message string) (models.ContactMessage, error) {
	m := models.ContactMessage{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		ServiceInterest: serviceInterest,
		Message:         message,
		Date:            time.Now().Format(displayDate),
		Read:            false,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append([]models.ContactMessage{m}, s.messages...)
	if err := s.persist(ctx, keyMessages, next); err != nil {
		return models.ContactMessage{}, err
	}
	s.messages = next
	return m, nil
}

// MarkMessageRead flips read to true on the matching message. Already-read
// messages are left alone, so the call is idempotent.
func (s *Store) MarkMessageRead(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := slices.IndexFunc(s.messages, func(m models.ContactMessage) bool { return m.ID == id })
	if idx < 0 {
		return false, nil
	}
	if s.messages[idx].Read {
		return true, nil
	}
	next := slices.Clone(s.messages)
	next[idx].Read = true
	if err := s.persist(ctx, keyMessages, next); err != nil {
		return true, err
	}
	s.messages = next
	return true, nil
}

// ---- page singletons (whole-object replace) ----

func (s *Store) ReplaceAbout(ctx context.Context, data models.AboutPageData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, keyAbout, data); err != nil {
		return err
	}
	s.about = data
	return nil
}

func (s *Store) ReplaceContact(ctx context.Context, data models.ContactPageData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(ctx, keyContact, data); err != nil {
		return err
	}
	s.contact = data
	return nil
}
