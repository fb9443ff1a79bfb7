// Package links manages the personal bookmark list shown next to the
// course tracker.
package links

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dotcommander/uttrack/internal/store"
)

// Key is the store key the list is saved under.
const Key = "utTrackerPersonalLinks"

// ErrInvalidURL is returned when a bookmark address cannot be parsed into
// an absolute http(s) URL.
var ErrInvalidURL = errors.New("invalid URL")

// Link is one bookmark.
type Link struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// DisplayLabel returns the label, or the URL when the label is empty.
func (l Link) DisplayLabel() string {
	if l.Label != "" {
		return l.Label
	}
	return l.URL
}

// Normalize keeps the entries of a decoded array that carry a non-empty id
// and url, trimming every field. Anything else yields an empty list.
func Normalize(raw any) []Link {
	items, ok := raw.([]any)
	if !ok {
		return []Link{}
	}
	out := make([]Link, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		l := Link{
			ID:    trimmed(m["id"]),
			Label: trimmed(m["label"]),
			URL:   trimmed(m["url"]),
		}
		if l.ID == "" || l.URL == "" {
			continue
		}
		out = append(out, l)
	}
	return out
}

func trimmed(v any) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

var schemePrefix = regexp.MustCompile(`(?i)^https?://`)

// NormalizeURL trims raw, defaults the scheme to https and returns the
// canonical form of the address.
func NormalizeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("empty address: %w", ErrInvalidURL)
	}
	if !schemePrefix.MatchString(s) {
		s = "https://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Hostname() == "" {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String(), nil
}

// New builds a bookmark with a fresh id. An empty label falls back to the
// normalized URL.
func New(label, rawURL string) (Link, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return Link{}, err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		label = u
	}
	return Link{ID: uuid.NewString(), Label: label, URL: u}, nil
}

// Remove returns list without the entry whose id matches. removed is false
// when no entry matched.
func Remove(list []Link, id string) (out []Link, removed bool) {
	out = make([]Link, 0, len(list))
	for _, l := range list {
		if l.ID == id {
			removed = true
			continue
		}
		out = append(out, l)
	}
	return out, removed
}

// FaviconURL returns the icon service address for the host of target, or ""
// when target has no host.
func FaviconURL(target string) string {
	u, err := url.Parse(target)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return "https://www.google.com/s2/favicons?domain=" + url.QueryEscape(u.Hostname()) + "&sz=64"
}

// Repository loads and saves the bookmark list.
type Repository struct {
	kv     store.KV
	logger *zap.Logger
}

// NewRepository returns a repository over kv. A nil logger is replaced by a
// no-op one.
func NewRepository(kv store.KV, logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{kv: kv, logger: logger}
}

// Load returns the stored list. Missing or malformed data yields an empty
// list.
func (r *Repository) Load() ([]Link, error) {
	data, err := r.kv.Get(Key)
	if errors.Is(err, store.ErrNotFound) {
		return []Link{}, nil
	}
	if err != nil {
		return nil, err
	}
	return r.Decode(data), nil
}

// Decode parses a stored blob. Malformed data is logged and yields an empty
// list.
func (r *Repository) Decode(data []byte) []Link {
	if data == nil {
		return []Link{}
	}
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		r.logger.Error("Discarding malformed bookmark data", zap.String("key", Key), zap.Error(err))
		return []Link{}
	}
	return Normalize(raw)
}

// Encode renders list in the stored form.
func Encode(list []Link) ([]byte, error) {
	if list == nil {
		list = []Link{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal bookmarks: %w", err)
	}
	return data, nil
}

// Save replaces the stored list.
func (r *Repository) Save(list []Link) error {
	data, err := Encode(list)
	if err != nil {
		return err
	}
	if err := r.kv.Set(Key, data); err != nil {
		return fmt.Errorf("failed to save bookmarks: %w", err)
	}
	return nil
}

// Add appends a new bookmark and persists the list.
func (r *Repository) Add(label, rawURL string) (Link, error) {
	l, err := New(label, rawURL)
	if err != nil {
		return Link{}, err
	}
	list, err := r.Load()
	if err != nil {
		return Link{}, err
	}
	if err := r.Save(append(list, l)); err != nil {
		return Link{}, err
	}
	r.logger.Debug("Added bookmark", zap.String("id", l.ID), zap.String("url", l.URL))
	return l, nil
}

// Remove deletes the bookmark with id and persists the list.
func (r *Repository) Remove(id string) (bool, error) {
	list, err := r.Load()
	if err != nil {
		return false, err
	}
	out, removed := Remove(list, id)
	if !removed {
		return false, nil
	}
	return true, r.Save(out)
}
