package service

import (
	"github.com/lezzetly/lezzetly-backend/internal/catalog"
	"github.com/lezzetly/lezzetly-backend/internal/locale"
)

// TagService canonicalizes free-text tags and cuisines against the fixed
// catalog dictionaries. All methods are pure with respect to the catalog,
// which is read-only and shared between requests.
type TagService struct {
	catalog *catalog.Catalog
}

// NewTagService creates a TagService over the given catalog.
func NewTagService(c *catalog.Catalog) *TagService {
	return &TagService{catalog: c}
}

// CanonicalKey derives the dedupe/lookup key for a tag: the slugified English
// value when present, else the first non-empty locale value.
func CanonicalKey(tag locale.Label) string {
	complete := locale.Complete(tag)
	if v := complete[locale.English]; v != "" {
		return locale.Slugify(v)
	}
	if v, _, ok := locale.FirstNonEmpty(complete); ok {
		return locale.Slugify(v)
	}
	return ""
}

// HardenTags replaces every tag whose canonical key matches a catalog entry
// with the catalog's full multilingual entry, so partially-translated tags
// become fully translated. Unknown tags pass through unchanged.
func (s *TagService) HardenTags(tags []locale.Label) []locale.Label {
	out := make([]locale.Label, 0, len(tags))
	for _, tag := range tags {
		if entry, ok := s.catalog.Tags[CanonicalKey(tag)]; ok {
			out = append(out, locale.Clone(entry))
			continue
		}
		out = append(out, locale.Complete(tag))
	}
	return out
}

// DedupeTags drops tags whose canonical key repeats; the first occurrence
// wins. Tags with no derivable key (blank labels) are dropped entirely.
func (s *TagService) DedupeTags(tags []locale.Label) []locale.Label {
	seen := make(map[string]struct{}, len(tags))
	out := make([]locale.Label, 0, len(tags))
	for _, tag := range tags {
		key := CanonicalKey(tag)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// DropForbidden reports whether a tag must be discarded because any locale
// value normalizes to a denylisted term.
func (s *TagService) DropForbidden(tag locale.Label) bool {
	for _, code := range locale.Supported {
		v := tag[code]
		if v == "" {
			continue
		}
		if _, bad := s.catalog.ForbiddenTags[locale.Slugify(v)]; bad {
			return true
		}
	}
	return false
}

// FilterForbidden removes denylisted tags from the list.
func (s *TagService) FilterForbidden(tags []locale.Label) []locale.Label {
	out := make([]locale.Label, 0, len(tags))
	for _, tag := range tags {
		if !s.DropForbidden(tag) {
			out = append(out, tag)
		}
	}
	return out
}

// CanonicalizeCuisines maps each cuisine string through the alias table.
// Unknown cuisines fall back to their own slug; blanks and duplicates are
// dropped.
func (s *TagService) CanonicalizeCuisines(cuisines []string) []string {
	seen := make(map[string]struct{}, len(cuisines))
	out := make([]string, 0, len(cuisines))
	for _, raw := range cuisines {
		folded := locale.Fold(raw)
		id, ok := s.catalog.CuisineAliases[folded]
		if !ok {
			id = locale.Slugify(raw)
		}
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
