package deal

import "github.com/jonesrussell/dealwatch/internal/textutil"

// Dedupe merges records in a single stable pass: the first occurrence wins.
// A record is dropped when its non-empty URL was already seen, or when its
// normalized title key was already seen. Records with an empty URL and an
// empty title cannot collide and are always kept. Dedupe is idempotent.
func Dedupe(records []Record) []Record {
	seenURL := make(map[string]struct{}, len(records))
	seenTitle := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))

	for _, rec := range records {
		url := rec.URL
		titleKey := textutil.TitleKey(rec.Title)

		if url != "" {
			if _, dup := seenURL[url]; dup {
				continue
			}
		}

		if titleKey != "" {
			if _, dup := seenTitle[titleKey]; dup {
				continue
			}
		}

		if url != "" {
			seenURL[url] = struct{}{}
		}
		if titleKey != "" {
			seenTitle[titleKey] = struct{}{}
		}

		out = append(out, rec)
	}

	return out
}
