package state

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SetQuery replaces the type-ahead query and places the caret at cursor.
// Starting a search remembers the highlighted row; a search highlights its
// best match; clearing it returns to the remembered row, or to the applied
// value when that row is gone.
func (p *Picker) SetQuery(query string, cursor int) {
	wasSearching := p.searching()
	p.Query = query
	p.QueryCursor = min(max(cursor, 0), utf8.RuneCountInString(query))

	switch {
	case p.searching():
		if !wasSearching {
			p.LastCursor = p.Cursor
		}
		p.Options = FilterOptions(p.Full, p.Query)
		p.Cursor = max(BestMatchIndex(p.Options, p.Query), 0)
	case wasSearching:
		p.Options = cloneOptions(p.Full)
		p.Cursor = p.cursorAfterSearch()
		p.LastCursor = -1
	default:
		p.Options = cloneOptions(p.Full)
	}
	if p.ViewportOffset >= len(p.Options) {
		p.ViewportOffset = 0
	}
}

// refilter recomputes the visible options for the current query and keeps
// the cursor inside them.
func (p *Picker) refilter() {
	p.Options = FilterOptions(p.Full, p.Query)
	p.Cursor = min(max(p.Cursor, 0), max(len(p.Options)-1, 0))
}

func (p *Picker) searching() bool {
	return strings.TrimSpace(p.Query) != ""
}

func (p *Picker) cursorAfterSearch() int {
	if p.LastCursor >= 0 && p.LastCursor < len(p.Options) {
		return p.LastCursor
	}
	return max(p.IndexOf(p.Value), 0)
}

// QueryCursorPos returns the rune offset of the query caret.
func (p *Picker) QueryCursorPos() int {
	return min(max(p.QueryCursor, 0), utf8.RuneCountInString(p.Query))
}

// spliceQuery replaces runes [from, to) of the query with insert and leaves
// the caret after the inserted text.
func (p *Picker) spliceQuery(from, to int, insert []rune) {
	runes := []rune(p.Query)
	updated := make([]rune, 0, len(runes)-(to-from)+len(insert))
	updated = append(updated, runes[:from]...)
	updated = append(updated, insert...)
	updated = append(updated, runes[to:]...)
	p.SetQuery(string(updated), from+len(insert))
}

// InsertQueryText inserts text at the caret.
func (p *Picker) InsertQueryText(text string) bool {
	if text == "" {
		return false
	}
	pos := p.QueryCursorPos()
	p.spliceQuery(pos, pos, []rune(text))
	return true
}

// DeleteQueryRuneBackward deletes the rune before the caret.
func (p *Picker) DeleteQueryRuneBackward() bool {
	pos := p.QueryCursorPos()
	if pos == 0 {
		return false
	}
	p.spliceQuery(pos-1, pos, nil)
	return true
}

// DeleteQueryWordBackward deletes the word before the caret along with any
// spaces between it and the caret.
func (p *Picker) DeleteQueryWordBackward() bool {
	pos := p.QueryCursorPos()
	if pos == 0 {
		return false
	}
	p.spliceQuery(wordStart([]rune(p.Query), pos), pos, nil)
	return true
}

func wordStart(runes []rune, pos int) int {
	i := pos
	for i > 0 && unicode.IsSpace(runes[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(runes[i-1]) {
		i--
	}
	return i
}

// ClearQuery empties the query. It reports whether there was one.
func (p *Picker) ClearQuery() bool {
	if p.Query == "" {
		return false
	}
	p.SetQuery("", 0)
	return true
}

// MoveQueryCursorStart moves the query cursor to the start.
func (p *Picker) MoveQueryCursorStart() bool {
	if p.QueryCursorPos() == 0 {
		return false
	}
	p.QueryCursor = 0
	return true
}

// MoveQueryCursorEnd moves the query cursor to the end.
func (p *Picker) MoveQueryCursorEnd() bool {
	end := len([]rune(p.Query))
	if p.QueryCursorPos() == end {
		return false
	}
	p.QueryCursor = end
	return true
}

// FilterOptions returns the options whose labels match query. While a
// query names at least one real value the "any" option stays first, so a
// constraint can still be dropped from the search results. A query that
// matches nothing yields no options, and "any" is listed on its own only
// when the query matches its label.
func FilterOptions(opts []Option, query string) []Option {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneOptions(opts)
	}
	matches := matchingIndexes(opts, trimmed)
	realMatch := false
	for i := range matches {
		if opts[i].Value != "" {
			realMatch = true
			break
		}
	}
	filtered := make([]Option, 0, len(matches)+1)
	for i, o := range opts {
		_, ok := matches[i]
		if o.Value == "" {
			ok = ok || realMatch
		}
		if ok {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// matchingIndexes ranks labels fuzzily and falls back to a case-insensitive
// substring test when nothing ranks.
func matchingIndexes(opts []Option, query string) map[int]struct{} {
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	matches := make(map[int]struct{})
	for _, rank := range fuzzy.RankFindNormalizedFold(query, labels) {
		matches[rank.OriginalIndex] = struct{}{}
	}
	if len(matches) == 0 {
		lower := strings.ToLower(query)
		for i, label := range labels {
			if strings.Contains(strings.ToLower(label), lower) {
				matches[i] = struct{}{}
			}
		}
	}
	return matches
}

// BestMatchIndex returns the best index for query among opts, preferring exact
// then prefix then substring matches before falling back to fuzzy distance.
func BestMatchIndex(opts []Option, query string) int {
	trimmed := strings.TrimSpace(query)
	if len(opts) == 0 {
		return -1
	}
	if trimmed == "" {
		return 0
	}
	lower := strings.ToLower(trimmed)
	for i, o := range opts {
		if o.Value != "" && strings.EqualFold(o.Label, trimmed) {
			return i
		}
	}
	for i, o := range opts {
		if o.Value != "" && strings.HasPrefix(strings.ToLower(o.Label), lower) {
			return i
		}
	}
	for i, o := range opts {
		if o.Value != "" && strings.Contains(strings.ToLower(o.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(opts))
	for i, o := range opts {
		labels[i] = o.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance {
			best = rank
			continue
		}
		if rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex {
			best = rank
		}
	}
	if best.OriginalIndex < 0 || best.OriginalIndex >= len(opts) {
		return 0
	}
	return best.OriginalIndex
}

func cloneOptions(opts []Option) []Option {
	dup := make([]Option, len(opts))
	copy(dup, opts)
	return dup
}
