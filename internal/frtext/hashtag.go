package frtext

import "strings"

// TagSet is an ordered hashtag set. Tokens keep their first-insertion
// order; a token already present is never re-added. The order contract
// matters because marketplaces weight leading hashtags higher.
type TagSet struct {
	tokens []string
	seen   map[string]struct{}
}

// NewTagSet creates an empty tag set.
func NewTagSet() *TagSet {
	return &TagSet{seen: make(map[string]struct{})}
}

// Add appends a token unless it is empty or already present.
// Deduplication is by exact string value.
func (s *TagSet) Add(token string) {
	if token == "" {
		return
	}
	if _, ok := s.seen[token]; ok {
		return
	}
	s.seen[token] = struct{}{}
	s.tokens = append(s.tokens, token)
}

// Len returns the number of tokens in the set.
func (s *TagSet) Len() int {
	return len(s.tokens)
}

// Tokens returns a copy of the tokens in insertion order.
func (s *TagSet) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// String joins the tokens with single spaces, forming the hashtag line.
func (s *TagSet) String() string {
	return strings.Join(s.tokens, " ")
}

// tagReplacer strips the characters that never belong in a hashtag.
var tagReplacer = strings.NewReplacer(" ", "", "'", "", "’", "")

// TagToken lowercases a value and strips spaces and apostrophes,
// producing the body of a hashtag. The leading '#' is left to the
// caller since some tokens are assembled from several parts.
func TagToken(s string) string {
	return tagReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
