package search

import (
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// minSimilarity is the lowest levenshtein similarity a fuzzy candidate needs.
const minSimilarity = 0.6

// minContains is the shortest query matched by substring containment.
const minContains = 3

// AmenityMatcher maps loosely written amenity names ("wifi", "Wi-Fi") onto
// the labels the catalog actually uses ("Free WiFi").
type AmenityMatcher struct {
	labels []string          // catalog order
	byNorm map[string]string // normalized -> label
	cm     *closestmatch.ClosestMatch
}

func NewAmenityMatcher(labels []string) *AmenityMatcher {
	m := &AmenityMatcher{byNorm: make(map[string]string, len(labels))}
	keys := make([]string, 0, len(labels))
	for _, l := range labels {
		n := normalize(l)
		if n == "" {
			continue
		}
		if _, dup := m.byNorm[n]; dup {
			continue
		}
		m.byNorm[n] = l
		m.labels = append(m.labels, l)
		keys = append(keys, n)
	}
	if len(keys) > 0 {
		m.cm = closestmatch.New(keys, []int{2, 3})
	}
	return m
}

// Match returns the catalog label for name, or false when nothing is close
// enough. Exact matches win over containment, containment over fuzzy.
func (m *AmenityMatcher) Match(name string) (string, bool) {
	q := normalize(name)
	if q == "" {
		return "", false
	}
	if l, ok := m.byNorm[q]; ok {
		return l, true
	}
	if len(q) >= minContains {
		for _, l := range m.labels {
			if strings.Contains(normalize(l), q) {
				return l, true
			}
		}
	}
	if m.cm == nil {
		return "", false
	}
	if c := m.cm.Closest(q); c != "" && similarity(q, c) >= minSimilarity {
		return m.byNorm[c], true
	}
	return "", false
}

// MatchAll maps every name, dropping the ones without a match and duplicates.
func (m *AmenityMatcher) MatchAll(names []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, n := range names {
		l, ok := m.Match(n)
		if !ok || seen[l] {
			continue
		}
		seen[l] = true
		out = append(out, l)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(unidecode.Unidecode(strings.TrimSpace(s)))
}

func similarity(a, b string) float64 {
	d := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 1
	}
	return 1 - float64(d)/float64(n)
}
