package review

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Segment is a piece of annotated text. Match marks words that also occur in
// the reference text.
type Segment struct {
	Text  string
	Match bool
}

// Annotate splits text into words and whitespace runs and marks every word
// whose normalised form is longer than one character and occurs among the
// normalised words of reference. Concatenating the segments yields text.
func Annotate(text, reference string) []Segment {
	segments := []Segment{}
	if text == "" {
		return segments
	}

	words := make(map[string]struct{})
	for _, w := range strings.Fields(normalize(reference)) {
		words[w] = struct{}{}
	}

	start := 0
	inSpace := false
	flush := func(end int) {
		if end <= start {
			return
		}
		piece := text[start:end]
		seg := Segment{Text: piece}
		if !inSpace {
			norm := normalize(piece)
			if utf8.RuneCountInString(norm) > 1 {
				_, seg.Match = words[norm]
			}
		}
		segments = append(segments, seg)
		start = end
	}

	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			inSpace = space
			continue
		}
		if space != inSpace {
			flush(i)
			inSpace = space
		}
	}
	flush(len(text))

	return segments
}

// normalize keeps ASCII word characters, whitespace and Thai letters and
// digits, and lower-cases the result.
func normalize(s string) string {
	kept := strings.Map(func(r rune) rune {
		if keepRune(r) {
			return r
		}
		return -1
	}, s)
	return cases.Lower(language.Und).String(kept)
}

func keepRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case r >= 'ก' && r <= '๙':
		return true
	}
	return unicode.IsSpace(r)
}
