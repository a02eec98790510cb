package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func joined(segs []Segment) string {
	var b strings.Builder
	for _, s := range segs {
		b.WriteString(s.Text)
	}
	return b.String()
}

func matched(segs []Segment) []string {
	out := []string{}
	for _, s := range segs {
		if s.Match {
			out = append(out, s.Text)
		}
	}
	return out
}

func TestAnnotate_RoundTrip(t *testing.T) {
	texts := []string{
		"Intro to programming",
		"  leading and trailing  ",
		"tabs\tand\nnewlines",
		"การเขียนโปรแกรม คอมพิวเตอร์ เบื้องต้น",
		"punctuation, (parens) and C++!",
		"x",
	}
	for _, text := range texts {
		assert.Equal(t, text, joined(Annotate(text, "programming and คอมพิวเตอร์")))
	}
}

func TestAnnotate_MarksSharedWords(t *testing.T) {
	segs := Annotate("Data Structures, and Algorithms.", "algorithms and data analysis")
	assert.Equal(t, []string{"Data", "and", "Algorithms."}, matched(segs))
}

func TestAnnotate_ThaiWords(t *testing.T) {
	segs := Annotate("วิชา คอมพิวเตอร์ เบื้องต้น", "พื้นฐาน คอมพิวเตอร์")
	assert.Equal(t, []string{"คอมพิวเตอร์"}, matched(segs))
}

func TestAnnotate_ShortWordsNeverMatch(t *testing.T) {
	segs := Annotate("a b c I/O", "a b c io")
	assert.Equal(t, []string{"I/O"}, matched(segs))

	segs = Annotate("C# a", "c a")
	assert.Empty(t, matched(segs))
}

func TestAnnotate_WhitespaceIsSeparateSegment(t *testing.T) {
	segs := Annotate("one  two", "two")
	assert.Equal(t, []Segment{
		{Text: "one"},
		{Text: "  "},
		{Text: "two", Match: true},
	}, segs)
}

func TestAnnotate_EmptyInputs(t *testing.T) {
	assert.Empty(t, Annotate("", "anything"))
	assert.NotNil(t, Annotate("", "anything"))
	assert.Empty(t, matched(Annotate("some text", "")))
}
