package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(in, "Name?", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })
	isTerminal = func(int) bool { return true }

	in := bufio.NewReader(strings.NewReader("not used\n"))
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	var out bytes.Buffer
	pw, err := GetPassword(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)

	readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }
	_, err = GetPassword(in, &out)
	require.Error(t, err)
}

func TestGetPasswordFromPipe(t *testing.T) {
	old := isTerminal
	t.Cleanup(func() { isTerminal = old })
	isTerminal = func(int) bool { return false }

	in := bufio.NewReader(strings.NewReader(" pass word \nlast"))
	var out bytes.Buffer
	pw, err := GetPassword(in, &out)
	require.NoError(t, err)
	assert.Equal(t, " pass word ", pw)

	pw, err = GetPassword(in, &out)
	require.NoError(t, err)
	assert.Equal(t, "last", pw)

	_, err = GetPassword(in, &out)
	require.Error(t, err)
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs([]string{"3", "14", "approved"}, 2, "set <req> <item> <status>")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 14}, ids)

	_, err = parseIDs([]string{"3"}, 2, "set <req> <item> <status>")
	require.ErrorContains(t, err, "usage")

	_, err = parseIDs([]string{"x"}, 1, "show <req>")
	require.ErrorContains(t, err, "invalid id")

	_, err = parseIDs([]string{"0"}, 1, "show <req>")
	require.Error(t, err)
}
