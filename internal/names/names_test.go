package names

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- name list ---

func TestWriteNameList_Plain(t *testing.T) {
	records := []NameRecord{
		{DexNumber: "0001", EnglishName: "Bulbasaur", GermanName: "Bisasam"},
		{DexNumber: "0122", EnglishName: "Mr. Mime", GermanName: "Pantimos"},
	}

	var buf bytes.Buffer
	var calls []int
	err := WriteNameList(&buf, records, FormatPlain, func(done int) { calls = append(calls, done) })
	require.NoError(t, err)

	assert.Equal(t, "0001,Bulbasaur,Bisasam\n0122,Mr. Mime,Pantimos\n", buf.String())
	assert.Equal(t, []int{1, 2}, calls)
}

func TestWriteNameList_PlainDoesNotEscapeCommas(t *testing.T) {
	records := []NameRecord{{DexNumber: "9999", EnglishName: "Foo, Bar", GermanName: "Baz"}}

	var buf bytes.Buffer
	require.NoError(t, WriteNameList(&buf, records, FormatPlain, nil))

	assert.Equal(t, "9999,Foo, Bar,Baz\n", buf.String())
}

func TestWriteNameList_CSVQuotesCommas(t *testing.T) {
	records := []NameRecord{{DexNumber: "9999", EnglishName: "Foo, Bar", GermanName: "Baz"}}

	var buf bytes.Buffer
	require.NoError(t, WriteNameList(&buf, records, FormatCSV, nil))

	assert.Equal(t, "9999,\"Foo, Bar\",Baz\n", buf.String())
}

func TestWriteNameList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteNameList(&buf, nil, FormatPlain, nil))
	assert.Empty(t, buf.String())
}

func TestWriteNameList_UnknownFormat(t *testing.T) {
	err := WriteNameList(&bytes.Buffer{}, nil, Format("tsv"), nil)
	assert.Error(t, err)
}

// --- entries ---

func TestReadEntries_Plain(t *testing.T) {
	in := "1,Bulbasaur,Bisasam\n122,Mr. Mime,Pantimos\n"

	entries, err := ReadEntries(strings.NewReader(in), FormatPlain)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Index: "1", Name: "Bulbasaur", GermanName: "Bisasam"}, entries[0])
	assert.Equal(t, Entry{Index: "122", Name: "Mr. Mime", GermanName: "Pantimos"}, entries[1])
}

func TestReadEntries_PlainCRLF(t *testing.T) {
	entries, err := ReadEntries(strings.NewReader("1,Bulbasaur,Bisasam\r\n"), FormatPlain)
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "Bisasam", entries[0].GermanName)
}

func TestReadEntries_PlainRejectsBadLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		line string
	}{
		{"too few fields", "1,Bulbasaur,Bisasam\n2,Ivysaur\n", "line 2"},
		{"too many fields", "1,Foo, Bar,Baz\n", "line 1"},
		{"blank line", "1,Bulbasaur,Bisasam\n\n2,Ivysaur,Bisaknosp\n", "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ReadEntries(strings.NewReader(tt.in), FormatPlain)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFieldCount))
			assert.Contains(t, err.Error(), tt.line)
			assert.Nil(t, entries)
		})
	}
}

func TestReadEntries_CSV(t *testing.T) {
	in := "1,Bulbasaur,Bisasam\n9999,\"Foo, Bar\",Baz\n"

	entries, err := ReadEntries(strings.NewReader(in), FormatCSV)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Foo, Bar", entries[1].Name)
}

func TestReadEntries_CSVRejectsWrongFieldCount(t *testing.T) {
	_, err := ReadEntries(strings.NewReader("1,Bulbasaur,Bisasam\n2,Ivysaur\n"), FormatCSV)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFieldCount))
	assert.Contains(t, err.Error(), "line 2")
}

// --- slug rows ---

func TestSlugPipeline(t *testing.T) {
	in := "1,Bulbasaur,Bisasam\n122,Mr. Mime,Pantimos\n669,Flabébé,Flabébé\n"

	entries, err := ReadEntries(strings.NewReader(in), FormatPlain)
	require.NoError(t, err)

	var out bytes.Buffer
	var last int
	require.NoError(t, WriteSlugRecords(&out, BuildSlugRecords(entries), func(done int) { last = done }))

	assert.Equal(t, 3, last)
	assert.Equal(t,
		"Bulbasaur,Bisasam,bulbasaur\r\n"+
			"Mr. Mime,Pantimos,mr-mime\r\n"+
			"Flabébé,Flabébé,flabébé\r\n",
		out.String())
}

func TestBuildSlugRecords_KeepsOrder(t *testing.T) {
	got := BuildSlugRecords([]Entry{
		{Index: "2", Name: "Ivysaur", GermanName: "Bisaknosp"},
		{Index: "1", Name: "Bulbasaur", GermanName: "Bisasam"},
	})

	require.Len(t, got, 2)
	assert.Equal(t, SlugRecord{Name: "Ivysaur", GermanName: "Bisaknosp", Slug: "ivysaur"}, got[0])
	assert.Equal(t, "bulbasaur", got[1].Slug)
}

func TestWriteSlugRecords_QuotesEmbeddedCommas(t *testing.T) {
	var out bytes.Buffer
	err := WriteSlugRecords(&out, []SlugRecord{{Name: "Foo, Bar", GermanName: "Baz", Slug: "foo,-bar"}}, nil)
	require.NoError(t, err)

	assert.Equal(t, "\"Foo, Bar\",Baz,\"foo,-bar\"\r\n", out.String())
}

func TestReadSlugRecords_RoundTripsWriter(t *testing.T) {
	records := BuildSlugRecords([]Entry{
		{Index: "1", Name: "Bulbasaur", GermanName: "Bisasam"},
		{Index: "83", Name: "Farfetch'd", GermanName: "Porenta"},
	})

	var buf bytes.Buffer
	require.NoError(t, WriteSlugRecords(&buf, records, nil))

	got, err := ReadSlugRecords(&buf)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.Equal(t, "farfetchd", got[1].Slug)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, f)

	f, err = ParseFormat(" CSV ")
	require.NoError(t, err)
	assert.Equal(t, FormatCSV, f)

	_, err = ParseFormat("json")
	assert.Error(t, err)
}
