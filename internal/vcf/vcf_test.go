package vcf_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/vcf"
)

var today = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

func record(t *testing.T, name, bday string, phones ...string) *book.Record {
	t.Helper()
	rec, err := book.NewRecord(name)
	require.NoError(t, err)
	for _, p := range phones {
		require.NoError(t, rec.AddPhone(p))
	}
	if bday != "" {
		require.NoError(t, rec.AddBirthday(bday, today))
	}
	return rec
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	records := []*book.Record{
		record(t, "Ann", "15.08.1992", "0931234567", "0501112233"),
		record(t, "Bo", ""),
	}

	require.NoError(t, vcf.Export(&buf, records))
	out := buf.String()

	assert.Contains(t, out, "FN:Ann")
	assert.Contains(t, out, "TEL:0931234567")
	assert.Contains(t, out, "TEL:0501112233")
	assert.Contains(t, out, "BDAY:1992-08-15")
	assert.Contains(t, out, "FN:Bo")
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VCARD"))
	assert.Equal(t, 1, strings.Count(out, "BDAY:"), "contacts without a birthday get no BDAY property")
}

func TestImport_NewContacts(t *testing.T) {
	stream := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Ann\r\n" +
		"TEL:093-123-45-67\r\n" +
		"BDAY:1992-08-15\r\n" +
		"END:VCARD\r\n"

	ab := book.New()
	imported, skipped, err := vcf.Import(strings.NewReader(stream), ab, today)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 0, skipped)

	rec, found := ab.Find("Ann")
	require.True(t, found)

	phones := rec.Phones()
	require.Len(t, phones, 1)
	assert.Equal(t, "0931234567", phones[0].String(), "imported phones are normalized through the domain constructor")

	b, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.08.1992", b.String())
}

func TestImport_MergesIntoExistingRecord(t *testing.T) {
	ab := book.New()
	ab.Add(record(t, "Ann", "15.08.1992", "0931234567"))

	stream := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Ann\r\n" +
		"TEL:0931234567\r\n" +
		"TEL:0501112233\r\n" +
		"BDAY:2000-01-01\r\n" +
		"END:VCARD\r\n"

	imported, skipped, err := vcf.Import(strings.NewReader(stream), ab, today)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, ab.Len(), "cards merge by name instead of duplicating records")

	rec, _ := ab.Find("Ann")
	require.Len(t, rec.Phones(), 2, "the duplicate phone is absorbed, the new one appended")

	b, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.08.1992", b.String(), "an existing birthday is never overwritten")
}

func TestImport_PaddedNameMergesIntoExistingRecord(t *testing.T) {
	ab := book.New()
	ab.Add(record(t, "Ann", "15.08.1992", "0931234567"))

	// FN carries surrounding whitespace; the card must still merge into the
	// existing Ann instead of shadowing her with a fresh empty record.
	stream := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN: Ann \r\n" +
		"TEL:0501112233\r\n" +
		"END:VCARD\r\n"

	imported, skipped, err := vcf.Import(strings.NewReader(stream), ab, today)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, 1, ab.Len())

	rec, found := ab.Find("Ann")
	require.True(t, found)

	phones := rec.Phones()
	require.Len(t, phones, 2, "the existing phone survives the merge")
	assert.Equal(t, "0931234567", phones[0].String())
	assert.Equal(t, "0501112233", phones[1].String())

	b, ok := rec.Birthday()
	require.True(t, ok, "the existing birthday survives the merge")
	assert.Equal(t, "15.08.1992", b.String())
}

func TestImport_SkipsUnusableData(t *testing.T) {
	// First card has no name, second has an invalid phone and a future
	// birthday; the second still imports as a record without either.
	stream := "BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"TEL:0931234567\r\n" +
		"END:VCARD\r\n" +
		"BEGIN:VCARD\r\n" +
		"VERSION:4.0\r\n" +
		"FN:Bo\r\n" +
		"TEL:123\r\n" +
		"BDAY:2099-01-01\r\n" +
		"END:VCARD\r\n"

	ab := book.New()
	imported, skipped, err := vcf.Import(strings.NewReader(stream), ab, today)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, skipped)

	rec, found := ab.Find("Bo")
	require.True(t, found)
	assert.Empty(t, rec.Phones())
	_, ok := rec.Birthday()
	assert.False(t, ok, "a future birthday must not pass the domain check")
}

func TestExportImport_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, vcf.Export(&buf, []*book.Record{
		record(t, "Ann", "15.08.1992", "0931234567"),
	}))

	ab := book.New()
	imported, skipped, err := vcf.Import(&buf, ab, today)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)
	assert.Equal(t, 0, skipped)

	rec, found := ab.Find("Ann")
	require.True(t, found)
	b, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.08.1992", b.String())
}
