package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/cli"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// monday is the reference "today" for all dispatcher tests: 2024-06-10.
var monday = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func newTestApp(t *testing.T, lang string) *cli.App {
	t.Helper()
	cli.DisableColors()
	return cli.NewApp(book.New(), MockClock{CurrentTime: monday}, cli.NewTranslator(lang))
}

func run(t *testing.T, a *cli.App, line string) string {
	t.Helper()
	out, exit := a.Execute(line)
	assert.False(t, exit, "command %q must not terminate the REPL", line)
	return out
}

func TestExecute_EmptyLine(t *testing.T) {
	a := newTestApp(t, "en")
	out, exit := a.Execute("   ")
	assert.Empty(t, out)
	assert.False(t, exit)
}

func TestExecute_UnknownCommand(t *testing.T) {
	a := newTestApp(t, "en")
	out := run(t, a, "frobnicate")
	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "add-birthday", "the full vocabulary is listed")
}

func TestExecute_UsageHintOnMissingArgs(t *testing.T) {
	a := newTestApp(t, "en")
	out := run(t, a, "add John")
	assert.Contains(t, out, "Not enough arguments")
	assert.Contains(t, out, "Usage: add <name> <phone>")
}

func TestExecute_AddAndUpdate(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "add John 0931234567"), "Contact added.")
	assert.Contains(t, run(t, a, "add John 0501112233"), "Contact updated.")

	rec, found := a.Book.Find("John")
	require.True(t, found)
	assert.Len(t, rec.Phones(), 2)
}

func TestExecute_AddInvalidPhone(t *testing.T) {
	a := newTestApp(t, "en")
	out := run(t, a, "add John 123")
	assert.Contains(t, out, "Phone must contain exactly 10 digits.")
}

func TestExecute_Phone(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "phone John"), "Contact not found.")

	run(t, a, "add John 0931234567")
	assert.Contains(t, run(t, a, "phone John"), "0931234567")
}

func TestExecute_Change(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "change John 0931234567 0501112233"), "Contact not found.")

	run(t, a, "add John 0931234567")
	assert.Contains(t, run(t, a, "change John 0000000000 0501112233"), "Old phone number not found.")
	assert.Contains(t, run(t, a, "change John 0931234567 0501112233"), "Phone number updated.")

	rec, _ := a.Book.Find("John")
	phones := rec.Phones()
	require.Len(t, phones, 1)
	assert.Equal(t, "0501112233", phones[0].String())
}

func TestExecute_All(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "all"), "The address book is empty.")

	run(t, a, "add John 0931234567")
	run(t, a, "add-birthday John 15.08.1992")

	out := run(t, a, "all")
	assert.Contains(t, out, "John")
	assert.Contains(t, out, "0931234567")
	assert.Contains(t, out, "15.08.1992")
}

func TestExecute_BirthdayFlow(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "add-birthday John 15.08.1992"), "Add it first")

	run(t, a, "add John 0931234567")
	assert.Contains(t, run(t, a, "show-birthday John"), "Birthday is not set.")

	assert.Contains(t, run(t, a, "add-birthday John 15.08.1992"), "Birthday for John added.")
	assert.Contains(t, run(t, a, "show-birthday John"), "15.08.1992")

	// Second assignment is a domain error; the first value survives.
	assert.Contains(t, run(t, a, "add-birthday John 01.01.2000"), "already set")
	assert.Contains(t, run(t, a, "show-birthday John"), "15.08.1992")
}

func TestExecute_AddBirthdayValidation(t *testing.T) {
	a := newTestApp(t, "en")
	run(t, a, "add John 0931234567")

	assert.Contains(t, run(t, a, "add-birthday John 31.04.1990"), "Invalid date format")
	assert.Contains(t, run(t, a, "add-birthday John 11.06.2024"), "future", "one day after the mock clock's today")
}

// TestExecute_Birthdays replays the Ann/Bo scenario through the dispatcher:
// Ann's Sunday birthday reports shifted to Monday 17.06, Bo at exactly seven
// days out is excluded.
func TestExecute_Birthdays(t *testing.T) {
	a := newTestApp(t, "en")

	assert.Contains(t, run(t, a, "birthdays"), "No birthdays in the next week.")

	run(t, a, "add Ann 0931234567")
	run(t, a, "add-birthday Ann 16.06.1992")
	run(t, a, "add Bo 0501112233")
	run(t, a, "add-birthday Bo 17.06.1985")

	out := run(t, a, "birthdays")
	assert.Contains(t, out, "17.06.2024: Ann")
	assert.NotContains(t, out, "Bo")
}

func TestExecute_BirthdaysGroupsByDate(t *testing.T) {
	a := newTestApp(t, "en")

	// Saturday 15.06 and Sunday 16.06 both shift onto Monday 17.06.
	run(t, a, "add Zoe 0931234567")
	run(t, a, "add-birthday Zoe 15.06.1990")
	run(t, a, "add Ann 0501112233")
	run(t, a, "add-birthday Ann 16.06.1992")

	out := run(t, a, "birthdays")
	assert.Contains(t, out, "17.06.2024: Ann, Zoe", "one line per date, names sorted")
}

func TestExecute_Exit(t *testing.T) {
	for _, cmd := range []string{"close", "exit"} {
		a := newTestApp(t, "en")
		out, exit := a.Execute(cmd)
		assert.True(t, exit, "%q terminates the REPL", cmd)
		assert.Contains(t, out, "See you soon!")
	}
}

func TestExecute_Help(t *testing.T) {
	a := newTestApp(t, "en")
	out := run(t, a, "help")
	assert.Contains(t, out, "add-birthday")
	assert.Contains(t, out, "export-calendar")
}

func TestExecute_Ukrainian(t *testing.T) {
	a := newTestApp(t, "uk")

	assert.Contains(t, run(t, a, "hello"), "Вітаю! Чим можу допомогти?")
	assert.Contains(t, run(t, a, "phone John"), "Контакт не знайдено.")
	assert.Contains(t, run(t, a, "add John 123"), "Телефон має містити рівно 10 цифр.")
}

func TestExecute_ExportImportVCF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "contacts.vcf")

	a := newTestApp(t, "en")
	run(t, a, "add Ann 0931234567")
	run(t, a, "add-birthday Ann 15.08.1992")

	assert.Contains(t, run(t, a, "export-vcf "+path), "Exported 1 contacts")

	fresh := newTestApp(t, "en")
	assert.Contains(t, run(t, fresh, "import-vcf "+path), "Imported 1 cards, skipped 0.")

	rec, found := fresh.Book.Find("Ann")
	require.True(t, found)
	b, ok := rec.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.08.1992", b.String())
}

func TestExecute_ExportCalendar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "birthdays.ics")

	a := newTestApp(t, "en")
	run(t, a, "add Ann 0931234567")
	run(t, a, "add-birthday Ann 15.08.1992")

	assert.Contains(t, run(t, a, "export-calendar "+path), "Calendar written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR"))
	assert.Contains(t, out, "Birthday: Ann (32)", "localized summary with the age she turns in 2024")
}

func TestExecute_ImportVCF_MissingFile(t *testing.T) {
	a := newTestApp(t, "en")
	out := run(t, a, "import-vcf /definitely/not/there.vcf")
	assert.NotEmpty(t, out, "the error surfaces as a message, it never escapes the dispatcher")
}
