package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/cal"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/vcf"
)

func cmdHello(a *App, _ []string) (string, error) {
	return styleHeader.Sprint(a.Trans.Get(config.TKeyGreeting)), nil
}

func cmdExit(a *App, _ []string) (string, error) {
	return styleHeader.Sprint(a.Trans.Get(config.TKeyFarewell)), nil
}

// cmdAdd upserts a contact and appends the phone. The record stays in the
// book even when the phone turns out to be malformed, matching the upsert
// semantics of the command.
func cmdAdd(a *App, args []string) (string, error) {
	name, phone := args[0], args[1]

	rec, found := a.Book.Find(name)
	msg := styleNotice.Sprint(a.Trans.Get(config.TKeyContactUpdated))
	if !found {
		var err error
		rec, err = book.NewRecord(name)
		if err != nil {
			return "", err
		}
		a.Book.Add(rec)
		msg = styleSuccess.Sprint(a.Trans.Get(config.TKeyContactAdded))
	}

	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return msg, nil
}

func cmdChange(a *App, args []string) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, found := a.Book.Find(name)
	if !found {
		return styleError.Sprint(a.Trans.Get(config.TKeyContactNotFound)), nil
	}

	changed, err := rec.EditPhone(oldPhone, newPhone)
	if err != nil {
		return "", err
	}
	if !changed {
		return styleError.Sprint(a.Trans.Get(config.TKeyOldPhoneNotFound)), nil
	}
	return styleSuccess.Sprint(a.Trans.Get(config.TKeyPhoneChanged)), nil
}

func cmdPhone(a *App, args []string) (string, error) {
	rec, found := a.Book.Find(args[0])
	if !found {
		return styleError.Sprint(a.Trans.Get(config.TKeyContactNotFound)), nil
	}

	phones := rec.Phones()
	if len(phones) == 0 {
		return styleNotice.Sprint(a.Trans.Get(config.TKeyNoPhones)), nil
	}

	strs := make([]string, len(phones))
	for i, p := range phones {
		strs[i] = p.String()
	}
	return styleSuccess.Sprint(strings.Join(strs, ", ")), nil
}

func cmdAll(a *App, _ []string) (string, error) {
	records := a.Book.Records()
	if len(records) == 0 {
		return styleNotice.Sprint(a.Trans.Get(config.TKeyBookEmpty)), nil
	}

	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = a.formatRecord(rec)
	}
	return strings.Join(lines, "\n\n"), nil
}

func cmdAddBirthday(a *App, args []string) (string, error) {
	name, bday := args[0], args[1]

	rec, found := a.Book.Find(name)
	if !found {
		return styleError.Sprint(a.Trans.Get(config.TKeyContactAddFirst)), nil
	}

	if err := rec.AddBirthday(bday, a.Clock.Now()); err != nil {
		return "", err
	}
	msg := a.Trans.GetData(config.TKeyBirthdayAdded, map[string]any{"Name": name})
	return styleSuccess.Sprint(msg), nil
}

func cmdShowBirthday(a *App, args []string) (string, error) {
	rec, found := a.Book.Find(args[0])
	if !found {
		return styleError.Sprint(a.Trans.Get(config.TKeyContactNotFound)), nil
	}

	b, ok := rec.Birthday()
	if !ok {
		return styleNotice.Sprint(a.Trans.Get(config.TKeyBirthdayNotSet)), nil
	}
	return styleSuccess.Sprint(b.String()), nil
}

// cmdBirthdays prints the upcoming-week congratulation schedule grouped by
// date. The query returns greetings already sorted by date then name, so
// grouping consecutive entries preserves the order.
func cmdBirthdays(a *App, _ []string) (string, error) {
	greetings := a.Book.Upcoming(a.Clock.Now())
	if len(greetings) == 0 {
		return styleNotice.Sprint(a.Trans.Get(config.TKeyNoUpcoming)), nil
	}

	var lines []string
	var names []string
	current := ""
	flush := func() {
		if current != "" {
			lines = append(lines, fmt.Sprintf("%s %s",
				styleHeader.Sprint(current+":"),
				styleSuccess.Sprint(strings.Join(names, ", ")),
			))
		}
	}
	for _, g := range greetings {
		if d := g.DateString(); d != current {
			flush()
			current = d
			names = nil
		}
		names = append(names, g.Name)
	}
	flush()

	return strings.Join(lines, "\n"), nil
}

func cmdExportCalendar(a *App, args []string) (string, error) {
	path := args[0]

	data, err := cal.Build(a.Book.Records(), a.Clock.Now(), a.eventSummary)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, config.FilePermUserRW); err != nil {
		return "", err
	}

	msg := a.Trans.GetData(config.TKeyCalendarExported, map[string]any{"Path": path})
	return styleSuccess.Sprint(msg), nil
}

// eventSummary supplies localized event titles to the calendar builder.
func (a *App) eventSummary(name string, age int) string {
	if age == 0 {
		return a.Trans.GetData(config.TKeyEvtSummaryBirth, map[string]any{"Name": name})
	}
	return a.Trans.GetData(config.TKeyEvtSummaryAge, map[string]any{"Name": name, "Age": age})
}

func cmdExportVCF(a *App, args []string) (string, error) {
	path := args[0]

	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	if err := vcf.Export(f, a.Book.Records()); err != nil {
		return "", err
	}

	msg := a.Trans.GetData(config.TKeyContactsExported, map[string]any{
		"Count": a.Book.Len(),
		"Path":  path,
	})
	return styleSuccess.Sprint(msg), nil
}

func cmdImportVCF(a *App, args []string) (string, error) {
	f, err := os.Open(args[0])
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	imported, skipped, err := vcf.Import(f, a.Book, a.Clock.Now())
	if err != nil {
		return "", err
	}

	msg := a.Trans.GetData(config.TKeyContactsImported, map[string]any{
		"Imported": imported,
		"Skipped":  skipped,
	})
	return styleSuccess.Sprint(msg), nil
}

// cmdHelp lists every command with its usage hint.
func cmdHelp(a *App, _ []string) (string, error) {
	var lines []string
	for _, name := range commandNames() {
		usage := a.Trans.Get(config.TKeyUsagePrefix + name)
		if usage == config.TKeyUsagePrefix+name {
			usage = a.Trans.Get(config.TKeyNoUsage)
		}
		// Only the first line of the hint; examples stay with the error path.
		usage = strings.SplitN(usage, "\n", 2)[0]
		lines = append(lines, fmt.Sprintf("%s  %s", styleHeader.Sprint(name), usage))
	}
	return strings.Join(lines, "\n"), nil
}

// formatRecord renders one contact card the way the all command shows it.
func (a *App) formatRecord(rec *book.Record) string {
	phones := "-"
	if ps := rec.Phones(); len(ps) > 0 {
		strs := make([]string, len(ps))
		for i, p := range ps {
			strs[i] = p.String()
		}
		phones = strings.Join(strs, "; ")
	}

	bday := "-"
	if b, ok := rec.Birthday(); ok {
		bday = b.String()
	}

	return fmt.Sprintf("%s: %s,\n%s: %s,\n%s: %s",
		styleHeader.Sprint(a.Trans.Get(config.TKeyLblContactName)),
		styleName.Sprint(rec.Name()),
		styleHeader.Sprint(a.Trans.Get(config.TKeyLblPhones)),
		styleSuccess.Sprint(phones),
		styleHeader.Sprint(a.Trans.Get(config.TKeyLblBirthday)),
		styleDate.Sprint(bday),
	)
}
