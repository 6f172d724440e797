// Package cal renders the book's birthdays as an iCalendar feed that
// calendar applications can subscribe to or import.
package cal

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// SummaryFunc lets the caller inject localized event titles.
type SummaryFunc func(name string, age int) string

// Build produces an RFC 5545 VCALENDAR with one all-day event per contact
// birthday for the previous, current and next year, so calendar apps show
// events when scrolling in either direction without a re-export.
func Build(records []*book.Record, now time.Time, formatSummary SummaryFunc) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// Birthdays are local calendar dates; only the ICS stamp is in UTC.
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	count := 0
	for _, rec := range records {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}
		for _, e := range createEvents(rec.Name(), b.Date(), now, formatSummary) {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
			count++
		}
	}

	// A feed with zero components is invalid; fall back to the stub.
	if len(cal.Children) == 0 {
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExportDone,
		config.LogKeyComponent, config.CompCal,
		config.LogKeyCount, count,
	)
	return buf.Bytes(), nil
}

// createEvents generates the per-year events for one contact. No event is
// created for years before the person was born.
func createEvents(name string, birth time.Time, now time.Time, formatSummary SummaryFunc) []*ical.Event {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	uidBase := eventUID(name, birth)

	var events []*ical.Event
	for _, y := range targetYears {
		if y < birth.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - birth.Year()
		summary := fmt.Sprintf("Birthday: %s", name)
		if formatSummary != nil {
			summary = formatSummary(name, age)
		}
		event.Props.SetText(config.PropSummary, summary)

		eventDate := time.Date(y, birth.Month(), birth.Day(), 0, 0, 0, 0, now.Location())
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events
}

// eventUID derives a deterministic identifier so re-exports update events in
// place instead of duplicating them.
func eventUID(name string, birth time.Time) string {
	input := fmt.Sprintf(config.FormatHashInput, name, birth.Format(time.RFC3339), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash[:config.UIDHashLength])
}
