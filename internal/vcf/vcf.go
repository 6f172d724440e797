// Package vcf exchanges contacts with other applications as vCard streams.
package vcf

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Export writes one vCard 4.0 per record: FN, one TEL per phone, and BDAY in
// 2006-01-02 form when a birthday is set.
func Export(w io.Writer, records []*book.Record) error {
	enc := vcard.NewEncoder(w)
	for _, rec := range records {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name())
		for _, p := range rec.Phones() {
			card.Add(config.VCardTEL, &vcard.Field{Value: p.String()})
		}
		if b, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, b.Date().Format(config.DateFormatFullDash))
		}
		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardParse, err)
		}
	}
	return nil
}

// Import decodes a vCard stream into the book. Malformed cards, invalid
// phone numbers and unparsable dates are skipped with a warning to maximize
// data recovery; valid data flows through the domain constructors so the
// book's invariants hold afterwards. Cards merge into existing records by
// name, mirroring the upsert semantics of the add command. Returns how many
// cards were imported and how many were skipped.
func Import(r io.Reader, ab *book.AddressBook, today time.Time) (imported, skipped int, err error) {
	log := slog.With(config.LogKeyComponent, config.CompVCF)
	decoder := vcard.NewDecoder(r)

	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log error but continue to next card to maximize data recovery.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			skipped++
			continue
		}

		// Name strategy: FN (Formatted) > N (Structured) > skip.
		var raw string
		if fn := card.Get(config.VCardFN); fn != nil {
			raw = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			raw = n.Value
		}

		// Canonicalize before the lookup: padded FN values must merge into
		// the record they name, not shadow it with a fresh one.
		nameField, err := book.NewName(raw)
		if err != nil {
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			skipped++
			continue
		}
		name := nameField.String()

		rec, ok := ab.Find(name)
		if !ok {
			rec, err = book.NewRecord(name)
			if err != nil {
				log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
				skipped++
				continue
			}
			ab.Add(rec)
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				log.Warn(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel,
				)
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			importBirthday(log, rec, bday.Value, today)
		}

		imported++
	}

	log.Info(config.MsgImportDone,
		config.LogKeyImported, imported,
		config.LogKeySkipped, skipped,
	)
	return imported, skipped, nil
}

// importBirthday parses a vCard BDAY value and stores it unless the record
// already carries one.
func importBirthday(log *slog.Logger, rec *book.Record, value string, today time.Time) {
	if _, ok := rec.Birthday(); ok {
		return
	}
	d, err := parseDate(value)
	if err != nil {
		log.Debug(config.MsgSkippedDate,
			config.LogKeyName, rec.Name(),
			config.LogKeyValue, value,
		)
		return
	}
	b, err := book.BirthdayFromDate(d, today)
	if err != nil {
		log.Debug(config.MsgSkippedDate,
			config.LogKeyName, rec.Name(),
			config.LogKeyValue, value,
		)
		return
	}
	_ = rec.SetBirthday(b)
}

// parseDate handles the vCard date layouts seen in the wild.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		"20060102",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: %q", config.MsgSkippedDate, value)
}
