package cli

import (
	"errors"
	"log/slog"
	"sort"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/book"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// promptText is the interactive prompt.
const promptText = "> "

// handlerFunc executes one user command against the live book and returns
// the user-facing message. Typed errors are converted to localized text by
// Execute; handlers never print.
type handlerFunc func(a *App, args []string) (string, error)

// command describes one REPL command.
type command struct {
	// MinArgs is the number of arguments below which Execute answers with a
	// usage hint instead of running the handler.
	MinArgs int

	// NameArg marks commands whose first argument is a contact name, which
	// the completer then offers suggestions for.
	NameArg bool

	// Exit terminates the REPL after the handler runs.
	Exit bool

	Run handlerFunc
}

// commands is the dispatch table. close and exit share a handler, exactly
// like the two farewell commands of the assistant's vocabulary.
var commands map[string]command

func init() {
	commands = map[string]command{
		"hello":           {Run: cmdHello},
		"add":             {MinArgs: 2, NameArg: true, Run: cmdAdd},
		"change":          {MinArgs: 3, NameArg: true, Run: cmdChange},
		"phone":           {MinArgs: 1, NameArg: true, Run: cmdPhone},
		"all":             {Run: cmdAll},
		"add-birthday":    {MinArgs: 2, NameArg: true, Run: cmdAddBirthday},
		"show-birthday":   {MinArgs: 1, NameArg: true, Run: cmdShowBirthday},
		"birthdays":       {Run: cmdBirthdays},
		"export-calendar": {MinArgs: 1, Run: cmdExportCalendar},
		"export-vcf":      {MinArgs: 1, Run: cmdExportVCF},
		"import-vcf":      {MinArgs: 1, Run: cmdImportVCF},
		"help":            {Run: cmdHelp},
		"close":           {Exit: true, Run: cmdExit},
		"exit":            {Exit: true, Run: cmdExit},
	}
}

// commandNames returns the vocabulary sorted for deterministic listings.
func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// parseCommand splits an input line into the lowercased command word and its
// raw arguments.
func parseCommand(line string) (string, []string) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return "", nil
	}
	return strings.ToLower(parts[0]), parts[1:]
}

// App wires the book, the clock and the translator into the REPL. It is the
// command-dispatch boundary: every error the core raises is caught and
// rendered here, never above.
type App struct {
	Book  *book.AddressBook
	Clock book.Clock
	Trans *Translator
}

// NewApp creates the REPL controller around a live book.
func NewApp(ab *book.AddressBook, clock book.Clock, trans *Translator) *App {
	return &App{Book: ab, Clock: clock, Trans: trans}
}

// Execute dispatches one input line and reports whether the REPL should
// terminate. Output is fully styled and localized; an empty line yields an
// empty output.
func (a *App) Execute(line string) (output string, exit bool) {
	name, args := parseCommand(line)
	if name == "" {
		return "", false
	}

	cmd, ok := commands[name]
	if !ok {
		msg := a.Trans.GetData(config.TKeyUnknownCommand, map[string]any{
			"Commands": strings.Join(commandNames(), ", "),
		})
		return styleError.Sprint(msg), false
	}

	if len(args) < cmd.MinArgs {
		return styleError.Sprint(a.usageHint(name)), false
	}

	out, err := cmd.Run(a, args)
	if err != nil {
		slog.Debug(config.MsgCommandRun,
			config.LogKeyComponent, config.CompCLI,
			config.LogKeyCommand, name,
			config.LogKeyError, err,
		)
		return styleError.Sprint(a.errorMessage(err)), false
	}

	slog.Debug(config.MsgCommandRun,
		config.LogKeyComponent, config.CompCLI,
		config.LogKeyCommand, name,
	)
	return out, cmd.Exit
}

// usageHint renders the "not enough arguments" notice plus the per-command
// usage line.
func (a *App) usageHint(name string) string {
	usage := a.Trans.Get(config.TKeyUsagePrefix + name)
	if usage == config.TKeyUsagePrefix+name {
		usage = a.Trans.Get(config.TKeyNoUsage)
	}
	return a.Trans.Get(config.TKeyNotEnoughArgs) + "\n" + usage
}

// errTKeys maps domain error reasons to their translation keys.
var errTKeys = map[string]string{
	config.ErrEmptyName:      config.TKeyErrEmptyName,
	config.ErrPhoneLength:    config.TKeyErrPhoneLength,
	config.ErrDateFormat:     config.TKeyErrDateFormat,
	config.ErrFutureBirthday: config.TKeyErrFutureBirthday,
	config.ErrBirthdaySet:    config.TKeyErrBirthdaySet,
}

// errorMessage renders a typed domain error in the active language. Anything
// else passes through as-is.
func (a *App) errorMessage(err error) string {
	var verr *book.ValidationError
	if errors.As(err, &verr) {
		if key, ok := errTKeys[verr.Reason]; ok {
			return a.Trans.Get(key)
		}
		return verr.Reason
	}
	var derr *book.DomainError
	if errors.As(err, &derr) {
		if key, ok := errTKeys[derr.Reason]; ok {
			return a.Trans.Get(key)
		}
		return derr.Reason
	}
	return err.Error()
}
