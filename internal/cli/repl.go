package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// completer builds the tab-completion tree: the first word completes over
// the command vocabulary, the second over contact names for commands that
// address a contact.
func (a *App) completer() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, name := range commandNames() {
		if commands[name].NameArg {
			items = append(items, readline.PcItem(name, readline.PcItemDynamic(a.contactNames)))
		} else {
			items = append(items, readline.PcItem(name))
		}
	}
	return readline.NewPrefixCompleter(items...)
}

// contactNames feeds the completer with the current contact names.
// Read-only access; the completer must never mutate the book.
func (a *App) contactNames(string) []string {
	return a.Book.Names()
}

// Run starts the interactive loop and blocks until the user exits via a
// farewell command, Ctrl+C, Ctrl+D or context cancellation. Every one of
// those paths returns nil so the caller saves the snapshot. Line history
// lives in memory for the session.
func (a *App) Run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          promptText,
		AutoComplete:    a.completer(),
		InterruptPrompt: "^C",
	})
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	// Lifecycle Bridge:
	// Watch for context cancellation to unblock the prompt gracefully.
	go func() {
		<-ctx.Done()
		slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompCLI)
		_ = rl.Close()
	}()

	a.printBanner()

	for {
		line, err := rl.Readline()
		if ctx.Err() != nil || errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			// Interrupt, EOF and cancellation behave like the exit command.
			fmt.Println(styleHeader.Sprint(a.Trans.Get(config.TKeyFarewell)))
			return nil
		}
		if err != nil {
			return err
		}

		out, exit := a.Execute(line)
		if out != "" {
			fmt.Println(out)
		}
		if exit {
			return nil
		}
	}
}

func (a *App) printBanner() {
	fmt.Println(styleBanner.Sprint(a.Trans.Get(config.TKeyBanner)))
	fmt.Println(styleHint.Sprint(a.Trans.Get(config.TKeyHintTab)))
}
