// Package assistant implements the interactive command loop of the contact assistant. It parses
// a line into a verb and its arguments, runs the matching operation on the address book and
// reports the outcome through a View.
package assistant

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"gitlab.com/dirk.krummacker/contacts-assistant/internal/addressbook"
	"gitlab.com/dirk.krummacker/contacts-assistant/internal/logger"
	"go.uber.org/zap"
)

// Prompt is printed before every command is read.
const Prompt = "Enter a command: "

// Assistant dispatches commands to the address book. It processes one command at a time and is
// not safe for concurrent use.
type Assistant struct {
	book *addressbook.AddressBook
	view View
	now  func() time.Time
}

// Option configures an Assistant.
type Option func(*Assistant)

// WithClock replaces the clock used to determine today's date.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) {
		a.now = now
	}
}

// New returns an assistant working on book and reporting to view.
func New(book *addressbook.AddressBook, view View, opts ...Option) *Assistant {
	a := &Assistant{book: book, view: view, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run greets the user and handles one line of in after the other until the user says good bye,
// the input ends or ctx is done. The prompt is written to out.
func (a *Assistant) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	a.view.Display("Welcome to the assistant bot!")
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("could not read command: %w", err)
			}
			logger.Debug(ctx, "input closed")
			return nil
		}
		if exit := a.Handle(ctx, scanner.Text()); exit {
			return nil
		}
	}
}

// Handle processes a single command line and reports whether the session should end. A failing
// command is reported through the view and never ends the session.
func (a *Assistant) Handle(ctx context.Context, line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		a.view.Display("Command not entered. Please enter a command.")
		return false
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	ctx = logger.WithFields(ctx, zap.String("command", verb))

	switch verb {
	case "close", "exit":
		a.view.Display("Good bye!")
		return true
	case "hello":
		a.view.Display("How can I help you?")
		return false
	}

	handle, ok := commands[verb]
	if !ok {
		logger.Debug(ctx, "unknown command")
		a.view.Display("Invalid command.")
		return false
	}
	message, err := handle(a, args)
	if err != nil {
		logger.Info(ctx, "command failed", zap.Strings("args", args), zap.Error(err))
		a.view.Display("Error: " + err.Error())
		return false
	}
	logger.Debug(ctx, "command handled", zap.Strings("args", args))
	a.view.Display(message)
	return false
}
