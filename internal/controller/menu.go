package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/project/bookypedia/internal/log"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
)

type command struct {
	name        string
	args        string
	description string
	failure     string
	handler     func(ctx context.Context, args string) error
}

var errExit = errors.New("exit requested")

func (i *implementation) registerCommands() []command {
	return []command{
		{name: "AddAuthor", args: "<name>", description: "Adds author",
			failure: "Failed to add author", handler: i.AddAuthor},
		{name: "DeleteAuthor", args: "[name]", description: "Deletes author with all books",
			failure: "Failed to delete author", handler: i.DeleteAuthor},
		{name: "EditAuthor", args: "[name]", description: "Renames author",
			failure: "Failed to edit author", handler: i.EditAuthor},
		{name: "ShowAuthors", description: "Shows authors",
			failure: "Failed to show authors", handler: i.ShowAuthors},
		{name: "AddBook", args: "<pub year> <title>", description: "Adds book",
			failure: "Failed to add book", handler: i.AddBook},
		{name: "ShowBooks", description: "Shows books",
			failure: "Failed to show books", handler: i.ShowBooks},
		{name: "ShowAuthorBooks", description: "Shows author books",
			failure: "Failed to show books", handler: i.ShowAuthorBooks},
		{name: "ShowBook", args: "[title]", description: "Shows book info",
			failure: "Failed to show book", handler: i.ShowBook},
		{name: "DeleteBook", args: "[title]", description: "Deletes book",
			failure: "Failed to delete book", handler: i.DeleteBook},
		{name: "EditBook", args: "[title]", description: "Edits book",
			failure: "Book not found", handler: i.EditBook},
		{name: "Help", description: "Shows this list", handler: i.help},
		{name: "Exit", description: "Ends the session", handler: i.exit},
	}
}

// Run reads commands until Exit, the end of input or ctx cancellation.
// A failed command is reported and the session goes on.
func (i *implementation) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := i.readLine()
		if !ok {
			return i.input.Err()
		}

		name, args, _ := strings.Cut(line, " ")
		if name == "" {
			continue
		}

		cmd, found := lo.Find(i.commands, func(c command) bool {
			return c.name == name
		})
		if !found {
			i.println("Invalid command")
			continue
		}

		if err := i.execute(ctx, cmd, strings.TrimSpace(args)); errors.Is(err, errExit) {
			return nil
		}
	}
}

func (i *implementation) execute(ctx context.Context, cmd command, args string) error {
	start := time.Now()

	defer func() {
		CommandDuration.WithLabelValues(cmd.name).Observe(float64(time.Since(start).Milliseconds()))
	}()

	ctx, span := i.tracer.Start(ctx, cmd.name)
	defer span.End()

	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("command", cmd.name))
	log.InfoCommand(i.logger, "Got command", traceID, cmd.name, args)

	err := cmd.handler(ctx, args)
	if errors.Is(err, errExit) {
		return err
	}

	if log.ErrorCommand(i.logger, err, "Command failed", traceID, cmd.name, args) {
		span.RecordError(err)
		CommandFailures.WithLabelValues(cmd.name).Inc()
		i.println(cmd.failure)
	}
	return nil
}

func (i *implementation) help(context.Context, string) error {
	for _, c := range i.commands {
		if c.args == "" {
			i.println(fmt.Sprintf("%s: %s", c.name, c.description))
			continue
		}
		i.println(fmt.Sprintf("%s %s: %s", c.name, c.args, c.description))
	}
	return nil
}

func (i *implementation) exit(context.Context, string) error {
	return errExit
}
