package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/zoobzio/capitan"

	"github.com/goliatone/go-formstate/pkg/form"
	"github.com/goliatone/go-formstate/pkg/renderers/markup"
	"github.com/goliatone/go-formstate/pkg/renderers/tui"
	"github.com/goliatone/go-formstate/pkg/textform"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("formstate-cli", flag.ContinueOnError)
	fieldsPath := fs.String("fields", "", "field definitions (JSON or YAML); demo fields if empty")
	openapiPath := fs.String("openapi", "", "OpenAPI document to derive fields from")
	opID := fs.String("operation", "", "operation ID used with -openapi")
	htmlOut := fs.String("html", "", "write the final form snapshot as HTML to this file")
	maxAttempts := fs.Int("max-attempts", 0, "give up after this many submit attempts (0 = unlimited)")
	confirm := fs.Bool("confirm", false, "ask for confirmation before submitting")
	verbose := fs.Bool("verbose", false, "log form events to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	hookAudit(logger)
	defer capitan.Shutdown()

	fields, err := loadFields(ctx, *fieldsPath, *openapiPath, *opID)
	if err != nil {
		return fmt.Errorf("load fields: %w", err)
	}

	engine, err := textform.NewEngine(fields,
		form.WithContext(ctx),
		form.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("create form: %w", err)
	}

	opts := []tui.Option{tui.WithMaxAttempts(*maxAttempts)}
	if *confirm {
		opts = append(opts, tui.WithConfirm(""))
	}
	values, runErr := tui.New(opts...).Run(ctx, engine, fields)

	if *htmlOut != "" {
		if err := writeSnapshot(*htmlOut, engine, fields); err != nil {
			return fmt.Errorf("write HTML: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("form not submitted: %w", runErr)
	}

	payload, err := json.MarshalIndent(values.Map(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode values: %w", err)
	}
	fmt.Println(string(payload))
	return nil
}

func loadFields(ctx context.Context, fieldsPath, openapiPath, opID string) ([]textform.TextField, error) {
	switch {
	case strings.TrimSpace(openapiPath) != "":
		raw, err := os.ReadFile(openapiPath)
		if err != nil {
			return nil, err
		}
		return textform.FromOpenAPI(ctx, raw, opID)
	case strings.TrimSpace(fieldsPath) != "":
		return textform.LoadFile(fieldsPath)
	default:
		return textform.Default(), nil
	}
}

func writeSnapshot(path string, engine *form.Engine[string], fields []textform.TextField) error {
	r, err := markup.New()
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return r.RenderTo(file, engine.ID(), engine.State(), fields)
}

func hookAudit(logger *slog.Logger) {
	capitan.Hook(form.SubmissionFailed, func(_ context.Context, e *capitan.Event) {
		id, _ := form.KeyFormID.From(e)
		count, _ := form.KeyErrorCount.From(e)
		logger.Info("audit: submission rejected", "form_id", id, "fields_with_errors", count)
	})
	capitan.Hook(form.SubmissionSucceeded, func(_ context.Context, e *capitan.Event) {
		id, _ := form.KeyFormID.From(e)
		logger.Info("audit: submission accepted", "form_id", id)
	})
	capitan.Hook(form.MutationRejected, func(_ context.Context, e *capitan.Event) {
		field, _ := form.KeyField.From(e)
		reason, _ := form.KeyError.From(e)
		logger.Warn("audit: action rejected", "field", field, "error", reason)
	})
}
