package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/spf13/cobra"

	"github.com/sakif/snipvault/internal/config"
	"github.com/sakif/snipvault/internal/fetch"
	"github.com/sakif/snipvault/internal/service"
	"github.com/sakif/snipvault/internal/storage"
)

const usageText = `Usage:
  --name <name> [--download URL]
  --read <name>
  --delete <name>
`

// newRootCmd builds the one and only command. The three intent flags are
// mutually exclusive; supplying none of them prints the usage text and
// exits 0 — asking for help is not an error.
func newRootCmd() *cobra.Command {
	var (
		createName  string
		readName    string
		deleteName  string
		downloadURL string
	)

	cmd := &cobra.Command{
		Use:   "snipvault",
		Short: "Store, read, and delete named text snippets",
		Long: `snipvault keeps named text snippets in a pluggable store.

The store is selected by the SNIPPETS_APP_STORAGE environment variable,
either JSON:<path> (one pretty-printed JSON file) or SQLITE:<path> (one
SQLite database). Snippet content comes from stdin, or from a URL with
--download.`,
		// Errors are reported once, by main — cobra must not also print
		// them, or re-print usage after a storage failure.
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if createName == "" && readName == "" && deleteName == "" {
				fmt.Fprint(cmd.OutOrStdout(), usageText)
				return nil
			}
			return run(cmd, createName, readName, deleteName, downloadURL)
		},
	}

	cmd.Flags().StringVar(&createName, "name", "", "create a snippet under this name")
	cmd.Flags().StringVar(&readName, "read", "", "print the snippet stored under this name")
	cmd.Flags().StringVar(&deleteName, "delete", "", "delete the snippet stored under this name")
	cmd.Flags().StringVar(&downloadURL, "download", "", "fetch snippet content from this URL instead of stdin")
	cmd.MarkFlagsMutuallyExclusive("name", "read", "delete")

	return cmd
}

// run wires config → logger → storage → service and dispatches the one
// intent this invocation carries. Every returned error is fatal; "not
// found" on read/delete is reported on stdout and is not an error.
func run(cmd *cobra.Command, createName, readName, deleteName, downloadURL string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := newLogger(cfg)

	store, err := storage.Open(cfg.Storage)
	if err != nil {
		logger.Error("storage unavailable", slog.String("error", err.Error()))
		return err
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}
	logger.Debug("storage selected", slog.String("spec", cfg.Storage))

	svc := service.NewSnippetService(store, fetch.NewHTTPFetcher(nil), cmd.InOrStdin(), logger)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch {
	case createName != "":
		if _, err := svc.Create(ctx, createName, downloadURL); err != nil {
			logger.Error("create failed", slog.String("name", createName), slog.String("error", err.Error()))
			return err
		}
		fmt.Fprintln(out, "Snippet saved.")

	case readName != "":
		snippet, found, err := svc.Read(ctx, readName)
		if err != nil {
			logger.Error("read failed", slog.String("name", readName), slog.String("error", err.Error()))
			return err
		}
		if !found {
			fmt.Fprintln(out, "Snippet not found.")
			return nil
		}
		fmt.Fprintf(out, "Created at: %s\n", snippet.CreatedAt.Format(time.RFC3339Nano))
		fmt.Fprintln(out, snippet.Content)

	case deleteName != "":
		deleted, err := svc.Delete(ctx, deleteName)
		if err != nil {
			logger.Error("delete failed", slog.String("name", deleteName), slog.String("error", err.Error()))
			return err
		}
		if deleted {
			fmt.Fprintln(out, "Snippet deleted.")
		} else {
			fmt.Fprintln(out, "Snippet not found.")
		}
	}

	return nil
}

// newLogger builds the structured logger. Output goes to the file named by
// SNIPPETS_APP_LOG_PATH so stdout carries nothing but command output; if
// the file can't be opened, logging degrades to io.Discard rather than
// failing the run. The file is never explicitly closed — it lives for the
// process and is flushed at exit.
//
// Every record carries a per-invocation xid so interleaved runs can be
// told apart in a shared log file.
func newLogger(cfg *config.Config) *slog.Logger {
	var w io.Writer = io.Discard
	if f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		w = f
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler).With(slog.String("run", xid.New().String()))
}
