// Package main is the entry point for the inklet development CLI. It wires
// the full core — bus, store, middleware, persistence, legacy bridge — and
// drives it through real dispatches.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/inklet/inklet/internal/action"
	"github.com/inklet/inklet/internal/bridge"
	"github.com/inklet/inklet/internal/event"
	"github.com/inklet/inklet/internal/persist"
	"github.com/inklet/inklet/internal/state"
	"github.com/inklet/inklet/internal/store"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		dbPath      string
		debug       bool
		showVersion bool
	)
	flag.StringVar(&dbPath, "db", defaultDBPath(), "Path to the notes database")
	flag.BoolVar(&debug, "debug", false, "Log every dispatched action")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Println("inklet", version)
		return 0
	}

	args := flag.Args()
	if len(args) == 0 {
		usage()
		return 2
	}

	ctx := context.Background()

	db, err := persist.Open(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: open database: %v\n", err)
		return 1
	}
	defer db.Close()

	content, err := db.LoadContent(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load content: %v\n", err)
		return 1
	}
	settings, err := db.LoadSettings(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load settings: %v\n", err)
		return 1
	}

	initial := state.Default()
	initial.Content = content
	initial.Settings = settings

	bus := event.NewBus()
	st := store.New(bus, initial, store.WithLogf(log.Printf))

	logging := store.NewLoggingMiddleware(log.Printf)
	logging.SetForced(debug)
	st.RegisterMiddleware(logging)

	// Short debounce: the CLI exits right after dispatching.
	saves := persist.NewMiddleware(db, bus, persist.WithDelay(50*time.Millisecond))
	st.RegisterMiddleware(saves)
	defer saves.Flush()

	center := bridge.NewCenter()
	br, err := bridge.New(bus, center, bridge.DefaultMappings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: attach bridge: %v\n", err)
		return 1
	}
	defer br.Close()

	if err := execute(st, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func execute(st *store.Store, args []string) error {
	switch cmd := args[0]; cmd {
	case "list":
		printTree(st.State().Content)
		return nil

	case "add-subject":
		if len(args) < 2 {
			return fmt.Errorf("usage: add-subject <name>")
		}
		st.Dispatch(action.AddSubject{Subject: state.Subject{
			ID:   uuid.New(),
			Name: args[1],
		}})
		return nil

	case "add-note":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-note <subject> <title>")
		}
		sub, err := subjectByName(st, args[1])
		if err != nil {
			return err
		}
		st.Dispatch(action.AddNote{
			SubjectID: sub.ID,
			Note: state.Note{
				ID:         uuid.New(),
				Title:      args[2],
				TemplateID: st.State().Settings.DefaultTemplateID,
			},
		})
		return nil

	case "add-page":
		if len(args) < 3 {
			return fmt.Errorf("usage: add-page <subject> <note-title>")
		}
		sub, err := subjectByName(st, args[1])
		if err != nil {
			return err
		}
		for _, note := range sub.Notes {
			if note.Title == args[2] {
				st.Dispatch(action.AddPage{
					SubjectID: sub.ID,
					NoteID:    note.ID,
					Page:      state.Page{ID: uuid.New()},
				})
				return nil
			}
		}
		return fmt.Errorf("no note titled %q in subject %q", args[2], args[1])

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func subjectByName(st *store.Store, name string) (state.Subject, error) {
	for _, sub := range st.State().Content.Subjects {
		if sub.Name == name {
			return sub, nil
		}
	}
	return state.Subject{}, fmt.Errorf("no subject named %q", name)
}

func printTree(c state.ContentState) {
	if len(c.Subjects) == 0 {
		fmt.Println("no subjects")
		return
	}
	for _, sub := range c.Subjects {
		fmt.Printf("%s (%d notes, modified %s)\n", sub.Name, len(sub.Notes),
			sub.LastModified.Format(time.RFC3339))
		for _, note := range sub.Notes {
			fmt.Printf("  %s (%d pages)\n", note.Title, len(note.Pages))
		}
	}
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "inklet", "notes.db")
}

func usage() {
	fmt.Fprintf(os.Stderr, `inklet - note store development CLI

Usage:
  inklet [flags] <command> [args]

Commands:
  list                        Print the subject/note tree
  add-subject <name>          Create a subject
  add-note <subject> <title>  Create a note in a subject
  add-page <subject> <title>  Append a page to a note

Flags:
`)
	flag.PrintDefaults()
}
