package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"reefscout/internal/scouting"
	"reefscout/internal/store"
)

const (
	dbFlag     = "db"
	outputFlag = "output"

	stdoutCLIName = "-"
)

var semanticVersion = "v0.1.0"

func openLedger(dbPath string) (*scouting.Ledger, *scouting.Registry, func(), error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, nil, nil, fmt.Errorf("cannot open scouting database %q: %w", dbPath, err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, nil, err
	}

	ledger := scouting.NewLedger(st)
	registry := scouting.NewRegistry(st)
	return ledger, registry, func() { st.Close() }, nil
}

func outputWriter(location string) (io.WriteCloser, error) {
	if location == "" || location == stdoutCLIName {
		return os.Stdout, nil
	}
	return os.OpenFile(location, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

func main() {
	var dbPath string
	var outputLocation string

	app := &cli.App{
		Name:    "scoutctl",
		Usage:   "Inspect and export a reefscout scouting database",
		Version: semanticVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        dbFlag,
				Usage:       "Path to the scouting database file",
				Destination: &dbPath,
				Required:    true,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "teams",
				Usage: "List the registered teams",
				Action: func(cCtx *cli.Context) error {
					_, registry, closeStore, err := openLedger(dbPath)
					if err != nil {
						return err
					}
					defer closeStore()

					for _, t := range registry.Teams() {
						fmt.Printf("#%s\t%s\n", t.Number, t.Name)
					}
					return nil
				},
			},
			{
				Name:  "records",
				Usage: "Summarize the saved scouting records",
				Action: func(cCtx *cli.Context) error {
					ledger, _, closeStore, err := openLedger(dbPath)
					if err != nil {
						return err
					}
					defer closeStore()

					for _, rec := range ledger.Records() {
						fmt.Printf("%s\tteam %s\tmatch %s\t%s\n", rec.Timestamp, rec.Team, rec.Match, rec.Color)
					}
					fmt.Fprintf(os.Stderr, "%d records\n", ledger.Len())
					return nil
				},
			},
			{
				Name:  "export",
				Usage: "Export the scouting records as CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        outputFlag,
						Aliases:     []string{"o"},
						Usage:       "The location to write the CSV. Can be a file path or \"-\" (for stdout).",
						Destination: &outputLocation,
					},
				},
				Action: func(cCtx *cli.Context) error {
					ledger, _, closeStore, err := openLedger(dbPath)
					if err != nil {
						return err
					}
					defer closeStore()

					if ledger.Len() == 0 {
						fmt.Fprintln(os.Stderr, "no scouting data")
						return nil
					}

					w, err := outputWriter(outputLocation)
					if err != nil {
						return err
					}
					if w != os.Stdout {
						defer w.Close()
					}

					if _, err := io.WriteString(w, scouting.ExportCSV(ledger.Records())); err != nil {
						return fmt.Errorf("failed to write CSV: %w", err)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
