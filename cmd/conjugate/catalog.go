package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openarabic/conjugation"
)

// mismatch is a catalog form the engine does not reproduce.
type mismatch struct {
	Verb     string `json:"verb"`
	What     string `json:"what"`
	Expected string `json:"expected"`
	Got      string `json:"got,omitempty"`
	Error    string `json:"error,omitempty"`
}

func newCatalogCmd(opts *options) *cobra.Command {
	var check bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the example verbs, or check them with --check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := conjugation.Catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !check {
				return listCatalog(out, opts.format, entries)
			}

			var bad []mismatch
			forms := 0
			for _, e := range entries {
				m, n := checkEntry(opts.conj, e)
				bad = append(bad, m...)
				forms += n
			}
			opts.logger.Info("Catalog checked",
				slog.Int("verbs", len(entries)),
				slog.Int("forms", forms),
				slog.Int("mismatches", len(bad)))

			if opts.format == "json" {
				if err := writeJSON(out, bad); err != nil {
					return err
				}
			} else {
				for _, m := range bad {
					if m.Error != "" {
						fmt.Fprintf(out, "%s %s: want %s, error: %s\n", m.Verb, m.What, m.Expected, m.Error)
						continue
					}
					fmt.Fprintf(out, "%s %s: want %s, got %s\n", m.Verb, m.What, m.Expected, m.Got)
				}
				fmt.Fprintf(out, "%d verbs, %d forms, %d mismatches\n", len(entries), forms, len(bad))
			}
			if len(bad) > 0 {
				return fmt.Errorf("%d catalog forms do not match", len(bad))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "conjugate every catalog form and report mismatches")
	return cmd
}

func listCatalog(w io.Writer, format string, entries []conjugation.CatalogEntry) error {
	if format == "json" {
		return writeJSON(w, entries)
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "DIALECT\tROOT\tSTEM\tCONTEXT\tFORMS\tGLOSS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", e.Dialect, e.Root, e.Stem, e.Context, len(e.Forms), e.Gloss)
	}
	return tw.Flush()
}

// checkEntry compares every expected form of e with the engine's output
// and returns the mismatches and the number of forms checked.
func checkEntry(c *conjugation.Conjugator, e conjugation.CatalogEntry) ([]mismatch, int) {
	v, err := e.Verb()
	if err != nil {
		return []mismatch{{Verb: e.Name(), What: "verb", Error: err.Error()}}, 0
	}

	var (
		bad []mismatch
		n   int
	)
	compare := func(what, want string, got []conjugation.DisplayVocalized, err error) {
		n++
		switch {
		case err != nil:
			bad = append(bad, mismatch{Verb: e.Name(), What: what, Expected: want, Error: err.Error()})
		case !conjugation.CompareVocalized(conjugation.ParseVocalized(want), got):
			bad = append(bad, mismatch{Verb: e.Name(), What: what, Expected: want, Got: conjugation.Render(got)})
		}
	}

	for _, f := range e.Forms {
		got, err := c.Conjugate(v, f.Query)
		compare(f.Query.Code(), f.Expected, got, err)
	}
	if e.ActiveParticiple != "" {
		got, err := c.ConjugateParticiple(v, conjugation.Active)
		compare("active participle", e.ActiveParticiple, got, err)
	}
	if e.PassiveParticiple != "" {
		got, err := c.ConjugateParticiple(v, conjugation.Passive)
		compare("passive participle", e.PassiveParticiple, got, err)
	}
	if len(e.VerbalNouns) > 0 {
		nouns, err := c.VerbalNouns(v)
		for _, want := range e.VerbalNouns {
			n++
			if err != nil {
				bad = append(bad, mismatch{Verb: e.Name(), What: "verbal noun", Expected: want, Error: err.Error()})
				continue
			}
			if !containsForm(nouns, want) {
				bad = append(bad, mismatch{Verb: e.Name(), What: "verbal noun", Expected: want})
			}
		}
	}
	return bad, n
}

func containsForm(forms [][]conjugation.DisplayVocalized, want string) bool {
	w := conjugation.ParseVocalized(want)
	for _, f := range forms {
		if conjugation.CompareVocalized(w, f) {
			return true
		}
	}
	return false
}
