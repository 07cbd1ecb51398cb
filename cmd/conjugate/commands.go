package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/openarabic/conjugation"
)

// options are the persistent flags shared by every subcommand.
type options struct {
	dialect  string
	stem     string
	context  string
	format   string
	logLevel string

	logger *slog.Logger
	conj   *conjugation.Conjugator
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "conjugate",
		Short:         "Conjugate Arabic verbs",
		Long:          "Generates fully vocalized verb forms, participles and verbal nouns for Modern Standard Arabic, Lebanese and South Levantine Arabic.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			opts.conj = conjugation.New()
			return nil
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&opts.dialect, "dialect", "msa", "dialect id, name, ISO 639-3 code or Glottocode")
	f.StringVar(&opts.stem, "stem", "1", "derivational stem, 1-10 or I-X")
	f.StringVar(&opts.context, "context", "", "Stem-I context (vowel melody), e.g. au or type1")
	f.StringVar(&opts.format, "format", "text", "output format: json|text")
	f.StringVar(&opts.logLevel, "log-level", "warn", "debug, info, warn or error")

	root.AddCommand(
		newFormCmd(opts),
		newTableCmd(opts),
		newParticipleCmd(opts),
		newNounsCmd(opts),
		newDialectsCmd(opts),
		newCatalogCmd(opts),
	)
	return root
}

func validateFormat(f string) error {
	switch f {
	case "json", "text":
		return nil
	}
	return fmt.Errorf("invalid --format %q: must be json or text", f)
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

// verb builds the verb named by the root argument and the flags.
func (o *options) verb(rootArg string) (*conjugation.Verb, error) {
	d, err := conjugation.LookupDialect(o.dialect)
	if err != nil {
		return nil, err
	}
	root, err := conjugation.ParseRoot(rootArg)
	if err != nil {
		return nil, err
	}
	stem, err := conjugation.ParseStem(o.stem)
	if err != nil {
		return nil, err
	}
	v, err := conjugation.NewVerb(d, root, stem, conjugation.Stem1Context(o.context))
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Verb",
		slog.String("dialect", d.ID()),
		slog.String("root", root.String()),
		slog.String("stem", stem.String()),
		slog.String("context", string(v.Context())),
		slog.String("category", v.Category().String()))
	return v, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

type formOutput struct {
	Verb  string `json:"verb"`
	Query string `json:"query"`
	Form  string `json:"form"`
}

func newFormCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "form <root> <query>",
		Short: "Conjugate one form",
		Long:  `The query is "<tense or mood> [voice] <cell>", e.g. "perfect 3ms" or "jussive passive 2fp".`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.verb(args[0])
			if err != nil {
				return err
			}
			q, err := conjugation.ParseQuery(strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			form, err := opts.conj.Conjugate(v, q)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, formOutput{Verb: v.String(), Query: q.Code(), Form: conjugation.Render(form)})
			}
			fmt.Fprintln(out, conjugation.Render(form))
			return nil
		},
	}
}

type tableCellOutput struct {
	Query string `json:"query"`
	Form  string `json:"form,omitempty"`
	Error string `json:"error,omitempty"`
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table <root>",
		Short: "Print the full paradigm of a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.verb(args[0])
			if err != nil {
				return err
			}
			table, err := opts.conj.ConjugationTable(v)
			if err != nil {
				return err
			}
			cells := make([]tableCellOutput, 0, len(table.Cells))
			for _, c := range table.Cells {
				co := tableCellOutput{Query: c.Query.Code()}
				if c.Err != nil {
					co.Error = c.Err.Error()
				} else {
					co.Form = conjugation.Render(c.Form)
				}
				cells = append(cells, co)
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, cells)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "QUERY\tFORM")
			for _, c := range cells {
				form := c.Form
				if c.Error != "" {
					form = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\n", c.Query, form)
			}
			return tw.Flush()
		},
	}
}

func newParticipleCmd(opts *options) *cobra.Command {
	var passive bool
	cmd := &cobra.Command{
		Use:   "participle <root>",
		Short: "Print the active or passive participle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.verb(args[0])
			if err != nil {
				return err
			}
			voice := conjugation.Active
			if passive {
				voice = conjugation.Passive
			}
			form, err := opts.conj.ConjugateParticiple(v, voice)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, formOutput{Verb: v.String(), Query: voice.String() + " participle", Form: conjugation.Render(form)})
			}
			fmt.Fprintln(out, conjugation.Render(form))
			return nil
		},
	}
	cmd.Flags().BoolVar(&passive, "passive", false, "print the passive participle")
	return cmd
}

func newNounsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "nouns <root>",
		Short: "Print every attested verbal noun",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.verb(args[0])
			if err != nil {
				return err
			}
			nouns, err := opts.conj.VerbalNouns(v)
			if err != nil {
				return err
			}
			rendered := make([]string, len(nouns))
			for i, n := range nouns {
				rendered[i] = conjugation.Render(n)
			}
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, rendered)
			}
			for _, n := range rendered {
				fmt.Fprintln(out, n)
			}
			return nil
		},
	}
}

type dialectOutput struct {
	ID         string               `json:"id"`
	Name       string               `json:"name"`
	ISO639     string               `json:"iso639"`
	Glottocode string               `json:"glottocode"`
	Features   conjugation.Features `json:"features"`
}

func newDialectsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the supported dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []dialectOutput
			for _, d := range conjugation.Dialects() {
				list = append(list, dialectOutput{d.ID(), d.Name(), d.ISO639(), d.Glottocode(), d.Features()})
			}
			out := cmd.OutOrStdout()
			if opts.format == "json" {
				return writeJSON(out, list)
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tISO 639-3\tGLOTTOCODE")
			for _, d := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.ISO639, d.Glottocode)
			}
			return tw.Flush()
		},
	}
}
