package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openarabic/conjugation"
)

// run executes the CLI with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func render(s string) string { return conjugation.Render(conjugation.ParseVocalized(s)) }

func TestFormCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"msa", []string{"form", "ك-ت-ب", "perfect", "3fs", "--context", "au"}, "كَتَبَتْ"},
		{"quoted query", []string{"form", "ك-ت-ب", "jussive passive 3ms", "--context", "au"}, "يُكْتَبْ"},
		{"lebanese", []string{"--dialect", "lebanese", "form", "ر-ب-ط", "indicative", "3ms", "--context", "au"}, "بْيُرْبُطْ"},
		{"derived stem", []string{"form", "د-ر-س", "perfect", "3ms", "--stem", "II"}, "دَرَّسَ"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, render(tt.want), strings.TrimSpace(out))
		})
	}
}

func TestFormCommandJSON(t *testing.T) {
	out, err := run(t, "form", "ك-ت-ب", "perfect", "3ms", "--context", "au", "--format", "json")
	require.NoError(t, err)

	var got formOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "perfect 3ms", got.Query)
	assert.Equal(t, render("كَتَبَ"), got.Form)
	assert.Equal(t, "msa ك-ت-ب I (au)", got.Verb)
}

func TestCommandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad query", []string{"form", "ك-ت-ب", "sometime", "3ms", "--context", "au"}, "invalid query"},
		{"bad dialect", []string{"--dialect", "maltese", "table", "ك-ت-ب"}, "unknown dialect"},
		{"bad stem", []string{"--stem", "XII", "table", "ك-ت-ب"}, "unsupported stem"},
		{"bad context", []string{"table", "ك-ت-ب", "--context", "type1"}, "illegal stem I context"},
		{"bad format", []string{"dialects", "--format", "xml"}, "invalid --format"},
		{"bad log level", []string{"dialects", "--log-level", "loud"}, "invalid --log-level"},
		{"unsupported", []string{"--dialect", "lebanese", "form", "ر-ب-ط", "perfect", "3md", "--context", "au"}, "unsupported feature"},
		{"missing args", []string{"form", "ك-ت-ب"}, "requires at least 2 arg(s)"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "--dialect", "lebanese", "table", "ر-ب-ط", "--context", "au")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "QUERY"))
	assert.Contains(t, out, render("رَبَطْنَا"))
	assert.NotContains(t, out, "passive")

	out, err = run(t, "table", "ك-ت-ب", "--context", "au", "--format", "json")
	require.NoError(t, err)
	var cells []tableCellOutput
	require.NoError(t, json.Unmarshal([]byte(out), &cells))
	assert.Equal(t, "perfect 3ms", cells[0].Query)
	assert.Equal(t, render("كَتَبَ"), cells[0].Form)
}

func TestParticipleAndNounsCommands(t *testing.T) {
	out, err := run(t, "participle", "ع-م-ل", "--stem", "10", "--passive")
	require.NoError(t, err)
	assert.Equal(t, render("مُسْتَعْمَل"), strings.TrimSpace(out))

	out, err = run(t, "nouns", "ك-ت-ب", "--context", "au")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), render("كِتَابَة"))

	_, err = run(t, "--dialect", "south-levantine", "nouns", "ع-د-و", "--stem", "4")
	assert.ErrorContains(t, err, "not implemented")
}

func TestDialectsCommand(t *testing.T) {
	out, err := run(t, "dialects")
	require.NoError(t, err)
	assert.Contains(t, out, "stan1318")
	assert.Contains(t, out, "Lebanese Arabic")

	out, err = run(t, "dialects", "--format", "json")
	require.NoError(t, err)
	var list []dialectOutput
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	require.Len(t, list, 3)
	assert.Equal(t, "south-levantine", list[2].ID)
}

func TestCatalogCommand(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, out, "to write")

	out, err = run(t, "catalog", "--check")
	require.NoError(t, err, out)
	assert.Contains(t, out, " 0 mismatches")
}

func TestCheckEntryReportsMismatch(t *testing.T) {
	e := conjugation.CatalogEntry{
		Dialect: "msa",
		Root:    "ك-ت-ب",
		Stem:    1,
		Context: conjugation.ContextAU,
		Forms: []conjugation.CatalogForm{
			{Query: conjugation.Query{Tense: conjugation.Perfect, Voice: conjugation.Active, Person: conjugation.Third, Gender: conjugation.Male, Numerus: conjugation.Singular}, Expected: "كَتِبَ"},
		},
		VerbalNouns: []string{"كُتُوب"},
	}
	bad, n := checkEntry(conjugation.New(), e)
	assert.Equal(t, 2, n)
	require.Len(t, bad, 2)
	assert.Equal(t, render("كَتَبَ"), bad[0].Got)
	assert.Equal(t, "verbal noun", bad[1].What)
}
