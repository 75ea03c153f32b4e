// Package report renders the console view of a lift's summary.
package report

import (
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/cyclops/internal/stats"
)

// Banner prefixes the summary header.
const Banner = "👁️ CYCLOPS"

const rule = "------------------------"

// Unit is the weight unit shown in prompts, reports and chart axes.
const Unit = "lbs"

// PrintSummary writes the fixed-format session report:
//
//	<blank line>
//	👁️ CYCLOPS — SQUAT
//	------------------------
//	Sessions: 3
//	Average: 141.7 lbs
//	PR: 150 lbs
func PrintSummary(w io.Writer, label string, s stats.Summary) error {
	_, err := fmt.Fprintf(w, "\n%s — %s\n%s\nSessions: %d\nAverage: %.1f %s\nPR: %s %s\n",
		Banner, Upper(label),
		rule,
		s.Count,
		s.Average, Unit,
		FormatWeight(s.PersonalRecord), Unit,
	)
	return err
}

// Prompt is the question asked before reading today's weight.
func Prompt(label string) string {
	return fmt.Sprintf("Enter today's %s weight (%s): ", Normalize(label), Unit)
}

// ChartTitle is the chart heading for a lift.
func ChartTitle(label string) string {
	return Capitalize(label) + " Progress"
}

// FormatWeight prints a weight with no trailing zeros: 135, 137.5.
func FormatWeight(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Normalize puts a label into NFC so composed and decomposed forms of the
// same directory name display identically.
func Normalize(label string) string {
	return norm.NFC.String(label)
}

// Upper upper-cases a label for the report header.
func Upper(label string) string {
	return cases.Upper(language.Und).String(Normalize(label))
}

// Capitalize upper-cases the first letter and lower-cases the rest:
// "squat" -> "Squat", "BENCH press" -> "Bench press".
func Capitalize(label string) string {
	lower := cases.Lower(language.Und).String(Normalize(label))
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return string(unicode.ToTitle(r)) + lower[size:]
}
