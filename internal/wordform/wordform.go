// Package wordform derives singular and plural word forms. The relation engine
// uses it to turn a collection name ("otus") into its member name ("otu").
//
// Forms come from two ordered rule tables loaded into an inflect ruleset. When
// several rules match a word, the one listed last wins and is applied to the
// original word; rules never compose. A word no rule matches is returned
// unchanged by Singular, and gets an "s" appended by Plural.
package wordform

import (
	"strings"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// rule maps a suffix (or, when exact, a whole word) to its replacement.
type rule struct {
	match       string
	replacement string
	exact       bool
}

// pluralRules is ordered from lowest to highest priority.
var pluralRules = []rule{
	{match: "s", replacement: "s"},
	{match: "x", replacement: "xes"},
	{match: "ch", replacement: "ches"},
	{match: "sh", replacement: "shes"},
	{match: "ss", replacement: "sses"},
	{match: "y", replacement: "ies"},
	{match: "ay", replacement: "ays"},
	{match: "ey", replacement: "eys"},
	{match: "oy", replacement: "oys"},
	{match: "uy", replacement: "uys"},
	{match: "lf", replacement: "lves"},
	{match: "fe", replacement: "ves"},
	{match: "sis", replacement: "ses"},
	{match: "rix", replacement: "rices"},
	{match: "tex", replacement: "tices"},
	{match: "datum", replacement: "data", exact: true},
	{match: "taxon", replacement: "taxa", exact: true},
	{match: "phylum", replacement: "phyla", exact: true},
	{match: "genus", replacement: "genera", exact: true},
	{match: "child", replacement: "children", exact: true},
	{match: "person", replacement: "people", exact: true},
}

// singularRules is ordered from lowest to highest priority.
var singularRules = []rule{
	{match: "s", replacement: ""},
	{match: "ss", replacement: "ss"},
	{match: "is", replacement: "is"},
	{match: "ies", replacement: "y"},
	{match: "xes", replacement: "x"},
	{match: "ches", replacement: "ch"},
	{match: "shes", replacement: "sh"},
	{match: "sses", replacement: "ss"},
	{match: "lves", replacement: "lf"},
	{match: "ives", replacement: "ife"},
	{match: "yses", replacement: "ysis"},
	{match: "rices", replacement: "rix"},
	{match: "tices", replacement: "tex"},
	{match: "data", replacement: "datum", exact: true},
	{match: "taxa", replacement: "taxon", exact: true},
	{match: "phyla", replacement: "phylum", exact: true},
	{match: "genera", replacement: "genus", exact: true},
	{match: "children", replacement: "child", exact: true},
	{match: "people", replacement: "person", exact: true},
	{match: "status", replacement: "status", exact: true},
}

var uncountable = []string{"species", "series", "sheep", "fish"}

// rules is built once and only read afterwards.
var rules = newRuleset()

// newRuleset loads both tables in priority order. inflect consults the most
// recently added rule first, which gives the last-listed rule precedence.
func newRuleset() *inflect.Ruleset {
	rs := inflect.NewRuleset()
	for _, r := range pluralRules {
		rs.AddPluralExact(r.match, r.replacement, r.exact)
	}
	for _, r := range singularRules {
		rs.AddSingularExact(r.match, r.replacement, r.exact)
	}
	for _, w := range uncountable {
		rs.AddUncountable(w)
	}
	return rs
}

// Singular returns the singular form of word.
func Singular(word string) string {
	return rules.Singularize(word)
}

// Plural returns the plural form of word.
func Plural(word string) string {
	return rules.Pluralize(word)
}

// TypeKey returns the lower-cased trailing component of a qualified type
// name. "Outer::Otus", "model.Otus" and "*model.Otus" all yield "otus".
func TypeKey(qualified string) string {
	name := strings.TrimLeft(qualified, "*[]")
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i] // drop type arguments
	}
	if i := strings.LastIndex(name, "::"); i >= 0 {
		name = name[i+2:]
	}
	if i := strings.LastIndexAny(name, "./"); i >= 0 {
		name = name[i+1:]
	}
	return cases.Lower(language.Und).String(name)
}

// Camel turns a snake_case word into an exported Go identifier fragment:
// "otu" becomes "Otu" and "root_edge" becomes "RootEdge".
func Camel(word string) string {
	title := cases.Title(language.English)
	var b strings.Builder
	for _, part := range strings.Split(word, "_") {
		b.WriteString(title.String(part))
	}
	return b.String()
}
