// Package license renders and installs license text with placeholder substitution.
package license

import "strings"

// Field names a replacement source for a placeholder token.
type Field string

const (
	// FieldYear substitutes the copyright year.
	FieldYear Field = "year"

	// FieldAuthor substitutes the author name.
	FieldAuthor Field = "author"

	// FieldProject substitutes the project or program name.
	FieldProject Field = "project"

	// FieldCompany substitutes the company name. No current family uses it;
	// the slot exists so adding such a family is a data change.
	FieldCompany Field = "company"
)

// Rule maps one literal token to its replacement source.
type Rule struct {
	// Token is the literal, case-sensitive placeholder as published by
	// the registry (e.g. "[year]", "<name of author>").
	Token string

	// Field selects which Values entry replaces the token.
	Field Field
}

// families maps a normalized license key to its ordered substitution rules.
// Keys without an entry pass through unmodified.
var families = map[string][]Rule{
	"agpl-3.0": gnuRules,
	"gpl-2.0":  gnuRules,
	"gpl-3.0":  gnuRules,
	"lgpl-2.1": gnuRules,

	"apache-2.0": {
		{Token: "[yyyy]", Field: FieldYear},
		{Token: "[name of copyright owner]", Field: FieldAuthor},
	},

	"mit":                bracketRules,
	"bsd-2-clause":       bracketRules,
	"bsd-3-clause":       bracketRules,
	"bsd-3-clause-clear": bracketRules,
}

var gnuRules = []Rule{
	{Token: "<year>", Field: FieldYear},
	{Token: "<name of author>", Field: FieldAuthor},
	{Token: "<program>", Field: FieldProject},
}

var bracketRules = []Rule{
	{Token: "[year]", Field: FieldYear},
	{Token: "[fullname]", Field: FieldAuthor},
}

// Values holds the replacement values for one render.
type Values struct {
	Year    string
	Author  string
	Project string
	Company string
}

// value returns the replacement for the given field. Empty values are
// permitted and replace the token with nothing.
func (v Values) value(f Field) string {
	switch f {
	case FieldYear:
		return v.Year
	case FieldAuthor:
		return v.Author
	case FieldProject:
		return v.Project
	case FieldCompany:
		return v.Company
	default:
		return ""
	}
}

// Rules returns the ordered substitution rules for a normalized key,
// or nil when the key belongs to no known family.
func Rules(key string) []Rule {
	return families[key]
}

// Substitute applies the family rules for the normalized key to body.
// Every occurrence of each token is replaced; unknown families return
// body unchanged. Fields other than the body are never touched.
func Substitute(key, body string, vals Values) string {
	for _, rule := range Rules(key) {
		body = strings.ReplaceAll(body, rule.Token, vals.value(rule.Field))
	}
	return body
}
