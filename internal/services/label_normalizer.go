package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"cdf-insights/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// categoryAliases maps lower-cased category spellings onto canonical labels
var categoryAliases = map[string]string{
	"bursaries":          models.CategoryBursaries,
	"busaries":           models.CategoryBursaries,
	"burseries":          models.CategoryBursaries,
	"bursary":            models.CategoryBursaries,
	"projects":           models.CategoryProjects,
	"project":            models.CategoryProjects,
	"community projects": models.CategoryCommunityProjects,
	"community project":  models.CategoryCommunityProjects,
	"empowerment":        models.CategoryEmpowerment,
}

// subCategoryAliases maps lower-cased subcategory spellings onto canonical labels
var subCategoryAliases = map[string]string{
	"secondary boarding":        "Secondary Boarding School",
	"secondary boarding school": "Secondary Boarding School",
	"secondary school":          "Secondary School",
	"skills development":        "Skills Development",
	"community projects":        "Community Projects",
	"n/a":                       "N/A",
	"na":                        "N/A",
}

type labelNormalizer struct {
	tag language.Tag
}

// NewLabelNormalizer creates a normalizer that folds known category misspellings
// and applies canonical casing to subcategories
func NewLabelNormalizer() LabelNormalizerInterface {
	return &labelNormalizer{tag: language.English}
}

// Category returns the canonical spelling of a category label. Unknown labels
// are capitalized. The "0" placeholder is returned unchanged.
func (n *labelNormalizer) Category(label string) string {
	cleaned := cleanLabel(label)
	if cleaned == "" || cleaned == models.CategoryNotReported {
		return cleaned
	}

	lowered := cases.Lower(n.tag).String(cleaned)
	if canonical, ok := categoryAliases[lowered]; ok {
		return canonical
	}

	return capitalize(lowered)
}

// SubCategory returns the canonical spelling of a subcategory label. Unknown
// labels are title cased.
func (n *labelNormalizer) SubCategory(label string) string {
	cleaned := cleanLabel(label)
	if cleaned == "" || cleaned == models.CategoryNotReported {
		return cleaned
	}

	lowered := cases.Lower(n.tag).String(cleaned)
	if canonical, ok := subCategoryAliases[lowered]; ok {
		return canonical
	}

	return cases.Title(n.tag).String(lowered)
}

// Normalize returns a copy of the record with canonical labels. The
// constituency is only cleaned of surrounding whitespace.
func (n *labelNormalizer) Normalize(record models.AllocationRecord) models.AllocationRecord {
	record.Constituency = strings.TrimSpace(record.Constituency)
	record.Category = n.Category(record.Category)
	record.SubCategory = n.SubCategory(record.SubCategory)
	return record
}

// cleanLabel applies NFKC, drops control characters and collapses whitespace
func cleanLabel(label string) string {
	normed := norm.NFKC.String(label)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, normed)
	return strings.Join(strings.Fields(normed), " ")
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
