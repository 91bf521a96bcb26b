package core

import (
	"path"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Latin letters without a canonical decomposition, so NFD leaves them alone.
var latinFolds = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O",
	"đ", "d", "Đ", "D",
	"ð", "d", "Ð", "D",
	"ł", "l", "Ł", "L",
	"ŀ", "l", "Ŀ", "L",
	"þ", "th", "Þ", "Th",
	"ħ", "h", "Ħ", "H",
	"ŧ", "t", "Ŧ", "T",
	"ŋ", "n", "Ŋ", "N",
	"ı", "i",
	"ĳ", "ij", "Ĳ", "IJ",
	"ŉ", "'n",
	"ĸ", "k",
	"ſ", "s",
)

var apostrophes = strings.NewReplacer("'", "", "’", "")

// deburr folds accented Latin letters to plain ASCII letters.
func deburr(s string) string {
	s = latinFolds.Replace(s)

	out, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		return s
	}

	return out
}

// SnakeCase turns a display name into a directory-safe snake_case token.
// Apostrophes are dropped before other punctuation turns into word breaks
// ("Tom's Café" -> "toms_cafe").
func SnakeCase(name string) string {
	cleaned := apostrophes.Replace(deburr(name))

	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}

		return ' '
	}, cleaned)

	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return ""
	}

	return strcase.ToSnake(cleaned)
}

// IconModulePath is the path a newly seen icon is assigned:
// <defaultDir>/<snake project name>/<fileName>, always with forward slashes.
func IconModulePath(defaultDir, projectName, fileName string) string {
	return path.Join(defaultDir, SnakeCase(projectName), fileName)
}
