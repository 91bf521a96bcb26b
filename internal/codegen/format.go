package codegen

import "strings"

// FormatAsLocal normalizes a generated module for the local tree: LF line
// endings, no trailing whitespace, exactly one trailing newline. The
// target path is accepted to match the formatter hook signature.
//
// Lines are trimmed without parsing, so trailing blanks inside multi-line
// template literals are removed as well. Generated icon modules carry no
// such literals.
func FormatAsLocal(module, _ string) string {
	module = strings.ReplaceAll(module, "\r\n", "\n")

	lines := strings.Split(module, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.TrimRight(strings.Join(lines, "\n"), "\n")
	if out == "" {
		return ""
	}

	return out + "\n"
}
