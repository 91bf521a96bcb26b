package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const iconTSX = `import * as React from "react";

export type ArrowIconProps = React.ComponentProps<"svg"> & {
  title?: string;
};

export function ArrowIcon(props: ArrowIconProps) {
  const { title, ...rest } = props;
  return <svg {...rest} />;
}

export default ArrowIcon;
`

func TestConvertTsxToJsx_TSX(t *testing.T) {
	name, module, err := ConvertTsxToJsx("PlasmicIcon__Arrow.tsx", iconTSX)
	require.NoError(t, err)

	assert.Equal(t, "PlasmicIcon__Arrow.jsx", name)
	assert.Contains(t, module, "<svg")
	assert.Contains(t, module, "react")
	assert.Contains(t, module, "ArrowIcon")
	assert.NotContains(t, module, "ArrowIconProps")
	assert.NotContains(t, module, "title?: string")
}

func TestConvertTsxToJsx_TS(t *testing.T) {
	name, module, err := ConvertTsxToJsx("util.ts", "export const n: number = 1;\n")
	require.NoError(t, err)

	assert.Equal(t, "util.js", name)
	assert.NotContains(t, module, ": number")
	assert.Contains(t, module, "export const n = 1")
}

func TestConvertTsxToJsx_PassThrough(t *testing.T) {
	name, module, err := ConvertTsxToJsx("styles.css", ".a { color: red; }")
	require.NoError(t, err)

	assert.Equal(t, "styles.css", name)
	assert.Equal(t, ".a { color: red; }", module)
}

func TestConvertTsxToJsx_SyntaxError(t *testing.T) {
	_, _, err := ConvertTsxToJsx("broken.tsx", "export function (")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.tsx")
}

func TestFormatAsLocal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"crlf", "a\r\nb\r\n", "a\nb\n"},
		{"trailing spaces", "a  \nb\t\n", "a\nb\n"},
		{"missing newline", "a", "a\n"},
		{"extra newlines", "a\n\n\n", "a\n"},
		{"empty", "", ""},
		{"template literal lines are trimmed too", "const s = `a  \nb`;\n", "const s = `a\nb`;\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAsLocal(tt.input, "x.tsx"))
		})
	}
}
