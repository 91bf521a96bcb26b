// Package codegen post-processes generated icon modules before they are
// written into the source tree.
package codegen

import (
	"fmt"
	"path"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

// Imports that are not marked "import type" are kept even when only JSX
// references them, since preserved JSX still needs React in scope.
const tsconfigRaw = `{"compilerOptions":{"verbatimModuleSyntax":true}}`

// ConvertTsxToJsx strips type annotations from a TypeScript module and
// renames .tsx/.ts files to .jsx/.js. Other files pass through unchanged.
func ConvertTsxToJsx(fileName, module string) (string, string, error) {
	var (
		loader  api.Loader
		newName string
	)

	ext := path.Ext(fileName)
	base := strings.TrimSuffix(fileName, ext)

	switch ext {
	case ".tsx":
		loader = api.LoaderTSX
		newName = base + ".jsx"
	case ".ts":
		loader = api.LoaderTS
		newName = base + ".js"
	default:
		return fileName, module, nil
	}

	result := api.Transform(module, api.TransformOptions{
		Loader:        loader,
		JSX:           api.JSXPreserve,
		Target:        api.ESNext,
		TsconfigRaw:   tsconfigRaw,
		LegalComments: api.LegalCommentsInline,
		Sourcefile:    fileName,
	})

	if len(result.Errors) > 0 {
		msg := result.Errors[0]

		if msg.Location != nil {
			return "", "", fmt.Errorf("convert %s:%d:%d: %s", fileName, msg.Location.Line, msg.Location.Column, msg.Text)
		}

		return "", "", fmt.Errorf("convert %s: %s", fileName, msg.Text)
	}

	return newName, string(result.Code), nil
}
