package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

const header = "// Code generated by hacspec gen. DO NOT EDIT."

var fileTemplate = template.Must(template.New("arrays").Funcs(template.FuncMap{
	"marker":  marker,
	"element": element,
	"comment": comment,
}).Parse(header + `

package {{.Package}}

import (
{{- if .NeedsSecret}}
	"{{.ImportPrefix}}/pkg/secret"
{{- end}}
	"{{.ImportPrefix}}/pkg/seq"
)
{{range .Arrays}}
type {{marker .Name}} struct{}

func ({{marker .Name}}) Len() int { return {{.Length}} }

// {{comment .}}
type {{.Name}} = seq.Array[{{marker .Name}}, {{element .}}]
{{end}}`))

// Render produces the formatted Go source for m. The manifest is validated
// first; entries built by hand must set Width explicitly.
func Render(m *Manifest) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, m); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}

	slog.Debug("rendered array family", "package", m.Package, "arrays", len(m.Arrays), "bytes", len(out))
	return out, nil
}

// marker names the unexported size type behind an array: Key -> keySize.
func marker(name string) string {
	r, n := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[n:] + "Size"
}

// element names the Go element type: secret.U32, uint32, secret.Uint128.
func element(e Entry) string {
	switch {
	case !e.Public:
		return fmt.Sprintf("secret.U%d", e.Width)
	case e.Width == 128:
		return "secret.Uint128"
	default:
		return fmt.Sprintf("uint%d", e.Width)
	}
}

func comment(e Entry) string {
	if doc := strings.TrimSpace(e.Doc); doc != "" {
		return e.Name + " " + doc
	}
	if e.Public {
		return fmt.Sprintf("%s is a fixed array of %d public %s values.", e.Name, e.Length, element(e))
	}
	return fmt.Sprintf("%s is a fixed array of %d %s values.", e.Name, e.Length, element(e))
}
