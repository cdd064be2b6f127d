package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"go.uber.org/zap"

	"partial-generator/internal/analyze"
	"partial-generator/internal/common"
	"partial-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Suffix is appended to generated filenames.
	Suffix string
	// OptionalImport is the import path of the presence-container package.
	OptionalImport string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Suffix:         "_partial.go",
		OptionalImport: "partial-generator/optional",
	}
}

// Generator renders resolved projections as compilable Go source.
type Generator struct {
	config GeneratorConfig
	log    *zap.Logger
}

// NewGenerator creates a new Generator. A nil logger disables logging.
func NewGenerator(config GeneratorConfig, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}

	return &Generator{config: config, log: log}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "user_user_info_partial.go").
	Filename string
	// Dir is the directory the file belongs in, next to the record's source.
	Dir string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per resolved directive, in directive order.
// Rendering is deterministic: identical input yields byte-identical output.
func (g *Generator) Generate(rec *analyze.AnnotatedRecord, resolved []plan.Resolved) ([]GeneratedFile, error) {
	files := make([]GeneratedFile, 0, len(resolved))

	for i := range resolved {
		file, err := g.generateOne(rec, &resolved[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", resolved[i].Projection.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateOne(rec *analyze.AnnotatedRecord, r *plan.Resolved) (*GeneratedFile, error) {
	data := g.buildTemplateData(rec, r)

	var buf bytes.Buffer
	if err := partialTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(rec.Dir, data.Filename, buf.Bytes())
		return nil, fmt.Errorf("formatting code: %w", err)
	}

	g.log.Debug("rendered projection",
		zap.String("record", rec.Record.Name),
		zap.String("target", r.Projection.Name),
		zap.String("file", data.Filename))

	return &GeneratedFile{
		Filename: data.Filename,
		Dir:      rec.Dir,
		Content:  formatted,
	}, nil
}

// filename derives the deterministic lowercase-with-separators filename for
// one projection.
func (g *Generator) filename(recordName, target string) string {
	return common.ToSnake(recordName) + "_" + common.ToSnake(target) + g.config.Suffix
}

// Template for one projection file.

var partialTemplate = template.Must(template.New("partial").Parse(`// Code generated by partialgen. DO NOT EDIT.

package {{.PackageName}}
{{if .Imports}}
import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{end}}
// {{.Target.Doc}}
type {{.Target.Name}} struct {
{{range .Target.Fields}}	{{.Name}} {{.Type}}{{if .Tag}} {{.Tag}}{{end}}
{{end}}}
{{if .Remainder}}
// {{.Remainder.Doc}}
type {{.Remainder.Name}} struct {
{{range .Remainder.Fields}}	{{.Name}} {{.Type}}{{if .Tag}} {{.Tag}}{{end}}
{{end}}}
{{end}}{{if .Capabilities}}
// Requested capabilities; satisfiability is checked by the compiler.
{{range .Capabilities}}var _ {{.}} = (*{{$.Target.Name}})(nil)
{{end}}{{end}}
// {{.Ops.ToFull}} rebuilds a full {{.RecordName}} by consuming the projection and
// supplying one value per omitted field. An optional field resolves to the value
// the projection already holds; its parameter is a fallback for an absent one.
func (p {{.Target.Name}}) {{.Ops.ToFull}}({{.ParamList}}) {{.RecordName}} {
	return {{.RecordName}}{
{{range .FullAssigns}}		{{.Field}}: {{.Expr}},
{{end}}	}
}

// {{.Ops.ToFullCloned}} rebuilds a full {{.RecordName}} without consuming the
// projection; field values are duplicated by assignment.
func (p *{{.Target.Name}}) {{.Ops.ToFullCloned}}({{.ParamList}}) {{.RecordName}} {
	return {{.RecordName}}{
{{range .FullAssigns}}		{{.Field}}: {{.Expr}},
{{end}}	}
}

// {{.Ops.FromFull}} projects a full {{.RecordName}}, discarding the omitted
// fields and marking every optional field as present.
func {{.Ops.FromFull}}(full {{.RecordName}}) {{.Target.Name}} {
{{if .ProjAssigns}}	return {{.Target.Name}}{
{{range .ProjAssigns}}		{{.Field}}: {{.Expr}},
{{end}}	}
{{else}}	return {{.Target.Name}}{}
{{end}}}

// {{.Ops.Split}} splits a full {{.RecordName}} into the projection and the
// omitted remainder.
func {{.Ops.Split}}(full {{.RecordName}}) ({{.Target.Name}}, {{.RemainderType}}) {
	return {{.Ops.FromFull}}(full), {{.RemainderExpr}}
}

// {{.Ops.Mirror}} splits the receiver into {{.Target.Name}} and its omitted
// remainder.
func (r {{.RecordName}}) {{.Ops.Mirror}}() ({{.Target.Name}}, {{.RemainderType}}) {
	return {{.Ops.Split}}(r)
}
`))
