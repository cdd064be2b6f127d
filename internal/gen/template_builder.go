package gen

import (
	"go/token"
	"sort"
	"strings"

	"partial-generator/internal/analyze"
	"partial-generator/internal/common"
	"partial-generator/internal/plan"
)

// templateData holds all data needed for the projection template.
type templateData struct {
	PackageName   string
	Filename      string
	Imports       []importSpec
	RecordName    string
	Target        typeData
	Remainder     *typeData
	RemainderType string
	RemainderExpr string
	Capabilities  []string
	Ops           plan.Operations
	ParamList     string
	FullAssigns   []assignData
	ProjAssigns   []assignData
}

// importSpec is one import of the generated file.
type importSpec struct {
	Alias string
	Path  string
}

// typeData is a struct declaration in the generated file.
type typeData struct {
	Name   string
	Doc    string
	Fields []fieldData
}

// fieldData is one field line of a generated struct.
type fieldData struct {
	Name string
	Type string
	Tag  string
}

// assignData is one field assignment in a composite literal.
type assignData struct {
	Field string
	Expr  string
}

// buildTemplateData constructs the template data from one resolved directive.
func (g *Generator) buildTemplateData(rec *analyze.AnnotatedRecord, r *plan.Resolved) *templateData {
	data := &templateData{
		PackageName:  rec.PkgName,
		Filename:     g.filename(rec.Record.Name, r.Projection.Name),
		RecordName:   rec.Record.Name,
		Target:       buildTypeData(r.Projection.Name, r.Projection.Doc, r.Projection.Fields),
		Capabilities: r.Projection.Capabilities,
		Ops:          r.Ops,
	}

	if r.Remainder != nil {
		rem := buildTypeData(r.Remainder.Name, r.Remainder.Doc, r.Remainder.Fields)
		data.Remainder = &rem
		data.RemainderType = r.Remainder.Name
	} else {
		data.RemainderType = "struct{}"
	}

	params := buildParams(r)
	data.ParamList = renderParamList(params)
	data.FullAssigns = buildFullAssigns(r, params)
	data.ProjAssigns = buildProjAssigns(r)
	data.RemainderExpr = buildRemainderExpr(r)
	data.Imports = g.collectImports(rec, r)

	return data
}

func buildTypeData(name, doc string, fields []plan.GeneratedField) typeData {
	td := typeData{Name: name, Doc: doc}

	for _, f := range fields {
		td.Fields = append(td.Fields, fieldData{
			Name: f.Name,
			Type: f.Type,
			Tag:  strings.Join(f.Annotations, " "),
		})
	}

	return td
}

// param is one reconstruction parameter: omitted fields first, then one
// fallback per optional field, each group in declaration order.
type param struct {
	field string
	name  string
	typ   string
}

func buildParams(r *plan.Resolved) []param {
	var params []param

	for _, f := range r.OmittedFields() {
		params = append(params, param{
			field: f.Name,
			name:  paramName(f.Name),
			typ:   f.Type,
		})
	}

	for _, f := range r.OptionalFields() {
		params = append(params, param{
			field: f.Name,
			name:  paramName(f.Name),
			typ:   plan.WrapOptional(f.Type),
		})
	}

	return params
}

func renderParamList(params []param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, p.name+" "+p.typ)
	}

	return strings.Join(parts, ", ")
}

// paramName derives a parameter name from a field name, steering clear of
// keywords and the method receiver.
func paramName(fieldName string) string {
	name := common.LowerCamel(fieldName)
	if token.IsKeyword(name) || name == "p" {
		name += "Arg"
	}

	return name
}

// buildFullAssigns lists the full-record composite literal in the source
// record's declaration order, regardless of classification grouping.
func buildFullAssigns(r *plan.Resolved, params []param) []assignData {
	byField := make(map[string]string, len(params))
	for _, p := range params {
		byField[p.field] = p.name
	}

	var assigns []assignData

	for _, f := range r.Fields {
		var expr string

		switch f.Class {
		case plan.Included:
			expr = "p." + f.Name
		case plan.Omitted:
			expr = byField[f.Name]
		case plan.Optional:
			expr = "p." + f.Name + ".Or(" + byField[f.Name] + ").MustGet()"
		}

		assigns = append(assigns, assignData{Field: f.Name, Expr: expr})
	}

	return assigns
}

func buildProjAssigns(r *plan.Resolved) []assignData {
	var assigns []assignData

	for _, f := range r.Fields {
		switch f.Class {
		case plan.Included:
			assigns = append(assigns, assignData{
				Field: f.Name,
				Expr:  "full." + f.Name,
			})
		case plan.Optional:
			assigns = append(assigns, assignData{
				Field: f.Name,
				Expr:  plan.OptionalQualifier + ".Some(full." + f.Name + ")",
			})
		case plan.Omitted:
			// Discarded by the projection; routed to the remainder.
		}
	}

	return assigns
}

func buildRemainderExpr(r *plan.Resolved) string {
	if r.Remainder == nil {
		return "struct{}{}"
	}

	var sb strings.Builder

	sb.WriteString(r.Remainder.Name)
	sb.WriteString("{\n")

	for _, f := range r.Remainder.Fields {
		sb.WriteString("\t\t")
		sb.WriteString(f.Name)
		sb.WriteString(": full.")
		sb.WriteString(f.Name)
		sb.WriteString(",\n")
	}

	sb.WriteString("\t}")

	return sb.String()
}

// collectImports assembles the generated file's imports: every package
// qualifier the field types reference, the capability qualifiers, and the
// presence-container package when any field is optional.
func (g *Generator) collectImports(rec *analyze.AnnotatedRecord, r *plan.Resolved) []importSpec {
	byPath := make(map[string]importSpec)

	addQualifier := func(name string) {
		path, ok := rec.Imports[name]
		if !ok {
			// Unimported qualifier; assume a single-segment stdlib path.
			path = name
		}

		spec := importSpec{Path: path}
		if common.PkgAlias(path) != name {
			spec.Alias = name
		}

		byPath[path] = spec
	}

	for _, f := range r.Fields {
		for _, ref := range f.PkgRefs {
			addQualifier(ref)
		}
	}

	for _, capability := range r.Projection.Capabilities {
		if qualifier, _, found := strings.Cut(capability, "."); found {
			addQualifier(qualifier)
		}
	}

	hasOptional := len(r.OptionalFields()) > 0
	if hasOptional {
		spec := importSpec{Path: g.config.OptionalImport}
		if common.PkgAlias(spec.Path) != plan.OptionalQualifier {
			spec.Alias = plan.OptionalQualifier
		}

		byPath[spec.Path] = spec
	}

	imports := make([]importSpec, 0, len(byPath))
	for _, spec := range byPath {
		imports = append(imports, spec)
	}

	sort.Slice(imports, func(i, j int) bool {
		return imports[i].Path < imports[j].Path
	})

	return imports
}
