package analyze

import (
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"partial-generator/internal/common"
	"partial-generator/internal/diagnostic"
	"partial-generator/internal/directive"
	"partial-generator/internal/schema"
)

// Marker is the comment prefix that attaches a projection directive to a
// struct declaration.
const Marker = "//partial:"

// LoadMode specifies what information to load from packages. Field types
// stay opaque, so syntax is enough; go/types resolution is not needed.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax

// Loader scans Go packages for annotated struct declarations.
type Loader struct {
	log *zap.Logger
}

// NewLoader creates a Loader. A nil logger disables logging.
func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}

	return &Loader{log: log}
}

// Load loads the given package patterns and returns every struct declaration
// carrying at least one //partial: directive, in file and declaration order.
func (l *Loader) Load(patterns ...string) ([]*AnnotatedRecord, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var records []*AnnotatedRecord

	for _, pkg := range pkgs {
		found := l.processPackage(pkg)

		l.log.Debug("scanned package",
			zap.String("package", pkg.PkgPath),
			zap.Int("annotated", len(found)))

		records = append(records, found...)
	}

	return records, nil
}

// processPackage extracts annotated records from a loaded package.
func (l *Loader) processPackage(pkg *packages.Package) []*AnnotatedRecord {
	var records []*AnnotatedRecord

	for _, file := range pkg.Syntax {
		imports := fileImports(file)

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				raws := directiveComments(pkg.Fset, typeSpec.Doc, genDecl.Doc)
				if len(raws) == 0 {
					continue
				}

				records = append(records, l.buildRecord(pkg, typeSpec, raws, imports))
			}
		}
	}

	return records
}

// buildRecord turns one annotated type spec into an AnnotatedRecord. Shape
// problems are not rejected here; the record carries its shape so the engine
// can report UnsupportedShapeError with a proper position.
func (l *Loader) buildRecord(
	pkg *packages.Package,
	typeSpec *ast.TypeSpec,
	raws []directive.Raw,
	imports map[string]string,
) *AnnotatedRecord {
	pos := pkg.Fset.Position(typeSpec.Name.Pos())

	rec := &schema.SourceRecord{
		Name: typeSpec.Name.Name,
		Pos: diagnostic.Pos{
			File:   pos.Filename,
			Line:   pos.Line,
			Column: pos.Column,
		},
	}

	structType, ok := typeSpec.Type.(*ast.StructType)

	switch {
	case !ok:
		rec.Shape = schema.ShapeNotStruct

	case structType.Fields == nil || len(structType.Fields.List) == 0:
		rec.Shape = schema.ShapeNoFields

	case hasEmbeddedField(structType):
		rec.Shape = schema.ShapeEmbedded

	default:
		rec.Shape = schema.ShapeNamedFields
		rec.Fields = structFields(pkg.Fset, structType, imports)
	}

	return &AnnotatedRecord{
		Record:     rec,
		Directives: raws,
		PkgName:    pkg.Name,
		PkgPath:    pkg.PkgPath,
		Dir:        filepath.Dir(pos.Filename),
		Imports:    imports,
	}
}

// directiveComments collects //partial: payloads from the doc comments of a
// type spec, falling back to the enclosing declaration's doc.
func directiveComments(fset *token.FileSet, docs ...*ast.CommentGroup) []directive.Raw {
	var raws []directive.Raw

	for _, doc := range docs {
		if doc == nil {
			continue
		}

		for _, c := range doc.List {
			if !strings.HasPrefix(c.Text, Marker) {
				continue
			}

			p := fset.Position(c.Pos())
			raws = append(raws, directive.Raw{
				Text: c.Text[len(Marker):],
				Pos: diagnostic.Pos{
					File:   p.Filename,
					Line:   p.Line,
					Column: p.Column + len(Marker),
				},
			})
		}
	}

	return raws
}

func hasEmbeddedField(st *ast.StructType) bool {
	for _, field := range st.Fields.List {
		if len(field.Names) == 0 {
			return true
		}
	}

	return false
}

// structFields flattens the field list in declaration order. A multi-name
// field ("X, Y int") expands into one schema.Field per name.
func structFields(fset *token.FileSet, st *ast.StructType, imports map[string]string) []schema.Field {
	var fields []schema.Field

	for _, field := range st.Fields.List {
		typeExpr := exprString(fset, field.Type)
		refs := pkgRefs(field.Type, imports)

		var annotations []string
		if field.Tag != nil {
			annotations = []string{field.Tag.Value}
		}

		for _, name := range field.Names {
			fields = append(fields, schema.Field{
				Name:        name.Name,
				Type:        typeExpr,
				Annotations: annotations,
				PkgRefs:     refs,
			})
		}
	}

	return fields
}

// exprString renders a type expression exactly as the emitter should print it.
func exprString(fset *token.FileSet, expr ast.Expr) string {
	var sb strings.Builder

	if err := printer.Fprint(&sb, fset, expr); err != nil {
		return "any"
	}

	return sb.String()
}

// pkgRefs returns the sorted package qualifiers a type expression references,
// limited to names the file actually imports.
func pkgRefs(expr ast.Expr, imports map[string]string) []string {
	seen := map[string]bool{}

	ast.Inspect(expr, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}

		if ident, ok := sel.X.(*ast.Ident); ok {
			if _, imported := imports[ident.Name]; imported {
				seen[ident.Name] = true
			}
		}

		return true
	})

	if len(seen) == 0 {
		return nil
	}

	refs := make([]string, 0, len(seen))
	for name := range seen {
		refs = append(refs, name)
	}

	sort.Strings(refs)

	return refs
}

// fileImports maps local import names to import paths for one file.
// Dot and blank imports are skipped; unaliased imports use the path's base
// element as the local name.
func fileImports(file *ast.File) map[string]string {
	imports := make(map[string]string, len(file.Imports))

	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}

		name := common.PkgAlias(path)
		if imp.Name != nil {
			name = imp.Name.Name
		}

		if name == "_" || name == "." {
			continue
		}

		imports[name] = path
	}

	return imports
}
