package plan

import (
	"fmt"
	"strings"
)

// OptionalQualifier is the package qualifier generated code uses for the
// presence container.
const OptionalQualifier = "optional"

// WrapOptional wraps a field type expression in the presence container.
func WrapOptional(typeExpr string) string {
	return OptionalQualifier + ".Opt[" + typeExpr + "]"
}

// synthesizeTypes builds the projection description and, when any field is
// omitted, the remainder description. Field order within each type follows
// the source declaration order.
func synthesizeTypes(recordName, target string, fields []ClassifiedField, capabilities []string) (ProjectionType, *RemainderType) {
	proj := ProjectionType{
		Name:         target,
		Capabilities: capabilities,
	}

	var omittedNames []string

	var remFields []GeneratedField

	for _, f := range fields {
		switch f.Class {
		case Included:
			proj.Fields = append(proj.Fields, GeneratedField{
				Name:        f.Name,
				Type:        f.Type,
				Annotations: f.Annotations,
				PkgRefs:     f.PkgRefs,
			})

		case Optional:
			proj.Fields = append(proj.Fields, GeneratedField{
				Name:        f.Name,
				Type:        WrapOptional(f.Type),
				Annotations: f.Annotations,
				PkgRefs:     f.PkgRefs,
				Optional:    true,
			})

		case Omitted:
			omittedNames = append(omittedNames, f.Name)
			remFields = append(remFields, GeneratedField{
				Name:        f.Name,
				Type:        f.Type,
				Annotations: f.Annotations,
				PkgRefs:     f.PkgRefs,
			})
		}
	}

	proj.Doc = projectionDoc(target, recordName, omittedNames)

	if len(remFields) == 0 {
		return proj, nil
	}

	rem := &RemainderType{
		Name:   target + "Omitted",
		Doc:    fmt.Sprintf("%sOmitted holds the %s fields omitted by %s.", target, recordName, target),
		Fields: remFields,
	}

	return proj, rem
}

func projectionDoc(target, recordName string, omittedNames []string) string {
	if len(omittedNames) == 0 {
		return fmt.Sprintf("%s is a partial view of %s including all fields.", target, recordName)
	}

	return fmt.Sprintf("%s is a partial view of %s omitting the fields: %s.",
		target, recordName, strings.Join(omittedNames, ", "))
}

// synthesizeOperations derives the five operation names from the record and
// target names alone, so unchanged input always yields identical output.
func synthesizeOperations(recordName, target string) Operations {
	toFull := "To" + recordName
	fromFull := target + "From" + recordName

	return Operations{
		ToFull:       toFull,
		ToFullCloned: toFull + "Cloned",
		FromFull:     fromFull,
		Split:        fromFull + "WithOmitted",
		Mirror:       "Into" + target + "WithOmitted",
	}
}
