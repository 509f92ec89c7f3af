package analyzer

import (
	"github.com/mcncl/tsgen/internal/generator"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/serializer"
	"github.com/mcncl/tsgen/internal/syntax"
)

// renderSpec dispatches a decoded value expression to its renderer
func (a *Analyzer) renderSpec(spec models.ValueSpec) string {
	switch spec.Kind {
	case models.ValueObject:
		return serializer.GenObject(spec.Data, "", a.serializerOptions(spec)...)
	case models.ValueFields:
		return serializer.GenFields(spec.Fields, "")
	case models.ValueArray:
		return serializer.GenArray(spec.Data, "", a.serializerOptions(spec)...)
	case models.ValueMap:
		return serializer.GenMap(spec.Entries, "", a.serializerOptions(spec)...)
	case models.ValueSet:
		return serializer.GenSet(spec.Data, "", a.serializerOptions(spec)...)
	case models.ValueLiteral:
		return serializer.GenLiteral(spec.Literal, "")
	case models.ValueString:
		return syntax.GenString(spec.Text, a.config.Codegen())
	case models.ValueTemplate:
		return syntax.GenTemplateLiteral(spec.Parts)
	case models.ValueArrow:
		arrow := spec.Arrow
		return generator.GenArrowFunction(generator.ArrowFunctionOptions{
			Parameters: arrow.Parameters,
			Expression: arrow.Expression,
			Body:       arrow.Body,
			Async:      arrow.Async,
			ReturnType: arrow.ReturnType,
			Generics:   arrow.Generics,
		})
	case models.ValueDynamicImport:
		imp := spec.Import
		return generator.GenDynamicImport(imp.From, generator.DynamicImportOptions{
			ESMOptions: generator.ESMOptions{
				CodegenOptions: a.config.Codegen(),
				Type:           imp.Type,
				Attributes:     imp.Attributes,
				Assert:         imp.Assert,
			},
			Name:           imp.Name,
			Comment:        imp.Comment,
			Wrapper:        imp.Wrapper,
			InteropDefault: imp.InteropDefault,
		})
	default:
		return spec.Code
	}
}

// serializerOptions applies the value's preserve_types, falling back to the
// configured override. Without either each renderer keeps its own default.
func (a *Analyzer) serializerOptions(spec models.ValueSpec) []serializer.Option {
	opts := []serializer.Option{serializer.WithCodegenOptions(a.config.Codegen())}

	preserve := spec.PreserveTypes
	if preserve == nil {
		preserve = a.config.Values.PreserveTypes
	}
	if preserve != nil {
		opts = append(opts, serializer.WithPreserveTypes(*preserve))
	}
	return opts
}
