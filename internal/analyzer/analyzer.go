// Package analyzer resolves document declarations into renderable module
// items. Values go through the serializer, and sample values and JSON
// Schemas become interfaces.
package analyzer

import (
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/tsgen/internal/config"
	"github.com/mcncl/tsgen/internal/errors"
	"github.com/mcncl/tsgen/internal/models"
	"github.com/mcncl/tsgen/internal/parser"
	"github.com/mcncl/tsgen/internal/schema"
	"github.com/mcncl/tsgen/internal/syntax"
)

// Analyzer turns parsed documents into modules
type Analyzer struct {
	// config holds naming, value and inference settings
	config *config.Config
	logger *zap.Logger
}

// NewAnalyzer creates a new Analyzer instance with the default config.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(nil, nil)
}

// NewAnalyzerWithConfig creates a new Analyzer instance with custom
// configuration. A nil config uses defaults and a nil logger discards output.
func NewAnalyzerWithConfig(cfg *config.Config, logger *zap.Logger) *Analyzer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{config: cfg, logger: logger}
}

// Analyze validates every declaration and resolves its nested values
func (a *Analyzer) Analyze(doc models.Document) (models.Module, error) {
	header := doc.Header
	if header == "" {
		header = a.config.Output.FileHeader
	}

	module := models.Module{
		Header: header,
		Items:  make([]models.ModuleItem, 0, len(doc.Declarations)),
	}

	for i, decl := range doc.Declarations {
		item, err := a.analyzeDeclaration(decl)
		if err != nil {
			return models.Module{}, errors.NewAnalysisError(fmt.Sprintf("declaration %d (%s)", i+1, decl.Kind), err)
		}

		a.logger.Debug("analyzed declaration",
			zap.Int("index", i+1),
			zap.String("kind", string(item.Kind)),
			zap.String("name", item.Decl.Name),
		)
		module.Items = append(module.Items, item)
	}

	return module, nil
}

func (a *Analyzer) analyzeDeclaration(decl models.Declaration) (models.ModuleItem, error) {
	item := models.ModuleItem{Kind: decl.Kind}
	var err error

	switch decl.Kind {
	case models.KindImport, models.KindExport:
		if decl.Kind == models.KindImport && decl.From == "" {
			return item, fmt.Errorf("%w: import requires from", errors.ErrInvalidDocument)
		}
		item.Names, item.Single, err = parser.DecodeNames(node(&decl.Names))

	case models.KindExportStar:
		if decl.From == "" {
			return item, fmt.Errorf("%w: export_star requires from", errors.ErrInvalidDocument)
		}

	case models.KindDefaultExport:
		item.Value, err = a.RenderValue(node(&decl.Value))

	case models.KindVariable:
		if decl.Name, err = a.valueName(decl); err == nil {
			item.Value, err = a.RenderValue(node(&decl.Value))
		}

	case models.KindFunction:
		decl.Name, err = a.valueName(decl)

	case models.KindEnum:
		if decl.Name, err = a.typeName(decl); err == nil {
			item.Members, err = parser.DecodeMembers(node(&decl.Members))
		}

	case models.KindInterface:
		if decl.Name, err = a.typeName(decl); err == nil {
			item.Shape, err = decodeShape(&decl.Shape)
		}

	case models.KindType:
		if decl.Name, err = a.typeName(decl); err != nil {
			break
		}
		if decl.Type == "" && decl.Shape.Kind == 0 {
			return item, fmt.Errorf("%w: type %s requires type or shape", errors.ErrInvalidDocument, decl.Name)
		}
		item.Shape, err = decodeShape(&decl.Shape)

	case models.KindClass:
		decl.Name, err = a.typeName(decl)

	case models.KindNamespace, models.KindModule, models.KindDeclare:
		err = requireName(decl)

	case models.KindRaw, models.KindComment:
		if decl.Code == "" {
			return item, fmt.Errorf("%w: %s requires code", errors.ErrInvalidDocument, decl.Kind)
		}

	case models.KindInfer:
		item.Types, err = a.inferDeclaration(decl)

	case models.KindSchema:
		item.Types, err = a.convertSchema(decl)

	default:
		return item, fmt.Errorf("%w: %q", errors.ErrUnknownKind, decl.Kind)
	}

	item.Decl = decl
	return item, err
}

// RenderValue renders a value expression node to source code
func (a *Analyzer) RenderValue(n *yaml.Node) (string, error) {
	spec, err := parser.DecodeValueSpec(n)
	if err != nil {
		return "", err
	}
	return a.renderSpec(spec), nil
}

func (a *Analyzer) inferDeclaration(decl models.Declaration) (models.TypeDefinitions, error) {
	var sample models.RawValue
	var err error
	switch {
	case decl.Sample.Kind != 0:
		sample, err = parser.NodeToValue(&decl.Sample)
	case decl.From != "":
		sample, err = parser.ParseValueFile(decl.From)
	default:
		return models.TypeDefinitions{}, fmt.Errorf("%w: infer requires sample or from", errors.ErrInvalidDocument)
	}
	if err != nil {
		return models.TypeDefinitions{}, err
	}

	return a.Infer(sample, a.rootName(decl.Name))
}

func (a *Analyzer) convertSchema(decl models.Declaration) (models.TypeDefinitions, error) {
	var s *schema.Schema
	var err error
	switch {
	case decl.Schema.Kind != 0:
		s, err = schema.ParseNode(&decl.Schema)
	case decl.From != "":
		s, err = schema.ParseFile(decl.From)
	default:
		return models.TypeDefinitions{}, fmt.Errorf("%w: schema requires schema or from", errors.ErrInvalidDocument)
	}
	if err != nil {
		return models.TypeDefinitions{}, fmt.Errorf("%w: %v", errors.ErrInvalidDocument, err)
	}

	name := decl.Name
	if name == "" && s.Title == "" {
		name = a.config.RootName()
	}
	if name != "" {
		name = a.config.GetTypeName(name)
	}

	a.logger.Debug("converting schema", zap.String("root", name), zap.String("title", s.Title))
	return schema.NewConverter(s, a.config.Codegen()).Convert(name)
}

func (a *Analyzer) rootName(name string) string {
	if name == "" {
		return a.config.RootName()
	}
	return a.config.GetTypeName(name)
}

func (a *Analyzer) typeName(decl models.Declaration) (string, error) {
	if err := requireName(decl); err != nil {
		return "", err
	}
	return a.config.GetTypeName(decl.Name), nil
}

func (a *Analyzer) valueName(decl models.Declaration) (string, error) {
	if err := requireName(decl); err != nil {
		return "", err
	}
	name := a.config.GetValueName(decl.Name)
	if syntax.IsReservedName(name) {
		return "", fmt.Errorf("%w: %q is a reserved word", errors.ErrInvalidDocument, name)
	}
	return name, nil
}

func requireName(decl models.Declaration) error {
	if decl.Name == "" {
		return fmt.Errorf("%w: %s requires a name", errors.ErrMissingName, decl.Kind)
	}
	return nil
}

func decodeShape(n *yaml.Node) (models.TypeObject, error) {
	if n.Kind == 0 {
		return nil, nil
	}
	return parser.DecodeShape(n)
}

// node returns nil for an absent document field
func node(n *yaml.Node) *yaml.Node {
	if n.Kind == 0 {
		return nil
	}
	return n
}
