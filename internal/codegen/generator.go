package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"

	"optgen/internal/common"
	"optgen/internal/options"
	"optgen/internal/rename"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package. Containers are
	// expected to be declared in this package.
	PackageName string
	// OutputDir is where .debug sidecar files go when formatting fails.
	OutputDir string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "settings",
		OutputDir:        ".",
		GenerateComments: true,
	}
}

// Generator generates Go code from container views.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "server_optgen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate emits one file per container, in input order. Nothing is
// rendered when any container fails CheckView.
func (g *Generator) Generate(containers []ContainerView) ([]GeneratedFile, error) {
	for i := range containers {
		if errs := CheckView(containers[i]); len(errs) > 0 {
			return nil, fmt.Errorf("generating %s: %w", containers[i].Name, errors.Join(errs...))
		}
	}

	files := make([]GeneratedFile, 0, len(containers))

	for i := range containers {
		file, err := g.generateContainer(&containers[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", containers[i].Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

func (g *Generator) generateContainer(c *ContainerView) (*GeneratedFile, error) {
	data := g.buildTemplateData(c)

	var buf bytes.Buffer
	if err := parserTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugSidecar(g.config.OutputDir, data.Filename, buf.Bytes())

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the parser template.
type templateData struct {
	PackageName      string
	Filename         string
	FunctionName     string
	TypeName         string
	Imports          []importSpec
	GenerateComments bool
	// DefaultsInit declares "defaults" when the container has a default.
	DefaultsInit string
	Keys         []string
	Fields       []fieldData
}

type fieldData struct {
	Name    string
	Attr    string
	Skip    bool
	Parser  string
	Type    string
	Default string // statement run when the key is absent; "" means required
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

func (g *Generator) buildTemplateData(c *ContainerView) *templateData {
	imports := newImportSet(c.Imports())
	imports.add(options.Import{Name: "fromvalue", Path: DefaultParserImport})

	data := &templateData{
		PackageName:      g.config.PackageName,
		Filename:         rename.Snake.Apply(c.Name) + "_optgen.go",
		FunctionName:     "Parse" + c.Name,
		TypeName:         c.Name,
		GenerateComments: g.config.GenerateComments,
	}

	switch c.Default.Kind {
	case options.DefaultExplicit:
		data.DefaultsInit = "defaults := " + g.funcRef(c.Default.Path, imports) + "()"
	case options.DefaultTrait:
		data.DefaultsInit = "var defaults " + c.Name
	}

	for _, f := range c.Fields {
		fd := fieldData{Name: f.NameInStruct, Attr: f.NameInAttr, Skip: f.Skip, Type: f.Type}

		if !f.Skip {
			imports.declare(f.FuncImports())

			// The type is spelled out only by the default parser and zero values.
			if f.UsesDefaultParser() || f.Default.Kind == options.DefaultTrait {
				for _, imp := range f.Imports() {
					imports.add(imp)
				}
			}

			data.Keys = append(data.Keys, f.NameInAttr)
			fd.Parser = g.parserExpr(f, imports)
			fd.Default = g.defaultStmt(f, imports)
		}

		data.Fields = append(data.Fields, fd)
	}

	data.Imports = imports.specs()

	return data
}

func (g *Generator) parserExpr(f FieldView, imports *importSet) string {
	if f.UsesDefaultParser() {
		return DefaultParserPath + "[" + f.Type + "]"
	}

	return g.funcRef(f.WithPath, imports)
}

func (g *Generator) defaultStmt(f FieldView, imports *importSet) string {
	switch f.Default.Kind {
	case options.DefaultExplicit:
		return fmt.Sprintf("out.%s = %s()", f.NameInStruct, g.funcRef(f.Default.Path, imports))
	case options.DefaultInherit:
		return fmt.Sprintf("out.%s = defaults.%s", f.NameInStruct, f.Default.Field)
	case options.DefaultTrait:
		return fmt.Sprintf("var zero %s\n\t\tout.%s = zero", f.Type, f.NameInStruct)
	default:
		return ""
	}
}

// funcRef turns a function path into an expression valid in the generated
// package: the package's own name is dropped, and a leading package name
// found among the container's imports is imported.
func (g *Generator) funcRef(path string, imports *importSet) string {
	if rest, ok := strings.CutPrefix(path, g.config.PackageName+"."); ok {
		return rest
	}

	if pkg, _, ok := strings.Cut(path, "."); ok {
		imports.use(pkg)
	}

	return path
}

// importSet collects the imports of one generated file.
type importSet struct {
	inScope map[string]options.Import // by package name
	used    map[string]importSpec     // by path
}

func newImportSet(inScope []options.Import) *importSet {
	s := &importSet{
		inScope: make(map[string]options.Import, len(inScope)),
		used:    make(map[string]importSpec),
	}

	for _, imp := range inScope {
		name := imp.Name
		if name == "" {
			name = common.PkgAlias(imp.Path)
		}

		s.inScope[name] = imp
	}

	return s
}

// declare brings packages named by import path into scope.
func (s *importSet) declare(imports []options.Import) {
	for _, imp := range imports {
		s.inScope[imp.Name] = imp
	}
}

func (s *importSet) add(imp options.Import) {
	if imp.Path == "" {
		return
	}

	spec := importSpec{Path: imp.Path}
	if imp.Name != "" && imp.Name != common.PkgAlias(imp.Path) {
		spec.Alias = imp.Name
	}

	s.used[imp.Path] = spec
}

// use imports the in-scope package called name, if there is one.
func (s *importSet) use(name string) {
	if imp, ok := s.inScope[name]; ok {
		if imp.Name == "" {
			imp.Name = name
		}

		s.add(imp)
	}
}

func (s *importSet) specs() []importSpec {
	specs := make([]importSpec, 0, len(s.used))
	for _, spec := range s.used {
		specs = append(specs, spec)
	}

	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})

	return specs
}

var parserTemplate = template.Must(template.New("parser").Parse(`// Code generated by optgen. DO NOT EDIT.

package {{.PackageName}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{if .GenerateComments}}
// {{.FunctionName}} builds a {{.TypeName}} from values keyed by attribute name.
// Unknown keys are rejected; absent keys fall back to each field's default.{{end}}
func {{.FunctionName}}(values map[string]any) ({{.TypeName}}, error) {
{{if .DefaultsInit}}	{{.DefaultsInit}}
	out := defaults
{{else}}	var out {{.TypeName}}
{{end}}
	for key := range values {
		switch key {
{{if .Keys}}		case {{range $i, $k := .Keys}}{{if $i}}, {{end}}{{printf "%q" $k}}{{end}}:
{{end}}		default:
			return out, &fromvalue.UnknownFieldError{Name: key}
		}
	}
{{range .Fields}}
{{if .Skip}}	// {{.Name}} is skipped.
{{else}}	if v, ok := values[{{printf "%q" .Attr}}]; ok {
		parsed, err := {{.Parser}}(v)
		if err != nil {
			return out, &fromvalue.FieldError{Name: {{printf "%q" .Attr}}, Err: err}
		}

		out.{{.Name}} = parsed
	} else {
{{if .Default}}		{{.Default}}
{{else}}		return out, &fromvalue.MissingFieldError{Name: {{printf "%q" .Attr}}}
{{end}}	}
{{end}}{{end}}
	return out, nil
}
`))
