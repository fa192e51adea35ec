package analyze

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"optgen/internal/common"
	"optgen/internal/directive"
	"optgen/internal/options"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrNotStruct reports a container annotation on something other than a struct.
var ErrNotStruct = errors.New("container is not a struct")

// Analyzer loads Go packages and extracts annotated containers.
type Analyzer struct {
	config Config
	dir    string
}

// NewAnalyzer creates a new Analyzer. Empty config fields take their defaults.
func NewAnalyzer(config Config) *Analyzer {
	def := DefaultConfig()
	if config.Tag == "" {
		config.Tag = def.Tag
	}

	if config.Prefix == "" {
		config.Prefix = def.Prefix
	}

	return &Analyzer{config: config}
}

// WithDir sets the directory package patterns are resolved from.
func (a *Analyzer) WithDir(dir string) *Analyzer {
	a.dir = dir
	return a
}

// LoadPackages loads the specified packages and returns their containers.
// Patterns are standard Go package patterns (e.g., "./settings", "optgen/examples/settings").
func (a *Analyzer) LoadPackages(patterns ...string) ([]*Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	result := make([]*Package, 0, len(pkgs))

	for _, pkg := range pkgs {
		p, err := a.processPackage(pkg)
		if err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		result = append(result, p)
	}

	return result, nil
}

// processPackage extracts the containers declared in a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) (*Package, error) {
	out := &Package{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		out.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	var errs []error

	for _, file := range pkg.Syntax {
		imports := fileImports(pkg, file)

		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				text, ok := a.containerDirectives(doc)
				if !ok {
					continue
				}

				in, err := a.container(pkg, ts, text)
				if err != nil {
					errs = append(errs, fmt.Errorf("%s: %s: %w", position(pkg, ts.Pos()), ts.Name.Name, err))
					continue
				}

				in.Imports = imports
				out.Containers = append(out.Containers, in)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

// containerDirectives joins every "//<prefix>" line of a doc comment.
// Directive comments are not part of CommentGroup.Text, so the raw list is read.
func (a *Analyzer) containerDirectives(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}

	var (
		parts []string
		found bool
	)

	for _, c := range doc.List {
		body, ok := strings.CutPrefix(c.Text, "//"+a.config.Prefix)
		if !ok {
			continue
		}

		found = true

		if body = strings.TrimSpace(body); body != "" {
			parts = append(parts, body)
		}
	}

	return strings.Join(parts, ", "), found
}

func (a *Analyzer) container(pkg *packages.Package, ts *ast.TypeSpec, text string) (options.ContainerInput, error) {
	in := options.ContainerInput{
		Name:   ts.Name.Name,
		Source: position(pkg, ts.Pos()),
	}

	if !ts.Name.IsExported() {
		return in, fmt.Errorf("%w: container must be exported", options.ErrInvalidName)
	}

	if ts.TypeParams != nil {
		return in, errors.New("generic containers are not supported")
	}

	obj, ok := pkg.TypesInfo.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return in, fmt.Errorf("no type information for %s", ts.Name.Name)
	}

	st, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return in, fmt.Errorf("%w (kind: %s)", ErrNotStruct, obj.Type().Underlying().String())
	}

	ds, err := directive.Parse(text)
	if err != nil {
		return in, fmt.Errorf("container directives: %w", err)
	}

	in.Directives = ds

	var errs []error

	for i := range st.NumFields() {
		field := st.Field(i)

		if !field.Exported() || field.Embedded() {
			continue
		}

		fi, err := a.field(pkg, field, reflect.StructTag(st.Tag(i)))
		if err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", field.Name(), err))
			continue
		}

		in.Fields = append(in.Fields, fi)
	}

	return in, errors.Join(errs...)
}

func (a *Analyzer) field(pkg *packages.Package, field *types.Var, tag reflect.StructTag) (options.FieldInput, error) {
	fi := options.FieldInput{
		Name: field.Name(),
		Type: typeOf(pkg.Types, field.Type()),
	}

	text, ok := tag.Lookup(a.config.Tag)
	if !ok {
		return fi, nil
	}

	ds, err := directive.Parse(text)
	if err != nil {
		return fi, err
	}

	fi.Directives = ds

	return fi, nil
}

// typeOf renders t as written inside pkg and records the packages it names.
func typeOf(pkg *types.Package, t types.Type) options.Type {
	seen := make(map[string]bool)

	var imports []options.Import

	qualifier := func(p *types.Package) string {
		if p == pkg {
			return ""
		}

		if !seen[p.Path()] {
			seen[p.Path()] = true
			imports = append(imports, options.Import{Name: p.Name(), Path: p.Path()})
		}

		return p.Name()
	}

	expr := types.TypeString(t, qualifier)

	return options.Type{Expr: expr, Imports: imports}
}

// fileImports lists the named imports of a file, resolving implicit names
// from the loaded dependency.
func fileImports(pkg *packages.Package, file *ast.File) []options.Import {
	var imports []options.Import

	for _, spec := range file.Imports {
		path, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}

		var name string

		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case pkg.Imports[path] != nil:
			name = pkg.Imports[path].Name
		default:
			name = common.PkgAlias(path)
		}

		if name == "_" || name == "." {
			continue
		}

		imports = append(imports, options.Import{Name: name, Path: path})
	}

	return imports
}

// position formats pos as "<import path>/<file>:<line>".
func position(pkg *packages.Package, pos token.Pos) string {
	p := pkg.Fset.Position(pos)

	return fmt.Sprintf("%s/%s:%d", pkg.PkgPath, filepath.Base(p.Filename), p.Line)
}
