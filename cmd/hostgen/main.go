package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Param is one constructor argument, in constructor order.
// Each param results in an Inject<Name> method and a Build-time check.
type Param struct {
	// Name is used for method naming (Inject<Name>).
	Name string `yaml:"name"`

	// Field is the builder field holding the argument.
	Field string `yaml:"field"`

	// Type is the Go type of the argument as written in the target package.
	Type string `yaml:"type"`
}

// Import is one import needed by the parameter types.
type Import struct {
	Alias string `yaml:"alias"`
	Path  string `yaml:"path"`
}

// Spec is the input schema consumed by the generator.
type Spec struct {
	Package     string   `yaml:"package"`
	Facade      string   `yaml:"facade"`
	ImplType    string   `yaml:"implType"`
	Constructor string   `yaml:"constructor"`
	Imports     []Import `yaml:"imports"`
	Params      []Param  `yaml:"params"`
}

// ctorInfo is what the generator learns about the constructor from source.
type ctorInfo struct {
	params       int
	returnsError bool
}

type templateData struct {
	Spec         Spec
	Imports      []Import
	Args         string
	ReturnsError bool
}

// run executes the generator and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stderr io.Writer) int {
	flags := flag.NewFlagSet("hostgen", flag.ContinueOnError)
	flags.SetOutput(stderr)

	specPath := flags.String("spec", "", "path to host.inject.yaml")
	outPath := flags.String("out", "", "output .gen.go file path")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if strings.TrimSpace(*specPath) == "" || strings.TrimSpace(*outPath) == "" {
		_, _ = fmt.Fprintln(stderr, "usage: hostgen -spec <host.inject.yaml> -out <file.gen.go>")
		return 2
	}

	if err := generate(*specPath, filepath.Clean(*outPath)); err != nil {
		_, _ = fmt.Fprintln(stderr, "hostgen:", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func generate(specPath, outPath string) error {
	specBytes, err := os.ReadFile(specPath)
	if err != nil {
		return err
	}

	spec, err := parseSpec(specBytes)
	if err != nil {
		return err
	}

	ctor, err := inspectConstructor(filepath.Dir(outPath), spec.Constructor)
	if err != nil {
		return err
	}
	if ctor.params != len(spec.Params) {
		return fmt.Errorf("constructor %s takes %d parameters, spec lists %d", spec.Constructor, ctor.params, len(spec.Params))
	}

	src, err := render(spec, ctor)
	if err != nil {
		return err
	}
	return writeFileAtomic(outPath, src, 0o644)
}

// parseSpec decodes and validates a spec. JSON specs are accepted too, being valid YAML.
func parseSpec(b []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(b, &spec); err != nil {
		return nil, fmt.Errorf("parse spec: %w", err)
	}
	if strings.TrimSpace(spec.Facade) == "" {
		spec.Facade = spec.ImplType + "Builder"
	}
	if err := validateSpec(&spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// validateSpec validates semantic correctness of the input specification.
func validateSpec(spec *Spec) error {
	var missingFields []string

	requireNonEmpty := func(fieldName, value string) {
		if strings.TrimSpace(value) == "" {
			missingFields = append(missingFields, fieldName)
		}
	}

	requireNonEmpty("package", spec.Package)
	requireNonEmpty("implType", spec.ImplType)
	requireNonEmpty("constructor", spec.Constructor)

	if len(spec.Params) == 0 {
		missingFields = append(missingFields, "params (must have at least 1)")
	}
	if len(missingFields) > 0 {
		return fmt.Errorf("spec missing required fields: %v", missingFields)
	}

	seenNames := make(map[string]struct{}, len(spec.Params))
	seenFields := make(map[string]struct{}, len(spec.Params))

	for _, p := range spec.Params {
		if p.Name == "" || p.Field == "" || p.Type == "" {
			return fmt.Errorf("each param must have name/field/type; got: %+v", p)
		}
		if !token.IsIdentifier(p.Name) || !token.IsExported(p.Name) {
			return fmt.Errorf("param name %q must be an exported identifier", p.Name)
		}
		if !token.IsIdentifier(p.Field) || token.IsExported(p.Field) {
			return fmt.Errorf("param field %q must be an unexported identifier", p.Field)
		}
		if _, ok := seenNames[p.Name]; ok {
			return fmt.Errorf("duplicate param name: %s", p.Name)
		}
		if _, ok := seenFields[p.Field]; ok {
			return fmt.Errorf("duplicate param field: %s", p.Field)
		}
		seenNames[p.Name] = struct{}{}
		seenFields[p.Field] = struct{}{}
	}

	for _, imp := range spec.Imports {
		if strings.TrimSpace(imp.Path) == "" {
			return errors.New("import with empty path")
		}
	}
	return nil
}

// inspectConstructor finds the free function named name in sourceDir and
// reports its parameter count and whether it returns (T, error).
//
// Exactly one declaration must exist; test and generated files are ignored.
func inspectConstructor(sourceDir, name string) (ctorInfo, error) {
	dirEntries, err := os.ReadDir(sourceDir)
	if err != nil {
		return ctorInfo{}, err
	}

	fileSet := token.NewFileSet()
	var found []*ast.FuncDecl

	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}

		fileName := entry.Name()
		if !strings.HasSuffix(fileName, ".go") ||
			strings.HasSuffix(fileName, "_test.go") ||
			strings.HasSuffix(fileName, ".gen.go") {
			continue
		}

		parsedFile, err := parser.ParseFile(fileSet, filepath.Join(sourceDir, fileName), nil, parser.SkipObjectResolution)
		if err != nil {
			return ctorInfo{}, fmt.Errorf("parse %s: %w", fileName, err)
		}

		for _, decl := range parsedFile.Decls {
			funcDecl, ok := decl.(*ast.FuncDecl)
			if !ok || funcDecl.Recv != nil || funcDecl.Name.Name != name {
				continue
			}
			found = append(found, funcDecl)
		}
	}

	switch len(found) {
	case 0:
		return ctorInfo{}, fmt.Errorf("constructor %s not found in %s", name, sourceDir)
	case 1:
	default:
		return ctorInfo{}, fmt.Errorf("constructor %s declared %d times in %s", name, len(found), sourceDir)
	}

	fn := found[0].Type
	info := ctorInfo{params: countFields(fn.Params)}

	switch countFields(fn.Results) {
	case 1:
	case 2:
		last := fn.Results.List[len(fn.Results.List)-1].Type
		ident, ok := last.(*ast.Ident)
		if !ok || ident.Name != "error" {
			return ctorInfo{}, fmt.Errorf("constructor %s: second result must be error", name)
		}
		info.returnsError = true
	default:
		return ctorInfo{}, fmt.Errorf("constructor %s must return a value or (value, error)", name)
	}
	return info, nil
}

// countFields counts declared names; an unnamed field counts as one.
func countFields(fl *ast.FieldList) int {
	if fl == nil {
		return 0
	}
	n := 0
	for _, f := range fl.List {
		if len(f.Names) == 0 {
			n++
			continue
		}
		n += len(f.Names)
	}
	return n
}

// resolveImports returns fmt plus the spec imports, deduplicated by path and sorted.
func resolveImports(spec *Spec) []Import {
	byPath := map[string]Import{"fmt": {Path: "fmt"}}
	for _, imp := range spec.Imports {
		if _, ok := byPath[imp.Path]; ok {
			continue
		}
		byPath[imp.Path] = imp
	}

	out := make([]Import, 0, len(byPath))
	for _, imp := range byPath {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func render(spec *Spec, ctor ctorInfo) ([]byte, error) {
	args := make([]string, 0, len(spec.Params))
	for _, p := range spec.Params {
		args = append(args, "b."+p.Field)
	}

	data := templateData{
		Spec:         *spec,
		Imports:      resolveImports(spec),
		Args:         strings.Join(args, ", "),
		ReturnsError: ctor.returnsError,
	}

	var out bytes.Buffer
	if err := genTemplate.Execute(&out, data); err != nil {
		return nil, err
	}

	src, err := format.Source(out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w", err)
	}
	return src, nil
}

// genTemplate is the Go source template used to generate the builder.
var genTemplate = template.Must(
	template.New("hostgen").Parse(`// Code generated by hostgen; DO NOT EDIT.

package {{.Spec.Package}}

import (
{{- range .Imports}}
	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{- end}}
)

// {{.Spec.Facade}} collects the constructor arguments of {{.Spec.ImplType}}.
type {{.Spec.Facade}} struct {
{{- range .Spec.Params}}
	{{.Field}} {{.Type}}
	has{{.Name}} bool
{{- end}}
}

// New{{.Spec.Facade}} returns an empty builder.
func New{{.Spec.Facade}}() *{{.Spec.Facade}} {
	return &{{.Spec.Facade}}{}
}
{{range .Spec.Params}}
// Inject{{.Name}} supplies the {{.Field}} argument.
func (b *{{$.Spec.Facade}}) Inject{{.Name}}(dep {{.Type}}) *{{$.Spec.Facade}} {
	b.{{.Field}} = dep
	b.has{{.Name}} = true
	return b
}
{{end}}
// Build calls {{.Spec.Constructor}} once every argument has been injected.
func (b *{{.Spec.Facade}}) Build() (*{{.Spec.ImplType}}, error) {
{{- range .Spec.Params}}
	if !b.has{{.Name}} {
		return nil, fmt.Errorf("{{$.Spec.Facade}} not wired: missing required dep {{.Name}}")
	}
{{- end}}
{{- if .ReturnsError}}
	return {{.Spec.Constructor}}({{.Args}})
{{- else}}
	return {{.Spec.Constructor}}({{.Args}}), nil
{{- end}}
}

// MustBuild is Build for composition roots; it panics on missing arguments.
func (b *{{.Spec.Facade}}) MustBuild() *{{.Spec.ImplType}} {
	v, err := b.Build()
	if err != nil {
		panic(err)
	}
	return v
}
`),
)

// tempFile abstracts an os.File for testability.
type tempFile interface {
	Name() string
	Write([]byte) (int, error)
	Close() error
}

// File operation hooks, overridden in tests.
var (
	createTempFile = func(dir, pattern string) (tempFile, error) { return os.CreateTemp(dir, pattern) }
	chmodFile      = os.Chmod
	renameFile     = os.Rename
	removeFile     = os.Remove
)

// writeFileAtomic writes to a temp file in the target directory and renames
// it over targetPath, so readers never observe a partial file.
func writeFileAtomic(targetPath string, data []byte, perm os.FileMode) (err error) {
	tmpFile, err := createTempFile(filepath.Dir(targetPath), filepath.Base(targetPath)+".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if err != nil {
			_ = removeFile(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}
	if err = chmodFile(tmpPath, perm); err != nil {
		return err
	}
	return renameFile(tmpPath, targetPath)
}
