// Package check finds field selections that can never resolve, without running the code.
//
// FieldOf, FieldAt and the constructors built on them report a bad record/field
// combination when they are called. This package loads Go source with go/packages
// and reports the same problems from the type arguments of every call it can see.
package check

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/SLASH2NL/selectiter"
	"golang.org/x/tools/go/packages"
)

const (
	selectiterPath = "github.com/SLASH2NL/selectiter"
)

type mode int

const (
	byIndex mode = iota
	byType
)

type resolver struct {
	mode mode
	// arg is the position of the index argument for byIndex resolvers.
	arg int
}

var resolvers = map[string]resolver{
	"FieldAt":     {mode: byIndex, arg: 0},
	"MustFieldAt": {mode: byIndex, arg: 0},
	"At":          {mode: byIndex, arg: 1},
	"RandomAt":    {mode: byIndex, arg: 1},
	"FieldOf":     {mode: byType},
	"MustFieldOf": {mode: byType},
	"Of":          {mode: byType},
	"RandomOf":    {mode: byType},
}

// Finding is a field selection that fails whenever it runs.
type Finding struct {
	Pos    token.Position
	Func   string
	Record string
	Field  string
	// Err wraps the error the call returns at run time, e.g. selectiter.ErrTypeNotFound.
	Err error
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s[%s, %s]: %s", f.Pos, f.Func, f.Record, f.Field, f.Err)
}

// Fields checks every package in dir and its subdirectories.
// It will not traverse into imports.
func Fields(dir string) ([]Finding, error) {
	dirs, err := findDirsRecursively(dir)
	if err != nil {
		return nil, err
	}

	var findings []Finding
	for _, dir := range dirs {
		fset := token.NewFileSet()

		mode := packages.NeedName | packages.NeedSyntax |
			packages.NeedTypes | packages.NeedTypesInfo | packages.NeedCompiledGoFiles

		cfg := &packages.Config{
			Mode:  mode,
			Dir:   dir,
			Fset:  fset,
			Tests: false,
		}

		pkgs, err := packages.Load(cfg)
		if err != nil {
			return nil, fmt.Errorf("loading package: %w", err)
		}

		pkgsErrs := ""
		packages.Visit(pkgs, nil, func(pkg *packages.Package) {
			for _, err := range pkg.Errors {
				if strings.HasPrefix(err.Msg, "build constraints exclude all Go files") {
					continue
				}

				pkgsErrs += err.Error() + "\n"
			}
		})
		if pkgsErrs != "" {
			return nil, fmt.Errorf("package load error: %s", pkgsErrs)
		}

		for _, pkg := range pkgs {
			for _, file := range pkg.Syntax {
				ast.Inspect(file, func(n ast.Node) bool {
					if call, ok := n.(*ast.CallExpr); ok {
						if f, ok := checkCall(pkg, call); ok {
							findings = append(findings, f)
						}
					}
					return true
				})
			}
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i].Pos, findings[j].Pos
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})

	return findings, nil
}

func checkCall(pkg *packages.Package, call *ast.CallExpr) (Finding, bool) {
	ident := funcIdent(call.Fun)
	if ident == nil {
		return Finding{}, false
	}

	fn, ok := pkg.TypesInfo.Uses[ident].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != selectiterPath {
		return Finding{}, false
	}

	r, ok := resolvers[fn.Name()]
	if !ok {
		return Finding{}, false
	}

	inst, ok := pkg.TypesInfo.Instances[ident]
	if !ok || inst.TypeArgs.Len() < 2 {
		return Finding{}, false
	}

	record, field := types.Unalias(inst.TypeArgs.At(0)), types.Unalias(inst.TypeArgs.At(1))
	if isTypeParam(record) || isTypeParam(field) {
		// Generic code selecting from its own type parameters; checked where it is instantiated.
		return Finding{}, false
	}

	qualifier := types.RelativeTo(pkg.Types)
	finding := Finding{
		Pos:    pkg.Fset.Position(call.Pos()),
		Func:   fn.Name(),
		Record: types.TypeString(record, qualifier),
		Field:  types.TypeString(field, qualifier),
	}

	list, custom, ok := fieldTypes(record)
	if custom {
		// Resolved through TupleLike.Addr, only known at run time.
		return Finding{}, false
	}
	if !ok {
		finding.Err = fmt.Errorf("%w: %s", selectiter.ErrNotTupleLike, finding.Record)
		return finding, true
	}

	switch r.mode {
	case byType:
		finding.Err = checkType(list, field, finding)
	case byIndex:
		if r.arg >= len(call.Args) {
			return Finding{}, false
		}

		tv, ok := pkg.TypesInfo.Types[call.Args[r.arg]]
		if !ok || tv.Value == nil {
			// Not a constant index.
			return Finding{}, false
		}

		index, exact := constant.Int64Val(constant.ToInt(tv.Value))
		if !exact {
			return Finding{}, false
		}

		finding.Err = checkIndex(list, field, int(index), finding, qualifier)
	}

	return finding, finding.Err != nil
}

func checkType(list []types.Type, field types.Type, f Finding) error {
	var positions []int
	for i, t := range list {
		if types.Identical(t, field) {
			positions = append(positions, i)
		}
	}

	switch len(positions) {
	case 0:
		return fmt.Errorf("%w: %s in %s", selectiter.ErrTypeNotFound, f.Field, f.Record)
	case 1:
		return nil
	}

	return fmt.Errorf("%w: %s appears at positions %d and %d of %s", selectiter.ErrAmbiguousType, f.Field, positions[0], positions[1], f.Record)
}

func checkIndex(list []types.Type, field types.Type, index int, f Finding, qualifier types.Qualifier) error {
	if index < 0 || index >= len(list) {
		return fmt.Errorf("%w: %d not in [0, %d) for %s", selectiter.ErrIndexOutOfRange, index, len(list), f.Record)
	}

	if !types.Identical(list[index], field) {
		return fmt.Errorf("%w: field %d of %s is %s, not %s", selectiter.ErrFieldType, index, f.Record, types.TypeString(list[index], qualifier), f.Field)
	}

	return nil
}

// fieldTypes returns the positional field types of record.
// custom is set when the record exposes its fields through TupleLike.
func fieldTypes(record types.Type) (list []types.Type, custom bool, ok bool) {
	if implementsTupleLike(record) {
		return nil, true, true
	}

	switch u := record.Underlying().(type) {
	case *types.Struct:
		for i := range u.NumFields() {
			list = append(list, u.Field(i).Type())
		}
		return list, false, true
	case *types.Array:
		for range u.Len() {
			list = append(list, u.Elem())
		}
		return list, false, true
	}

	return nil, false, false
}

func implementsTupleLike(record types.Type) bool {
	mset := types.NewMethodSet(types.NewPointer(record))

	found := 0
	for _, name := range []string{"Len", "Addr"} {
		if sel := mset.Lookup(nil, name); sel != nil {
			found++
		}
	}

	return found == 2
}

func isTypeParam(t types.Type) bool {
	_, ok := t.(*types.TypeParam)
	return ok
}

// funcIdent returns the identifier naming the called function, with type arguments and package qualifier removed.
func funcIdent(expr ast.Expr) *ast.Ident {
	switch e := expr.(type) {
	case *ast.IndexExpr:
		return funcIdent(e.X)
	case *ast.IndexListExpr:
		return funcIdent(e.X)
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.Ident:
		return e
	}

	return nil
}

// findDirsRecursively finds all directories that contain go files in the given root directory.
func findDirsRecursively(rootDir string) ([]string, error) {
	subdirs := []string{rootDir}

	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && path != rootDir {
			hasGoFiles := false

			entries, err := os.ReadDir(path)
			if err != nil {
				return err
			}

			for _, entry := range entries {
				if !entry.IsDir() && filepath.Ext(entry.Name()) == ".go" {
					hasGoFiles = true
					break
				}
			}

			if hasGoFiles {
				subdirs = append(subdirs, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return subdirs, nil
}
