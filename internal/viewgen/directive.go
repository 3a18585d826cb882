package viewgen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
)

// viewImportPath is the module's root package, referenced by all
// generated code.
const viewImportPath = "github.com/fenwick/go-view"

// opNames is the set of View operations the generator can forward, in
// declaration order of the contract.
var opNames = []string{
	"Draw",
	"RequiredSize",
	"OnEvent",
	"Layout",
	"TakeFocus",
	"CallOnAny",
	"FocusView",
	"NeedsRelayout",
	"ImportantArea",
}

func isOpName(name string) bool {
	for _, op := range opNames {
		if op == name {
			return true
		}
	}
	return false
}

// Spec describes the code to generate for one struct type, collected
// from its //viewgen: directives.
//
// Wrap emits the guarded accessors (WithView, WithViewMut), extraction
// (TakeView), and the forwarding View methods minus any listed in Skip,
// which the author implements by hand. Getters emits the plain
// Inner/InnerRef accessors, independent of Wrap.
type Spec struct {
	TypeName  string
	Field     string
	FieldType string // Go expression of the field's declared type
	Wrap      bool
	Getters   bool
	Skip      map[string]bool
}

// File is the parse result for a single source file.
type File struct {
	Package  string
	ViewQual string // qualifier for the view package; empty inside it
	Specs    []Spec
}

// ParseFile reads a Go source file and collects its viewgen directives.
// src may be a string or []byte for tests; pass nil to read from disk.
func ParseFile(filename string, src any) (*File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	out := &File{Package: f.Name.Name, ViewQual: "view"}
	if f.Name.Name == "view" {
		// Assume we are inside the view package itself unless an import
		// of the real thing proves otherwise.
		out.ViewQual = ""
	}
	for _, imp := range f.Imports {
		if strings.Trim(imp.Path.Value, `"`) != viewImportPath {
			continue
		}
		if imp.Name != nil {
			out.ViewQual = imp.Name.Name
		} else {
			out.ViewQual = "view"
		}
	}

	for _, decl := range f.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, s := range gd.Specs {
			ts, ok := s.(*ast.TypeSpec)
			if !ok {
				continue
			}
			doc := ts.Doc
			if doc == nil {
				doc = gd.Doc
			}
			spec, err := collectSpec(fset, ts, doc)
			if err != nil {
				return nil, err
			}
			if spec != nil {
				out.Specs = append(out.Specs, *spec)
			}
		}
	}

	return out, nil
}

// collectSpec reads the directives attached to one type declaration.
// Returns nil if the type carries none.
func collectSpec(fset *token.FileSet, ts *ast.TypeSpec, doc *ast.CommentGroup) (*Spec, error) {
	if doc == nil {
		return nil, nil
	}

	spec := &Spec{TypeName: ts.Name.Name, Skip: map[string]bool{}}
	found := false

	for _, c := range doc.List {
		line := c.Text
		var wrap bool
		switch {
		case strings.HasPrefix(line, "//viewgen:wrap"):
			wrap = true
		case strings.HasPrefix(line, "//viewgen:getters"):
			wrap = false
		default:
			continue
		}
		found = true
		if wrap {
			spec.Wrap = true
		} else {
			spec.Getters = true
		}

		args := strings.Fields(strings.TrimPrefix(strings.TrimPrefix(line, "//viewgen:wrap"), "//viewgen:getters"))
		for _, arg := range args {
			key, value, hasValue := strings.Cut(arg, "=")
			switch {
			case key == "field" && hasValue:
				if spec.Field != "" && spec.Field != value {
					return nil, directiveErr(fset, c, "conflicting field names %q and %q on %s", spec.Field, value, ts.Name.Name)
				}
				spec.Field = value
			case key == "skip" && hasValue && wrap:
				for _, op := range strings.Split(value, ",") {
					op = strings.TrimSpace(op)
					if !isOpName(op) {
						return nil, directiveErr(fset, c, "unknown operation %q in skip list (valid: %s)", op, strings.Join(opNames, ", "))
					}
					spec.Skip[op] = true
				}
			case key == "getters" && !hasValue && wrap:
				spec.Getters = true
			default:
				return nil, directiveErr(fset, c, "unknown argument %q", arg)
			}
		}
	}

	if !found {
		return nil, nil
	}
	if spec.Field == "" {
		return nil, directiveErr(fset, doc.List[0], "%s: directive requires field=<name>", ts.Name.Name)
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return nil, directiveErr(fset, doc.List[0], "%s is not a struct type", ts.Name.Name)
	}
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			if name.Name == spec.Field {
				spec.FieldType = types.ExprString(field.Type)
				return spec, nil
			}
		}
	}
	return nil, directiveErr(fset, doc.List[0], "%s has no field %q", ts.Name.Name, spec.Field)
}

func directiveErr(fset *token.FileSet, c *ast.Comment, format string, args ...any) error {
	pos := fset.Position(c.Pos())
	return fmt.Errorf("%s:%d: %s", pos.Filename, pos.Line, fmt.Sprintf(format, args...))
}
