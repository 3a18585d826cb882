package viewgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"

	"golang.org/x/tools/imports"
)

// Generator emits the wrapper boilerplate for a parsed file.
type Generator struct {
	buf bytes.Buffer

	// SkipImports uses format.Source instead of imports.Process (faster
	// for tests).
	SkipImports bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces the companion source for a file's directives.
// sourceFile is the original filename, recorded in the header comment.
func (g *Generator) Generate(file *File, sourceFile string) ([]byte, error) {
	if len(file.Specs) == 0 {
		return nil, fmt.Errorf("%s: no viewgen directives", sourceFile)
	}

	g.buf.Reset()
	g.writef("// Code generated by viewgen from %s. DO NOT EDIT.\n\n", sourceFile)
	g.writef("package %s\n\n", file.Package)
	if file.ViewQual != "" {
		g.writef("import %s %q\n\n", file.ViewQual, viewImportPath)
	}

	for i, spec := range file.Specs {
		if i > 0 {
			g.writef("\n")
		}
		g.generateSpec(file.ViewQual, spec)
	}

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process(sourceFile, g.buf.Bytes(), nil)
}

// generateSpec emits all methods for one struct type.
func (g *Generator) generateSpec(qual string, spec Spec) {
	q := qual
	if q != "" {
		q += "."
	}
	recv := strings.ToLower(spec.TypeName[:1])
	switch recv {
	case "f", "v", "p":
		// Would collide with parameter names in the emitted methods.
		recv = "x"
	}

	if spec.Wrap {
		g.generateCore(q, recv, spec)
		g.generateForwarding(q, recv, spec)
		g.writef("\nvar _ %sView = (*%s)(nil)\n", q, spec.TypeName)
	}
	if spec.Getters {
		g.generateGetters(recv, spec)
	}
}

// generateCore emits the guarded accessors and extraction. The field is
// owned directly, so all three trivially succeed.
func (g *Generator) generateCore(q, recv string, spec Spec) {
	g.writef("// WithView runs f on the wrapped child. The child is owned directly,\n")
	g.writef("// so access always succeeds.\n")
	g.writef("func (%s *%s) WithView(f func(v %sView)) bool {\n", recv, spec.TypeName, q)
	g.writef("\tf(%s.%s)\n", recv, spec.Field)
	g.writef("\treturn true\n")
	g.writef("}\n\n")

	g.writef("// WithViewMut runs f on the wrapped child. The child is owned directly,\n")
	g.writef("// so access always succeeds.\n")
	g.writef("func (%s *%s) WithViewMut(f func(v %sView)) bool {\n", recv, spec.TypeName, q)
	g.writef("\tf(%s.%s)\n", recv, spec.Field)
	g.writef("\treturn true\n")
	g.writef("}\n\n")

	g.writef("// TakeView extracts the wrapped child. The child is owned directly,\n")
	g.writef("// so extraction always succeeds.\n")
	g.writef("func (%s *%s) TakeView() (%sView, bool) {\n", recv, spec.TypeName, q)
	g.writef("\treturn %s.%s, true\n", recv, spec.Field)
	g.writef("}\n")
}

// generateForwarding emits the View methods not claimed by the skip
// list, each delegating through the guarded accessors with the standard
// defaults for an unavailable child.
func (g *Generator) generateForwarding(q, recv string, spec Spec) {
	t := spec.TypeName

	if !spec.Skip["Draw"] {
		g.writef("\n// Draw forwards to the wrapped child.\n")
		g.writef("func (%s *%s) Draw(p %sPrinter) {\n", recv, t, q)
		g.writef("\t%s.WithView(func(v %sView) { v.Draw(p) })\n", recv, q)
		g.writef("}\n")
	}

	if !spec.Skip["RequiredSize"] {
		g.writef("\n// RequiredSize forwards to the wrapped child.\n")
		g.writef("func (%s *%s) RequiredSize(constraint %sVec2) %sVec2 {\n", recv, t, q, q)
		g.writef("\tvar size %sVec2\n", q)
		g.writef("\t%s.WithViewMut(func(v %sView) { size = v.RequiredSize(constraint) })\n", recv, q)
		g.writef("\treturn size\n")
		g.writef("}\n")
	}

	if !spec.Skip["OnEvent"] {
		g.writef("\n// OnEvent forwards to the wrapped child.\n")
		g.writef("func (%s *%s) OnEvent(ev %sEvent) %sResult {\n", recv, t, q, q)
		g.writef("\tres := %sIgnored()\n", q)
		g.writef("\t%s.WithViewMut(func(v %sView) { res = v.OnEvent(ev) })\n", recv, q)
		g.writef("\treturn res\n")
		g.writef("}\n")
	}

	if !spec.Skip["Layout"] {
		g.writef("\n// Layout forwards to the wrapped child.\n")
		g.writef("func (%s *%s) Layout(size %sVec2) {\n", recv, t, q)
		g.writef("\t%s.WithViewMut(func(v %sView) { v.Layout(size) })\n", recv, q)
		g.writef("}\n")
	}

	if !spec.Skip["TakeFocus"] {
		g.writef("\n// TakeFocus forwards to the wrapped child.\n")
		g.writef("func (%s *%s) TakeFocus(source %sDirection) bool {\n", recv, t, q)
		g.writef("\ttook := false\n")
		g.writef("\t%s.WithViewMut(func(v %sView) { took = v.TakeFocus(source) })\n", recv, q)
		g.writef("\treturn took\n")
		g.writef("}\n")
	}

	if !spec.Skip["CallOnAny"] {
		g.writef("\n// CallOnAny forwards to the wrapped child.\n")
		g.writef("func (%s *%s) CallOnAny(sel %sSelector, fn func(%sView)) {\n", recv, t, q, q)
		g.writef("\t%s.WithViewMut(func(v %sView) { v.CallOnAny(sel, fn) })\n", recv, q)
		g.writef("}\n")
	}

	if !spec.Skip["FocusView"] {
		g.writef("\n// FocusView forwards to the wrapped child.\n")
		g.writef("func (%s *%s) FocusView(sel %sSelector) bool {\n", recv, t, q)
		g.writef("\tok := false\n")
		g.writef("\t%s.WithViewMut(func(v %sView) { ok = v.FocusView(sel) })\n", recv, q)
		g.writef("\treturn ok\n")
		g.writef("}\n")
	}

	if !spec.Skip["NeedsRelayout"] {
		g.writef("\n// NeedsRelayout forwards to the wrapped child.\n")
		g.writef("func (%s *%s) NeedsRelayout() bool {\n", recv, t)
		g.writef("\tstale := true\n")
		g.writef("\t%s.WithView(func(v %sView) { stale = v.NeedsRelayout() })\n", recv, q)
		g.writef("\treturn stale\n")
		g.writef("}\n")
	}

	if !spec.Skip["ImportantArea"] {
		g.writef("\n// ImportantArea forwards to the wrapped child.\n")
		g.writef("func (%s *%s) ImportantArea(size %sVec2) %sRect {\n", recv, t, q, q)
		g.writef("\tvar area %sRect\n", q)
		g.writef("\t%s.WithView(func(v %sView) { area = v.ImportantArea(size) })\n", recv, q)
		g.writef("\treturn area\n")
		g.writef("}\n")
	}
}

// generateGetters emits the plain accessors to the child field.
func (g *Generator) generateGetters(recv string, spec Spec) {
	g.writef("\n// Inner returns the wrapped child.\n")
	g.writef("func (%s *%s) Inner() %s {\n", recv, spec.TypeName, spec.FieldType)
	g.writef("\treturn %s.%s\n", recv, spec.Field)
	g.writef("}\n\n")

	g.writef("// InnerRef returns a pointer to the wrapped child.\n")
	g.writef("func (%s *%s) InnerRef() *%s {\n", recv, spec.TypeName, spec.FieldType)
	g.writef("\treturn &%s.%s\n", recv, spec.Field)
	g.writef("}\n")
}

func (g *Generator) writef(format string, args ...any) {
	fmt.Fprintf(&g.buf, format, args...)
}
