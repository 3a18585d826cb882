// Package viewgen generates delegating-wrapper boilerplate for the view
// package.
//
// A struct that owns exactly one child view declares it with a
// directive:
//
//	//viewgen:wrap field=content skip=OnEvent getters
//	type Dialog struct {
//		content view.View
//		title   string
//	}
//
// viewgen then emits, into a _wrap.go companion file, the guarded
// accessors (WithView, WithViewMut), child extraction (TakeView), and
// the forwarding View methods, minus the ones named in skip, which the
// author implements by hand. A standalone //viewgen:getters directive
// emits only the plain Inner/InnerRef accessors.
package viewgen

import "strings"

// ProcessFile parses path and generates the companion source for any
// viewgen directives it contains. ok is false when the file carries no
// directives.
func ProcessFile(path string) (out []byte, ok bool, err error) {
	file, err := ParseFile(path, nil)
	if err != nil {
		return nil, false, err
	}
	if len(file.Specs) == 0 {
		return nil, false, nil
	}
	g := NewGenerator()
	out, err = g.Generate(file, path)
	if err != nil {
		return nil, true, err
	}
	return out, true, nil
}

// CheckFile validates the directives in path without generating code.
// Files without directives pass.
func CheckFile(path string) error {
	_, err := ParseFile(path, nil)
	return err
}

// OutputPath returns the companion filename for a source file:
// dialog.go becomes dialog_wrap.go.
func OutputPath(path string) string {
	return strings.TrimSuffix(path, ".go") + "_wrap.go"
}

// IsGenerated reports whether path names a viewgen output file.
func IsGenerated(path string) bool {
	return strings.HasSuffix(path, "_wrap.go")
}
