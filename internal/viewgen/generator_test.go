package viewgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, src, filename string) string {
	t.Helper()
	file, err := ParseFile(filename, src)
	require.NoError(t, err)

	g := NewGenerator()
	g.SkipImports = true
	out, err := g.Generate(file, filename)
	require.NoError(t, err)
	return string(out)
}

func TestGenerate_FullWrap(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

//viewgen:wrap field=content
type Dialog struct {
	content view.View
}
`
	out := generate(t, src, "dialog.go")

	assert.True(t, strings.HasPrefix(out, "// Code generated by viewgen from dialog.go. DO NOT EDIT."))
	assert.Contains(t, out, "package app")
	assert.Contains(t, out, `import view "github.com/fenwick/go-view"`)

	// The guarded accessors and extraction.
	assert.Contains(t, out, "func (d *Dialog) WithView(f func(v view.View)) bool {")
	assert.Contains(t, out, "func (d *Dialog) WithViewMut(f func(v view.View)) bool {")
	assert.Contains(t, out, "func (d *Dialog) TakeView() (view.View, bool) {")

	// All nine forwarding methods.
	assert.Contains(t, out, "func (d *Dialog) Draw(p view.Printer) {")
	assert.Contains(t, out, "func (d *Dialog) RequiredSize(constraint view.Vec2) view.Vec2 {")
	assert.Contains(t, out, "func (d *Dialog) OnEvent(ev view.Event) view.Result {")
	assert.Contains(t, out, "func (d *Dialog) Layout(size view.Vec2) {")
	assert.Contains(t, out, "func (d *Dialog) TakeFocus(source view.Direction) bool {")
	assert.Contains(t, out, "func (d *Dialog) CallOnAny(sel view.Selector, fn func(view.View)) {")
	assert.Contains(t, out, "func (d *Dialog) FocusView(sel view.Selector) bool {")
	assert.Contains(t, out, "func (d *Dialog) NeedsRelayout() bool {")
	assert.Contains(t, out, "func (d *Dialog) ImportantArea(size view.Vec2) view.Rect {")

	// Compile-time contract check.
	assert.Contains(t, out, "var _ view.View = (*Dialog)(nil)")

	// Forwarding goes through the guarded accessors, never the field.
	assert.Contains(t, out, "d.WithViewMut(func(v view.View) { res = v.OnEvent(ev) })")

	// No getters without the flag.
	assert.NotContains(t, out, "func (d *Dialog) Inner()")
}

func TestGenerate_SkipList(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

//viewgen:wrap field=content skip=OnEvent,Draw
type Dialog struct {
	content view.View
}
`
	out := generate(t, src, "dialog.go")

	assert.NotContains(t, out, "func (d *Dialog) OnEvent(")
	assert.NotContains(t, out, "func (d *Dialog) Draw(")
	assert.Contains(t, out, "func (d *Dialog) Layout(size view.Vec2) {")

	// The contract check stays: the author supplies the skipped methods.
	assert.Contains(t, out, "var _ view.View = (*Dialog)(nil)")
}

func TestGenerate_Getters(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

//viewgen:wrap field=content getters
type Dialog struct {
	content view.View
}
`
	out := generate(t, src, "dialog.go")

	assert.Contains(t, out, "func (d *Dialog) Inner() view.View {")
	assert.Contains(t, out, "func (d *Dialog) InnerRef() *view.View {")
}

func TestGenerate_GettersKeepFieldType(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

type button struct {
	view.Base
}

//viewgen:getters field=ok
type Dialog struct {
	ok *button
}
`
	out := generate(t, src, "dialog.go")

	assert.Contains(t, out, "func (d *Dialog) Inner() *button {")
	assert.Contains(t, out, "func (d *Dialog) InnerRef() **button {")
	assert.NotContains(t, out, "WithView")
}

func TestGenerate_ReceiverAvoidsParamCollision(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

//viewgen:wrap field=content
type Frame struct {
	content view.View
}
`
	out := generate(t, src, "frame.go")

	// "f" would collide with the accessor's function parameter.
	assert.Contains(t, out, "func (x *Frame) WithView(f func(v view.View)) bool {")
	assert.Contains(t, out, "f(x.content)")
}

func TestGenerate_InsideViewPackage(t *testing.T) {
	src := `package view

//viewgen:wrap field=child
type Padded struct {
	child View
}
`
	out := generate(t, src, "padded.go")

	assert.NotContains(t, out, "import")
	assert.Contains(t, out, "func (x *Padded) Draw(p Printer) {")
	assert.Contains(t, out, "var _ View = (*Padded)(nil)")
}

func TestGenerate_MultipleSpecs(t *testing.T) {
	src := `package app

import view "github.com/fenwick/go-view"

//viewgen:wrap field=content
type Dialog struct {
	content view.View
}

//viewgen:wrap field=body
type Panel struct {
	body view.View
}
`
	out := generate(t, src, "widgets.go")

	assert.Contains(t, out, "func (d *Dialog) WithView(")
	// "p" would collide with Draw's printer parameter, so Panel gets "x".
	assert.Contains(t, out, "func (x *Panel) WithView(")
}

func TestGenerate_NoDirectives(t *testing.T) {
	file, err := ParseFile("plain.go", `package app

type plain struct{}
`)
	require.NoError(t, err)

	g := NewGenerator()
	g.SkipImports = true
	_, err = g.Generate(file, "plain.go")
	assert.Error(t, err)
}

func TestProcessFileOutputs(t *testing.T) {
	assert.Equal(t, "dialog_wrap.go", OutputPath("dialog.go"))
	assert.Equal(t, "a/b/panel_wrap.go", OutputPath("a/b/panel.go"))
	assert.True(t, IsGenerated("dialog_wrap.go"))
	assert.False(t, IsGenerated("dialog.go"))
}
