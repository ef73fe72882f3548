// Package view is the minimal renderable tree that stylewrap-generated code
// targets. Component functions return a Node; rewritten components wrap the
// original node in a style element and an identified container.
//
// The tree is deliberately small: elements, text, raw text, and a flat group.
// Rendering writes HTML to an io.Writer with text content escaped and
// attribute values attribute-escaped. Raw and Style contents are written
// verbatim, which is what lets CSS pass through untouched.
package view

import (
	"html"
	"io"
	"strings"
)

// Node is a renderable piece of markup.
type Node interface {
	Render(w io.Writer) error
}

// Attribute is a single key="value" pair on an element.
type Attribute struct {
	Key   string
	Value string
}

// Element is a paired HTML element with attributes and children.
type Element struct {
	Tag      string
	Attrs    []Attribute
	Children []Node
}

// El creates an element with the given tag and children.
func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// Attr adds an attribute and returns the element for chaining.
func (e *Element) Attr(key, value string) *Element {
	e.Attrs = append(e.Attrs, Attribute{Key: key, Value: value})
	return e
}

// Render writes the element and its children as HTML.
func (e *Element) Render(w io.Writer) error {
	if _, err := io.WriteString(w, "<"+e.Tag); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		if _, err := io.WriteString(w, " "+a.Key+`="`+escapeAttr(a.Value)+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	for _, c := range e.Children {
		if c == nil {
			continue
		}
		if err := c.Render(w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

type textNode string

func (t textNode) Render(w io.Writer) error {
	_, err := io.WriteString(w, html.EscapeString(string(t)))
	return err
}

// Text creates an escaped text node.
func Text(s string) Node { return textNode(s) }

type rawNode string

func (r rawNode) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Raw creates a text node written verbatim, without escaping.
func Raw(s string) Node { return rawNode(s) }

type group []Node

func (g group) Render(w io.Writer) error {
	for _, c := range g {
		if c == nil {
			continue
		}
		if err := c.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Group renders its children in order with no surrounding element.
func Group(children ...Node) Node { return group(children) }

// Style creates a <style> element whose contents are written verbatim.
// CSS is opaque here: broken rules, stray braces, anything goes through.
func Style(css string) Node {
	return El("style", Raw(css))
}

// Container creates a <div> carrying the given id, wrapping its children.
func Container(id string, children ...Node) Node {
	return El("div", children...).Attr("id", id)
}

// Render renders a node to a string.
func Render(n Node) (string, error) {
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// escapeAttr escapes a value for use inside a double-quoted attribute.
func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", `"`, "&quot;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
