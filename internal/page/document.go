// Package page owns the widget's HTML page. A Document is an in-memory
// element tree that renderers mutate through render.Sink and that the HTTP
// layer serializes once the request's lookups have settled.
package page

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/fakhrymubarak/weather-widget/internal/render"
)

//go:embed index.html
var skeleton string

// IDAlerts is the container the blocking notifications are written into.
const IDAlerts = "alerts"

// Document implements render.Sink and service.Notifier. It is safe for
// concurrent use.
type Document struct {
	mu     sync.Mutex
	root   *html.Node
	byID   map[string]*html.Node
	alerts []string
}

var _ render.Sink = (*Document)(nil)

// NewDocument parses the page skeleton into a fresh Document.
func NewDocument() (*Document, error) {
	root, err := html.Parse(strings.NewReader(skeleton))
	if err != nil {
		return nil, fmt.Errorf("parse page skeleton: %w", err)
	}
	d := &Document{root: root, byID: make(map[string]*html.Node)}
	d.index(root)
	return d, nil
}

func (d *Document) index(n *html.Node) {
	if n.Type == html.ElementNode {
		if id := attr(n, "id"); id != "" {
			d.byID[id] = n
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.index(c)
	}
}

func (d *Document) SetText(id, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.byID[id]
	if !ok {
		return
	}
	removeChildren(n)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (d *Document) SetAttr(id, name, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n, ok := d.byID[id]; ok {
		setAttr(n, name, value)
	}
}

func (d *Document) Clear(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n, ok := d.byID[id]; ok {
		removeChildren(n)
	}
}

func (d *Document) Append(id string, child render.Node) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if n, ok := d.byID[id]; ok {
		n.AppendChild(toHTML(child))
	}
}

// Alert records a blocking notification. It is rendered both as a visible
// banner and as a script that raises a browser alert when the page loads.
func (d *Document) Alert(msg string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, msg)

	n, ok := d.byID[IDAlerts]
	if !ok {
		return
	}
	banner := &html.Node{Type: html.ElementNode, Data: "p", DataAtom: atom.P}
	banner.AppendChild(&html.Node{Type: html.TextNode, Data: msg})
	n.AppendChild(banner)

	// json.Marshal escapes <, > and &, so the literal cannot close the script.
	quoted, _ := json.Marshal(msg)
	script := &html.Node{Type: html.ElementNode, Data: "script", DataAtom: atom.Script}
	script.AppendChild(&html.Node{Type: html.TextNode, Data: "alert(" + string(quoted) + ");"})
	n.AppendChild(script)
}

// Alerts returns the notifications raised so far.
func (d *Document) Alerts() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.alerts...)
}

// Text returns the text content of the element with the given id.
func (d *Document) Text(id string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.byID[id]
	if !ok {
		return ""
	}
	var sb strings.Builder
	textContent(n, &sb)
	return sb.String()
}

// Attr returns the named attribute of the element with the given id.
func (d *Document) Attr(id, name string) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	n, ok := d.byID[id]
	if !ok {
		return ""
	}
	return attr(n, name)
}

// Render writes the page as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

func toHTML(n render.Node) *html.Node {
	if n.Tag == "" {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	el := &html.Node{Type: html.ElementNode, Data: n.Tag, DataAtom: atom.Lookup([]byte(n.Tag))}
	for _, a := range n.Attrs {
		el.Attr = append(el.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	if n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Text})
	}
	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

func textContent(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
}
