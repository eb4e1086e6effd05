// Package dot renders an ast.Program as a Graphviz DOT graph: one
// HTML-like table-labeled node per AST node, with named ports for every
// child so edges can point at the exact field they came from. Rendering
// is a pure function of the tree — the same AST always produces
// byte-identical output, which is what makes scenario-level "does the
// printer change across runs" tests possible.
package dot

import (
	"fmt"

	"github.com/dunst0/waitui/ast"
	"github.com/dunst0/waitui/astwalk"
	"github.com/dunst0/waitui/sink"
	"github.com/dunst0/waitui/wlog"
)

// Printer writes one DOT graph to a sink.Sink.
type Printer struct {
	w      sink.Sink
	nextID int
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w sink.Sink) *Printer {
	return &Printer{w: w}
}

// Print renders root's subtree as a complete DOT graph.
func (p *Printer) Print(root ast.Node) {
	p.w.WriteString("digraph AST {\n\tnode [shape=plain]\n")
	if root != nil {
		p.visit(root)
	}
	p.w.WriteString("}\n")
}

// row is one line of an HTML-like node label: a field name, a rendered
// scalar value (mutually exclusive with port), or a port a child edge
// attaches to.
type row struct {
	field string
	value string
	port  string
	child ast.Node
}

// visit renders n and its subtree through astwalk's Pre/Self machinery:
// Pre assigns n's id and writes its table; Self is the recursion point,
// calling visit again for each named-port child — which is itself driven
// through astwalk.Visit, so every node in the tree, not just the root,
// goes through the shared Pre→Self→Post dispatch. Self owns the
// enumeration of which children to descend into and under which port,
// using dot/fields.go's field-aware rows rather than a generic
// label-less child list, since spec §4.6 requires each edge to name its
// semantic slot (e.g. a class's parameters port vs. its functions port).
func (p *Printer) visit(n ast.Node) int {
	switch n.(type) {
	case ast.Definition, ast.Expression:
	default:
		wlog.Trace("dot: unrecognized node kind %T", n)
		return -1
	}

	var id int
	var rows []row

	cb := astwalk.Callbacks{
		Pre: func(nn ast.Node, _ any) {
			id = p.nextID
			p.nextID++
			rows = fields(nn)
			p.writeTable(id, kindLabel(nn), rows)
		},
		Self: func(nn ast.Node, state any) {
			for _, r := range rows {
				if r.port == "" || r.child == nil {
					continue
				}
				childID := p.visit(r.child)
				if childID < 0 {
					continue
				}
				fmt.Fprintf(p.w, "\tn%d:%s -> n%d;\n", id, r.port, childID)
			}
		},
	}
	astwalk.Visit(cb, n, nil)

	return id
}

func (p *Printer) writeTable(id int, title string, rows []row) {
	fmt.Fprintf(p.w, "\tn%d [label=<<TABLE BORDER=\"0\" CELLBORDER=\"1\" CELLSPACING=\"0\">\n", id)
	fmt.Fprintf(p.w, "\t\t<TR><TD COLSPAN=\"2\"><B>%s</B></TD></TR>\n", escape(title))
	for _, r := range rows {
		switch {
		case r.port != "":
			fmt.Fprintf(p.w, "\t\t<TR><TD>%s</TD><TD PORT=\"%s\"></TD></TR>\n", escape(r.field), r.port)
		default:
			fmt.Fprintf(p.w, "\t\t<TR><TD>%s</TD><TD>%s</TD></TR>\n", escape(r.field), escape(r.value))
		}
	}
	p.w.WriteString("\t\t</TABLE>>];\n")
}

func escape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			out = append(out, []byte("&lt;")...)
		case '>':
			out = append(out, []byte("&gt;")...)
		case '&':
			out = append(out, []byte("&amp;")...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}

func kindLabel(n ast.Node) string {
	switch v := n.(type) {
	case ast.Definition:
		return v.DefinitionKind().String()
	case ast.Expression:
		return v.ExpressionKind().String()
	default:
		wlog.Trace("dot: unrecognized node kind %T", n)
		return "?"
	}
}

// listRows builds one port-bearing row per element of children, labeled
// field[0], field[1], ... with ports field_0, field_1, ... — used for every []Expression/[]*X slice field so
// each element gets its own edge instead of collapsing into one port.
func listRows(field string, n int, at func(i int) ast.Node) []row {
	rows := make([]row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, row{field: fmt.Sprintf("%s[%d]", field, i), port: fmt.Sprintf("%s_%d", field, i), child: at(i)})
	}
	return rows
}
