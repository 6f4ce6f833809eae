package render

import (
	"html/template"
	"io"
	"sort"
	"time"

	"go.trai.ch/symex/internal/core/domain"
	"go.trai.ch/zerr"
)

// HTMLReport renders the whole cache as a single static HTML document
// with a navigation tree, per-element details, and a requirements
// traceability table.
type HTMLReport struct {
	tmpl *template.Template
}

func NewHTMLReport() *HTMLReport {
	return &HTMLReport{tmpl: template.Must(template.New("report").Parse(reportTemplate))}
}

type reportData struct {
	Session   domain.Session
	Generated string
	Tree      []*treeNode
	Elements  []elementView
	Trace     []traceRow
}

type treeNode struct {
	ID       string
	Name     string
	Keyword  string
	Children []*treeNode
}

type elementView struct {
	ID      string
	Name    string
	Type    string
	Keyword string
	JSON    string
}

type traceRow struct {
	ID      string
	Name    string
	Keyword string
	OwnedBy []ownerRef
}

type ownerRef struct {
	ID   string
	Name string
}

// Render writes the report document for the cached elements. Only the
// displayable subtrees under roots appear in the navigation tree; the
// element list and traceability table cover the whole map.
func (r *HTMLReport) Render(w io.Writer, session domain.Session, elements map[string]domain.Element, roots []domain.Element) error {
	data := reportData{
		Session:   session,
		Generated: time.Now().Format(time.RFC3339),
		Tree:      buildTree(elements, roots),
		Elements:  elementViews(elements),
		Trace:     traceRows(elements),
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return zerr.Wrap(err, "render html report")
	}
	return nil
}

func buildTree(elements map[string]domain.Element, roots []domain.Element) []*treeNode {
	visited := make(map[string]struct{})
	nodes := make([]*treeNode, 0, len(roots))
	for _, root := range roots {
		if node := buildTreeNode(elements, root, visited); node != nil {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func buildTreeNode(elements map[string]domain.Element, el domain.Element, visited map[string]struct{}) *treeNode {
	if _, seen := visited[el.ID]; seen {
		return nil
	}
	visited[el.ID] = struct{}{}

	keyword, ok := domain.Keyword(el.Type)
	if !ok {
		return nil
	}
	node := &treeNode{ID: el.ID, Name: el.Name(), Keyword: keyword}
	for _, ref := range el.ChildRefs() {
		child, cached := elements[ref]
		if !cached {
			continue
		}
		if sub := buildTreeNode(elements, child, visited); sub != nil {
			node.Children = append(node.Children, sub)
		}
	}
	return node
}

func elementViews(elements map[string]domain.Element) []elementView {
	views := make([]elementView, 0, len(elements))
	for _, el := range elements {
		if !domain.Displayable(el.Type) {
			continue
		}
		keyword, _ := domain.Keyword(el.Type)
		views = append(views, elementView{
			ID:      el.ID,
			Name:    el.Name(),
			Type:    el.Type,
			Keyword: keyword,
			JSON:    el.PrettyJSON(),
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].Name < views[j].Name })
	return views
}

// traceRows builds the traceability table: every requirement element
// together with the elements that own a reference to it.
func traceRows(elements map[string]domain.Element) []traceRow {
	owners := make(map[string][]domain.Element)
	for _, el := range elements {
		for _, ref := range el.ChildRefs() {
			owners[ref] = append(owners[ref], el)
		}
	}

	rows := make([]traceRow, 0)
	for _, el := range elements {
		if !domain.RequirementType(el.Type) {
			continue
		}
		keyword, _ := domain.Keyword(el.Type)
		row := traceRow{ID: el.ID, Name: el.Name(), Keyword: keyword}
		owning := owners[el.ID]
		sort.Slice(owning, func(i, j int) bool { return owning[i].ID < owning[j].ID })
		for _, owner := range owning {
			row.OwnedBy = append(row.OwnedBy, ownerRef{ID: owner.ID, Name: owner.Name()})
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Model report {{.Session.ProjectID}}@{{.Session.CommitID}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; color: #222; }
nav ul { list-style: none; padding-left: 1.2rem; }
nav > ul { padding-left: 0; }
code, pre { background: #f4f4f4; }
pre { padding: 0.6rem; overflow-x: auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.3rem 0.6rem; text-align: left; }
.kw { color: #7b2d8b; }
.meta { color: #666; font-size: 0.85rem; }
</style>
</head>
<body>
<h1>Model report</h1>
<p class="meta">project {{.Session.ProjectID}}, commit {{.Session.CommitID}}, generated {{.Generated}}</p>

<h2>Navigation</h2>
<nav>
<ul>
{{- range .Tree}}
{{template "node" .}}
{{- end}}
</ul>
</nav>

<h2>Requirements traceability</h2>
{{- if .Trace}}
<table>
<tr><th>Requirement</th><th>Kind</th><th>Owned by</th></tr>
{{- range .Trace}}
<tr>
<td><a href="#el-{{.ID}}">{{.Name}}</a></td>
<td><span class="kw">{{.Keyword}}</span></td>
<td>{{- range $i, $o := .OwnedBy}}{{if $i}}, {{end}}<a href="#el-{{$o.ID}}">{{$o.Name}}</a>{{- end}}</td>
</tr>
{{- end}}
</table>
{{- else}}
<p class="meta">no requirement elements in this model</p>
{{- end}}

<h2>Elements</h2>
{{- range .Elements}}
<h3 id="el-{{.ID}}"><span class="kw">{{.Keyword}}</span> {{.Name}}</h3>
<p class="meta">{{.Type}} {{.ID}}</p>
<pre>{{.JSON}}</pre>
{{- end}}

</body>
</html>

{{define "node"}}
<li><a href="#el-{{.ID}}"><span class="kw">{{.Keyword}}</span> {{.Name}}</a>
{{- if .Children}}
<ul>
{{- range .Children}}
{{template "node" .}}
{{- end}}
</ul>
{{- end}}
</li>
{{end}}
`
