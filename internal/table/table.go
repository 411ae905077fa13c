// Package table renders arbitrary record sets as HTML against a
// caller-supplied column descriptor list.
package table

import (
	"fmt"
	"html/template"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Column describes one rendered column. DataIndex names a field of the
// record (json tag or exported field name; map key for map records)
// and must exist on every record. Render, when set, replaces the
// default cell content.
type Column[T any] struct {
	Title     string
	DataIndex string
	Class     string
	Render    func(value any, record T) template.HTML
}

// Options control one render pass.
type Options struct {
	Loading        bool
	HideHeader     bool
	ContainerClass string
	HeaderClass    string
	RowClass       string
}

// List renders records against a column set and tracks a single
// selected row. Rows are identified by the Key func; the positional
// index is the fallback, so duplicate records never collide.
type List[T any] struct {
	Columns []Column[T]
	// Key returns a stable identifier for a record. Optional.
	Key func(record T) string
	// OnRowClick is invoked with the full record on Click. Optional.
	OnRowClick func(record T)

	selectedKey string
	hasSelected bool
}

// Click marks the row identified by key as selected and invokes
// OnRowClick with its record. Clicking an already-selected row keeps
// it selected. Returns false when no row matches.
func (l *List[T]) Click(rows []T, key string) bool {
	for i, record := range rows {
		if l.rowKey(record, i) == key {
			l.selectedKey = key
			l.hasSelected = true
			if l.OnRowClick != nil {
				l.OnRowClick(record)
			}
			return true
		}
	}
	return false
}

// SelectedKey reports the key of the selected row, if any.
func (l *List[T]) SelectedKey() (string, bool) {
	return l.selectedKey, l.hasSelected
}

func (l *List[T]) rowKey(record T, index int) string {
	if l.Key != nil {
		return l.Key(record)
	}
	return strconv.Itoa(index)
}

type headerCell struct {
	Title string
	Class string
}

type bodyCell struct {
	Class   string
	Content template.HTML
}

type bodyRow struct {
	Key      string
	Class    string
	Selected bool
	Cells    []bodyCell
}

type listData struct {
	Loading        bool
	HideHeader     bool
	ContainerClass string
	HeaderClass    string
	Header         []headerCell
	Rows           []bodyRow
}

var listTemplate = template.Must(template.New("table").Parse(`<div class="table-container{{with .ContainerClass}} {{.}}{{end}}">
{{- if .Loading}}
<div class="linear-progress indeterminate"></div>
{{- end}}
{{- if not .HideHeader}}
<div class="table-header{{with .HeaderClass}} {{.}}{{end}}">
{{- range .Header}}
<div class="table-header-cell{{with .Class}} {{.}}{{end}}">{{.Title}}</div>
{{- end}}
</div>
{{- end}}
<div class="table-body">
{{- range .Rows}}
<button type="button" class="table-row{{with .Class}} {{.}}{{end}}{{if .Selected}} selected{{end}}" data-key="{{.Key}}" onclick="window.location.search='?selected={{.Key}}'">
{{- range .Cells}}
<div class="table-cell{{with .Class}} {{.}}{{end}}">{{.Content}}</div>
{{- end}}
</button>
{{- end}}
</div>
</div>
`))

// Render writes the table fragment for rows. An empty set renders zero
// rows; Loading overlays an indeterminate progress bar either way.
func (l *List[T]) Render(w io.Writer, rows []T, opts Options) error {
	data := listData{
		Loading:        opts.Loading,
		HideHeader:     opts.HideHeader,
		ContainerClass: opts.ContainerClass,
		HeaderClass:    opts.HeaderClass,
	}
	for _, col := range l.Columns {
		data.Header = append(data.Header, headerCell{Title: col.Title, Class: col.Class})
	}
	for i, record := range rows {
		key := l.rowKey(record, i)
		row := bodyRow{
			Key:      key,
			Class:    opts.RowClass,
			Selected: l.hasSelected && key == l.selectedKey,
		}
		for _, col := range l.Columns {
			value, _ := fieldValue(record, col.DataIndex)
			var content template.HTML
			if col.Render != nil {
				content = col.Render(value, record)
			} else {
				content = template.HTML(template.HTMLEscapeString(displayText(value)))
			}
			row.Cells = append(row.Cells, bodyCell{Class: col.Class, Content: content})
		}
		data.Rows = append(data.Rows, row)
	}
	return listTemplate.Execute(w, data)
}

// fieldValue resolves a DataIndex against a struct (json tag, then
// field name) or a string-keyed map, through any pointers.
func fieldValue(record any, key string) (any, bool) {
	v := reflect.ValueOf(record)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		mv := v.MapIndex(reflect.ValueOf(key))
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			tag := f.Tag.Get("json")
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag == key || f.Name == key {
				return v.Field(i).Interface(), true
			}
		}
	}
	return nil, false
}

// displayText coerces a raw field value to text. Values with no
// sensible text form (nested structs, maps, slices) degrade to empty
// rather than leaking their Go syntax.
func displayText(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	if s, ok := value.(fmt.Stringer); ok {
		return s.String()
	}
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	}
	return ""
}
