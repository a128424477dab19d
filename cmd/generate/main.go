// Command generate emits the arity-numbered API variants (CreateN, HasN,
// EachN, FilterN, BuilderN) for the root package. Run it via go generate
// from the repository root.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"
)

const minArity = 2
const maxArity = 4

// arity carries the precomputed strings one generated variant needs.
type arity struct {
	N          int
	Params     string // "T1, T2"
	ParamsAny  string // "T1, T2 any"
	Values     string // "v1 T1, v2 T2"
	Ptrs       string // "*T1, *T2"
	PtrNames   string // "p1, p2"
	DupCheck   string // "id2 == id1 || ..."
	IDList     string // "id1, id2"
	Seq        []int  // [1, 2]
	CommaTypes string // "T1, T2" for doc comments
}

func makeArity(n int) arity {
	var params, values, ptrs, ptrNames, ids []string
	var dups []string
	seq := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		params = append(params, fmt.Sprintf("T%d", i))
		values = append(values, fmt.Sprintf("v%d T%d", i, i))
		ptrs = append(ptrs, fmt.Sprintf("*T%d", i))
		ptrNames = append(ptrNames, fmt.Sprintf("p%d", i))
		ids = append(ids, fmt.Sprintf("id%d", i))
		for j := 1; j < i; j++ {
			dups = append(dups, fmt.Sprintf("id%d == id%d", i, j))
		}
		seq = append(seq, i)
	}
	p := strings.Join(params, ", ")
	return arity{
		N:          n,
		Params:     p,
		ParamsAny:  p + " any",
		Values:     strings.Join(values, ", "),
		Ptrs:       strings.Join(ptrs, ", "),
		PtrNames:   strings.Join(ptrNames, ", "),
		DupCheck:   strings.Join(dups, " || "),
		IDList:     strings.Join(ids, ", "),
		Seq:        seq,
		CommaTypes: p,
	}
}

const header = "// Code generated by cmd/generate. DO NOT EDIT.\n\npackage hive\n"

const apiTemplate = `
// Create{{.N}} creates an entity carrying components of types {{.CommaTypes}}, clustered
// with other entities created with the same component set.
func Create{{.N}}[{{.ParamsAny}}](w *World, {{.Values}}) Entity {
{{- range .Seq}}
	id{{.}} := ComponentIDFor[T{{.}}]()
{{- end}}
	if {{.DupCheck}} {
		panic("hive: duplicate component types in Create{{.N}}")
	}
	mask := MaskOf({{.IDList}})
	e := w.createSlot(mask)
{{- range .Seq}}
	construct(w, e.ID, id{{.}}, v{{.}})
{{- end}}
	w.table.masks[e.ID] = mask
	return e
}

// Has{{.N}} reports whether a live entity has all of the components {{.CommaTypes}}.
// Panics if the entity is stale.
func Has{{.N}}[{{.ParamsAny}}](w *World, e Entity) bool {
	w.mustLive(e)
{{- range .Seq}}
	id{{.}}, ok{{.}} := TryComponentIDFor[T{{.}}]()
{{- end}}
	if {{range $i, $v := .Seq}}{{if $i}} || {{end}}!ok{{$v}}{{end}} {
		return false
	}
	return w.table.masks[e.ID].ContainsAll(MaskOf({{.IDList}}))
}

// Each{{.N}} calls fn for every live entity carrying all of {{.CommaTypes}}, in ascending
// slot order. fn must not mutate the world.
func Each{{.N}}[{{.ParamsAny}}](w *World, fn func(Entity, {{.Ptrs}})) {
	f := NewFilter{{.N}}[{{.Params}}](w)
	for f.Next() {
		{{.PtrNames}} := f.Get()
		fn(f.Entity(), {{.PtrNames}})
	}
}
`

const filterTemplate = `
// Filter{{.N}} iterates over all entities carrying the {{.N}} components {{.CommaTypes}}.
// Same protocol and rules as Filter.
type Filter{{.N}}[{{.ParamsAny}}] struct {
	view  View
{{- range .Seq}}
	pool{{.}} *pool
{{- end}}
}

// NewFilter{{.N}} creates a filter over all entities carrying {{.CommaTypes}}.
func NewFilter{{.N}}[{{.ParamsAny}}](w *World) *Filter{{.N}}[{{.Params}}] {
{{- range .Seq}}
	id{{.}} := ComponentIDFor[T{{.}}]()
{{- end}}
	return &Filter{{.N}}[{{.Params}}]{
		view:  View{w: w, mask: MaskOf({{.IDList}}), cursor: -1, size: w.table.len()},
{{- range .Seq}}
		pool{{.}}: w.poolFor(id{{.}}),
{{- end}}
	}
}

// With adds further required component bits to the filter. Call before
// iterating.
func (f *Filter{{.N}}[{{.Params}}]) With(ids ...ComponentID) *Filter{{.N}}[{{.Params}}] {
	f.view.mask |= MaskOf(ids...)
	return f
}

// Next advances to the next matching entity, returning false at the end.
func (f *Filter{{.N}}[{{.Params}}]) Next() bool {
	return f.view.Next()
}

// Entity returns the current entity. Valid only after Next returned true.
func (f *Filter{{.N}}[{{.Params}}]) Entity() Entity {
	return f.view.Entity()
}

// Get returns pointers to the current entity's components.
func (f *Filter{{.N}}[{{.Params}}]) Get() ({{.Ptrs}}) {
	return {{range $i, $v := .Seq}}{{if $i}}, {{end}}(*T{{$v}})(f.pool{{$v}}.ptrAt(f.view.cursor)){{end}}
}

// Reset rewinds the filter, picking up entities created since the last walk.
func (f *Filter{{.N}}[{{.Params}}]) Reset() {
	f.view.Reset()
}
`

const builderTemplate = `
// Builder{{.N}} caches the archetype mask for entities with the {{.N}} components
// {{.CommaTypes}}. Components start at their zero value.
type Builder{{.N}}[{{.ParamsAny}}] struct {
	world *World
	mask  Mask
{{- range .Seq}}
	id{{.}}   ComponentID
{{- end}}
}

// NewBuilder{{.N}} creates a builder for entities carrying {{.CommaTypes}}.
func NewBuilder{{.N}}[{{.ParamsAny}}](w *World) *Builder{{.N}}[{{.Params}}] {
{{- range .Seq}}
	id{{.}} := ComponentIDFor[T{{.}}]()
{{- end}}
	if {{.DupCheck}} {
		panic("hive: duplicate component types in Builder{{.N}}")
	}
	return &Builder{{.N}}[{{.Params}}]{world: w, mask: MaskOf({{.IDList}}){{range .Seq}}, id{{.}}: id{{.}}{{end}}}
}

// NewEntity creates one entity in the builder's archetype and returns it
// together with its zero-valued components.
func (b *Builder{{.N}}[{{.Params}}]) NewEntity() (Entity, {{.Ptrs}}) {
	w := b.world
	e := w.createSlot(b.mask)
	n := int(e.ID) + 1
{{- range .Seq}}
	p{{.}} := w.poolFor(b.id{{.}})
	p{{.}}.ensureSize(n)
{{- end}}
	w.table.masks[e.ID] = b.mask
	return e{{range .Seq}}, (*T{{.}})(p{{.}}.ptrAt(int(e.ID))){{end}}
}

// NewEntities creates count entities in the builder's archetype, all with
// zero-valued components.
func (b *Builder{{.N}}[{{.Params}}]) NewEntities(count int) []Entity {
	if count <= 0 {
		return nil
	}
	w := b.world
	slots := w.index.allocateMany(b.mask, count)
	maxSlot := uint32(0)
	for _, s := range slots {
		if s > maxSlot {
			maxSlot = s
		}
	}
	w.table.ensureSize(int(maxSlot) + 1)
{{- range .Seq}}
	w.poolFor(b.id{{.}}).ensureSize(int(maxSlot) + 1)
{{- end}}
	ents := make([]Entity, len(slots))
	for i, s := range slots {
		w.table.masks[s] = b.mask
		ents[i] = Entity{ID: s, Version: w.table.versions[s]}
	}
	w.liveCount += count
	return ents
}
`

func render(name, tmpl string) []byte {
	t := template.Must(template.New(name).Parse(tmpl))
	var buf bytes.Buffer
	buf.WriteString(header)
	for n := minArity; n <= maxArity; n++ {
		if err := t.Execute(&buf, makeArity(n)); err != nil {
			log.Fatalf("render %s arity %d: %v", name, n, err)
		}
	}
	return buf.Bytes()
}

func writeFile(path string, src []byte) {
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		log.Fatalf("format %s: %v", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
	log.Printf("wrote %s (%d bytes)", path, len(formatted))
}

func main() {
	writeFile("api_generated.go", render("api", apiTemplate))
	writeFile("filter_generated.go", render("filter", filterTemplate))
	writeFile("builder_generated.go", render("builder", builderTemplate))
}
