// ============================================================================
// pkit - Primitive Toolkit
// ============================================================================
//
// Package:     registry
// Description: Named method tables per subject kind and the process-wide
//              installer that merges them without overwriting
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package registry

import (
	"sort"
	"sync"

	mdwerrors "github.com/msto63/pkit/core/errors"
	"github.com/msto63/pkit/core/log"
	"github.com/msto63/pkit/internal/value"
)

// Table names. The subject tables match value.Kind names.
const (
	TableString = "string"
	TableNumber = "number"
	TableArray  = "array"
	TableObject = "object"
	TableMath   = "math"
	TablePath   = "path"
)

// Func is a method implementation. Namespace methods receive a nil subject.
type Func func(subject any, args ...any) (any, error)

// Method is one named entry of a table
type Method struct {
	Name string
	Doc  string
	Func Func
}

// Table is an ordered list of uniquely named methods
type Table struct {
	name    string
	methods []Method
	index   map[string]int
}

// NewTable creates an empty table
func NewTable(name string) *Table {
	return &Table{name: name, index: make(map[string]int)}
}

// Name returns the table name
func (t *Table) Name() string {
	return t.name
}

// Register adds a method. Registering an existing name replaces the
// earlier implementation in place, keeping its position.
func (t *Table) Register(name, doc string, fn Func) *Table {
	m := Method{Name: name, Doc: doc, Func: fn}
	if i, ok := t.index[name]; ok {
		t.methods[i] = m
		return t
	}
	t.index[name] = len(t.methods)
	t.methods = append(t.methods, m)
	return t
}

// Lookup returns the method registered under name
func (t *Table) Lookup(name string) (Method, bool) {
	i, ok := t.index[name]
	if !ok {
		return Method{}, false
	}
	return t.methods[i], true
}

// Has reports whether name is registered
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Methods returns a copy of the methods in registration order
func (t *Table) Methods() []Method {
	out := make([]Method, len(t.methods))
	copy(out, t.methods)
	return out
}

// Names returns the method names in registration order
func (t *Table) Names() []string {
	names := make([]string, len(t.methods))
	for i, m := range t.methods {
		names[i] = m.Name
	}
	return names
}

// Len returns the number of methods
func (t *Table) Len() int {
	return len(t.methods)
}

func (t *Table) clone() *Table {
	c := NewTable(t.name)
	for _, m := range t.methods {
		c.Register(m.Name, m.Doc, m.Func)
	}
	return c
}

// ===============================
// Registry
// ===============================

// Registry holds installed tables and dispatches calls by subject kind
type Registry struct {
	mu     sync.RWMutex
	tables map[string]*Table
	order  []string
}

// New creates an empty registry
func New() *Registry {
	return &Registry{tables: make(map[string]*Table)}
}

// Install merges src into the table of the same name. Names already present
// are left untouched. It returns the number of methods added.
func (r *Registry) Install(src *Table) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst, ok := r.tables[src.name]
	if !ok {
		dst = NewTable(src.name)
		r.tables[src.name] = dst
		r.order = append(r.order, src.name)
	}

	added := 0
	for _, m := range src.methods {
		if dst.Has(m.Name) {
			continue
		}
		dst.Register(m.Name, m.Doc, m.Func)
		added++
	}
	return added
}

// Table returns a snapshot of the named table
func (r *Registry) Table(name string) (*Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[name]
	if !ok {
		return nil, false
	}
	return t.clone(), true
}

// Tables returns the installed table names in installation order
func (r *Registry) Tables() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lookup finds a method by table and name
func (r *Registry) Lookup(table, name string) (Method, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tables[table]
	if !ok {
		return Method{}, false
	}
	return t.Lookup(name)
}

// Call invokes the method name from the table matching the subject's kind
func (r *Registry) Call(subject any, name string, args ...any) (any, error) {
	kind := value.KindOf(subject)
	if kind == value.KindOther {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleRegistry, name, value.TypeOf(subject), "string, number, array or object")
	}
	return r.invoke(kind.String(), name, subject, args)
}

// CallNamespace invokes a method of a namespace table such as math or path
func (r *Registry) CallNamespace(namespace, name string, args ...any) (any, error) {
	return r.invoke(namespace, name, nil, args)
}

func (r *Registry) invoke(table, name string, subject any, args []any) (any, error) {
	m, ok := r.Lookup(table, name)
	if !ok {
		return nil, mdwerrors.UnknownMethod(table, name)
	}
	return m.Func(subject, args...)
}

// ===============================
// Process registry
// ===============================

var (
	global      = New()
	installOnce sync.Once
)

// Global returns the process registry
func Global() *Registry {
	return global
}

// InstallBuiltins installs the built-in tables into the process registry.
// Only the first call has an effect; later calls return 0 and their
// options are ignored.
func InstallBuiltins(opts ...Options) int {
	added := 0
	installOnce.Do(func() {
		o := DefaultOptions()
		if len(opts) > 0 {
			o = opts[0]
		}
		for _, t := range Builtins(o) {
			added += global.Install(t)
		}
		log.GetDefault().Debug("installed built-in method tables",
			log.Int("methods", added),
			log.Any("tables", global.Tables()))
	})
	return added
}

// Call installs the built-ins if needed and dispatches on the process registry
func Call(subject any, name string, args ...any) (any, error) {
	InstallBuiltins()
	return global.Call(subject, name, args...)
}

// CallNamespace installs the built-ins if needed and invokes a namespace method
func CallNamespace(namespace, name string, args ...any) (any, error) {
	InstallBuiltins()
	return global.CallNamespace(namespace, name, args...)
}

// Listing returns every installed method name per table, sorted by name
func (r *Registry) Listing() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]string, len(r.tables))
	for name, t := range r.tables {
		names := t.Names()
		sort.Strings(names)
		out[name] = names
	}
	return out
}
