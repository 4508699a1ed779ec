package store

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	entschema "github.com/abhisek/fractiz/ent/schema"
)

// Table names.
const (
	answerEventsTable = "answer_events"
	resetEventsTable  = "reset_events"
	sequenceTable     = "event_sequence"
)

// ErrMissingField is wrapped by a ValidationError when a required field
// has neither a value nor a default.
var ErrMissingField = errors.New("missing required field")

// ValidationError reports a row rejected by its ent field declaration.
type ValidationError struct {
	Table string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Table, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// entity is an ent schema flattened to the descriptors of its fields
// (mixin fields first) and indexes.
type entity struct {
	table   string
	fields  []*field.Descriptor
	indexes []*index.Descriptor
}

func entityOf(table string, s ent.Interface) (*entity, error) {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	e := &entity{table: table}
	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", table, d.Name, d.Err)
		}
		e.fields = append(e.fields, d)
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		for _, name := range d.Fields {
			if !e.has(name) {
				return nil, fmt.Errorf("%s: index on unknown column %q", table, name)
			}
		}
		e.indexes = append(e.indexes, d)
	}
	return e, nil
}

func (e *entity) has(name string) bool {
	return slices.ContainsFunc(e.fields, func(d *field.Descriptor) bool { return d.Name == name })
}

// migration returns the table with an auto-increment id primary key.
func (e *entity) migration() *schema.Table {
	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := schema.NewTable(e.table).AddPrimary(id)
	for _, d := range e.fields {
		t.AddColumn(&schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Unique:   d.Unique,
			Nullable: d.Optional,
		})
	}
	for _, d := range e.indexes {
		t.AddIndex(indexName(e.table, d.Fields), d.Unique, d.Fields)
	}
	return t
}

// row checks values against the field declarations, fills in defaults and
// returns the columns and values to insert, in declaration order. Optional
// fields without a value are left out.
func (e *entity) row(values map[string]any) ([]string, []any, error) {
	for name := range values {
		if !e.has(name) {
			return nil, nil, &ValidationError{Table: e.table, Field: name, Err: errors.New("unknown field")}
		}
	}

	var cols []string
	var vals []any
	for _, d := range e.fields {
		v, ok := values[d.Name]
		if !ok {
			switch {
			case d.Default != nil:
				v = defaultValue(d.Default)
			case d.Optional:
				continue
			default:
				return nil, nil, &ValidationError{Table: e.table, Field: d.Name, Err: ErrMissingField}
			}
		}
		if err := validate(d, v); err != nil {
			return nil, nil, &ValidationError{Table: e.table, Field: d.Name, Err: err}
		}
		cols = append(cols, d.Name)
		vals = append(vals, v)
	}
	return cols, vals, nil
}

func defaultValue(def any) any {
	if fn, ok := def.(func() time.Time); ok {
		return fn()
	}
	return def
}

// validate runs the validators ent attaches to a field descriptor
// (NotEmpty, Positive, NonNegative and the like).
func validate(d *field.Descriptor, v any) error {
	for _, fn := range d.Validators {
		var err error
		switch fn := fn.(type) {
		case func(string) error:
			s, ok := v.(string)
			if !ok {
				return fmt.Errorf("want string, got %T", v)
			}
			err = fn(s)
		case func(int) error:
			n, ok := v.(int)
			if !ok {
				return fmt.Errorf("want int, got %T", v)
			}
			err = fn(n)
		case func(int64) error:
			n, ok := v.(int64)
			if !ok {
				return fmt.Errorf("want int64, got %T", v)
			}
			err = fn(n)
		default:
			return fmt.Errorf("unsupported validator %T", fn)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

var entities = sync.OnceValues(func() (map[string]*entity, error) {
	decls := []struct {
		table  string
		schema ent.Interface
	}{
		{answerEventsTable, entschema.AnswerEvent{}},
		{resetEventsTable, entschema.ResetEvent{}},
		{sequenceTable, entschema.EventSequence{}},
	}
	out := make(map[string]*entity, len(decls))
	for _, d := range decls {
		e, err := entityOf(d.table, d.schema)
		if err != nil {
			return nil, err
		}
		out[d.table] = e
	}
	return out, nil
})

func entityFor(table string) (*entity, error) {
	all, err := entities()
	if err != nil {
		return nil, err
	}
	e, ok := all[table]
	if !ok {
		return nil, fmt.Errorf("unknown table %q", table)
	}
	return e, nil
}

// Tables builds the migration tables from the ent schema declarations.
func Tables() ([]*schema.Table, error) {
	var tables []*schema.Table
	for _, name := range []string{answerEventsTable, resetEventsTable, sequenceTable} {
		e, err := entityFor(name)
		if err != nil {
			return nil, err
		}
		tables = append(tables, e.migration())
	}
	return tables, nil
}

func indexName(table string, fields []string) string {
	n := table
	for _, f := range fields {
		n += "_" + f
	}
	return n
}
