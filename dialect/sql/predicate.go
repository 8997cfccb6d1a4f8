package sql

import "time"

// Predicate applies a condition to a criteria group.
type Predicate func(*Criteria)

// FieldEQ returns a predicate that checks if the column equals v.
func FieldEQ(name string, v any) Predicate { return binary(name, opEQ, v) }

// FieldNEQ returns a predicate that checks if the column does not equal v.
func FieldNEQ(name string, v any) Predicate { return binary(name, opNEQ, v) }

// FieldGT returns a predicate that checks if the column is greater than v.
func FieldGT(name string, v any) Predicate { return binary(name, opGT, v) }

// FieldGTE returns a predicate that checks if the column is greater than or equal to v.
func FieldGTE(name string, v any) Predicate { return binary(name, opGTE, v) }

// FieldLT returns a predicate that checks if the column is less than v.
func FieldLT(name string, v any) Predicate { return binary(name, opLT, v) }

// FieldLTE returns a predicate that checks if the column is less than or equal to v.
func FieldLTE(name string, v any) Predicate { return binary(name, opLTE, v) }

// FieldIn returns a predicate that checks if the column value is one of vs.
// An empty list matches nothing.
func FieldIn[T any](name string, vs ...T) Predicate {
	return func(c *Criteria) {
		c.add(criterion{column: name, op: opIn, values: anys(vs)})
	}
}

// FieldNotIn returns a predicate that checks if the column value is none of vs.
func FieldNotIn[T any](name string, vs ...T) Predicate {
	return func(c *Criteria) {
		c.add(criterion{column: name, op: opNotIn, values: anys(vs)})
	}
}

// FieldBetween returns a predicate that checks if the column lies in [lo, hi].
func FieldBetween(name string, lo, hi any) Predicate {
	return func(c *Criteria) {
		c.add(criterion{column: name, op: opBetween, values: []any{lo, hi}})
	}
}

// FieldNotBetween is the negation of FieldBetween.
func FieldNotBetween(name string, lo, hi any) Predicate {
	return func(c *Criteria) {
		c.add(criterion{column: name, op: opNotBetween, values: []any{lo, hi}})
	}
}

// FieldLike returns a LIKE predicate. The pattern is bound unchanged.
func FieldLike(name, pattern string) Predicate { return binary(name, opLike, pattern) }

// FieldNotLike returns a NOT LIKE predicate.
func FieldNotLike(name, pattern string) Predicate { return binary(name, opNotLike, pattern) }

// FieldIsNull returns a predicate that checks if the column is NULL.
func FieldIsNull(name string) Predicate {
	return func(c *Criteria) { c.add(criterion{column: name, op: opIsNull}) }
}

// FieldNotNull returns a predicate that checks if the column is not NULL.
func FieldNotNull(name string) Predicate {
	return func(c *Criteria) { c.add(criterion{column: name, op: opNotNull}) }
}

func binary(name, op string, v any) Predicate {
	return func(c *Criteria) {
		c.add(criterion{column: name, op: op, values: []any{v}})
	}
}

func anys[T any](vs []T) []any {
	out := make([]any, len(vs))
	for i := range vs {
		out[i] = vs[i]
	}
	return out
}

// Field is a column with typed predicate methods.
//
//	var ID = sql.Field[int64]("id")
//	ex.CreateCriteria().Where(ID.EQ(1), ID.NotNull())
type Field[T any] string

// Name returns the column name.
func (f Field[T]) Name() string { return string(f) }

// EQ returns a predicate that checks if the column equals v.
func (f Field[T]) EQ(v T) Predicate { return FieldEQ(string(f), v) }

// NEQ returns a predicate that checks if the column does not equal v.
func (f Field[T]) NEQ(v T) Predicate { return FieldNEQ(string(f), v) }

// GT returns a predicate that checks if the column is greater than v.
func (f Field[T]) GT(v T) Predicate { return FieldGT(string(f), v) }

// GTE returns a predicate that checks if the column is greater than or equal to v.
func (f Field[T]) GTE(v T) Predicate { return FieldGTE(string(f), v) }

// LT returns a predicate that checks if the column is less than v.
func (f Field[T]) LT(v T) Predicate { return FieldLT(string(f), v) }

// LTE returns a predicate that checks if the column is less than or equal to v.
func (f Field[T]) LTE(v T) Predicate { return FieldLTE(string(f), v) }

// In returns a predicate that checks if the column value is one of vs.
func (f Field[T]) In(vs ...T) Predicate { return FieldIn(string(f), vs...) }

// NotIn returns a predicate that checks if the column value is none of vs.
func (f Field[T]) NotIn(vs ...T) Predicate { return FieldNotIn(string(f), vs...) }

// Between returns a predicate that checks if the column lies in [lo, hi].
func (f Field[T]) Between(lo, hi T) Predicate { return FieldBetween(string(f), lo, hi) }

// IsNull returns a predicate that checks if the column is NULL.
func (f Field[T]) IsNull() Predicate { return FieldIsNull(string(f)) }

// NotNull returns a predicate that checks if the column is not NULL.
func (f Field[T]) NotNull() Predicate { return FieldNotNull(string(f)) }

// StringField is a string column with pattern predicates.
type StringField string

// Field returns the typed comparison helpers of the column.
func (f StringField) Field() Field[string] { return Field[string](f) }

// EQ returns a predicate that checks if the column equals v.
func (f StringField) EQ(v string) Predicate { return FieldEQ(string(f), v) }

// Contains returns a predicate that checks if the column contains v.
func (f StringField) Contains(v string) Predicate {
	return FieldLike(string(f), "%"+v+"%")
}

// HasPrefix returns a predicate that checks if the column starts with v.
func (f StringField) HasPrefix(v string) Predicate {
	return FieldLike(string(f), v+"%")
}

// HasSuffix returns a predicate that checks if the column ends with v.
func (f StringField) HasSuffix(v string) Predicate {
	return FieldLike(string(f), "%"+v)
}

// TimeField is a timestamp column.
type TimeField = Field[time.Time]
