package sql

// Example is the criteria construct of by-example operations. Its criteria
// groups are ORed together; the conditions inside a group are ANDed.
type Example struct {
	// OrderByClause is appended verbatim as "order by <clause>" to selects.
	OrderByClause string
	// Distinct turns a select into "select distinct".
	Distinct bool
	ored     []*Criteria
}

// NewExample returns an empty example.
func NewExample() *Example { return &Example{} }

// Or appends a new criteria group and returns it.
func (e *Example) Or() *Criteria {
	c := &Criteria{}
	e.ored = append(e.ored, c)
	return c
}

// CreateCriteria returns a new criteria group. The group is attached to the
// example only when it is the first one; later groups must go through Or.
func (e *Example) CreateCriteria() *Criteria {
	c := &Criteria{}
	if len(e.ored) == 0 {
		e.ored = append(e.ored, c)
	}
	return c
}

// Criteria returns the criteria groups of the example.
func (e *Example) Criteria() []*Criteria { return e.ored }

// Clear removes all criteria groups and resets the options.
func (e *Example) Clear() {
	e.ored = nil
	e.OrderByClause = ""
	e.Distinct = false
}

// valid returns the groups holding at least one condition.
func (e *Example) valid() []*Criteria {
	if e == nil {
		return nil
	}
	var vs []*Criteria
	for _, c := range e.ored {
		if c.Valid() {
			vs = append(vs, c)
		}
	}
	return vs
}

// write renders the example clause without the leading keyword. It reports
// whether anything was written.
func (e *Example) write(b *builder) bool {
	groups := e.valid()
	if len(groups) == 0 {
		return false
	}
	for i, g := range groups {
		if i > 0 {
			b.WriteString(" or ")
		}
		b.WriteString("( ")
		for j, c := range g.items {
			if j > 0 {
				b.WriteString(" and ")
			}
			c.write(b)
		}
		b.WriteString(" )")
	}
	return true
}

// Criteria is one group of ANDed conditions.
type Criteria struct {
	items []criterion
}

// Where applies the predicates to the group.
func (c *Criteria) Where(ps ...Predicate) *Criteria {
	for _, p := range ps {
		p(c)
	}
	return c
}

// AndCondition appends a static condition. Named parameters are bound from
// the statement arguments.
func (c *Criteria) AndCondition(cond Cond) *Criteria {
	c.items = append(c.items, criterion{cond: &cond})
	return c
}

// Valid reports whether the group holds at least one condition.
func (c *Criteria) Valid() bool { return c != nil && len(c.items) > 0 }

// String returns the group as "a = ? and b = ?".
func (c *Criteria) String() string {
	b := &builder{}
	for i, it := range c.items {
		if i > 0 {
			b.WriteString(" and ")
		}
		it.write(b)
	}
	return b.String()
}

func (c *Criteria) add(cr criterion) { c.items = append(c.items, cr) }

// criterion is a single condition of a criteria group: either a predicate
// over bound values or a static condition.
type criterion struct {
	column string
	op     string
	values []any
	cond   *Cond
}

func (c criterion) write(b *builder) {
	if c.cond != nil {
		b.cond(*c.cond)
		return
	}
	switch op := c.op; op {
	case opIsNull, opNotNull:
		b.WriteString(c.column + " " + op)
	case opIn, opNotIn:
		if len(c.values) == 0 {
			if op == opIn {
				b.WriteString("1 = 0")
			} else {
				b.WriteString("1 = 1")
			}
			return
		}
		b.WriteString(c.column + " " + op + " (")
		for i, v := range c.values {
			if i > 0 {
				b.WriteString(", ")
			}
			b.arg(v)
		}
		b.WriteString(")")
	case opBetween, opNotBetween:
		b.WriteString(c.column + " " + op + " ")
		b.arg(c.values[0])
		b.WriteString(" and ")
		b.arg(c.values[1])
	default:
		b.WriteString(c.column + " " + op + " ")
		b.arg(c.values[0])
	}
}

const (
	opEQ         = "="
	opNEQ        = "<>"
	opGT         = ">"
	opGTE        = ">="
	opLT         = "<"
	opLTE        = "<="
	opIn         = "in"
	opNotIn      = "not in"
	opBetween    = "between"
	opNotBetween = "not between"
	opLike       = "like"
	opNotLike    = "not like"
	opIsNull     = "is null"
	opNotNull    = "is not null"
)
