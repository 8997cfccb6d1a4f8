package sql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExample_CreateCriteria(t *testing.T) {
	ex := NewExample()
	first := ex.CreateCriteria()
	second := ex.CreateCriteria()
	assert.Len(t, ex.Criteria(), 1)
	assert.Same(t, first, ex.Criteria()[0])
	assert.NotSame(t, first, second)

	ex.Or()
	assert.Len(t, ex.Criteria(), 2)
	ex.Clear()
	assert.Empty(t, ex.Criteria())
}

func TestExample_Valid(t *testing.T) {
	ex := NewExample()
	ex.CreateCriteria()
	ex.Or().Where(FieldEQ("id", 1))
	assert.Len(t, ex.valid(), 1)
	var nilExample *Example
	assert.Empty(t, nilExample.valid())
}

func TestCriteria_String(t *testing.T) {
	tests := []struct {
		name string
		c    *Criteria
		want string
	}{
		{
			name: "deleted and id",
			c:    new(Criteria).AndCondition(EQ("del_flag", Lit("1"))).Where(FieldEQ("id", 3)),
			want: "del_flag = 1 and id = ?",
		},
		{
			name: "typed field",
			c:    new(Criteria).Where(Field[int64]("id").GT(1), Field[int64]("id").LTE(9)),
			want: "id > ? and id <= ?",
		},
		{
			name: "between and null",
			c:    new(Criteria).Where(FieldBetween("ts_1", 1, 2), FieldIsNull("ts_3"), FieldNotNull("ts_4")),
			want: "ts_1 between ? and ? and ts_3 is null and ts_4 is not null",
		},
		{
			name: "empty in",
			c:    new(Criteria).Where(FieldIn[int]("id"), FieldNotIn[int]("id")),
			want: "1 = 0 and 1 = 1",
		},
		{
			name: "not in",
			c:    new(Criteria).Where(Field[string]("code").NotIn("a", "b")),
			want: "code not in (?, ?)",
		},
		{
			name: "like",
			c:    new(Criteria).Where(StringField("name").HasPrefix("a"), FieldNotLike("name", "%z")),
			want: "name like ? and name not like ?",
		},
		{
			name: "time",
			c:    new(Criteria).Where(TimeField("ts_1").LT(time.Unix(0, 0))),
			want: "ts_1 < ?",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.String())
			assert.True(t, tt.c.Valid())
		})
	}
	assert.False(t, new(Criteria).Valid())
}

func TestStringField(t *testing.T) {
	f := StringField("name")
	b := &builder{}
	c := new(Criteria).Where(f.Contains("x"), f.HasSuffix("y"), f.EQ("z"), f.Field().NEQ("w"))
	for _, it := range c.items {
		it.write(b)
		b.WriteString(";")
	}
	assert.Equal(t, "name like ?;name like ?;name = ?;name <> ?;", b.String())
	assert.Equal(t, []any{"%x%", "%y", "z", "w"}, b.args)
}
