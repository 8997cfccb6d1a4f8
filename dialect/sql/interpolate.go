package sql

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syssam/logicaldelete/dialect"
)

// Interpolate inlines args into query for display. It is not meant for
// execution; bound arguments stay the only safe way to pass values.
//
//	Interpolate("sqlite", "update tb set del_flag = 1 where id = ?", []any{2})
//	// update tb set del_flag = 1 where id = 2
func Interpolate(d string, query string, args []any) string {
	var (
		b        strings.Builder
		n        int
		inString bool
		postgres = dialect.Normalize(d) == dialect.Postgres
	)
	for i := 0; i < len(query); i++ {
		ch := query[i]
		switch {
		case ch == '\'':
			inString = !inString
			b.WriteByte(ch)
		case inString:
			b.WriteByte(ch)
		case ch == '?' && !postgres:
			if n < len(args) {
				b.WriteString(inline(d, args[n]))
			} else {
				b.WriteByte(ch)
			}
			n++
		case ch == '$' && postgres && i+1 < len(query) && isDigit(query[i+1]):
			j := i + 1
			for j < len(query) && isDigit(query[j]) {
				j++
			}
			idx, _ := strconv.Atoi(query[i+1 : j])
			if idx >= 1 && idx <= len(args) {
				b.WriteString(inline(d, args[idx-1]))
			} else {
				b.WriteString(query[i:j])
			}
			i = j - 1
		default:
			b.WriteByte(ch)
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func inline(d string, v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return QuoteDialect(d, v)
	case []byte:
		return QuoteDialect(d, string(v))
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return QuoteDialect(d, v.Format(time.RFC3339Nano))
	case fmt.Stringer:
		return QuoteDialect(d, v.String())
	default:
		return fmt.Sprint(v)
	}
}
