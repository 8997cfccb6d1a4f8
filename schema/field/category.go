package field

import "strings"

// Category is the type category of a column. The set is closed.
type Category uint8

const (
	// Unsupported is the category of every native type outside the three
	// families below.
	Unsupported Category = iota
	// Numeric covers integer, decimal and floating point types.
	Numeric
	// String covers character and text types.
	String
	// Boolean covers boolean and bit types.
	Boolean
)

var categoryNames = [...]string{
	Unsupported: "unsupported",
	Numeric:     "numeric",
	String:      "string",
	Boolean:     "boolean",
}

// String returns the lower-case name of the category.
func (c Category) String() string {
	if int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return categoryNames[Unsupported]
}

// Supported reports whether literals can be written for the category.
func (c Category) Supported() bool {
	return c == Numeric || c == String || c == Boolean
}

// nativeTypes maps normalized base type names to their category.
var nativeTypes = map[string]Category{
	// Numeric.
	"tinyint":          Numeric,
	"smallint":         Numeric,
	"mediumint":        Numeric,
	"int":              Numeric,
	"integer":          Numeric,
	"bigint":           Numeric,
	"int2":             Numeric,
	"int4":             Numeric,
	"int8":             Numeric,
	"smallserial":      Numeric,
	"serial":           Numeric,
	"bigserial":        Numeric,
	"serial2":          Numeric,
	"serial4":          Numeric,
	"serial8":          Numeric,
	"decimal":          Numeric,
	"dec":              Numeric,
	"numeric":          Numeric,
	"number":           Numeric,
	"float":            Numeric,
	"float4":           Numeric,
	"float8":           Numeric,
	"real":             Numeric,
	"double":           Numeric,
	"double precision": Numeric,
	// String.
	"char":              String,
	"character":         String,
	"nchar":             String,
	"varchar":           String,
	"character varying": String,
	"nvarchar":          String,
	"varchar2":          String,
	"nvarchar2":         String,
	"bpchar":            String,
	"text":              String,
	"tinytext":          String,
	"mediumtext":        String,
	"longtext":          String,
	"citext":            String,
	"clob":              String,
	"nclob":             String,
	"string":            String,
	// Boolean.
	"bool":    Boolean,
	"boolean": Boolean,
	"bit":     Boolean,
}

// attributes are type modifiers that do not change the category.
var attributes = map[string]bool{
	"unsigned": true,
	"signed":   true,
	"zerofill": true,
}

// Classify maps a native column type to its category.
func Classify(nativeType string) Category {
	return nativeTypes[normalize(nativeType)]
}

// normalize lower-cases t, drops length/precision modifiers and attributes,
// and collapses inner whitespace.
func normalize(t string) string {
	t = strings.ToLower(t)
	if i := strings.IndexByte(t, '('); i >= 0 {
		rest := ""
		if j := strings.IndexByte(t[i:], ')'); j >= 0 {
			rest = t[i+j+1:]
		}
		t = t[:i] + " " + rest
	}
	words := strings.Fields(t)
	kept := words[:0]
	for _, w := range words {
		if !attributes[w] {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}
