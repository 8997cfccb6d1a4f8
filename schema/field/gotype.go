package field

import "strings"

// GoType returns the Go type used for values of a native column type in
// generated code. Types without a better match map to "any".
func GoType(nativeType string) string {
	t := normalize(nativeType)
	switch Classify(nativeType) {
	case Numeric:
		for _, s := range []string{"dec", "num", "float", "real", "double"} {
			if strings.HasPrefix(t, s) {
				return "float64"
			}
		}
		return "int64"
	case String:
		return "string"
	case Boolean:
		return "bool"
	}
	switch {
	case strings.Contains(t, "time"), strings.Contains(t, "date"):
		return "time.Time"
	case strings.Contains(t, "blob"), strings.Contains(t, "binary"), t == "bytea":
		return "[]byte"
	default:
		return "any"
	}
}
