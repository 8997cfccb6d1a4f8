package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	rules    = ruleset()
	acronyms = make(map[string]struct{})
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HCL", "HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC", "MB",
		"QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH", "SSO", "TCP",
		"TLS", "TTL", "UDP", "UI", "UID", "URI", "URL", "UTF8", "UUID", "VM",
		"XML", "XMPP", "XSRF", "XSS"} {
		acronyms[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// Pascal converts a SQL identifier to a Go exported name.
//
//	Pascal("del_flag")  // DelFlag
//	Pascal("user_id")   // UserID
//	Pascal("ts_1")      // Ts1
func Pascal(s string) string {
	words := strings.FieldsFunc(s, isSeparator)
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
			continue
		}
		words[i] = rules.Capitalize(strings.ToLower(w))
	}
	return strings.Join(words, "")
}

// Camel converts a SQL identifier to a Go unexported name.
func Camel(s string) string {
	p := Pascal(s)
	for i, r := range p {
		if !unicode.IsUpper(r) {
			if i > 1 {
				// Lower the whole leading acronym but its last letter
				// when followed by a word ("IDToken" -> "idToken").
				return strings.ToLower(p[:i-1]) + p[i-1:]
			}
			return strings.ToLower(p[:i]) + p[i:]
		}
	}
	return strings.ToLower(p)
}

// Receiver returns the receiver name of a Go type name.
func Receiver(s string) string {
	if s == "" {
		return "x"
	}
	return strings.ToLower(s[:1])
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// ConstName returns the name of a generated constant of table.
func ConstName(table, suffix string) string {
	return Pascal(table) + suffix
}

// MethodName returns the Go method name of an operation id.
//
//	MethodName("deleteByPrimaryKey") // DeleteByPrimaryKey
func MethodName(id string) string {
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}
