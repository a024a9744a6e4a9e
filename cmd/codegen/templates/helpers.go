package templates

import "strings"

// Field is one tracked key on the generated state struct.
type Field struct {
	Name   string // record key, e.g. "title"
	GoType string // e.g. "string"
}

func exported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func zeroLiteral(goType string) string {
	switch goType {
	case "string":
		return `""`
	case "int", "int8", "int16", "int32", "int64",
		"uint", "uint8", "uint16", "uint32", "uint64",
		"float32", "float64":
		return "0"
	case "bool":
		return "false"
	default:
		return "nil"
	}
}
