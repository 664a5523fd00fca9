package formbridge

import (
	"reflect"
	"strconv"
	"strings"
)

// Field paths use dotted segments with bracketed indices, the same
// notation the editing context uses for its own field identifiers:
// "email", "address.city", "items[2].sku". Validators that produce
// paths in this notation can be consumed by field-bound display
// components without translation.

// JoinPath appends a child segment to a parent path. An empty parent
// yields the child unchanged, so root-level fields carry no prefix.
func JoinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	if child == "" {
		return parent
	}
	return parent + "." + child
}

// IndexPath appends a bracketed element index to a collection path.
func IndexPath(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

// fieldPathName derives the path segment for a struct field: the json
// tag name when one is set, the Go field name otherwise. A "-" tag does
// not exclude the field from validation paths; it falls back to the
// field name.
func fieldPathName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" || name == "-" {
		return sf.Name
	}
	return name
}
