package dom

import "strings"

// AddClass returns attr with each of names appended unless already present.
// Existing names keep their order; new names are appended in argument order.
// Duplicates are never introduced.
func AddClass(attr string, names ...string) string {
	list := strings.Fields(attr)
	for _, name := range names {
		if name == "" || containsName(list, name) {
			continue
		}
		list = append(list, name)
	}
	return strings.Join(list, " ")
}

// RemoveClass returns attr with each of names deleted. Names not present are
// silently ignored.
func RemoveClass(attr string, names ...string) string {
	list := strings.Fields(attr)
	out := list[:0]
	for _, existing := range list {
		if containsName(names, existing) {
			continue
		}
		out = append(out, existing)
	}
	return strings.Join(out, " ")
}

// ReplaceClass removes every name in remove, then adds every name in add.
// A name appearing in both lists therefore ends up present.
func ReplaceClass(attr string, remove []string, add []string) string {
	return AddClass(RemoveClass(attr, remove...), add...)
}

// HasClass reports whether attr's class list contains name.
func HasClass(attr, name string) bool {
	return name != "" && containsName(strings.Fields(attr), name)
}

func containsName(list []string, name string) bool {
	for _, n := range list {
		if n == name {
			return true
		}
	}
	return false
}
