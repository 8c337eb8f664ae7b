package vdom

import "regexp"

// Selector grammar: an optional leading tag, at most one #id, any
// number of .class segments. The three parts are extracted by
// independent scans over the same string, so they never cross-validate:
// a second #id or a bracket segment is silently dropped rather than
// reported. Characters outside [A-Za-z0-9_-] end a segment.
var (
	selectorTag   = regexp.MustCompile(`^[A-Za-z0-9_-]+`)
	selectorID    = regexp.MustCompile(`#([A-Za-z0-9_-]+)`)
	selectorClass = regexp.MustCompile(`\.([A-Za-z0-9_-]+)`)
)

// parseSelector splits a compact selector like "input#email.form.wide"
// into tag, id and classes. The tag is the leading run of word
// characters and defaults to "div" when absent; only the first #id is
// recognized; every .class contributes, in source order.
func parseSelector(selector string) (tag, id string, classes []string) {
	tag = selectorTag.FindString(selector)
	if tag == "" {
		tag = "div"
	}
	if m := selectorID.FindStringSubmatch(selector); m != nil {
		id = m[1]
	}
	for _, m := range selectorClass.FindAllStringSubmatch(selector, -1) {
		classes = append(classes, m[1])
	}
	return tag, id, classes
}
