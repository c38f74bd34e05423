package weather

import "strings"

// textView is a read-only window [start, end) over a document. Views are
// values; narrowing one never touches the backing string.
type textView struct {
	doc   string
	start int
	end   int
}

func newTextView(doc string) textView {
	return textView{doc: doc, start: 0, end: len(doc)}
}

func (v textView) text() string {
	return v.doc[v.start:v.end]
}

// find locates the first marker inside the view and returns the view that
// starts at the match and runs to the end of the parent view.
func (v textView) find(marker string) (textView, bool) {
	i := strings.Index(v.text(), marker)
	if i < 0 {
		return textView{}, false
	}
	return textView{doc: v.doc, start: v.start + i, end: v.end}, true
}

// after returns the view that begins just past the first marker.
func (v textView) after(marker string) (textView, bool) {
	m, ok := v.find(marker)
	if !ok {
		return textView{}, false
	}
	m.start += len(marker)
	return m, true
}

// until returns the text before the first closer in the view. A closer that
// never appears means the value is absent.
func (v textView) until(closer byte) (string, bool) {
	i := strings.IndexByte(v.text(), closer)
	if i < 0 {
		return "", false
	}
	return v.doc[v.start : v.start+i], true
}

// value extracts the text between marker and closer.
func (v textView) value(marker string, closer byte) (string, bool) {
	a, ok := v.after(marker)
	if !ok {
		return "", false
	}
	return a.until(closer)
}

// field is value with the always-fill policy.
func (v textView) field(marker string, closer byte) Field {
	s, ok := v.value(marker, closer)
	if !ok {
		return NotFound()
	}
	return Found(s)
}

// optional is value with the only-fill-if-present policy.
func (v textView) optional(marker string, closer byte) string {
	s, _ := v.value(marker, closer)
	return s
}
