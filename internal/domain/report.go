package domain

import "strings"

// ReportSection is one named block of composed narrative text.
type ReportSection struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Report is the finished reading: a title, an introductory header, and an
// ordered sequence of sections. Rendering is deterministic; identical
// reports render to byte-identical text.
type Report struct {
	Title    string          `json:"title"`
	Header   string          `json:"header"`
	Sections []ReportSection `json:"sections"`
}

// Render produces the full report text. Sections appear in order, each
// under its own heading, separated by blank lines.
func (r Report) Render() string {
	var b strings.Builder

	b.WriteString(r.Title)
	b.WriteString("\n\n")
	b.WriteString(r.Header)
	b.WriteString("\n")

	for _, s := range r.Sections {
		b.WriteString("\n")
		b.WriteString(s.Name)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n")
	}

	return b.String()
}

// Section returns the section with the given name and whether it exists.
func (r Report) Section(name string) (ReportSection, bool) {
	for _, s := range r.Sections {
		if s.Name == name {
			return s, true
		}
	}
	return ReportSection{}, false
}
