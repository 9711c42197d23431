package frontend

import "strings"

// SourceRef pins a position inside a source file to a (filename, line,
// column) triple. The filename is carried as a pointer into the owning
// SourceFile's Filename field rather than copied, the nearest Go analogue of
// a non-owning reference: callers must never outlive the SourceFile that
// produced the ref.
type SourceRef struct {
	Filename *string
	Line     int
	Column   int
}

// InSameLine returns a copy of the ref repointed at a different column on
// the same line, without touching the filename pointer.
func (r SourceRef) InSameLine(column int) SourceRef {
	r.Column = column
	return r
}

// InSameFile returns a copy of the ref repointed at a different line and
// column in the same file.
func (r SourceRef) InSameFile(line, column int) SourceRef {
	r.Line = line
	r.Column = column
	return r
}

// SourceLine is one line of a SourceFile, 1-based in both LineNumber and the
// column numbering used by its SourceRefs.
type SourceLine struct {
	filename   *string
	LineNumber int
	Text       string
}

// Ref returns a SourceRef pointing at the given 1-based column of this line.
func (l SourceLine) Ref(column int) SourceRef {
	return SourceRef{Filename: l.filename, Line: l.LineNumber, Column: column}
}

// SourceFile is an ordered sequence of lines read from (or constructed to
// look as if read from) a single named file.
type SourceFile struct {
	Filename string
	Lines    []SourceLine
}

// NewSourceFile builds a SourceFile from a filename and a list of raw line
// texts, numbering lines starting at 1.
func NewSourceFile(filename string, lines []string) *SourceFile {
	sf := &SourceFile{Filename: filename}
	for i, text := range lines {
		sf.Lines = append(sf.Lines, SourceLine{
			filename:   &sf.Filename,
			LineNumber: i + 1,
			Text:       text,
		})
	}
	return sf
}

// SourceFileFromString splits text on newlines and builds a SourceFile from
// the result, discarding a single trailing newline if present.
func SourceFileFromString(filename, text string) *SourceFile {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return NewSourceFile(filename, nil)
	}
	return NewSourceFile(filename, strings.Split(text, "\n"))
}

// clone produces a new SourceFile sharing the same filename but holding the
// given lines, re-pointing each line's filename pointer at the clone's own
// Filename field so the non-owning-reference discipline holds even after
// preprocessing.
func (sf *SourceFile) clone(lines []SourceLine) *SourceFile {
	out := &SourceFile{Filename: sf.Filename, Lines: make([]SourceLine, len(lines))}
	for i, l := range lines {
		l.filename = &out.Filename
		out.Lines[i] = l
	}
	return out
}
