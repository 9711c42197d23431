package frontend

// Preprocess strips `#` line comments that fall outside single- or
// double-quoted string literals, dropping any line that becomes empty.
// Line identities (filename, line number) are preserved for surviving
// lines; preprocessing never renumbers.
//
// Quote tracking is deliberately naive: a `'` toggles "inside single-quoted
// string" and a `"` toggles "inside double-quoted string", with no escape
// handling (the language subset has none). A quote of one kind inside a
// string of the other kind is plain text and toggles nothing. A `#` is only
// treated as starting a comment when neither flag is set.
func Preprocess(source *SourceFile) *SourceFile {
	var kept []SourceLine
	for _, line := range source.Lines {
		cut := stripComment(line.Text)
		if cut == "" {
			continue
		}
		out := line
		out.Text = cut
		kept = append(kept, out)
	}
	return source.clone(kept)
}

func stripComment(text string) string {
	inSingle, inDouble := false, false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		// A quote inside a string of the other kind (e.g. the ' in "it's")
		// leaves its own flag alone.
		case '\'':
			if !inDouble {
				inSingle = !inSingle
			}
		case '"':
			if !inSingle {
				inDouble = !inDouble
			}
		case '#':
			if !inSingle && !inDouble {
				return text[:i]
			}
		}
	}
	return text
}
