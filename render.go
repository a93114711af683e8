package img2ascii

import "strings"

// RenderText joins a matched character grid into displayable text.
// Characters within a row concatenate with no separator and rows join
// with a newline, top to bottom. No trailing newline is added; any
// escaping or encoding is the output sink's concern.
func RenderText(rows [][]rune) string {
	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}
