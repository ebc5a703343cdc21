package pages

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// lineDiff renders a line diff of two schemas. Bodies are indented first so a
// change to one property shows as one line. Unchanged lines are omitted.
func lineDiff(oldBody, newBody json.RawMessage) string {
	oldText := indent(oldBody)
	newText := indent(newBody)
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}

func indent(body json.RawMessage) string {
	if len(body) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body) + "\n"
	}
	buf.WriteByte('\n')
	return buf.String()
}
