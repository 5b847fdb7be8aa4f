package export

import (
	"fmt"
	"io"
	"strings"

	"todo-list/internal/domain"
	"todo-list/internal/render"
)

type MarkdownExporter struct{}

func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

// writes a GitHub-style checklist in list order
func (e *MarkdownExporter) ExportTasksToMarkdown(w io.Writer, tasks []domain.Task, filter domain.Filter) error {
	var b strings.Builder

	b.WriteString("# Tasks")
	if filter != domain.FilterAll {
		fmt.Fprintf(&b, " (%s)", filter.Label())
	}
	b.WriteString("\n\n")

	written := 0
	for _, task := range tasks {
		if !render.Visible(task, filter) {
			continue
		}
		mark := " "
		if task.Completed {
			mark = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", mark, escapeMarkdown(task.Text))
		written++
	}

	if written == 0 {
		b.WriteString("_No tasks._\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
