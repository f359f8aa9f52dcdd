package command

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/sandevgo/taxsh/internal/core"
	"github.com/sandevgo/taxsh/internal/service/ui"
)

type ResponseFormatter struct{}

func NewResponseFormatter() *ResponseFormatter {
	return &ResponseFormatter{}
}

func (f *ResponseFormatter) Title(title string) string {
	return ui.TitleStyle.Render(title)
}

func (f *ResponseFormatter) Success(message string) string {
	return message
}

func (f *ResponseFormatter) Error(err error) string {
	return fmt.Sprintf("%s %s", ui.ErrorStyle.Render("Error:"), err.Error())
}

// CommandTable renders specs as aligned "usage  description" rows, indented by two spaces.
func (f *ResponseFormatter) CommandTable(specs []core.CommandSpec) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("    ")
	table.SetNoWhiteSpace(true)

	for _, spec := range specs {
		table.Append([]string{
			ui.UsageStyle.Render(spec.Usage()),
			ui.DescStyle.Render(spec.Description),
		})
	}
	table.Render()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = "  " + strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Section renders a title line followed by its body.
func (f *ResponseFormatter) Section(title, body string) string {
	return f.Title(title) + "\n" + body
}

func (f *ResponseFormatter) Combine(sections ...string) string {
	return strings.Join(sections, "\n\n")
}
