package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	llmcatalog "github.com/kingfs/go-llm-catalog"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
)

const columnGap = 2

func renderModels(models []llmcatalog.Model) string {
	headers := []string{"NAME", "ID", "PROMPT/M", "COMPLETION/M", "CONTEXT", "CREATED"}
	rows := make([][]string, len(models))
	for i, m := range models {
		rows[i] = []string{
			m.Name,
			m.ID,
			llmcatalog.FormatPricePerMillion(m.Pricing.Prompt),
			llmcatalog.FormatPricePerMillion(m.Pricing.Completion),
			llmcatalog.FormatCount(m.TopProvider.ContextLength),
			m.Created.Format("2006-01-02"),
		}
	}
	return renderTable(headers, rows)
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		for i, cell := range cells {
			w := widths[i]
			if i < len(cells)-1 {
				w += columnGap
			}
			b.WriteString(style.Width(w).Render(cell))
		}
		b.WriteString("\n")
	}

	writeRow(headers, headerStyle)
	for _, row := range rows {
		writeRow(row, lipgloss.NewStyle())
	}
	return b.String()
}

func renderDetails(m llmcatalog.Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Name) + "\n")

	field := func(label, value string) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Width(22).Render(label), value)
	}

	field("ID", m.ID)
	field("Canonical slug", m.CanonicalSlug)
	if p := m.ProviderName(); p != "" {
		field("Provider", p)
	}
	field("Created", llmcatalog.FormatTimestamp(m.Created))

	b.WriteString("\n" + headerStyle.Render("Pricing") + "\n")
	p := m.Pricing
	field("Prompt (per 1M)", llmcatalog.FormatPricePerMillion(p.Prompt))
	field("Completion (per 1M)", llmcatalog.FormatPricePerMillion(p.Completion))
	field("Image", llmcatalog.FormatPricePerInvocation(p.Image))
	field("Request", llmcatalog.FormatPricePerInvocation(p.Request))
	field("Web search", llmcatalog.FormatPricePerInvocation(p.WebSearch))
	field("Reasoning (per 1M)", llmcatalog.FormatPricePerMillion(p.InternalReasoning))
	field("Cache read (per 1M)", llmcatalog.FormatPricePerMillion(p.InputCacheRead))
	field("Cache write (per 1M)", llmcatalog.FormatPricePerMillion(p.InputCacheWrite))

	b.WriteString("\n" + headerStyle.Render("Provider configuration") + "\n")
	field("Context length", llmcatalog.FormatCount(m.TopProvider.ContextLength)+" tokens")
	field("Max completion", llmcatalog.FormatMaxTokens(m.TopProvider.MaxCompletionTokens))
	field("Moderated", fmt.Sprint(m.TopProvider.IsModerated))

	b.WriteString("\n" + headerStyle.Render("Architecture") + "\n")
	field("Input", joinModalities(m.Architecture.InputModalities))
	field("Output", joinModalities(m.Architecture.OutputModalities))

	if len(m.SupportedParameters) > 0 {
		b.WriteString("\n" + headerStyle.Render("Supported parameters") + "\n")
		b.WriteString(strings.Join(m.SupportedParameters, ", ") + "\n")
	}
	return b.String()
}

func joinModalities(ms []llmcatalog.Modality) string {
	if len(ms) == 0 {
		return "-"
	}
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}
