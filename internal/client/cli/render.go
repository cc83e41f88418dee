package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmitrijs2005/plaintheory/internal/client/models"
	"github.com/dmitrijs2005/plaintheory/internal/site"
)

var (
	mastheadStyle = lipgloss.NewStyle().Bold(true).Border(lipgloss.DoubleBorder(), false, false, true, false).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// FormatSize renders bytes as B, KB or MB; the latter two with one decimal.
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	}
}

func renderLanding(c *site.Catalogue) string {
	var b strings.Builder
	b.WriteString(mastheadStyle.Render(c.Masthead.Title))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(c.Masthead.Tagline))
	b.WriteString("\n\n")
	for _, a := range c.Articles {
		fmt.Fprintf(&b, "%s %s\n", titleStyle.Render(a.Title), dimStyle.Render("("+a.Slug+")"))
		if a.Subtitle != "" {
			fmt.Fprintf(&b, "  %s\n", a.Subtitle)
		}
		fmt.Fprintf(&b, "  %s\n", dimStyle.Render(fmt.Sprintf("%s · %d min read", a.Byline, a.ReadMinutes)))
	}
	if c.Masthead.Footer != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(c.Masthead.Footer))
	}
	return b.String()
}

func renderArticle(a *site.Article) string {
	var b strings.Builder
	if a.Kicker != "" {
		b.WriteString(dimStyle.Render(strings.ToUpper(a.Kicker)))
		b.WriteString("\n")
	}
	b.WriteString(titleStyle.Render(a.Title))
	b.WriteString("\n")
	if a.Subtitle != "" {
		b.WriteString(a.Subtitle + "\n")
	}
	b.WriteString(dimStyle.Render(a.Byline) + "\n")
	for _, s := range a.Sections {
		if s.Heading != "" {
			b.WriteString("\n" + titleStyle.Render(s.Heading) + "\n")
		}
		for _, p := range s.Paragraphs {
			b.WriteString("\n" + p + "\n")
		}
	}
	return b.String()
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}

// renderNoteList numbers notes from 1; the selected one is highlighted.
func renderNoteList(notes []models.Note, total int, selectedID, query string) string {
	var b strings.Builder
	if len(notes) == 0 {
		if query != "" {
			return dimStyle.Render("No notes found")
		}
		return dimStyle.Render("No notes yet")
	}
	for i, n := range notes {
		line := fmt.Sprintf("%2d. %s", i+1, n.Title)
		if n.ID == selectedID {
			line = selectedStyle.Render(line)
		}
		content := n.Content
		if content == "" {
			content = "No content"
		}
		fmt.Fprintf(&b, "%s %s\n    %s\n", line, dimStyle.Render(n.UpdatedAt.Local().Format("2006-01-02")), dimStyle.Render(preview(content, 60)))
	}
	word := "notes"
	if total == 1 {
		word = "note"
	}
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d %s total", total, word)))
	return b.String()
}

func renderNote(n models.Note, editing bool, draftTitle, draftContent string) string {
	title, content := n.Title, n.Content
	header := ""
	if editing {
		title, content = draftTitle, draftContent
		header = dimStyle.Render("editing (save | cancel)") + "\n"
	}
	if content == "" {
		content = dimStyle.Render("No content")
	}
	meta := dimStyle.Render(fmt.Sprintf("created %s · updated %s",
		n.CreatedAt.Local().Format("2006-01-02 15:04"), n.UpdatedAt.Local().Format("2006-01-02 15:04")))
	return boxStyle.Render(header + titleStyle.Render(title) + "\n" + meta + "\n\n" + content)
}

func renderDocuments(docs []models.Document) string {
	if len(docs) == 0 {
		return dimStyle.Render("No documents attached")
	}
	var b strings.Builder
	for i, d := range docs {
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, d.FileName, dimStyle.Render(FormatSize(d.FileSize)+" · "+d.FileType))
	}
	return strings.TrimRight(b.String(), "\n")
}
