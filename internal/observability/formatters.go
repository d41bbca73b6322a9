// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/prompt-enhancer/internal/catalog"
	"github.com/jonathan/prompt-enhancer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxLinesToShow caps how many lines of a long prompt go into a box
	maxLinesToShow = 12
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintRequest outputs the selections of an enhancement request.
func (p *Printer) PrintRequest(req *types.EnhancementRequest) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Idea:      %s\n", firstLine(req.Idea)))
	sb.WriteString(fmt.Sprintf("Task:      %s\n", req.TaskType.Label()))
	sb.WriteString(fmt.Sprintf("Secondary: %s\n", req.SecondaryTask.Label()))
	sb.WriteString(fmt.Sprintf("Detail:    %s\n", req.DetailLevel.Label()))

	tone := req.Tone.Label()
	if custom := strings.TrimSpace(req.CustomTone); custom != "" {
		tone = custom + " (custom)"
	}
	sb.WriteString(fmt.Sprintf("Tone:      %s\n", tone))

	if req.GoalTemplate != "" {
		sb.WriteString(fmt.Sprintf("Template:  %s\n", req.GoalTemplate))
	}
	if s := strings.TrimSpace(req.SpecificAspects); s != "" {
		sb.WriteString(fmt.Sprintf("Aspects:   %s\n", s))
	}
	if s := strings.TrimSpace(req.WordsToInclude); s != "" {
		sb.WriteString(fmt.Sprintf("Include:   %s\n", s))
	}
	if s := strings.TrimSpace(req.WordsToAvoid); s != "" {
		sb.WriteString(fmt.Sprintf("Avoid:     %s\n", s))
	}

	p.printBox("ENHANCEMENT REQUEST", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPrompt outputs the assembled system instruction and user query.
func (p *Printer) PrintPrompt(systemInstruction, userQuery string) {
	p.printBox("SYSTEM INSTRUCTION", clip(systemInstruction))
	p.printBox("USER QUERY", clip(userQuery))
}

// PrintEnhancedPrompt outputs the generated prompt.
func (p *Printer) PrintEnhancedPrompt(prompt string) {
	if strings.TrimSpace(prompt) == "" {
		return
	}
	p.printBox("ENHANCED PROMPT", clip(prompt))
}

// PrintSuggestion outputs a classifier result. A nil task means no usable answer.
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) PrintSuggestion(task *catalog.OptionalTask) {
	if task == nil {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO USABLE SUGGESTION")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	content := fmt.Sprintf("Key:   %s\nLabel: %s", task.String(), task.Label())
	p.printBox("SUGGESTED TASK TYPE", content)
}

// PrintCatalog outputs every option set with its keys.
func (p *Printer) PrintCatalog() {
	var sb strings.Builder

	sb.WriteString("Task types:\n")
	for _, opt := range catalog.TaskTypes() {
		sb.WriteString(fmt.Sprintf("  • %-22s %s\n", opt.Value, opt.Label))
	}
	sb.WriteString("\nDetail levels:\n")
	for _, opt := range catalog.DetailLevels() {
		sb.WriteString(fmt.Sprintf("  • %-22s %s\n", opt.Value, opt.Label))
	}
	sb.WriteString("\nTones:\n")
	for _, opt := range catalog.Tones() {
		sb.WriteString(fmt.Sprintf("  • %-22s %s\n", opt.Value, opt.Label))
	}
	sb.WriteString("\nGoal templates:\n")
	for _, tpl := range catalog.GoalTemplates() {
		sb.WriteString(fmt.Sprintf("  • %-22s %s\n", tpl.Value, tpl.Label))
	}

	p.printBox("OPTION CATALOG", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatus outputs whether AI features are available.
func (p *Printer) PrintStatus(configured bool, model string) {
	var sb strings.Builder
	if configured {
		sb.WriteString("API key:  ✓ configured\n")
	} else {
		sb.WriteString("API key:  ✗ missing (set API_KEY or GEMINI_API_KEY)\n")
	}
	sb.WriteString(fmt.Sprintf("Model:    %s", model))

	p.printBox("AI STATUS", sb.String())
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " ..."
	}
	return s
}

// clip keeps the first maxLinesToShow lines of s.
func clip(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) <= maxLinesToShow {
		return strings.Join(lines, "\n")
	}
	extra := len(lines) - maxLinesToShow
	return strings.Join(lines[:maxLinesToShow], "\n") + fmt.Sprintf("\n... and %d more lines", extra)
}
