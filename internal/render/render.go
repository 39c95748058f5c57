package render

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"quatex/internal/domain"
	"quatex/internal/quaternion"
)

var (
	agreeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true) // Bright green
	disagreeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)  // Bright red
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))            // Bright cyan
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true) // Bright yellow
	dimStyle      = lipgloss.NewStyle().Faint(true)
)

// Verdict is the styled outcome of a derivation.
func Verdict(agree bool) string {
	if agree {
		return agreeStyle.Render("AGREE: both parties derived the same value")
	}
	return disagreeStyle.Render("DISAGREE: AB ≠ BA, so the shared values differ")
}

// Header styles a section title.
func Header(s string) string { return headerStyle.Render(s) }

// Value renders one labelled quaternion with its arrow.
func Value(label string, q quaternion.Quaternion) string {
	arrow := dimStyle.Render("no direction")
	if v, ok := Arrow(q); ok {
		arrow = dimStyle.Render("→ " + v.String())
	}
	return fmt.Sprintf("  %s %s  %s", labelStyle.Render(fmt.Sprintf("%-9s", label)), q, arrow)
}

// valueOrder lists event keys in protocol order; unknown keys follow sorted.
var valueOrder = []string{"base", "secret_a", "secret_b", "public_a", "public_b", "shared_a", "shared_b"}

// Event renders ev as a block of lines.
func Event(ev domain.Event) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%s (%s)", ev.Kind, ev.Phase)))
	b.WriteByte('\n')

	seen := make(map[string]bool, len(ev.Values))
	for _, k := range valueOrder {
		if q, ok := ev.Values[k]; ok {
			b.WriteString(Value(k, q))
			b.WriteByte('\n')
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(ev.Values))
	for k := range ev.Values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		b.WriteString(Value(k, ev.Values[k]))
		b.WriteByte('\n')
	}

	if ev.Agree != nil {
		b.WriteString("  " + Verdict(*ev.Agree) + "\n")
	}
	if ev.KeyFingerprint != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", labelStyle.Render("session key"), ev.KeyFingerprint))
	}
	if ev.Error != "" {
		b.WriteString("  " + disagreeStyle.Render("rejected: "+ev.Error) + "\n")
	}
	return b.String()
}

// Summaries renders a session listing.
func Summaries(list []domain.Summary) string {
	if len(list) == 0 {
		return dimStyle.Render("no sessions") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%-20s %-9s %-24s %s", "NAME", "MODULUS", "PHASE", "SEALED")))
	b.WriteByte('\n')
	for _, s := range list {
		fmt.Fprintf(&b, "%-20s %-9d %-24s %t\n", s.Name, s.Modulus, s.Phase, s.Sealed)
	}
	return b.String()
}
