// pkg/output/render.go

// Package output renders passforge results as styled text, JSON or YAML.
package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/CodeMonkeyCybersecurity/passforge/pkg/crypto"
	"github.com/charmbracelet/lipgloss"
	cerr "github.com/cockroachdb/errors"
)

// Format selects the renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

const (
	candidatesHeading = "Suggested passwords:"
	rationaleHeading  = "Why these passwords are stronger:"
	managerNote       = "Note: Remember to store your chosen password securely using a password manager."
)

// Report is everything a command prints. Candidates is empty when Hashes is set,
// since each HashedCandidate already carries its password.
type Report struct {
	Candidates []string                 `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Hashes     []crypto.HashedCandidate `json:"hashes,omitempty" yaml:"hashes,omitempty"`
	Rationale  []string                 `json:"rationale" yaml:"rationale"`
	StoredAt   string                   `json:"stored_at,omitempty" yaml:"stored_at,omitempty"`
}

type styles struct {
	heading   lipgloss.Style
	candidate lipgloss.Style
	index     lipgloss.Style
	check     lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading:   r.NewStyle().Bold(true),
		candidate: r.NewStyle().Foreground(lipgloss.Color("#2196F3")),
		index:     r.NewStyle().Faint(true),
		check:     r.NewStyle().Foreground(lipgloss.Color("#8BC34A")),
		muted:     r.NewStyle().Faint(true),
	}
}

// Render writes report to w in the requested format.
func Render(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatJSON:
		return JSONTo(w, report)
	case FormatYAML:
		return YAMLTo(w, report)
	case FormatText, "":
		return renderText(w, report)
	default:
		return cerr.WithHint(
			cerr.Newf("unknown output format %q", format),
			"Use one of: text, json, yaml")
	}
}

func renderText(w io.Writer, report Report) error {
	st := newStyles(w)

	if len(report.Hashes) > 0 {
		fmt.Fprintln(w, st.heading.Render(candidatesHeading))
		table := NewTableTo(w).WithHeaders("#", "PASSWORD", "ALGORITHM", "DIGEST")
		for i, h := range report.Hashes {
			digest := h.Digest
			if digest == "" {
				digest = "-"
			}
			table.AddRow(strconv.Itoa(i+1), h.Password, string(h.Algorithm), digest)
		}
		if err := table.Render(); err != nil {
			return cerr.Wrap(err, "render hash table")
		}
		fmt.Fprintln(w)
	} else if len(report.Candidates) > 0 {
		fmt.Fprintln(w, st.heading.Render(candidatesHeading))
		for i, c := range report.Candidates {
			fmt.Fprintf(w, "  %s %s\n", st.index.Render(strconv.Itoa(i+1)+"."), st.candidate.Render(c))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, st.heading.Render(rationaleHeading))
	for _, reason := range report.Rationale {
		fmt.Fprintf(w, "  %s %s\n", st.check.Render("✓"), reason)
	}

	if report.StoredAt != "" {
		fmt.Fprintf(w, "\nFirst candidate stored in Vault at %s\n", report.StoredAt)
	}

	if len(report.Candidates) > 0 || len(report.Hashes) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, st.muted.Render(managerNote))
	}
	return nil
}
