package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
)

// Report writes a human readable summary of a design: each fragment's
// coordinates, its first and last preview bp, and the overlap with its
// neighbor, then a re-check of every junction.
func Report(w io.Writer, r *Result, preview int, color bool) error {
	title, ok, bad := plain, plain, plain
	if color {
		renderer := lipgloss.NewRenderer(w)
		title = renderer.NewStyle().Bold(true).Render
		ok = renderer.NewStyle().Foreground(lipgloss.Color("2")).Render
		bad = renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render
	}

	fmt.Fprintf(w, "%s\n", title(fmt.Sprintf("%s: %d bp, %d fragments", r.Target, r.Length, len(r.Fragments))))

	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)
	fmt.Fprintf(tw, "fragment\tstart\tend\tlength\t\n")
	for _, f := range r.Fragments {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t\n", f.Name, f.Start, f.End, f.Len())
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	for i, f := range r.Fragments {
		fmt.Fprintf(w, "%s:\n", title(f.Name))
		fmt.Fprintf(w, "  Coordinates: %d–%d\n", f.Start, f.End)
		fmt.Fprintf(w, "  Length: %d bp\n", f.Len())
		fmt.Fprintf(w, "  First %dbp: %s...\n", preview, head(f.Seq, preview))
		fmt.Fprintf(w, "  Last %dbp: ...%s\n", preview, tail(f.Seq, preview))
		if i < len(r.Junctions) {
			fmt.Fprintf(w, "  Overlap with %s: %s\n", r.Junctions[i].Right, r.Junctions[i].Seq)
		}
		fmt.Fprintln(w)
	}

	if len(r.Junctions) > 0 {
		fmt.Fprintln(w, title("Overlap verification:"))
	}
	for _, j := range r.Junctions {
		if j.Match {
			fmt.Fprintf(w, "  %s %s ↔ %s: overlap matches\n", ok("✓"), j.Left, j.Right)
		} else {
			fmt.Fprintf(w, "  %s %s ↔ %s: overlap mismatch\n", bad("✗"), j.Left, j.Right)
		}
	}

	return nil
}

func plain(s ...string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

func head(seq string, n int) string {
	if n > len(seq) || n < 0 {
		return seq
	}
	return seq[:n]
}

func tail(seq string, n int) string {
	if n > len(seq) || n < 0 {
		return seq
	}
	return seq[len(seq)-n:]
}
