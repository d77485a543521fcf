package output

import (
	"fmt"
	"io"
	"time"
)

// HoursPerDocument is the planning time one finished spec is credited with.
const HoursPerDocument = 2

// Printer handles plain line output for the CLI.
type Printer struct {
	w io.Writer
}

// New creates a new Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// DocumentCount prints the number of stored documents.
// Format: "Found N specs"
func (p *Printer) DocumentCount(count int) {
	if count == 1 {
		fmt.Fprintf(p.w, "Found 1 spec\n")
	} else {
		fmt.Fprintf(p.w, "Found %d specs\n", count)
	}
}

// DocumentLine prints one row of the document list.
// Format: "<id>  <kind>  <percent>%  <date>  <name>"
func (p *Printer) DocumentLine(id, kind string, percent int, created time.Time, name string) {
	fmt.Fprintf(p.w, "%-22s  %-6s  %3d%%  %s  %s\n", id, kind, percent, created.Format("2006-01-02"), name)
}

// Summary prints the totals under the document list.
// Format: "N specs, ~Hh of planning saved"
func (p *Printer) Summary(count int) {
	noun := "specs"
	if count == 1 {
		noun = "spec"
	}
	fmt.Fprintf(p.w, "%d %s, ~%dh of planning saved\n", count, noun, count*HoursPerDocument)
}

// Exported prints where a document was written.
// Format: "✓ Exported <path>"
func (p *Printer) Exported(path string) {
	fmt.Fprintf(p.w, "✓ Exported %s\n", path)
}

// Copied prints a clipboard confirmation.
// Format: "✓ Copied to clipboard"
func (p *Printer) Copied() {
	fmt.Fprintf(p.w, "✓ Copied to clipboard\n")
}

// Deleted prints a deletion confirmation.
// Format: "✓ Deleted <id>"
func (p *Printer) Deleted(id string) {
	fmt.Fprintf(p.w, "✓ Deleted %s\n", id)
}

// Failure prints a failure message with x.
// Format: "✗ <reason>"
func (p *Printer) Failure(reason string) {
	fmt.Fprintf(p.w, "✗ %s\n", reason)
}
