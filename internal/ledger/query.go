package ledger

import (
	"strings"
)

// FormatField is one named column of a structured query, in output order.
// Expr is a ledger value expression evaluated per posting.
type FormatField struct {
	Name string
	Expr string
}

// QuerySpec holds the parameters for one engine invocation. Immutable per
// fetch; views rebuild it whenever a filter toggles.
type QuerySpec struct {
	Command   string
	Query     string
	Format    []FormatField
	Commodity string
	RealOnly  bool
	Options   []string
}

// Args builds the engine argument list for the spec against the given data
// file. The binary itself is not included.
func (s QuerySpec) Args(file string) []string {
	args := []string{"-f", file, s.Command}
	args = append(args, s.Options...)
	if len(s.Format) > 0 {
		args = append(args, "--format", s.formatString())
	}
	if s.Commodity != "" {
		args = append(args, "-X", s.Commodity)
	}
	if s.RealOnly {
		args = append(args, "--real")
	}
	// The query goes last, as a single argument: account names may contain
	// spaces and the engine does its own query tokenization.
	if q := strings.TrimSpace(s.Query); q != "" {
		args = append(args, q)
	}
	return args
}

// formatString renders the --format template: every field expression wrapped
// in quoted() so the engine's own CSV quoting keeps commas inside values from
// breaking the record apart.
func (s QuerySpec) formatString() string {
	parts := make([]string, 0, len(s.Format))
	for _, f := range s.Format {
		parts = append(parts, "%(quoted("+f.Expr+"))")
	}
	return strings.Join(parts, ",") + "\n"
}

// FieldNames returns the column names of the format mapping in order.
func (s QuerySpec) FieldNames() []string {
	names := make([]string, 0, len(s.Format))
	for _, f := range s.Format {
		names = append(names, f.Name)
	}
	return names
}
