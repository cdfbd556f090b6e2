package ledger

import (
	"encoding/csv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client is the query adapter over the external accounting engine. It is safe
// to share across views: it holds no per-query state.
type Client struct {
	File   string
	Runner Runner
	Log    *zap.SugaredLogger
	// Options are extra engine arguments applied to every invocation, ahead
	// of any per-query options.
	Options []string
}

// NewClient builds a client for the given data file. A nil logger disables
// invocation logging.
func NewClient(file string, runner Runner, log *zap.SugaredLogger) *Client {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{File: file, Runner: runner, Log: log}
}

// Fetch runs one engine invocation and parses its output into a fresh RowSet.
// Every call executes the subprocess again; filter toggles are reflected
// immediately because nothing is cached.
func (c *Client) Fetch(spec QuerySpec) (RowSet, error) {
	if len(c.Options) > 0 {
		spec.Options = append(append([]string(nil), c.Options...), spec.Options...)
	}
	args := spec.Args(c.File)
	id := uuid.NewString()
	start := time.Now()
	out, err := c.Runner.Run(args)
	if err != nil {
		c.Log.Errorw("engine invocation failed", "id", id, "args", args, "err", err)
		return RowSet{}, err
	}
	rs := parseOutput(string(out), spec)
	c.Log.Debugw("engine invocation",
		"id", id,
		"args", args,
		"rows", rs.Len(),
		"duration", time.Since(start),
	)
	return rs, nil
}

// Commodities returns the candidate commodity list for the data file, used by
// views to drive the commodity filter cycle.
func (c *Client) Commodities() ([]string, error) {
	rs, err := c.Fetch(QuerySpec{Command: "commodities"})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, rs.Len())
	for _, row := range rs.Rows {
		if v := strings.TrimSpace(row.Text); v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// parseOutput splits stdout into non-empty lines and, when the spec carries a
// format mapping, decodes each line as one quote-aware comma-separated record.
func parseOutput(out string, spec QuerySpec) RowSet {
	rs := RowSet{Columns: spec.FieldNames()}
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if len(spec.Format) == 0 {
			rs.Rows = append(rs.Rows, Row{Text: line})
			continue
		}
		rs.Rows = append(rs.Rows, parseRecord(line, len(spec.Format)))
	}
	return rs
}

func parseRecord(line string, fields int) Row {
	r := csv.NewReader(strings.NewReader(line))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rec, err := r.Read()
	if err != nil || len(rec) != fields {
		return Row{Text: line, Malformed: true}
	}
	return Row{Text: line, Values: rec}
}
