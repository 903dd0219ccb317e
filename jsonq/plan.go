package jsonq

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"lazyq/config"
	"lazyq/order"
	"lazyq/query"
)

// Plan is a compiled query configuration. It can be run any number of times.
type Plan struct {
	cfg    config.QueryConfig
	where  []func(gjson.Result) bool
	keys   []order.Key[gjson.Result]
	logger zerolog.Logger
}

// PlanOption configures a Plan.
type PlanOption func(*Plan)

// WithLogger sets the logger receiving per-run debug events.
func WithLogger(l zerolog.Logger) PlanOption {
	return func(p *Plan) { p.logger = l }
}

// NewPlan compiles cfg. The configuration is expected to be validated.
func NewPlan(cfg config.QueryConfig, opts ...PlanOption) (*Plan, error) {
	if len(cfg.GroupBy) > 2 {
		return nil, fmt.Errorf("jsonq: group_by takes at most 2 fields, got %d", len(cfg.GroupBy))
	}

	p := &Plan{cfg: cfg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}

	for _, c := range cfg.Where {
		pred, err := Predicate(c)
		if err != nil {
			return nil, err
		}
		p.where = append(p.where, pred)
	}
	for _, field := range cfg.Select {
		if _, err := sjson.Set("{}", field, nil); err != nil {
			return nil, fmt.Errorf("jsonq: invalid select field %q: %w", field, err)
		}
	}
	for _, k := range cfg.OrderBy {
		field := k.Field
		get := func(r gjson.Result) gjson.Result { return r.Get(field) }
		if k.Descending() {
			p.keys = append(p.keys, order.DescFunc(get, CompareResults))
		} else {
			p.keys = append(p.keys, order.AscFunc(get, CompareResults))
		}
	}
	return p, nil
}

// Records builds the ungrouped pipeline over records: where, select,
// order_by, skip and take.
func (p *Plan) Records(records []gjson.Result) query.Query[gjson.Result] {
	q := query.From(records)
	for _, pred := range p.where {
		q = q.Where(pred)
	}

	if len(p.cfg.Select) > 0 {
		fields := p.cfg.Select
		q = query.Select(q, func(r gjson.Result) gjson.Result {
			// paths were checked by NewPlan
			out, _ := Project(r, fields)
			return out
		})
	}
	if len(p.keys) > 0 {
		q = q.OrderBy(p.keys...).Query
	}

	if p.cfg.Skip > 0 {
		q = q.Skip(p.cfg.Skip)
	}
	if p.cfg.Take != config.Unbounded {
		q = q.Take(p.cfg.Take)
	}
	return q
}

// Run parses data as a JSON array and renders the query result over it.
func (p *Plan) Run(data []byte) ([]byte, error) {
	records, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return p.Render(records), nil
}

// Render executes the plan over records: a JSON array, or a JSON object
// keyed by group in first-seen order when group_by is set.
func (p *Plan) Render(records []gjson.Result) []byte {
	start := time.Now()
	q := p.Records(records)

	var sb strings.Builder
	var groups int
	switch len(p.cfg.GroupBy) {
	case 0:
		out := q.ToSlice()
		writeArray(&sb, out)
		groups = len(out)
	case 1:
		g := query.GroupBy(q, fieldKey(p.cfg.GroupBy[0]), query.InsertionKeys[string]())
		writeGroups(&sb, g)
		groups = g.Len()
	case 2:
		g := query.GroupBy2(q,
			query.By(fieldKey(p.cfg.GroupBy[0]), query.InsertionKeys[string]()),
			query.By(fieldKey(p.cfg.GroupBy[1]), query.InsertionKeys[string]()))
		sb.WriteByte('{')
		for i, grp := range g.All() {
			writeKey(&sb, i, grp.Key)
			writeGroups(&sb, grp.Items)
		}
		sb.WriteByte('}')
		groups = g.Len()
	}

	p.logger.Debug().
		Int("records", len(records)).
		Int("results", groups).
		Strs("group_by", p.cfg.GroupBy).
		Dur("elapsed", time.Since(start)).
		Msg("query finished")
	return []byte(sb.String())
}

func writeGroups(sb *strings.Builder, g *query.Grouping[string, query.Query[gjson.Result]]) {
	sb.WriteByte('{')
	for i, grp := range g.All() {
		writeKey(sb, i, grp.Key)
		writeArray(sb, grp.Items.ToSlice())
	}
	sb.WriteByte('}')
}

// fieldKey groups by the string form of a field; records missing it share the "" group.
func fieldKey(field string) func(gjson.Result) string {
	return func(r gjson.Result) string { return r.Get(field).String() }
}
