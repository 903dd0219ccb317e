package query

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Layout selects the association backing one level of a grouping. It only
// affects the order in which groups are traversed.
type Layout int

const (
	// LayoutHashed uses a Go map; group order is unspecified.
	LayoutHashed Layout = iota
	// LayoutInsertion keeps groups in the order their keys were first seen.
	LayoutInsertion
	// LayoutSorted keeps groups ordered by key.
	LayoutSorted
)

func (l Layout) String() string {
	switch l {
	case LayoutInsertion:
		return "insertion"
	case LayoutSorted:
		return "sorted"
	default:
		return "hashed"
	}
}

type groupConfig[K comparable] struct {
	layout  Layout
	compare func(a, b K) int
}

// GroupOption configures one grouping level.
type GroupOption[K comparable] func(*groupConfig[K])

// HashedKeys backs the level with a hash map. This is the default.
func HashedKeys[K comparable]() GroupOption[K] {
	return func(c *groupConfig[K]) {
		c.layout, c.compare = LayoutHashed, nil
	}
}

// InsertionKeys orders the level's groups by first appearance of their key.
func InsertionKeys[K comparable]() GroupOption[K] {
	return func(c *groupConfig[K]) {
		c.layout, c.compare = LayoutInsertion, nil
	}
}

// SortedKeys orders the level's groups by key, smallest first.
func SortedKeys[K cmp.Ordered]() GroupOption[K] {
	return SortedKeysFunc(cmp.Compare[K])
}

// SortedKeysFunc orders the level's groups by key using compare.
func SortedKeysFunc[K comparable](compare func(a, b K) int) GroupOption[K] {
	if compare == nil {
		panic("query: SortedKeysFunc called with nil compare")
	}
	return func(c *groupConfig[K]) {
		c.layout, c.compare = LayoutSorted, compare
	}
}

// GroupKey is one level of a multi-level grouping: a key extractor and the
// layout of its association.
type GroupKey[T any, K comparable] struct {
	key func(T) K
	cfg groupConfig[K]
}

// By describes a grouping level for GroupBy2 and GroupBy3.
func By[T any, K comparable](key func(T) K, opts ...GroupOption[K]) GroupKey[T, K] {
	gk := GroupKey[T, K]{key: key}
	for _, opt := range opts {
		opt(&gk.cfg)
	}
	return gk
}

// Group is one key and its bucket.
type Group[K comparable, V any] struct {
	Key   K
	Items V
}

// Grouping is the result of GroupBy: a query over its groups plus keyed lookup.
// Copies of a Grouping share the same materialized buckets.
type Grouping[K comparable, V any] struct {
	Query[Group[K, V]]
	groups []Group[K, V]
	index  index[K, V]
	layout Layout
}

// Get returns the bucket for key. An absent key yields ErrKeyNotFound; the
// grouping is never modified by a lookup.
func (g *Grouping[K, V]) Get(key K) (V, error) {
	v, ok := g.index.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	return v, nil
}

// Has reports whether key has a bucket.
func (g *Grouping[K, V]) Has(key K) bool {
	_, ok := g.index.get(key)
	return ok
}

// Keys returns the group keys in traversal order.
func (g *Grouping[K, V]) Keys() []K {
	keys := make([]K, len(g.groups))
	for i, grp := range g.groups {
		keys[i] = grp.Key
	}
	return keys
}

// Len returns the number of groups.
func (g *Grouping[K, V]) Len() int {
	return len(g.groups)
}

// Layout returns the association layout of the top level.
func (g *Grouping[K, V]) Layout() Layout {
	return g.layout
}

// GroupBy traverses q once and buckets its elements by key. Each bucket keeps
// its elements in traversal order.
func GroupBy[T any, K comparable](q Query[T], key func(T) K, opts ...GroupOption[K]) *Grouping[K, Query[T]] {
	by := By(key, opts...)
	start := time.Now()

	buckets := newIndex[K, *[]T](by.cfg)
	n := 0
	for v := range q.Values() {
		appendItem(buckets, by.key(v), v)
		n++
	}

	g := freeze(buckets, by.cfg, bucketQuery[T])
	logger.Debug().
		Int("elements", n).
		Int("groups", g.Len()).
		Stringer("layout", by.cfg.layout).
		Dur("elapsed", time.Since(start)).
		Msg("group_by finished")
	return g
}

// GroupBy2 groups by k1, then within every bucket by k2, in a single pass.
func GroupBy2[T any, K1, K2 comparable](q Query[T], k1 GroupKey[T, K1], k2 GroupKey[T, K2]) *Grouping[K1, *Grouping[K2, Query[T]]] {
	start := time.Now()

	outer := newIndex[K1, index[K2, *[]T]](k1.cfg)
	n := 0
	for v := range q.Values() {
		inner := fetch(outer, k1.key(v), func() index[K2, *[]T] {
			return newIndex[K2, *[]T](k2.cfg)
		})
		appendItem(inner, k2.key(v), v)
		n++
	}

	g := freeze(outer, k1.cfg, func(inner index[K2, *[]T]) *Grouping[K2, Query[T]] {
		return freeze(inner, k2.cfg, bucketQuery[T])
	})
	logMaterialized("group_by2", n, start)
	return g
}

// GroupBy3 groups by k1, k2 and k3, in a single pass.
func GroupBy3[T any, K1, K2, K3 comparable](
	q Query[T],
	k1 GroupKey[T, K1],
	k2 GroupKey[T, K2],
	k3 GroupKey[T, K3],
) *Grouping[K1, *Grouping[K2, *Grouping[K3, Query[T]]]] {
	start := time.Now()

	outer := newIndex[K1, index[K2, index[K3, *[]T]]](k1.cfg)
	n := 0
	for v := range q.Values() {
		mid := fetch(outer, k1.key(v), func() index[K2, index[K3, *[]T]] {
			return newIndex[K2, index[K3, *[]T]](k2.cfg)
		})
		inner := fetch(mid, k2.key(v), func() index[K3, *[]T] {
			return newIndex[K3, *[]T](k3.cfg)
		})
		appendItem(inner, k3.key(v), v)
		n++
	}

	g := freeze(outer, k1.cfg, func(mid index[K2, index[K3, *[]T]]) *Grouping[K2, *Grouping[K3, Query[T]]] {
		return freeze(mid, k2.cfg, func(inner index[K3, *[]T]) *Grouping[K3, Query[T]] {
			return freeze(inner, k3.cfg, bucketQuery[T])
		})
	})
	logMaterialized("group_by3", n, start)
	return g
}

func bucketQuery[T any](items *[]T) Query[T] {
	return From(slices.Clip(*items))
}

func fetch[K comparable, V any](idx index[K, V], key K, create func() V) V {
	v, ok := idx.get(key)
	if !ok {
		v = create()
		idx.put(key, v)
	}
	return v
}

func appendItem[K comparable, T any](idx index[K, *[]T], key K, v T) {
	bucket := fetch(idx, key, func() *[]T { return new([]T) })
	*bucket = append(*bucket, v)
}

// freeze converts a build-time index into an immutable Grouping of the same layout.
func freeze[K comparable, B, V any](built index[K, B], cfg groupConfig[K], convert func(B) V) *Grouping[K, V] {
	entries := built.entries()
	idx := newIndex[K, V](cfg)
	groups := make([]Group[K, V], len(entries))
	for i, e := range entries {
		v := convert(e.Items)
		idx.put(e.Key, v)
		groups[i] = Group[K, V]{Key: e.Key, Items: v}
	}
	return &Grouping[K, V]{
		Query:  From(groups),
		groups: groups,
		index:  idx,
		layout: cfg.layout,
	}
}

// index is the association behind one grouping level.
type index[K comparable, V any] interface {
	get(key K) (V, bool)
	put(key K, v V)
	entries() []Group[K, V]
}

func newIndex[K comparable, V any](cfg groupConfig[K]) index[K, V] {
	switch cfg.layout {
	case LayoutInsertion:
		return &insertionIndex[K, V]{m: orderedmap.New[K, V]()}
	case LayoutSorted:
		return &sortedIndex[K, V]{m: make(map[K]V), compare: cfg.compare}
	default:
		return hashIndex[K, V](make(map[K]V))
	}
}

type hashIndex[K comparable, V any] map[K]V

func (h hashIndex[K, V]) get(key K) (V, bool) {
	v, ok := h[key]
	return v, ok
}

func (h hashIndex[K, V]) put(key K, v V) { h[key] = v }

func (h hashIndex[K, V]) entries() []Group[K, V] {
	out := make([]Group[K, V], 0, len(h))
	for k, v := range h {
		out = append(out, Group[K, V]{Key: k, Items: v})
	}
	return out
}

type insertionIndex[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, V]
}

func (o *insertionIndex[K, V]) get(key K) (V, bool) { return o.m.Get(key) }

func (o *insertionIndex[K, V]) put(key K, v V) { o.m.Set(key, v) }

func (o *insertionIndex[K, V]) entries() []Group[K, V] {
	out := make([]Group[K, V], 0, o.m.Len())
	for pair := o.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, Group[K, V]{Key: pair.Key, Items: pair.Value})
	}
	return out
}

type sortedIndex[K comparable, V any] struct {
	m       map[K]V
	keys    []K
	compare func(a, b K) int
}

func (s *sortedIndex[K, V]) get(key K) (V, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *sortedIndex[K, V]) put(key K, v V) {
	if _, ok := s.m[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.m[key] = v
}

func (s *sortedIndex[K, V]) entries() []Group[K, V] {
	slices.SortFunc(s.keys, s.compare)
	out := make([]Group[K, V], len(s.keys))
	for i, k := range s.keys {
		out[i] = Group[K, V]{Key: k, Items: s.m[k]}
	}
	return out
}
