package assembler

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/osmforge/internal/ctxlog"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// pendingAdjacency records that a built surface claims partner as its
// neighbour. base is the input surface name; an expanded surface has parts
// built parts and index is this part's loop index, otherwise index is -1.
type pendingAdjacency struct {
	name    string
	base    string
	partner string
	index   int
	parts   int
	surface *osm.Surface
}

// adjacencyTable holds pending pairs keyed by built surface name, in the
// order they were recorded, plus the parts of every expanded surface keyed by
// its input name.
type adjacencyTable struct {
	byName   map[string]*pendingAdjacency
	expanded map[string][]*pendingAdjacency
	order    []*pendingAdjacency
}

func newAdjacencyTable() *adjacencyTable {
	return &adjacencyTable{
		byName:   make(map[string]*pendingAdjacency),
		expanded: make(map[string][]*pendingAdjacency),
	}
}

func adjacencyKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (t *adjacencyTable) record(ctx context.Context, e *pendingAdjacency) {
	key := adjacencyKey(e.name)
	if prev, ok := t.byName[key]; ok {
		ctxlog.FromContext(ctx).Warn("Surface name recorded twice for adjacency; the later surface wins.", "name", e.name, "previous_partner", prev.partner)
	}
	t.byName[key] = e
	if e.index >= 0 {
		base := adjacencyKey(e.base)
		t.expanded[base] = append(t.expanded[base], e)
	}
	t.order = append(t.order, e)
}

// errAmbiguousPartner marks a pairing between surfaces split into a
// different number of parts.
var errAmbiguousPartner = errors.New("ambiguous partner")

// partnerOf finds the entry e names. Parts of expanded surfaces pair by loop
// index with a partner split the same way; a planar surface pairs with a
// planar partner, or with a partner expanded into a single part. Any other
// combination is ambiguous and pairs nothing.
func (t *adjacencyTable) partnerOf(e *pendingAdjacency) (*pendingAdjacency, error) {
	key := adjacencyKey(e.partner)
	direct, hasDirect := t.byName[key]
	parts := t.expanded[key]

	switch {
	case e.index < 0 && hasDirect:
		return direct, nil
	case e.index < 0 && len(parts) == 1:
		return parts[0], nil
	case e.index >= 0 && len(parts) == e.parts:
		for _, p := range parts {
			if p.index == e.index {
				return p, nil
			}
		}
	}

	switch {
	case len(parts) > 0:
		return nil, fmt.Errorf("%w: surface '%s' has %d part(s) but partner '%s' has %d",
			errAmbiguousPartner, e.base, e.parts, e.partner, len(parts))
	case hasDirect:
		return nil, fmt.Errorf("%w: surface '%s' has %d part(s) but partner '%s' has 1",
			errAmbiguousPartner, e.base, e.parts, e.partner)
	}
	return nil, fmt.Errorf("surface '%s' names partner '%s', which was never recorded", e.name, e.partner)
}

// resolveAdjacency links every recorded pair both ways. It runs once, after
// every zone has been translated.
func (r *run) resolveAdjacency(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	linked := make(map[*osm.Surface]bool)
	// Parts of one expanded surface share a single ambiguity warning.
	ambiguous := make(map[string]bool)

	for _, e := range r.adjacency.order {
		if r.adjacency.byName[adjacencyKey(e.name)] != e {
			continue
		}
		p, err := r.adjacency.partnerOf(e)
		if errors.Is(err, errAmbiguousPartner) {
			if base := adjacencyKey(e.base); !ambiguous[base] {
				ambiguous[base] = true
				r.warn(ctx, "Adjacent surface could not be linked.", fmt.Errorf("%w: %w", ErrUnresolvedAdjacency, err), "surface", e.base, "partner", e.partner)
			}
			continue
		}
		if err != nil {
			r.warn(ctx, "Adjacent surface could not be linked.", fmt.Errorf("%w: %w", ErrUnresolvedAdjacency, err), "surface", e.name, "partner", e.partner)
			continue
		}
		if p.surface == e.surface {
			err := fmt.Errorf("%w: surface '%s' names itself as partner", ErrUnresolvedAdjacency, e.name)
			r.warn(ctx, "Adjacent surface could not be linked.", err, "surface", e.name)
			continue
		}
		e.surface.SetAdjacentSurface(p.surface)
		if !linked[e.surface] && !linked[p.surface] {
			r.report.AdjacencyLinks++
		}
		linked[e.surface], linked[p.surface] = true, true
	}
	logger.Debug("Adjacency resolved.", "pending", len(r.adjacency.order), "links", r.report.AdjacencyLinks)
}
