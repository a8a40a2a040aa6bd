package assembler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/geom"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// openingLoop is one loop of one opening, in declaration order.
type openingLoop struct {
	opening *config.Opening
	loop    config.Loop
}

func openingLoops(s *config.Surface) []openingLoop {
	var out []openingLoop
	for _, o := range s.Openings {
		for _, l := range o.Loops {
			out = append(out, openingLoop{opening: o, loop: l})
		}
	}
	return out
}

// translateFenestration attaches the openings of s to its built surfaces.
func (r *run) translateFenestration(ctx context.Context, s *config.Surface, built []*osm.Surface) {
	items := openingLoops(s)
	if len(items) == 0 || len(built) == 0 {
		return
	}
	if len(built) == 1 {
		r.planarOpenings(ctx, built[0], items)
		return
	}
	r.nonPlanarOpenings(ctx, s, built[0], items)
}

// planarOpenings cuts every opening loop straight into host. Names carry a
// running index only when the host has more than one opening.
func (r *run) planarOpenings(ctx context.Context, host *osm.Surface, items []openingLoop) {
	for i, it := range items {
		name := it.opening.Name
		if len(items) > 1 {
			name = fmt.Sprintf("%s_%d", it.opening.Name, i)
		}
		r.subSurface(ctx, name, host, toGeom(it.loop), it.opening)
	}
}

// nonPlanarOpenings builds one glazing carrier per opening loop and an opening
// inset from the carrier's edges by twice the tolerance. Carriers take the
// host's construction and exposure; an adjacent host's carriers face outdoors.
// Carrier i is named <surface>_glzP_<i> and its opening glz_<carrier>.
func (r *run) nonPlanarOpenings(ctx context.Context, s *config.Surface, host *osm.Surface, items []openingLoop) {
	boundary := host.Boundary
	if boundary == osm.Adjacent {
		boundary = osm.Outdoors
	}
	for i, it := range items {
		carrier := osm.NewSurface(r.model, fmt.Sprintf("%s_glzP_%d", s.Name, i), host.Space, toGeom(it.loop))
		carrier.Type = osm.GlazingCarrier
		carrier.Construction = host.Construction
		carrier.Boundary = boundary
		carrier.SunExposed = host.SunExposed
		carrier.WindExposed = host.WindExposed
		r.report.Surfaces++

		inset := carrier.Vertices.Inset(2 * r.tolerance)
		r.subSurface(ctx, "glz_"+carrier.Name(), carrier, inset, it.opening)
	}
}

func (r *run) subSurface(ctx context.Context, name string, host *osm.Surface, loop geom.Loop, o *config.Opening) {
	ss := osm.NewSubSurface(r.model, name, host, loop)
	ss.Type = parseSubSurfaceType(o.Type)
	ss.Construction = r.construction(ctx, o.Construction)
	r.report.SubSurfaces++
}
