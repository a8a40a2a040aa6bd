package assembler

import (
	"context"
	"fmt"

	"github.com/specialistvlad/osmforge/internal/config"
	"github.com/specialistvlad/osmforge/internal/geom"
	"github.com/specialistvlad/osmforge/internal/osm"
)

func toGeom(l config.Loop) geom.Loop {
	out := make(geom.Loop, len(l))
	for i, p := range l {
		out[i] = geom.Point{X: p[0], Y: p[1], Z: p[2]}
	}
	return out
}

// translateSurface builds one surface per input loop. A surface with several
// loops was triangulated upstream; its parts are named <name>_<index>.
func (r *run) translateSurface(ctx context.Context, s *config.Surface, space *osm.Space) []*osm.Surface {
	construction := r.construction(ctx, s.Construction)
	surfaceType := parseSurfaceType(s.Type)
	boundary := parseBoundary(s.Boundary)
	sun, wind := exposure(s, boundary)
	expanded := len(s.Loops) > 1

	built := make([]*osm.Surface, 0, len(s.Loops))
	for i, loop := range s.Loops {
		name, index := s.Name, -1
		if expanded {
			name, index = fmt.Sprintf("%s_%d", s.Name, i), i
		}
		surface := osm.NewSurface(r.model, name, space, toGeom(loop))
		surface.Type = surfaceType
		surface.Construction = construction
		surface.Boundary = boundary
		surface.SunExposed = sun
		surface.WindExposed = wind

		if boundary == osm.Adjacent && s.Partner != "" {
			r.adjacency.record(ctx, &pendingAdjacency{
				name:    name,
				base:    s.Name,
				partner: s.Partner,
				index:   index,
				parts:   len(s.Loops),
				surface: surface,
			})
		}
		built = append(built, surface)
		r.report.Surfaces++
	}
	return built
}

// exposure defaults to exposed for outdoor surfaces and unexposed otherwise.
func exposure(s *config.Surface, b osm.Boundary) (sun, wind bool) {
	sun, wind = b == osm.Outdoors, b == osm.Outdoors
	if s.SunExposed != nil {
		sun = *s.SunExposed
	}
	if s.WindExposed != nil {
		wind = *s.WindExposed
	}
	return sun, wind
}
