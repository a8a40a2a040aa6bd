package osm

import "github.com/specialistvlad/osmforge/internal/geom"

// SurfaceType classifies a surface for the simulation engine.
type SurfaceType int

const (
	Wall SurfaceType = iota
	Floor
	RoofCeiling
	// GlazingCarrier is a placeholder parent for openings cut into a
	// non-planar host. It is written as a wall.
	GlazingCarrier
)

func (t SurfaceType) String() string {
	switch t {
	case Floor:
		return "Floor"
	case RoofCeiling:
		return "RoofCeiling"
	case GlazingCarrier:
		return "GlazingCarrier"
	default:
		return "Wall"
	}
}

// Boundary is the outside boundary condition of a surface.
type Boundary int

const (
	Outdoors Boundary = iota
	Ground
	// Adjacent surfaces face another surface of the model.
	Adjacent
	Adiabatic
)

func (b Boundary) String() string {
	switch b {
	case Ground:
		return "Ground"
	case Adjacent:
		return "Surface"
	case Adiabatic:
		return "Adiabatic"
	default:
		return "Outdoors"
	}
}

// Surface is one planar polygon of a space.
type Surface struct {
	Base
	Vertices     geom.Loop
	Space        *Space
	Type         SurfaceType
	Construction *Construction
	Boundary     Boundary
	SunExposed   bool
	WindExposed  bool

	adjacent    *Surface
	subSurfaces []*SubSurface
}

// NewSurface creates a surface and attaches it to space.
func NewSurface(m *Model, name string, space *Space, vertices geom.Loop) *Surface {
	s := Add(m, name, &Surface{Vertices: vertices, Space: space, SunExposed: true, WindExposed: true})
	space.surfaces = append(space.surfaces, s)
	return s
}

// Adjacent returns the partner surface, if linked.
func (s *Surface) Adjacent() *Surface {
	return s.adjacent
}

// SetAdjacentSurface links s and other as mutual partners.
func (s *Surface) SetAdjacentSurface(other *Surface) {
	s.adjacent = other
	other.adjacent = s
	s.Boundary = Adjacent
	other.Boundary = Adjacent
}

// SubSurfaces returns the openings of s in creation order.
func (s *Surface) SubSurfaces() []*SubSurface {
	return append([]*SubSurface(nil), s.subSurfaces...)
}

// SubSurfaceType classifies an opening.
type SubSurfaceType int

const (
	FixedWindow SubSurfaceType = iota
	OperableWindow
	Door
	GlassDoor
	Skylight
)

func (t SubSurfaceType) String() string {
	switch t {
	case OperableWindow:
		return "OperableWindow"
	case Door:
		return "Door"
	case GlassDoor:
		return "GlassDoor"
	case Skylight:
		return "Skylight"
	default:
		return "FixedWindow"
	}
}

// SubSurface is an opening attached to a host surface.
type SubSurface struct {
	Base
	Vertices     geom.Loop
	Host         *Surface
	Type         SubSurfaceType
	Construction *Construction
}

// NewSubSurface creates an opening and attaches it to host.
func NewSubSurface(m *Model, name string, host *Surface, vertices geom.Loop) *SubSurface {
	ss := Add(m, name, &SubSurface{Vertices: vertices, Host: host})
	host.subSurfaces = append(host.subSurfaces, ss)
	return ss
}

// ShadingSurfaceGroup collects context shading surfaces.
type ShadingSurfaceGroup struct {
	Base
	surfaces []*ShadingSurface
}

// Surfaces returns the group members in creation order.
func (g *ShadingSurfaceGroup) Surfaces() []*ShadingSurface {
	return append([]*ShadingSurface(nil), g.surfaces...)
}

// ShadingSurface is a context surface that only casts shadows.
type ShadingSurface struct {
	Base
	Vertices geom.Loop
	Group    *ShadingSurfaceGroup
}

// NewShadingSurface creates a shading surface inside group.
func NewShadingSurface(m *Model, name string, group *ShadingSurfaceGroup, vertices geom.Loop) *ShadingSurface {
	s := Add(m, name, &ShadingSurface{Vertices: vertices, Group: group})
	group.surfaces = append(group.surfaces, s)
	return s
}
