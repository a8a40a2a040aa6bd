package energyplus

import (
	"fmt"
	"math"
	"strconv"

	"github.com/specialistvlad/osmforge/internal/geom"
	"github.com/specialistvlad/osmforge/internal/osm"
)

// Version is the exchange-format version the rows are written for.
const Version = "9.0"

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func optNum(f *float64) string {
	if f == nil {
		return ""
	}
	return num(*f)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func scheduleName(s osm.Schedule) string {
	if s == nil {
		return ""
	}
	return s.Name()
}

func constructionName(c *osm.Construction) string {
	if c == nil {
		return ""
	}
	return c.Name()
}

func limitsName(l *osm.ScheduleTypeLimits) string {
	if l == nil {
		return ""
	}
	return l.Name()
}

// zoneName is the thermal zone a space's loads and surfaces are written
// against.
func zoneName(s *osm.Space) string {
	if s == nil {
		return ""
	}
	if s.ThermalZone != nil {
		return s.ThermalZone.Name()
	}
	return s.Name()
}

// clock renders a fraction of a day as hh:mm, rounded to the minute.
func clock(until float64) string {
	minutes := int(math.Round(until * 24 * 60))
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// vertices renders the vertex count followed by the flattened coordinates.
func vertices(l geom.Loop) []string {
	out := make([]string, 0, 1+3*len(l))
	out = append(out, strconv.Itoa(len(l)))
	for _, p := range l {
		out = append(out, num(p.X), num(p.Y), num(p.Z))
	}
	return out
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
