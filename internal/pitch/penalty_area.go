package pitch

import (
	geom "github.com/peterstace/simplefeatures/geom"
)

// PenaltyArea is the box in front of the attacked goal (the high-x end of
// the pitch). Rulings only ever concern the box the foul was committed in
// front of, so a single area per orientation is enough.
type PenaltyArea struct {
	poly geom.Polygon
}

// NewPenaltyArea builds the penalty-area polygon for the given dimensions.
func NewPenaltyArea(d Dimensions) PenaltyArea {
	x1 := d.Width * penaltyAreaDepth
	x2 := d.Width
	band := d.Height * penaltyAreaBand
	y1 := (d.Height - band) / 2
	y2 := y1 + band

	ring := geom.NewLineString(geom.NewSequence([]float64{
		x1, y1,
		x2, y1,
		x2, y2,
		x1, y2,
		x1, y1,
	}, geom.DimXY))
	return PenaltyArea{poly: geom.NewPolygon([]geom.LineString{ring})}
}

// Contains reports whether p lies inside the penalty area.
func (a PenaltyArea) Contains(p Position) bool {
	pt := geom.NewPoint(geom.Coordinates{
		XY:   geom.XY{X: p.X, Y: p.Y},
		Type: geom.DimXY,
	})
	return geom.Intersects(a.poly.AsGeometry(), pt.AsGeometry())
}
