// Package region maps coordinates to administrative region codes. The default
// resolver uses coarse bounding boxes; callers can inject any Resolver backed
// by real boundary data.
package region

import "github.com/neurofleetx/decision/core/model"

// Unknown is returned for coordinates outside every configured region. It never
// matches a candidate's region code.
const Unknown = "UNKNOWN"

// Resolver determines the region code for a coordinate.
type Resolver interface {
	Resolve(c model.Coordinate) string
}

// Box is an axis-aligned lat/lon rectangle tagged with a region code.
type Box struct {
	Code   string  `json:"code"`
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether the coordinate falls inside the box.
func (b Box) Contains(c model.Coordinate) bool {
	return c.Lat >= b.MinLat && c.Lat <= b.MaxLat && c.Lon >= b.MinLon && c.Lon <= b.MaxLon
}

// BoxResolver resolves regions against an ordered list of bounding boxes.
// Boxes may overlap; the first match wins.
type BoxResolver struct {
	boxes []Box
}

// NewBoxResolver returns a resolver over the given boxes. With no boxes the
// compiled-in defaults are used.
func NewBoxResolver(boxes []Box) *BoxResolver {
	if len(boxes) == 0 {
		boxes = DefaultBoxes()
	}
	return &BoxResolver{boxes: boxes}
}

// Resolve returns the code of the first box containing the coordinate, or
// Unknown when none does.
func (r *BoxResolver) Resolve(c model.Coordinate) string {
	for _, b := range r.boxes {
		if b.Contains(c) {
			return b.Code
		}
	}
	return Unknown
}

// DefaultBoxes covers the Indian states served by the reference fleet. The
// rectangles are deliberately coarse; overlaps are resolved by order.
func DefaultBoxes() []Box {
	return []Box{
		{Code: "MH", MinLat: 15.6, MaxLat: 22.0, MinLon: 72.6, MaxLon: 80.9},
		{Code: "KA", MinLat: 11.5, MaxLat: 18.5, MinLon: 74.0, MaxLon: 78.5},
		{Code: "DL", MinLat: 28.4, MaxLat: 28.9, MinLon: 76.8, MaxLon: 77.3},
		{Code: "TN", MinLat: 8.0, MaxLat: 13.5, MinLon: 76.2, MaxLon: 80.3},
		{Code: "GJ", MinLat: 20.0, MaxLat: 24.7, MinLon: 68.1, MaxLon: 74.5},
		{Code: "RJ", MinLat: 24.0, MaxLat: 30.2, MinLon: 69.5, MaxLon: 78.3},
		{Code: "WB", MinLat: 21.5, MaxLat: 27.2, MinLon: 85.8, MaxLon: 89.9},
	}
}

// Name returns the human-readable name for a region code, falling back to the
// code itself.
func Name(code string) string {
	if n, ok := names[code]; ok {
		return n
	}
	return code
}

var names = map[string]string{
	"MH": "Maharashtra",
	"KA": "Karnataka",
	"DL": "Delhi",
	"TN": "Tamil Nadu",
	"UP": "Uttar Pradesh",
	"GJ": "Gujarat",
	"RJ": "Rajasthan",
	"WB": "West Bengal",
	"MP": "Madhya Pradesh",
	"AP": "Andhra Pradesh",
	"TG": "Telangana",
	"KL": "Kerala",
	"HR": "Haryana",
	"PB": "Punjab",
	"BR": "Bihar",
	"OR": "Odisha",
}
