package units

// Architecturally plausible extent per side, in millimeters: 5 m to 2 km.
const (
	minPlausibleMM = 5000.0
	maxPlausibleMM = 2000000.0
)

// a3Scales lists, per standard drawing scale, the maximum real-world extent
// (width, height, in meters) that fits an A3 sheet at that scale.
var a3Scales = [][2]float64{
	{14.85, 21.0},   // 1:50
	{29.7, 42.0},    // 1:100
	{59.4, 84.0},    // 1:200
	{89.1, 126.0},   // 1:300
	{118.8, 168.0},  // 1:400
	{148.5, 210.0},  // 1:500
	{178.2, 252.0},  // 1:600
	{297.0, 420.0},  // 1:1000
	{445.5, 630.0},  // 1:1500
	{594.0, 840.0},  // 1:2000
	{742.5, 1050.0}, // 1:2500
	{891.0, 1260.0}, // 1:3000
	{1485.0, 2100.0}, // 1:5000
}

// PlausibleSize reports whether a drawing extent, in millimeters, is a
// believable architectural site: both sides within the plausible window and
// the whole extent printable on an A3 sheet at some standard scale.
func PlausibleSize(widthMM, heightMM float64) bool {
	if widthMM < minPlausibleMM || widthMM > maxPlausibleMM {
		return false
	}
	if heightMM < minPlausibleMM || heightMM > maxPlausibleMM {
		return false
	}
	for _, scale := range a3Scales {
		if widthMM <= scale[0]*1000 && heightMM <= scale[1]*1000 {
			return true
		}
	}
	return false
}
