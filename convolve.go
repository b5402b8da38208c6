package painterly

// Kernel is a 3×3 convolution matrix indexed [dy+1][dx+1].
type Kernel [3][3]float64

// Scharr operators. ScharrX responds to horizontal intensity change,
// ScharrY to vertical change.
var (
	ScharrX = Kernel{
		{3, 0, -3},
		{10, 0, -10},
		{3, 0, -3},
	}
	ScharrY = Kernel{
		{3, 10, 3},
		{0, 0, 0},
		{-3, -10, -3},
	}
)

// ApplyKernel returns the response of k centered on (cx, cy).
//
// Neighbors outside the field contribute nothing: they are skipped rather
// than clamped or reflected, so responses near the border are weaker.
//
// Positive and negative taps accumulate separately, so an antisymmetric
// kernel such as ScharrX or ScharrY yields exactly 0 on a flat region.
func ApplyKernel(f *ScalarField, cx, cy int, k Kernel) float64 {
	var pos, neg float64
	for dy := -1; dy <= 1; dy++ {
		y := cy + dy
		if y < 0 || y >= f.height {
			continue
		}
		row := f.data[y*f.width : (y+1)*f.width]
		for dx := -1; dx <= 1; dx++ {
			x := cx + dx
			if x < 0 || x >= f.width {
				continue
			}
			if w := k[dy+1][dx+1]; w >= 0 {
				pos += row[x] * w
			} else {
				neg += row[x] * w
			}
		}
	}
	return pos + neg
}
