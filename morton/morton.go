// Package morton implements the Z-order location-code arithmetic Aizawa's
// linear quadtree is built on: packing/unpacking Morton digits, the
// interleaved x/y masks, the directional increments, and Schrack's location
// addition ⊕ that finds an equal-size neighbor's code in O(1).
//
// All of it is unsigned, wrap-around bitwise arithmetic; a Code is a 2r-bit
// integer backed by a uint64, good for resolutions r up to MaxResolution.
package morton

// Code is a location code: the Morton code of a quad's SW corner, 2r bits
// wide at a fixed resolution r.
type Code = uint64

// MaxResolution is the largest resolution a uint64-backed Code can address
// (2*31 = 62 bits). Rasters needing more than that are rejected with a
// ResolutionOverflow error rather than silently wrapping.
const MaxResolution = 31

// Direction indexes the four cardinal sides of a quad, in the order spec'd
// for the ld array: East, North, West, South.
type Direction uint8

const (
	East Direction = iota
	North
	West
	South
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

func (d Direction) String() string {
	switch d {
	case East:
		return "E"
	case North:
		return "N"
	case West:
		return "W"
	case South:
		return "S"
	default:
		return "?"
	}
}

// DimensionsToLevels returns r = ceil(log2(max(w,h))), the quadtree
// resolution covering a w×h raster. A 4x4 raster has depth 2; a 5x5 raster
// kicks up to depth 3.
func DimensionsToLevels(w, h int) int {
	max := w
	if h > max {
		max = h
	}
	if max <= 1 {
		return 0
	}
	r := 0
	v := 1
	for v < max {
		v <<= 1
		r++
	}
	return r
}

// MortonToCode bit-packs a sequence of 2-bit digits (MSB first) into a
// location code.
func MortonToCode(digits []uint8) Code {
	n := len(digits)
	var code Code
	for j, d := range digits {
		code |= Code(d&3) << uint(2*(n-1-j))
	}
	return code
}

// CodeToMorton is the inverse of MortonToCode: given a code and the number
// of levels it was packed at, return the MSB-first digit sequence.
func CodeToMorton(n Code, levels int) []uint8 {
	digits := make([]uint8, levels)
	for i := 0; i < levels; i++ {
		digits[levels-1-i] = uint8((n >> uint(2*i)) & 3)
	}
	return digits
}

// CodeToXY extracts the integer pixel coordinates of a location code's SW
// corner at resolution r.
func CodeToXY(n Code, r int) (x, y int) {
	for i := 0; i < r; i++ {
		x |= int((n >> uint(2*i)) & 1 << uint(i))
		y |= int((n >> uint(2*i+1)) & 1 << uint(i))
	}
	return x, y
}

// CodeToRange extracts the half-open rectangle [llx,lly,urx,ury) that a
// quad at location n, level l, resolution r covers.
func CodeToRange(n Code, l, r int) (llx, lly, urx, ury int) {
	llx, lly = CodeToXY(n, r)
	side := 1 << uint(r-l)
	return llx, lly, llx + side, lly + side
}

// TxTy produces the interleaved x/y bitmasks at resolution r: tx is
// 0b0101...01, ty is 0b1010...10, each 2r bits wide.
func TxTy(r int) (tx, ty Code) {
	for i := 0; i < r; i++ {
		tx <<= 2
		tx |= 1
	}
	ty = tx << 1
	return tx, ty
}

// Dn4 produces the unshifted directional increments for the 4-neighbor
// case, in (East, North, West, South) order.
func Dn4(r int) [4]Code {
	tx, ty := TxTy(r)
	east, north, west, south := Code(1), Code(2), tx, ty
	return [4]Code{east, north, west, south}
}

// Dn8 produces the unshifted directional increments for the 8-neighbor
// case: E, NE, N, NW, W, SW, S, SE.
func Dn8(r int) [8]Code {
	tx, ty := TxTy(r)
	east, north, west, south := Code(1), Code(2), tx, ty
	return [8]Code{east, east | north, north, north | west, west, west | south, south, south | east}
}

// ChildLocation returns the location code of child morton-order k (0..3, in
// Z-order SW,SE,NW,NE) of the quad at (n, l), given fixed resolution r.
func ChildLocation(n Code, l, r int, k uint8) Code {
	return n | (Code(k&3) << uint(2*(r-(l+1))))
}

// LocationAddition is Schrack's ⊕: given a quad's location code n and a
// directional increment dn already shifted to the quad's level, return the
// equal-size neighbor's location code.
func LocationAddition(n, dn, tx, ty Code) Code {
	left := ((n | ty) + (dn & tx)) & tx
	right := ((n | tx) + (dn & ty)) & ty
	return left | right
}

// NeighborEqualSize shifts dn to level l (out of r total levels) and applies
// LocationAddition; this is the canonical equal-size neighbor lookup.
func NeighborEqualSize(n Code, l, r int, dn, tx, ty Code) Code {
	dn <<= uint(2 * (r - l))
	return LocationAddition(n, dn, tx, ty)
}
