package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// boxesOverlap runs the separating-axis test between two oriented boxes
// (Gottschalk's 15-axis OBB test). Inputs are world-space centers, half
// extents along the local axes, and orientations.
func boxesOverlap(centerA, halfA mgl32.Vec3, rotA mgl32.Quat, centerB, halfB mgl32.Vec3, rotB mgl32.Quat) bool {
	const epsilon = 1e-5

	a := rotA.Mat4().Mat3()
	b := rotB.Mat4().Mat3()

	// Rotation matrix expressing B in A's frame, plus an absolute version
	// padded with epsilon so near-parallel edge axes don't produce a false
	// separation from arithmetic noise
	var r, absR mgl32.Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v := a.Col(i).Dot(b.Col(j))
			r.Set(i, j, v)
			absR.Set(i, j, abs(v)+epsilon)
		}
	}

	// Translation from A to B, in A's frame
	d := centerB.Sub(centerA)
	t := mgl32.Vec3{a.Col(0).Dot(d), a.Col(1).Dot(d), a.Col(2).Dot(d)}

	// A's face axes
	for i := 0; i < 3; i++ {
		ra := halfA[i]
		rb := halfB.X()*absR.At(i, 0) + halfB.Y()*absR.At(i, 1) + halfB.Z()*absR.At(i, 2)
		if abs(t[i]) > ra+rb {
			return false
		}
	}

	// B's face axes
	for j := 0; j < 3; j++ {
		ra := halfA.X()*absR.At(0, j) + halfA.Y()*absR.At(1, j) + halfA.Z()*absR.At(2, j)
		rb := halfB[j]
		if abs(t.X()*r.At(0, j)+t.Y()*r.At(1, j)+t.Z()*r.At(2, j)) > ra+rb {
			return false
		}
	}

	// Edge-edge cross products A_i x B_j
	for i := 0; i < 3; i++ {
		i1 := (i + 1) % 3
		i2 := (i + 2) % 3
		for j := 0; j < 3; j++ {
			j1 := (j + 1) % 3
			j2 := (j + 2) % 3

			ra := halfA[i1]*absR.At(i2, j) + halfA[i2]*absR.At(i1, j)
			rb := halfB[j1]*absR.At(i, j2) + halfB[j2]*absR.At(i, j1)
			if abs(t[i2]*r.At(i1, j)-t[i1]*r.At(i2, j)) > ra+rb {
				return false
			}
		}
	}

	return true
}
