package obj

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/revoconner/uvshape/pkg/mesh"
)

// ErrPositionCount is returned when the replacement positions do not
// cover the file's vertex list.
var ErrPositionCount = errors.New("position count does not match vertex count")

// Write emits the file with its positions replaced by the given snapshot,
// preserving texture coordinates and face structure, so a deformed mesh
// round-trips through the same topology. Coordinates are written with the
// given number of decimal places. Pass positions == nil to write the
// file's own positions.
func (f *File) Write(w io.Writer, positions mesh.Snapshot, precision int) error {
	if positions == nil {
		positions = f.Positions
	}
	if len(positions) != len(f.Positions) {
		return fmt.Errorf("%w: %d positions for %d vertices", ErrPositionCount, len(positions), len(f.Positions))
	}
	if precision <= 0 {
		precision = 6
	}

	bw := bufio.NewWriter(w)
	for _, p := range positions {
		fmt.Fprintf(bw, "v %.*f %.*f %.*f\n", precision, p.X, precision, p.Y, precision, p.Z)
	}
	for _, uv := range f.TexCoords {
		fmt.Fprintf(bw, "vt %.*f %.*f\n", precision, uv.X, precision, uv.Y)
	}
	for _, face := range f.Faces {
		bw.WriteString("f")
		for _, corner := range face {
			if corner.TexCoord >= 0 {
				fmt.Fprintf(bw, " %d/%d", corner.Vertex+1, corner.TexCoord+1)
			} else {
				fmt.Fprintf(bw, " %d", corner.Vertex+1)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Save writes the file to disk with the given replacement positions.
func (f *File) Save(path string, positions mesh.Snapshot, precision int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer out.Close()

	if err := f.Write(out, positions, precision); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}
