// Package obj reads and writes Wavefront OBJ meshes. Only the elements
// the deformation pipeline needs are handled: vertex positions (v),
// texture coordinates (vt), and faces (f). Everything else in the file is
// ignored on read and not reproduced on write.
package obj

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/revoconner/uvshape/pkg/math"
	"github.com/revoconner/uvshape/pkg/mesh"
)

// OBJ format errors.
var (
	ErrBadVertexRef   = errors.New("face references a missing vertex")
	ErrBadTexCoordRef = errors.New("face references a missing texture coordinate")
	ErrShortFace      = errors.New("face has fewer than three corners")
	ErrMalformedLine  = errors.New("malformed directive")
)

// Corner is one face corner: indices into the file's position and texture
// coordinate lists (0-based). TexCoord is -1 when the corner carries no
// texture coordinate.
type Corner struct {
	Vertex   int
	TexCoord int
}

// File is a parsed OBJ mesh. Faces keep their corner structure so that a
// deformed copy can be written back with the original topology.
type File struct {
	Positions []math.Vec3
	TexCoords []math.Vec2
	Faces     [][]Corner
}

// Load reads and parses an OBJ file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// Parse parses OBJ data.
func Parse(data []byte) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(strings.NewReader(string(data)))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)

		var err error
		switch fields[0] {
		case "v":
			err = f.parsePosition(fields[1:])
		case "vt":
			err = f.parseTexCoord(fields[1:])
		case "f":
			err = f.parseFace(fields[1:])
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) parsePosition(fields []string) error {
	if len(fields) < 3 {
		return fmt.Errorf("%w: v needs 3 components, has %d", ErrMalformedLine, len(fields))
	}
	var v math.Vec3
	for i, dst := range []*float32{&v.X, &v.Y, &v.Z} {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		*dst = float32(val)
	}
	f.Positions = append(f.Positions, v)
	return nil
}

func (f *File) parseTexCoord(fields []string) error {
	if len(fields) < 2 {
		return fmt.Errorf("%w: vt needs 2 components, has %d", ErrMalformedLine, len(fields))
	}
	var uv math.Vec2
	for i, dst := range []*float32{&uv.X, &uv.Y} {
		val, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		*dst = float32(val)
	}
	f.TexCoords = append(f.TexCoords, uv)
	return nil
}

func (f *File) parseFace(fields []string) error {
	if len(fields) < 3 {
		return ErrShortFace
	}
	face := make([]Corner, 0, len(fields))
	for _, field := range fields {
		corner, err := f.parseCorner(field)
		if err != nil {
			return err
		}
		face = append(face, corner)
	}
	f.Faces = append(f.Faces, face)
	return nil
}

// parseCorner handles the v, v/vt, v/vt/vn, and v//vn reference forms.
// Indices are 1-based; negative indices count back from the end of the
// respective list.
func (f *File) parseCorner(field string) (Corner, error) {
	parts := strings.Split(field, "/")

	vi, err := resolveIndex(parts[0], len(f.Positions))
	if err != nil {
		return Corner{}, fmt.Errorf("%w: %q", ErrBadVertexRef, field)
	}

	ti := -1
	if len(parts) > 1 && parts[1] != "" {
		ti, err = resolveIndex(parts[1], len(f.TexCoords))
		if err != nil {
			return Corner{}, fmt.Errorf("%w: %q", ErrBadTexCoordRef, field)
		}
	}
	// Normal references (parts[2]) are ignored.

	return Corner{Vertex: vi, TexCoord: ti}, nil
}

// resolveIndex converts a 1-based (or negative, from-the-end) OBJ index
// into a 0-based offset, validating range against the current list length.
func resolveIndex(s string, length int) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case n > 0 && n <= length:
		return n - 1, nil
	case n < 0 && -n <= length:
		return length + n, nil
	default:
		return 0, fmt.Errorf("index %d out of range [1, %d]", n, length)
	}
}

// Mesh flattens the file into the engine-facing mesh model. Corners
// without a texture coordinate produce no loop; HasUV is set when at
// least one loop exists.
func (f *File) Mesh() *mesh.Mesh {
	m := &mesh.Mesh{Positions: f.Positions}
	for _, face := range f.Faces {
		for _, corner := range face {
			if corner.TexCoord < 0 {
				continue
			}
			m.Loops = append(m.Loops, mesh.Loop{
				Vertex: corner.Vertex,
				UV:     f.TexCoords[corner.TexCoord],
			})
		}
	}
	m.HasUV = len(m.Loops) > 0
	return m
}
