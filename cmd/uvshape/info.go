package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/revoconner/uvshape/internal/config"
	"github.com/revoconner/uvshape/internal/logger"
	"github.com/revoconner/uvshape/pkg/mesh"
	"github.com/revoconner/uvshape/pkg/obj"
)

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: uvshape info <mesh.obj>")
		os.Exit(1)
	}
	path := fs.Arg(0)

	setup(fl)
	defer logger.Sync()

	file, err := obj.Load(path)
	if err != nil {
		fatal(err)
	}
	m := file.Mesh()
	idx := mesh.BuildUVIndex(m)

	// Vertices reachable through more than one key sit on UV seams;
	// keys holding more than one vertex mark overlapping UV islands.
	keysPerVertex := make(map[int]int)
	sharedKeys := 0
	for _, verts := range idx {
		if len(verts) > 1 {
			sharedKeys++
		}
		for _, v := range verts {
			keysPerVertex[v]++
		}
	}
	seamVerts := 0
	for _, n := range keysPerVertex {
		if n > 1 {
			seamVerts++
		}
	}

	fmt.Printf("Mesh:          %s\n", path)
	fmt.Printf("Vertices:      %d\n", m.VertexCount())
	fmt.Printf("Faces:         %d\n", len(file.Faces))
	fmt.Printf("Face loops:    %d\n", len(m.Loops))
	fmt.Printf("UV layer:      %v\n", m.HasUV)
	fmt.Printf("UV keys:       %d\n", len(idx))
	fmt.Printf("Seam vertices: %d (under multiple UV keys)\n", seamVerts)
	fmt.Printf("Shared keys:   %d (held by multiple vertices)\n", sharedKeys)
}
