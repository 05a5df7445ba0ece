package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/revoconner/uvshape/internal/config"
	"github.com/revoconner/uvshape/internal/engine/shape"
	"github.com/revoconner/uvshape/internal/logger"
	"github.com/revoconner/uvshape/pkg/obj"
)

// targetSpec is one -target flag value: an OBJ path and a blend weight.
type targetSpec struct {
	Path   string
	Weight float32
}

// targetList collects repeated -target flags of the form path=weight.
type targetList []targetSpec

func (l *targetList) String() string {
	parts := make([]string, len(*l))
	for i, t := range *l {
		parts[i] = fmt.Sprintf("%s=%g", t.Path, t.Weight)
	}
	return strings.Join(parts, ",")
}

func (l *targetList) Set(value string) error {
	path, weightStr, ok := strings.Cut(value, "=")
	if !ok || path == "" {
		return fmt.Errorf("expected path=weight, got %q", value)
	}
	w, err := strconv.ParseFloat(weightStr, 32)
	if err != nil {
		return fmt.Errorf("bad weight in %q: %v", value, err)
	}
	*l = append(*l, targetSpec{Path: path, Weight: float32(w)})
	return nil
}

func cmdDeform(args []string) {
	fs := flag.NewFlagSet("deform", flag.ExitOnError)
	fl := config.RegisterFlags(fs)
	basePath := fs.String("base", "", "Base mesh OBJ file")
	outPath := fs.String("out", "", "Output OBJ file")
	var targets targetList
	fs.Var(&targets, "target", "Target mesh and weight as path=weight (repeatable)")
	fs.Parse(args)

	if *basePath == "" || *outPath == "" || len(targets) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: uvshape deform -base <base.obj> -target <mesh.obj=weight> [...] -out <out.obj>")
		os.Exit(1)
	}

	cfg := setup(fl)
	defer logger.Sync()

	baseFile, err := obj.Load(*basePath)
	if err != nil {
		fatal(err)
	}
	baseMesh := baseFile.Mesh()
	if !baseMesh.HasUV {
		logger.Sugar.Warnf("%s has no texture coordinates; nothing will deform", *basePath)
	}

	eng := shape.NewEngine()
	for _, tgt := range targets {
		target, err := obj.Load(tgt.Path)
		if err != nil {
			fatal(err)
		}
		eng.AddTarget()
		i := eng.ActiveIndex()
		if err := eng.SetTargetMesh(i, target.Mesh()); err != nil {
			fatal(err)
		}
		if err := eng.SetWeight(i, tgt.Weight); err != nil {
			fatal(fmt.Errorf("%s: %w", tgt.Path, err))
		}
		logger.Sugar.Debugf("target %d: %s at weight %g", i, tgt.Path, eng.Targets()[i].Weight())
	}

	result := eng.Recompute(baseMesh)
	if result == nil {
		fatal(fmt.Errorf("%s has no vertices", *basePath))
	}

	if err := baseFile.Save(*outPath, result, cfg.Output.Precision); err != nil {
		fatal(err)
	}

	active := 0
	for _, b := range eng.Targets() {
		if b.Active() {
			active++
		}
	}
	logger.Sugar.Infof("wrote %s: %d vertices, %d of %d targets active",
		*outPath, len(result), active, len(eng.Targets()))
}

func fatal(err error) {
	logger.Sugar.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
