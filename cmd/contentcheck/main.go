// Command contentcheck validates a content file and its motion scripts
// without opening a window.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/weihouang/folio/content"
	"github.com/weihouang/folio/ecs"
	"github.com/weihouang/folio/ecs/component"
	"github.com/weihouang/folio/ecs/entity"
	"github.com/weihouang/folio/ecs/system"
	"golang.org/x/sync/errgroup"
)

func main() {
	path := flag.String("content", "", "content YAML path (embedded default when empty)")
	flag.Parse()

	if err := run(*path, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(path string, out io.Writer) error {
	spec, err := content.Load(path)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if _, err := entity.Build(w, spec); err != nil {
		return fmt.Errorf("build: %w", err)
	}

	for i, sec := range spec.Sections {
		fmt.Fprintf(out, "%d %-10s camera=(%g,%g,%g) props=%d\n", i, sec.Name, sec.Camera.X, sec.Camera.Y, sec.Camera.Z, len(sec.Properties))
	}

	var motions []component.IdleMotion
	ecs.ForEach(w, component.IdleMotionComponent.Kind(), func(_ ecs.Entity, m *component.IdleMotion) {
		motions = append(motions, *m)
	})

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for _, m := range motions {
		g.Go(func() error {
			if _, err := system.CheckScript(content.LoadScript, m.Script, m); err != nil {
				log.Printf("contentcheck: script %s: %v", m.Script, err)
				return fmt.Errorf("script %s: %w", m.Script, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("contentcheck: %w", err)
	}
	fmt.Fprintf(out, "ok: %d sections, %d projects, %d skills\n", len(spec.Sections), len(spec.Projects), len(spec.Skills))
	return nil
}
