package system

import (
	"log"

	"github.com/weihouang/folio/ecs"
)

// LinkSink performs the side effects of activating a project link.
type LinkSink interface {
	Copy(link string) error
	Open(link string) error
}

// LinkSystem drains CardActivated events. Failures are logged and never
// stop the frame loop.
type LinkSystem struct {
	sink LinkSink
	open bool
}

// NewLinkSystem copies every activated link; it also opens it when open is
// set.
func NewLinkSystem(sink LinkSink, open bool) *LinkSystem {
	return &LinkSystem{sink: sink, open: open}
}

func (ls *LinkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var keep []ecs.Event
	for _, evt := range w.Events().Drain() {
		act, ok := evt.Data.(ecs.CardActivated)
		if evt.Type != ecs.EventCardActivated || !ok {
			keep = append(keep, evt)
			continue
		}
		if ls.sink == nil {
			continue
		}
		if err := ls.sink.Copy(act.Link); err != nil {
			log.Printf("links: copy %s: %v", act.Link, err)
		} else {
			log.Printf("links: copied %s", act.Link)
		}
		if ls.open {
			if err := ls.sink.Open(act.Link); err != nil {
				log.Printf("links: open %s: %v", act.Link, err)
			}
		}
	}
	for _, evt := range keep {
		w.Events().Push(evt)
	}
}
