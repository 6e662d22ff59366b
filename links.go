package main

import (
	"fmt"
	"sync"

	"github.com/pkg/browser"
	"golang.design/x/clipboard"
)

// desktopLinks copies to the system clipboard and opens the default browser.
type desktopLinks struct {
	once    sync.Once
	initErr error
}

func (d *desktopLinks) Copy(link string) error {
	d.once.Do(func() {
		d.initErr = clipboard.Init()
	})
	if d.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", d.initErr)
	}
	clipboard.Write(clipboard.FmtText, []byte(link))
	return nil
}

func (d *desktopLinks) Open(link string) error {
	return browser.OpenURL(link)
}
