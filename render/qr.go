package render

import (
	"fmt"
	"sync"

	"github.com/skip2/go-qrcode"
)

// QRCache encodes links as QR module grids, once per link.
type QRCache struct {
	mu    sync.Mutex
	codes map[string][][]bool
}

func NewQRCache() *QRCache {
	return &QRCache{codes: map[string][][]bool{}}
}

// Bitmap returns the square module grid for link, true meaning dark. The
// quiet-zone border is not included.
func (c *QRCache) Bitmap(link string) ([][]bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if bm, ok := c.codes[link]; ok {
		return bm, nil
	}
	q, err := qrcode.New(link, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("render: qr %q: %w", link, err)
	}
	q.DisableBorder = true
	bm := q.Bitmap()
	c.codes[link] = bm
	return bm, nil
}
