// Package cursor provides a reusable cursor for scrollable lists.
package cursor

// Cursor tracks a selection position and scroll offset over a list whose
// length and viewport height are passed to each method, since both change
// as filters and window size change.
type Cursor struct {
	pos    int // selected item (0-indexed)
	offset int // first visible item
	margin int // items kept visible above/below the selection
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current selection position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the selection by delta within a list of listLen items,
// clamped to bounds, keeping it visible in a viewport of height rows.
// No-op on an empty list.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the selection to an absolute position, clamped to bounds.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves to the first item and resets the offset.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves to the last item.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// Reset returns to position 0 with no scroll.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// ClampToBounds pulls the selection back into range after the list
// shrank. Returns true if the position changed.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		changed := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return changed
	}
	oldPos := c.pos
	c.pos = clamp(c.pos, listLen-1)
	return c.pos != oldPos
}

// VisibleRange returns the half-open range [start, end) of visible items.
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	start = c.offset
	end = min(c.offset+height, listLen)
	return start, end
}

// HandleKey applies common list navigation keys and reports whether the
// key was one of them: j/down, k/up, g/home, G/end, ctrl+d, ctrl+u.
func (c *Cursor) HandleKey(key string, listLen, height int) bool {
	switch key {
	case "j", "down":
		c.Move(1, listLen, height)
		return true
	case "k", "up":
		c.Move(-1, listLen, height)
		return true
	case "g", "home":
		c.JumpStart()
		return true
	case "G", "end":
		c.JumpEnd(listLen, height)
		return true
	case "ctrl+d":
		c.Move(height/2, listLen, height)
		return true
	case "ctrl+u":
		c.Move(-height/2, listLen, height)
		return true
	}
	return false
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clamp(c.offset, maxOffset)
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
