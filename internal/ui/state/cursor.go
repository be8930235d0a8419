package state

// MoveCursorUp moves the highlight up one row, wrapping to the bottom.
func (p *Picker) MoveCursorUp() bool {
	n := len(p.Options)
	if n == 0 {
		return false
	}
	old := p.Cursor
	if p.Cursor > 0 {
		p.Cursor--
	} else {
		p.Cursor = n - 1
	}
	return old != p.Cursor
}

// MoveCursorDown moves the highlight down one row, wrapping to the top.
func (p *Picker) MoveCursorDown() bool {
	n := len(p.Options)
	if n == 0 {
		return false
	}
	old := p.Cursor
	if p.Cursor < n-1 {
		p.Cursor++
	} else {
		p.Cursor = 0
	}
	return old != p.Cursor
}

// MoveCursorHome moves the cursor to the first option.
func (p *Picker) MoveCursorHome() bool {
	if len(p.Options) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = 0
	return old != p.Cursor
}

// MoveCursorEnd moves the cursor to the last option.
func (p *Picker) MoveCursorEnd() bool {
	n := len(p.Options)
	if n == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor = n - 1
	return old != p.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (p *Picker) MoveCursorPageUp(maxVisible int) bool {
	return p.moveCursorBy(-p.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (p *Picker) MoveCursorPageDown(maxVisible int) bool {
	return p.moveCursorBy(p.pageSize(maxVisible))
}

func (p *Picker) moveCursorBy(delta int) bool {
	if len(p.Options) == 0 {
		p.Cursor = 0
		return false
	}
	old := p.Cursor
	p.Cursor += delta
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Options) {
		p.Cursor = len(p.Options) - 1
	}
	return p.Cursor != old
}

func (p *Picker) pageSize(maxVisible int) int {
	total := len(p.Options)
	if total == 0 {
		return 0
	}
	if maxVisible <= 0 || maxVisible > total {
		return total
	}
	return maxVisible
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (p *Picker) EnsureCursorVisible(maxVisible int) {
	if len(p.Options) == 0 {
		p.Cursor = 0
		p.ViewportOffset = 0
		return
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor >= len(p.Options) {
		p.Cursor = len(p.Options) - 1
	}
	if maxVisible <= 0 {
		p.ViewportOffset = 0
		return
	}
	maxOffset := max(len(p.Options)-maxVisible, 0)
	if p.ViewportOffset > maxOffset {
		p.ViewportOffset = maxOffset
	}
	if p.ViewportOffset < 0 {
		p.ViewportOffset = 0
	}
	if p.Cursor < p.ViewportOffset {
		p.ViewportOffset = p.Cursor
	}
	if upper := p.ViewportOffset + maxVisible - 1; p.Cursor > upper {
		p.ViewportOffset = min(max(p.Cursor-maxVisible+1, 0), maxOffset)
	}
}

// Visible returns the options inside the viewport and the index of the first.
func (p *Picker) Visible(maxVisible int) ([]Option, int) {
	p.EnsureCursorVisible(maxVisible)
	if maxVisible <= 0 || len(p.Options) <= maxVisible {
		return p.Options, 0
	}
	start := p.ViewportOffset
	return p.Options[start : start+maxVisible], start
}
