package state

// AnyLabel is shown for the option that places no constraint.
const AnyLabel = "(any)"

// Option is one selectable value of a picker. The empty value means "any".
type Option struct {
	Value string
	Label string
}

// Picker holds the state of one sidebar filter: its options, the type-ahead
// query that narrows them, the highlighted row and the applied value.
type Picker struct {
	ID             string
	Title          string
	Options        []Option
	Full           []Option
	Query          string
	QueryCursor    int
	Cursor         int
	LastCursor     int
	Value          string
	ViewportOffset int
}

// NewPicker builds a picker offering "any" followed by values.
func NewPicker(id, title string, values []string) *Picker {
	p := &Picker{
		ID:         id,
		Title:      title,
		LastCursor: -1,
	}
	p.SetValues(values)
	return p
}

func optionsFor(values []string) []Option {
	opts := make([]Option, 0, len(values)+1)
	opts = append(opts, Option{Value: "", Label: AnyLabel})
	for _, v := range values {
		if v == "" {
			continue
		}
		opts = append(opts, Option{Value: v, Label: v})
	}
	return opts
}

// SetValues replaces the offered values. The applied value is kept when it is
// still offered and reset to "any" otherwise; the return value reports whether
// it was reset.
func (p *Picker) SetValues(values []string) bool {
	p.Full = optionsFor(values)
	reset := false
	if p.Value != "" && p.indexIn(p.Full, p.Value) < 0 {
		p.Value = ""
		reset = true
	}
	p.refilter()
	if idx := p.IndexOf(p.Value); idx >= 0 && p.Query == "" {
		p.Cursor = idx
	}
	if len(p.Options) == 0 || p.ViewportOffset > len(p.Options)-1 {
		p.ViewportOffset = 0
	}
	return reset
}

// SetValue applies value when it is offered.
func (p *Picker) SetValue(value string) bool {
	if p.indexIn(p.Full, value) < 0 {
		return false
	}
	p.Value = value
	if idx := p.IndexOf(value); idx >= 0 {
		p.Cursor = idx
	}
	return true
}

// IndexOf returns the visible index of value, or -1.
func (p *Picker) IndexOf(value string) int {
	return p.indexIn(p.Options, value)
}

func (p *Picker) indexIn(opts []Option, value string) int {
	for i, o := range opts {
		if o.Value == value {
			return i
		}
	}
	return -1
}

// Highlighted returns the option under the cursor.
func (p *Picker) Highlighted() (Option, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Options) {
		return Option{}, false
	}
	return p.Options[p.Cursor], true
}

// Choose applies the highlighted option and clears the query. It reports
// whether the applied value changed.
func (p *Picker) Choose() bool {
	opt, ok := p.Highlighted()
	if !ok {
		return false
	}
	changed := opt.Value != p.Value
	p.Value = opt.Value
	p.SetQuery("", 0)
	if idx := p.IndexOf(p.Value); idx >= 0 {
		p.Cursor = idx
	}
	return changed
}

// ValueLabel returns the label shown for the applied value.
func (p *Picker) ValueLabel() string {
	if p.Value == "" {
		return AnyLabel
	}
	return p.Value
}
