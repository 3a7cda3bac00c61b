package layout

// flexItem carries the per-child working state for a single flow pass.
type flexItem struct {
	node      Layoutable
	style     Style
	intrinsic Size
	main      float32
	cross     float32
	fill      bool
	weight    float32
}

// layoutChildren places a node's children inside its content rect and
// recurses down the tree. Absolutely positioned children are anchored
// against the content rect; everyone else flows along the parent's
// direction.
func layoutChildren(parent Layoutable, content Rect) {
	children := parent.LayoutChildren()
	if len(children) == 0 {
		return
	}
	style := parent.LayoutStyle()

	flow := make([]*flexItem, 0, len(children))
	var absolute []Layoutable
	for _, child := range children {
		cs := child.LayoutStyle()
		if cs.Position == PositionAbsolute {
			absolute = append(absolute, child)
			continue
		}
		flow = append(flow, &flexItem{
			node:      child,
			style:     cs,
			intrinsic: child.IntrinsicSize(),
		})
	}

	if len(flow) > 0 {
		layoutFlow(style, content, flow)
	}
	for _, child := range absolute {
		layoutAbsolute(child, content)
	}
}

// layoutFlow runs the main flex pass: resolve main sizes, split free
// space among Fill children, clamp, size the cross axis, then place
// each child with justification and alignment applied.
func layoutFlow(parent Style, content Rect, items []*flexItem) {
	d := parent.Direction
	contentMain, contentCross := axes(content.Width, content.Height, d)

	// Gaps come off the top before anything resolves against the
	// container, so Percent children see the space they can actually
	// occupy.
	inner := contentMain - parent.Gap*float32(len(items)-1)
	if inner < 0 {
		inner = 0
	}

	// Pass 1: resolve fixed, percent, and auto main sizes. Fill
	// children are deferred; their margins still reserve space.
	var fixedTotal float32
	var fillWeight float32
	var fillCount int
	for _, it := range items {
		mainVal, _ := axesValue(it.style, d)
		margin := mainMargin(it.style, d)
		if mainVal.IsFill() {
			it.fill = true
			it.weight = it.style.Grow
			fillWeight += it.weight
			fillCount++
			fixedTotal += margin
			continue
		}
		intrinsicMain, _ := axes(it.intrinsic.Width, it.intrinsic.Height, d)
		it.main = mainVal.Resolve(inner, intrinsicMain)
		fixedTotal += it.main + margin
	}

	// Pass 2: split the remaining space among Fill children by grow
	// weight, equally when no weights are set. An over-full container
	// leaves nothing for them and shrinks the rest instead.
	remaining := inner - fixedTotal
	if remaining > 0 && fillCount > 0 {
		for _, it := range items {
			if !it.fill {
				continue
			}
			if fillWeight > 0 {
				it.main = remaining * (it.weight / fillWeight)
			} else {
				it.main = remaining / float32(fillCount)
			}
		}
	}
	if remaining < 0 {
		shrinkFlow(items, -remaining)
	}

	// Pass 3: min and max constraints. Min is applied last so it wins.
	for _, it := range items {
		lo, hi := mainMinMax(it.style, d)
		it.main = clampSize(it.main, lo, hi, inner)
	}

	// Pass 4: cross-axis sizes resolve independently per child.
	for _, it := range items {
		_, crossVal := axesValue(it.style, d)
		crossAvail := contentCross - crossMargin(it.style, d)
		if crossAvail < 0 {
			crossAvail = 0
		}
		_, intrinsicCross := axes(it.intrinsic.Width, it.intrinsic.Height, d)
		it.cross = crossVal.Resolve(crossAvail, intrinsicCross)
		lo, hi := crossMinMax(it.style, d)
		it.cross = clampSize(it.cross, lo, hi, crossAvail)
	}

	// Pass 5: justification converts leftover main-axis space into a
	// leading offset and extra spacing between children.
	var used float32
	for _, it := range items {
		used += it.main + mainMargin(it.style, d)
	}
	free := inner - used
	if free < 0 {
		free = 0
	}
	lead, spacing := justifyOffsets(parent.MainAlign(), free, len(items))

	// Pass 6: place children and recurse.
	cursor := mainStart(content, d) + lead
	crossBase := crossStart(content, d)
	for i, it := range items {
		if i > 0 {
			cursor += parent.Gap + spacing
		}
		crossAvail := contentCross - crossMargin(it.style, d)
		if crossAvail < 0 {
			crossAvail = 0
		}
		align := parent.CrossAlign()
		if it.style.AlignSelf != nil {
			align = *it.style.AlignSelf
			if align > AlignEnd {
				align = AlignStart
			}
		}
		offset := alignOffset(align, crossAvail, it.cross)

		m := it.style.Margin
		var rect Rect
		if d == Row {
			rect = Rect{
				X:      cursor + m.Left,
				Y:      crossBase + m.Top + offset,
				Width:  it.main,
				Height: it.cross,
			}
			cursor += it.main + m.Horizontal()
		} else {
			rect = Rect{
				X:      crossBase + m.Left + offset,
				Y:      cursor + m.Top,
				Width:  it.cross,
				Height: it.main,
			}
			cursor += it.main + m.Vertical()
		}
		place(it.node, it.style, rect)
	}
}

// layoutAbsolute sizes a node against the parent's content box and
// anchors it at the content origin offset by the style insets.
func layoutAbsolute(node Layoutable, content Rect) {
	style := node.LayoutStyle()
	intrinsic := node.IntrinsicSize()

	w := style.Width.Resolve(content.Width, intrinsic.Width)
	w = clampSize(w, style.MinWidth, style.MaxWidth, content.Width)
	h := style.Height.Resolve(content.Height, intrinsic.Height)
	h = clampSize(h, style.MinHeight, style.MaxHeight, content.Height)

	rect := Rect{
		X:      content.X + style.Inset.Left,
		Y:      content.Y + style.Inset.Top,
		Width:  w,
		Height: h,
	}
	place(node, style, rect)
}

// place records a node's computed rect and lays out its subtree.
func place(node Layoutable, style Style, rect Rect) {
	l := Layout{Rect: rect, ContentRect: rect.Inset(style.Padding)}
	node.SetLayout(l)
	layoutChildren(node, l.ContentRect)
}

// shrinkFlow reclaims the overflow deficit from shrinkable children,
// proportionally by Shrink weight. Fill children contribute nothing,
// and no child shrinks below zero.
func shrinkFlow(items []*flexItem, deficit float32) {
	var total float32
	for _, it := range items {
		if it.fill {
			continue
		}
		total += it.style.Shrink
	}
	if total <= 0 {
		return
	}
	for _, it := range items {
		if it.fill || it.style.Shrink == 0 {
			continue
		}
		it.main -= deficit * (it.style.Shrink / total)
		if it.main < 0 {
			it.main = 0
		}
	}
}

// justifyOffsets converts free main-axis space into a leading offset
// and extra spacing inserted between adjacent children.
func justifyOffsets(a Align, free float32, n int) (lead, spacing float32) {
	if free <= 0 || n == 0 {
		return 0, 0
	}
	switch a {
	case AlignCenter:
		return free / 2, 0
	case AlignEnd:
		return free, 0
	case AlignSpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case AlignSpaceAround:
		step := free / float32(n)
		return step / 2, step
	case AlignSpaceEvenly:
		step := free / float32(n+1)
		return step, step
	default:
		return 0, 0
	}
}

// alignOffset computes the cross-axis offset for a child within the
// available extent. Oversized children stay pinned to the start edge.
func alignOffset(a Align, avail, size float32) float32 {
	var off float32
	switch a {
	case AlignCenter:
		off = (avail - size) / 2
	case AlignEnd:
		off = avail - size
	}
	if off < 0 {
		off = 0
	}
	return off
}

// clampSize applies min and max constraints to a resolved size. Min is
// applied after max so it wins when the two conflict.
func clampSize(v float32, lo, hi Value, available float32) float32 {
	if !hi.IsAuto() {
		if m := hi.Resolve(available, v); v > m {
			v = m
		}
	}
	if !lo.IsAuto() {
		if m := lo.Resolve(available, v); v < m {
			v = m
		}
	}
	if v < 0 {
		v = 0
	}
	return v
}

func axes(w, h float32, d Direction) (main, cross float32) {
	if d == Row {
		return w, h
	}
	return h, w
}

func axesValue(s Style, d Direction) (main, cross Value) {
	if d == Row {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}

func mainMinMax(s Style, d Direction) (lo, hi Value) {
	if d == Row {
		return s.MinWidth, s.MaxWidth
	}
	return s.MinHeight, s.MaxHeight
}

func crossMinMax(s Style, d Direction) (lo, hi Value) {
	if d == Row {
		return s.MinHeight, s.MaxHeight
	}
	return s.MinWidth, s.MaxWidth
}

func mainMargin(s Style, d Direction) float32 {
	if d == Row {
		return s.Margin.Horizontal()
	}
	return s.Margin.Vertical()
}

func crossMargin(s Style, d Direction) float32 {
	if d == Row {
		return s.Margin.Vertical()
	}
	return s.Margin.Horizontal()
}

func mainStart(r Rect, d Direction) float32 {
	if d == Row {
		return r.X
	}
	return r.Y
}

func crossStart(r Rect, d Direction) float32 {
	if d == Row {
		return r.Y
	}
	return r.X
}
