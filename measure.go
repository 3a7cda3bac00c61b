package bento

// textMeasurer is the slice of the font registry the measure pass
// needs. *font.Registry satisfies it; tests substitute fixed extents.
type textMeasurer interface {
	Measure(name, text string) (w, h float32, err error)
}

// measureTree computes the natural size of every element in the tree,
// bottom-up, so the layout pass knows how much space Auto elements need
// before Fill elements claim the remainder. It only errors when text
// must be measured and no font is registered.
func measureTree(root *Element, fonts textMeasurer) error {
	for _, child := range root.children {
		if err := measureTree(child, fonts); err != nil {
			return err
		}
	}

	switch root.kind {
	case KindText:
		w, h, err := fonts.Measure(root.fontName, root.text)
		if err != nil {
			return err
		}
		root.measured = Size{
			Width:  w + root.style.Padding.Horizontal(),
			Height: h + root.style.Padding.Vertical(),
		}
	case KindButton:
		w, h, err := fonts.Measure(root.fontName, root.text)
		if err != nil {
			return err
		}
		// Buttons wrap their label in fixed chrome, not the
		// element's own padding.
		root.measured = Size{
			Width:  w + buttonPadX,
			Height: h + buttonPadY,
		}
	case KindRow, KindColumn:
		root.measured = packNatural(root)
	case KindRect:
		root.measured = Size{
			Width:  root.style.Padding.Horizontal(),
			Height: root.style.Padding.Vertical(),
		}
	default:
		root.measured = Size{}
	}
	return nil
}

// packNatural sums flow children along the container's main axis with
// gaps between them, takes the max on the cross axis, and adds the
// container's padding. Absolute children never contribute.
func packNatural(e *Element) Size {
	horizontal := e.style.Direction == Row

	var main, cross float32
	flow := 0
	for _, child := range e.children {
		if child.style.Position == PositionAbsolute {
			continue
		}
		main += measureContribution(child, horizontal)
		if c := measureContribution(child, !horizontal); c > cross {
			cross = c
		}
		flow++
	}
	if flow > 1 {
		main += e.style.Gap * float32(flow-1)
	}

	size := Size{Width: main, Height: cross}
	if !horizontal {
		size = Size{Width: cross, Height: main}
	}
	size.Width += e.style.Padding.Horizontal()
	size.Height += e.style.Padding.Vertical()
	return size
}

// measureContribution is the space a child claims while its parent
// packs. Fixed counts as declared, Auto as measured; Percent and Fill
// depend on the parent and contribute nothing at this stage.
func measureContribution(child *Element, horizontal bool) float32 {
	v := child.style.Height
	intrinsic := child.measured.Height
	if horizontal {
		v = child.style.Width
		intrinsic = child.measured.Width
	}
	switch v.Unit {
	case UnitFixed:
		return v.Amount
	case UnitAuto:
		return intrinsic
	default:
		return 0
	}
}
