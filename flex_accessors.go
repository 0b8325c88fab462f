package polykit

import (
	"github.com/polykit/polykit/errs"
	"github.com/polykit/polykit/internal/layout"
	"github.com/polykit/polykit/responsive"
)

// Container setters validate every entry of the incoming value before
// storing it. A rejected value leaves the previous configuration in
// place, is logged once per property, and comes back as a structured
// error the caller can inspect with errs.Is.

// SetDirection configures the main axis.
func (f *Flex) SetDirection(v responsive.Value[Direction]) error {
	if err := v.Validate(validDirection); err != nil {
		f.reportConfigError(propDirection, err)
		return err
	}
	responsive.Set(f.res, propDirection, v)
	delete(f.warned, propDirection)
	f.relayout()
	return nil
}

// Direction returns the main axis resolved at the current width.
func (f *Flex) Direction() Direction {
	return responsive.Get(f.res, propDirection, layout.Row)
}

// SetWrap configures line breaking.
func (f *Flex) SetWrap(v responsive.Value[Wrap]) error {
	if err := v.Validate(validWrap); err != nil {
		f.reportConfigError(propWrap, err)
		return err
	}
	responsive.Set(f.res, propWrap, v)
	delete(f.warned, propWrap)
	f.relayout()
	return nil
}

// Wrap returns the wrap mode resolved at the current width.
func (f *Flex) Wrap() Wrap {
	return responsive.Get(f.res, propWrap, layout.NoWrap)
}

// SetJustify configures main-axis distribution.
func (f *Flex) SetJustify(v responsive.Value[Justify]) error {
	if err := v.Validate(validJustify); err != nil {
		f.reportConfigError(propJustify, err)
		return err
	}
	responsive.Set(f.res, propJustify, v)
	delete(f.warned, propJustify)
	f.relayout()
	return nil
}

// Justify returns the justify mode resolved at the current width.
func (f *Flex) Justify() Justify {
	return responsive.Get(f.res, propJustify, layout.JustifyStart)
}

// SetAlign configures cross-axis alignment for all items. Individual
// items override it with SetAlignSelf.
func (f *Flex) SetAlign(v responsive.Value[Align]) error {
	if err := v.Validate(validAlign); err != nil {
		f.reportConfigError(propAlign, err)
		return err
	}
	responsive.Set(f.res, propAlign, v)
	delete(f.warned, propAlign)
	f.relayout()
	return nil
}

// Align returns the align mode resolved at the current width.
func (f *Flex) Align() Align {
	return responsive.Get(f.res, propAlign, layout.AlignStretch)
}

// SetGap sets the spacing between adjacent items and between lines.
// Negative entries clamp to zero during layout, not here.
func (f *Flex) SetGap(v responsive.Value[float64]) {
	responsive.Set(f.res, propGap, v)
	f.relayout()
}

// Gap returns the gap resolved at the current width.
func (f *Flex) Gap() float64 {
	return responsive.Get(f.res, propGap, 0.0)
}

// SetPlaceFunc replaces the callback invoked with each item's geometry
// after a layout pass.
func (f *Flex) SetPlaceFunc(place PlaceFunc) {
	f.place = place
}

func validDirection(d Direction) error {
	if !d.Valid() {
		return errs.New(errs.ErrCodeInvalidDirection, "unknown direction %d", d)
	}
	return nil
}

func validWrap(w Wrap) error {
	if !w.Valid() {
		return errs.New(errs.ErrCodeInvalidWrap, "unknown wrap mode %d", w)
	}
	return nil
}

func validJustify(j Justify) error {
	if !j.Valid() {
		return errs.New(errs.ErrCodeInvalidJustify, "unknown justify mode %d", j)
	}
	return nil
}

func validAlign(a Align) error {
	if !a.Valid() {
		return errs.New(errs.ErrCodeInvalidAlign, "unknown align mode %d", a)
	}
	return nil
}
