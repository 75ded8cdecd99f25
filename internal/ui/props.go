package ui

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// propertyPanel edits the properties of one component. Values are opaque
// strings and are written back verbatim.
type propertyPanel struct {
	target schematic.Component
	keys   []string
	fields []widget.Editor
	list   widget.List

	apply widget.Clickable
	close widget.Clickable
}

func (p *propertyPanel) edit(c schematic.Component) {
	p.target = c
	p.keys = nil
	p.fields = nil
	if c == nil {
		return
	}
	p.keys = c.PropertyKeys()
	p.fields = make([]widget.Editor, len(p.keys))
	for i, k := range p.keys {
		p.fields[i].SingleLine = true
		p.fields[i].Submit = true
		p.fields[i].SetText(c.Property(k))
	}
	p.list.Axis = layout.Vertical
}

// commit writes every changed field back and returns how many changed.
func (p *propertyPanel) commit() int {
	if p.target == nil {
		return 0
	}
	n := 0
	for i, k := range p.keys {
		if v := p.fields[i].Text(); v != p.target.Property(k) {
			p.target.SetProperty(k, v)
			n++
		}
	}
	return n
}

func (p *propertyPanel) focused(gtx layout.Context) bool {
	for i := range p.fields {
		if gtx.Focused(&p.fields[i]) {
			return true
		}
	}
	return false
}

func (a *App) commitProperties() {
	if n := a.props.commit(); n > 0 {
		a.markDirty()
		a.setStatus(fmt.Sprintf("Updated %d properties", n))
	}
}

func (a *App) layoutProperties(gtx layout.Context) layout.Dimensions {
	p := &a.props
	if p.target == nil {
		return layout.Dimensions{}
	}
	th := a.gvTheme

	submitted := false
	for i := range p.fields {
		for {
			ev, ok := p.fields[i].Update(gtx)
			if !ok {
				break
			}
			if _, ok := ev.(widget.SubmitEvent); ok {
				submitted = true
			}
		}
	}
	if submitted || p.apply.Clicked(gtx) {
		a.commitProperties()
	}
	if p.close.Clicked(gtx) {
		p.edit(nil)
		return layout.Dimensions{}
	}

	width := gtx.Dp(unit.Dp(240))
	gtx.Constraints.Min.X = width
	gtx.Constraints.Max.X = width

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.H6(th.Theme, p.target.Kind().Description()).Layout),
			layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				if len(p.keys) == 0 {
					return material.Body2(th.Theme, "No properties").Layout(gtx)
				}
				return material.List(th.Theme, &p.list).Layout(gtx, len(p.keys), func(gtx layout.Context, i int) layout.Dimensions {
					return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
							layout.Rigid(material.Caption(th.Theme, p.keys[i]).Layout),
							layout.Rigid(material.Editor(th.Theme, &p.fields[i], p.keys[i]).Layout),
						)
					})
				})
			}),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
					layout.Rigid(material.Button(th.Theme, &p.apply, "Apply").Layout),
					layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
					layout.Rigid(material.Button(th.Theme, &p.close, "Close").Layout),
				)
			}),
		)
	})
}
