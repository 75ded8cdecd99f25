package ui

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

type toolButton struct {
	click widget.Clickable
	icon  *widget.Icon
	desc  string
	act   action
}

type toolbar struct {
	app     *App
	buttons []*toolButton

	partsBtn  widget.Clickable
	partsMenu *menu.DropdownMenu
}

func (t *toolbar) init(a *App) {
	t.app = a
	for _, b := range []struct {
		data []byte
		desc string
		act  action
	}{
		{icons.FileFolderOpen, "Open (Ctrl+O)", actOpen},
		{icons.ContentSave, "Save (Ctrl+S)", actSave},
		{icons.ContentContentCut, "Cut (Ctrl+X)", actCut},
		{icons.ContentContentCopy, "Copy (Ctrl+C)", actCopy},
		{icons.ContentContentPaste, "Paste (Ctrl+V)", actPaste},
		{icons.ActionDelete, "Delete (Del)", actDelete},
		{icons.ImageRotateRight, "Rotate (R)", actRotate},
		{icons.ActionCheckCircle, "Check labels (Ctrl+K)", actCheck},
		{icons.NavigationFullscreen, "Fit (F)", actFit},
		{icons.ImageBrightness6, "Theme (Ctrl+T)", actTheme},
	} {
		icon, err := widget.NewIcon(b.data)
		if err != nil {
			a.log.Warn("load icon", "desc", b.desc, "err", err)
			continue
		}
		t.buttons = append(t.buttons, &toolButton{icon: icon, desc: b.desc, act: b.act})
	}
	t.partsMenu = t.buildPartsMenu()
}

func (t *toolbar) buildPartsMenu() *menu.DropdownMenu {
	parts := schematic.Parts()
	opts := make([]menu.MenuOption, 0, len(parts))
	for _, kind := range parts {
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				t.app.placePart(kind)
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, kind.Description())
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(220)
	return drop
}

func (t *toolbar) layout(gtx layout.Context) layout.Dimensions {
	a := t.app
	th := a.gvTheme

	for _, b := range t.buttons {
		if b.click.Clicked(gtx) {
			a.do(b.act)
		}
	}
	if t.partsBtn.Clicked(gtx) {
		t.partsMenu.ToggleVisibility(gtx)
	}

	children := make([]layout.FlexChild, 0, len(t.buttons)+4)
	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		dims := material.Button(th.Theme, &t.partsBtn, "Add part").Layout(gtx)
		t.partsMenu.Layout(gtx, th)
		return dims
	}))
	children = append(children, layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout))
	for _, b := range t.buttons {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.IconButton(th.Theme, &b.click, b.icon, b.desc)
			btn.Size = unit.Dp(20)
			btn.Inset = layout.UniformInset(unit.Dp(6))
			btn.Background = th.Bg2
			btn.Color = th.Palette.Fg
			return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, btn.Layout)
		}))
	}
	children = append(children, layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
		return layout.E.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			lbl := material.Body2(th.Theme, t.statusText())
			lbl.Color = th.Palette.Fg
			return lbl.Layout(gtx)
		})
	}))

	inset := layout.Inset{Top: 8, Bottom: 8, Left: 8, Right: 8}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (t *toolbar) statusText() string {
	a := t.app
	info := fmt.Sprintf("Components: %d | Zoom: %.2fx", a.diagram.Len(), a.diagram.View.Scale)
	if a.status != "" {
		info = a.status + " | " + info
	}
	return info
}
