package ui

import (
	"fmt"
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/charmbracelet/log"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer"
	"github.com/OpenTraceLab/OpenTraceSeq/pkg/sequencer/render"
)

// App drives the Gio sequencer viewer.
type App struct {
	Window *app.Window
	Theme  *theme.Theme
	State  *AppState

	settings *Settings
	logger   *log.Logger
	ops      op.Ops

	sequencer   *render.Widget
	query       widget.Editor
	matcherBtn  widget.Clickable
	matcherMenu *menu.DropdownMenu
	reloadBtn   widget.Clickable
	reloadIcon  *widget.Icon

	focused  bool
	lastSize image.Point
}

// New wires the Gio window, theme and state together. settings may be nil.
func New(window *app.Window, state *AppState, settings *Settings, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	if settings == nil {
		settings, _ = LoadSettings("")
	}
	th := theme.NewTheme("", nil, true)
	th.WithPalette(theme.Palette{
		Bg:         color.NRGBA{R: 36, G: 36, B: 36, A: 255},
		Fg:         color.NRGBA{R: 220, G: 220, B: 220, A: 255},
		ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
		ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
		Bg2:        color.NRGBA{R: 61, G: 56, B: 55, A: 255},
	})
	w := render.NewWidget()
	w.Config = state.Project().Config()
	w.Options = state.Options()
	a := &App{
		Window:    window,
		Theme:     th,
		State:     state,
		settings:  settings,
		logger:    logger,
		sequencer: w,
	}
	a.query.SingleLine = true
	a.query.Submit = true
	if icon, err := widget.NewIcon(icons.NavigationRefresh); err == nil {
		a.reloadIcon = icon
	} else {
		logger.Warn("load reload icon", "err", err)
	}
	a.matcherMenu = a.buildMatcherMenu()
	return a
}

// buildMatcherMenu lists the searchbar matchers, highlighting the selected
// one.
func (a *App) buildMatcherMenu() *menu.DropdownMenu {
	matchers := a.State.Search().Matchers()
	opts := make([]menu.MenuOption, 0, len(matchers))
	for i, m := range matchers {
		idx := i
		name := m.Name()
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				if err := a.State.SelectMatcher(idx); err != nil {
					return err
				}
				a.logger.Debug("matcher changed", "matcher", name)
				a.settings.Matcher = name
				a.saveSettings()
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, name)
				if sel, _ := a.State.Search().Selected(); sel == idx {
					lbl.Color = th.Palette.ContrastBg
				}
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(160)
	return drop
}

// Run processes window events until the window is closed.
func (a *App) Run() error {
	for {
		switch ev := a.Window.Event().(type) {
		case app.DestroyEvent:
			a.saveSettings()
			return ev.Err
		case app.ConfigEvent:
			if ev.Config.Focused != a.focused {
				a.logger.Debug("window focus changed", "focused", ev.Config.Focused)
			}
			a.focused = ev.Config.Focused
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.settings.Width = int(gtx.Metric.PxToDp(ev.Size.X))
			a.settings.Height = int(gtx.Metric.PxToDp(ev.Size.Y))
			a.Layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

// Layout draws the toolbar, the sequencer and the status line.
func (a *App) Layout(gtx layout.Context) layout.Dimensions {
	a.update(gtx)
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutSequencer),
		layout.Rigid(a.layoutStatus),
	)
}

func (a *App) update(gtx layout.Context) {
	for {
		ev, ok := a.query.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.ChangeEvent); ok {
			a.State.SetQuery(a.query.Text())
			a.logger.Debug("filter changed", "query", a.query.Text(), "tracks", a.State.View().ItemCount())
		}
	}
	reload := a.reloadBtn.Clicked(gtx)
	for {
		ev, ok := gtx.Event(key.Filter{Name: "R", Required: key.ModShortcut})
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok && e.State == key.Press {
			reload = true
		}
	}
	if reload {
		a.reload()
	}
	for _, id := range []string{sequencer.RegionHeader, sequencer.RegionContent} {
		if a.sequencer.Pressed(gtx, id) {
			a.logger.Debug("region pressed", "region", id)
		}
	}
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		a.logger.Warn("save settings", "path", a.settings.Path(), "err", err)
	}
}

func (a *App) reload() {
	if err := a.State.Reload(); err != nil {
		a.logger.Error("reload project", "err", err)
		return
	}
	a.sequencer.Config = a.State.Project().Config()
	a.logger.Info("project reloaded", "tracks", a.State.Project().ItemCount())
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	_, m := a.State.Search().Selected()
	inset := layout.UniformInset(unit.Dp(6))
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
				ed := material.Editor(a.Theme.Theme, &a.query, "Filter tracks")
				return ed.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.matcherBtn.Clicked(gtx) {
					a.matcherMenu.ToggleVisibility(gtx)
				}
				dims := material.Button(a.Theme.Theme, &a.matcherBtn, m.Name()).Layout(gtx)
				a.matcherMenu.Layout(gtx, a.Theme)
				return dims
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				if a.reloadIcon == nil {
					return material.Button(a.Theme.Theme, &a.reloadBtn, "Reload").Layout(gtx)
				}
				return material.IconButton(a.Theme.Theme, &a.reloadBtn, a.reloadIcon, "Reload").Layout(gtx)
			}),
		)
	})
}

func (a *App) layoutSequencer(gtx layout.Context) layout.Dimensions {
	if size := gtx.Constraints.Max; size != a.lastSize {
		a.logger.Debug("sequencer resized", "width", size.X, "height", size.Y)
		a.lastSize = size
	}
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	return a.sequencer.Layout(gtx, a.State.View(), a.focused)
}

func (a *App) layoutStatus(gtx layout.Context) layout.Dimensions {
	text := a.State.Status()
	if f := a.sequencer.LastFrame(); f != nil && a.State.LastError() == nil {
		text = fmt.Sprintf("%s | %d/%d frames visible | ticks every %d, labels every %d",
			text, f.Zoom.VisibleFrameCount, f.Zoom.FrameCount,
			f.Decimation.FrameStep, f.Decimation.ModFrameCount)
	}
	inset := layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(6), Right: unit.Dp(6)}
	return inset.Layout(gtx, material.Caption(a.Theme.Theme, text).Layout)
}
