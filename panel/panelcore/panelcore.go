// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package panelcore provides a Cogent Core window for browsing
// loaded datasets, implementing [panel.Displayer].
package panelcore

import (
	"image"
	"sync"

	"cogentcore.org/arpes/panel"
	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/keymap"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/units"
)

// Window shows a list of dataset names next to an image and summary
// of the selected dataset. The up and down keys move the selection,
// wrapping around at either end of the list.
type Window struct {

	// Title is the window title.
	Title string

	// Started, if set, is called in a new goroutine once the window
	// is first shown, for example to start adding datasets with [Window.Add].
	Started func()

	// mu guards shown and pending
	mu      sync.Mutex
	shown   bool
	pending []*tensor.Labeled

	arrays []*tensor.Labeled
	names  []string
	sel    *panel.Selection

	list  *core.List
	image *core.Image
	info  *core.Text
}

// NewWindow returns a new window with the given title.
func NewWindow(title string) *Window {
	return &Window{Title: title, sel: panel.NewSelection(0)}
}

// Display adds the given datasets and runs the window until it is closed.
func (w *Window) Display(arrays []*tensor.Labeled) error {
	for _, arr := range arrays {
		w.append(arr)
	}
	b := core.NewBody(w.Title)
	w.build(b)
	b.OnShow(func(e events.Event) {
		pending := w.markShown()
		for _, arr := range pending {
			w.append(arr)
		}
		if len(pending) > 0 {
			w.list.Update()
			w.show()
		}
		if w.Started != nil {
			go w.Started()
		}
	})
	b.RunMainWindow()
	return nil
}

// Add appends a dataset to the window. It is safe to call from
// another goroutine. Datasets added before the window is shown
// are held until it is.
func (w *Window) Add(arr *tensor.Labeled) {
	w.mu.Lock()
	if !w.shown {
		w.pending = append(w.pending, arr)
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	w.list.AsyncLock()
	defer w.list.AsyncUnlock()
	w.append(arr)
	w.list.Update()
}

// markShown records that the window is shown and returns
// the datasets added before then.
func (w *Window) markShown() []*tensor.Labeled {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shown = true
	pending := w.pending
	w.pending = nil
	return pending
}

func (w *Window) append(arr *tensor.Labeled) {
	w.arrays = append(w.arrays, arr)
	w.names = append(w.names, arr.Name)
	w.sel.SetLen(len(w.arrays))
}

func (w *Window) build(b *core.Body) {
	sp := core.NewSplits(b)

	w.list = core.NewList(sp)
	w.list.SetSlice(&w.names).SetReadOnly(true)
	w.list.OnSelect(func(e events.Event) {
		w.sel.Set(w.list.SelectedIndex)
		w.show()
	})

	fr := core.NewFrame(sp)
	fr.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
	})
	w.image = core.NewImage(fr)
	w.image.Styler(func(s *styles.Style) {
		s.Min.Set(units.Em(30))
	})
	w.info = core.NewText(fr)
	sp.SetSplits(.25, .75)

	b.Scene.OnFirst(events.KeyChord, func(e events.Event) {
		switch keymap.Of(e.KeyChord()) {
		case keymap.MoveDown:
			e.SetHandled()
			w.selectIndex(w.sel.Next())
		case keymap.MoveUp:
			e.SetHandled()
			w.selectIndex(w.sel.Prev())
		}
	})
	w.show()
}

// selectIndex selects the given list row, which updates the display.
func (w *Window) selectIndex(i int) {
	if i < 0 {
		return
	}
	w.list.ScrollToIndex(i)
	w.list.SelectIndexEvent(i, events.SelectOne)
}

// show updates the image and summary for the selected dataset.
func (w *Window) show() {
	i := w.sel.Index()
	if i < 0 {
		w.info.SetText("no datasets")
		w.info.Update()
		return
	}
	arr := w.arrays[i]
	img, err := panel.Render(arr)
	if errors.Log(err) != nil {
		img = image.NewGray(image.Rect(0, 0, 1, 1))
	}
	w.image.SetImage(img)
	w.info.SetText(panel.Summary(arr))
	w.image.Update()
	w.info.Update()
}
