package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gioui.org/x/explorer"

	"github.com/OpenTraceLab/OpenTraceSchematic/pkg/schematic"
)

// open asks for a schematic file and swaps it in on the UI goroutine.
func (a *App) open() {
	go func() {
		file, err := a.explorer.ChooseFile(".json")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.log.Error("file picker", "err", err)
			}
			return
		}
		defer file.Close()

		path := ""
		if f, ok := file.(*os.File); ok {
			path = f.Name()
		}
		d, err := schematic.Load(file)
		a.post(func() {
			if err != nil {
				a.setStatus(err.Error())
				a.log.Error("load schematic", "path", path, "err", err)
				return
			}
			a.setDiagram(d, path)
			a.setStatus("Opened " + path)
		})
	}()
}

// save writes the diagram to its current path, or asks for a new file when
// there is none or asNew is set.
func (a *App) save(asNew bool) {
	var buf bytes.Buffer
	if err := a.diagram.Save(&buf); err != nil {
		a.setStatus(err.Error())
		return
	}
	data := buf.Bytes()

	if !asNew && a.filepath != "" {
		if err := os.WriteFile(a.filepath, data, 0644); err != nil {
			a.setStatus(err.Error())
			a.log.Error("save schematic", "path", a.filepath, "err", err)
			return
		}
		a.saved(a.filepath)
		return
	}

	go func() {
		file, err := a.explorer.CreateFile("schematic.json")
		if err != nil {
			if !errors.Is(err, explorer.ErrUserDecline) {
				a.log.Error("file picker", "err", err)
			}
			return
		}
		path := ""
		if f, ok := file.(*os.File); ok {
			path = f.Name()
		}
		_, err = file.Write(data)
		if cerr := file.Close(); err == nil {
			err = cerr
		}
		a.post(func() {
			if err != nil {
				a.setStatus(fmt.Sprintf("save: %v", err))
				a.log.Error("save schematic", "path", path, "err", err)
				return
			}
			a.saved(path)
		})
	}()
}

func (a *App) saved(path string) {
	if path != "" {
		a.filepath = path
	}
	a.dirty = false
	a.updateTitle()
	a.setStatus("Saved " + path)
	a.log.Info("saved schematic", "path", path)
}
