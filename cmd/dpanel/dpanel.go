// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dpanel loads ARPES datasets from I05-HR Nexus files, text grid
// triplets and images, and shows them in a display panel.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/arpes/base/logx"
	"cogentcore.org/arpes/i05"
	"cogentcore.org/arpes/loader"
	"cogentcore.org/arpes/nexus"
	"cogentcore.org/arpes/panel"
	"cogentcore.org/arpes/panel/panelcore"
	"cogentcore.org/arpes/tensor"
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/cli"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the dpanel cli.
type Config struct {

	// Files are the data files to load. Their format is detected
	// from their contents.
	Files []string `posarg:"leftover" required:"-"`

	// Session is a TOML session file listing datasets to load
	// in addition to Files.
	Session string `flag:"s,session"`

	// Watch is a directory to watch for new Nexus and image files,
	// which are added to the panel as they appear.
	Watch string `flag:"w,watch"`

	// Text prints a summary of each dataset instead of opening a window.
	Text bool `flag:"t,text"`

	// Format is the metadata output format: yaml or json.
	Format string `cmd:"meta" flag:"f,format" default:"yaml"`

	// Scan is the scan type to extract metadata for, such as
	// "FS map", instead of the type each file is classified as.
	Scan string `cmd:"meta"`

	// Output is the directory rendered images are saved in.
	Output string `cmd:"render" flag:"o,output" default:"."`

	// Scale is the integer factor rendered images are enlarged by.
	Scale int `cmd:"render" default:"1"`

	// VeryVerbose shows debug messages.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Verbose shows informational messages.
	Verbose bool `flag:"v,verbose"`

	// Quiet only shows errors.
	Quiet bool `flag:"q,quiet"`
}

func main() {
	opts := cli.DefaultOptions("dpanel", "Loads ARPES datasets and shows them in a display panel.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Show, Name: "show", Doc: "Show loads the given files and session and shows them in a display panel.", Root: true},
		&cli.Cmd[*Config]{Func: Meta, Name: "meta", Doc: "Meta prints the scan metadata of I05-HR Nexus files."},
		&cli.Cmd[*Config]{Func: Tree, Name: "tree", Doc: "Tree lists the groups and datasets of HDF5 files."},
		&cli.Cmd[*Config]{Func: Render, Name: "render", Doc: "Render saves a grayscale image of each dataset."},
	)
}

func setLogger(c *Config) {
	logx.UserLevel = logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet)
	logx.SetDefaultLogger()
}

// load loads the files and session of the config.
func load(c *Config) ([]*tensor.Labeled, error) {
	arrays, err := loader.OpenAll(c.Files...)
	if err != nil {
		return nil, err
	}
	if c.Session == "" {
		return arrays, nil
	}
	ss, err := loader.OpenSession(c.Session)
	if err != nil {
		return nil, err
	}
	sa, err := ss.Load()
	if err != nil {
		return nil, err
	}
	return append(arrays, sa...), nil
}

// Show loads the given files and session and shows them in a display panel.
func Show(c *Config) error {
	setLogger(c)
	arrays, err := load(c)
	if err != nil {
		return err
	}
	if c.Text {
		return (&panel.Printer{W: os.Stdout}).Display(arrays)
	}
	w := panelcore.NewWindow("dpanel")
	if c.Watch != "" {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		w.Started = func() {
			errors.Log(loader.Watch(ctx, c.Watch, w.Add))
		}
	}
	return w.Display(arrays)
}

// Meta prints the scan metadata of I05-HR Nexus files.
func Meta(c *Config) error {
	setLogger(c)
	if len(c.Files) == 0 {
		return errors.New("dpanel meta: no files given")
	}
	format, err := loader.ParseMetaFormat(c.Format)
	if err != nil {
		return err
	}
	scan := i05.ScanTypeN
	if c.Scan != "" {
		scan, err = i05.ParseScanType(c.Scan)
		if err != nil {
			return err
		}
	}
	out := termenv.NewOutput(os.Stdout)
	for i, fn := range c.Files {
		attrs, err := metadata(fn, scan)
		if err != nil {
			return err
		}
		if len(c.Files) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, out.String(fn).Bold())
		}
		if err := loader.WriteMetadata(out, attrs, format); err != nil {
			return err
		}
	}
	return nil
}

// metadata returns the scan metadata of the given Nexus file for the
// given scan type, or for its classified type if that is [i05.ScanTypeN].
func metadata(fn string, scan i05.ScanType) (*tensor.Attrs, error) {
	if scan != i05.ScanTypeN {
		return i05.ExtractFile(fn, scan)
	}
	arr, err := i05.Load(fn)
	if err != nil {
		return nil, err
	}
	return arr.Attrs, nil
}

// Tree lists the groups and datasets of HDF5 files.
func Tree(c *Config) error {
	setLogger(c)
	if len(c.Files) == 0 {
		return errors.New("dpanel tree: no files given")
	}
	for _, fn := range c.Files {
		ents, err := nexus.Tree(fn)
		if err != nil {
			return err
		}
		if err := nexus.WriteTree(os.Stdout, ents); err != nil {
			return err
		}
	}
	return nil
}

// Render saves a grayscale image of each dataset as a png file
// in the output directory.
func Render(c *Config) error {
	setLogger(c)
	arrays, err := load(c)
	if err != nil {
		return err
	}
	for _, arr := range arrays {
		img, err := panel.Render(arr)
		if err != nil {
			return err
		}
		img = panel.Scale(img, c.Scale)
		name := filepath.Base(arr.Name)
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
		if err := imagex.Save(img, filepath.Join(c.Output, name)); err != nil {
			return err
		}
	}
	return nil
}
