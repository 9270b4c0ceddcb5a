// overlay is a terminal tracker showing which parts the running game owns.
//
// Usage:
//
//	MEMORY_SOURCE=/proc/<pid>/mem MEMORY_HOST_BASE=0x... overlay [-log overlay.log]
package main

import (
	"atlas-parts/catalog"
	"atlas-parts/inventory"
	"atlas-parts/layout"
	"atlas-parts/logger"
	"atlas-parts/memory"
	"atlas-parts/overlay"
	"context"
	"flag"
	"github.com/gdamore/tcell/v2"
	"io"
	"os"
)

const serviceName = "atlas-parts-overlay"

func main() {
	logPath := flag.String("log", "", "Path to append log output to (discarded if empty)")
	flag.Parse()

	l := logger.CreateLogger(serviceName)
	l.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			l.SetOutput(os.Stderr)
			l.WithError(err).Fatalf("Unable to open log file [%s].", *logPath)
		}
		defer f.Close()
		l.SetOutput(f)
	}

	lm, err := layout.Load(l)
	if err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Fatal("Unable to load memory layout.")
	}
	cm, err := catalog.LoadFromEnv(l)
	if err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Fatal("Unable to load part catalog.")
	}
	r, err := memory.OpenFromEnv(l)
	if err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Fatal("Unable to open emulator memory.")
	}
	defer r.Close()

	scr, err := tcell.NewScreen()
	if err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Fatal("Unable to create screen.")
	}
	if err = scr.Init(); err != nil {
		l.SetOutput(os.Stderr)
		l.WithError(err).Fatal("Unable to initialize screen.")
	}
	defer scr.Fini()

	s := inventory.NewSession(os.Getenv("MEMORY_SOURCE"), r, lm)
	overlay.Run(scr, overlay.NewView(l, context.Background(), s, cm))
}
