package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"blander/internal/commands"
	"blander/internal/config"
	"blander/internal/debug"
	"blander/internal/editor"
	"blander/internal/fonts"
	"blander/internal/inspector"
	"blander/internal/logger"
	"blander/internal/primitives"
	"blander/internal/scene"
	"blander/internal/terminal"
	"blander/internal/viewport"
)

func main() {
	configPath := flag.String("config", config.Path, "preferences file")
	logPath := flag.String("log", logger.FilePath, "log file")
	verbose := flag.Bool("v", false, "log debug records")
	flag.Parse()

	log := logger.New(*logPath)
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	editor.SetLogger(slog.New(slog.NewTextHandler(log, &slog.HandlerOptions{Level: level})))

	prefs, err := config.Load(*configPath)
	if err != nil {
		editor.Logger().Warn("preferences not loaded, using defaults", "err", err)
	}
	if _, statErr := os.Stat(*configPath); os.IsNotExist(statErr) {
		if err := config.Save(*configPath, prefs); err != nil {
			editor.Logger().Warn("preferences not saved", "err", err)
		}
	}
	keys, err := editor.ParseKeymap(prefs.Keys)
	if err != nil {
		editor.Logger().Warn("key bindings ignored", "err", err)
		keys = editor.DefaultKeymap()
	}

	s := editor.New(editor.Options{
		HistoryLimit:       prefs.HistoryLimit,
		Highlight:          prefs.HighlightEmissive,
		Primitives:         prefs.Registry(),
		PickColor:          scene.PaletteColor(prefs.Palette, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))),
		VertexHelperRadius: prefs.VertexHelperRadius,
		FaceHelperRadius:   prefs.FaceHelperRadius,
	})

	reg := commands.NewRegistry()
	editor.RegisterCommands(reg, s, log)

	dbg := debug.New()
	dbg.ShowFPS = prefs.ShowFPS
	dbg.Stats = func() []string {
		tris := 0
		for _, e := range s.Scene().Entities() {
			if e.Geometry != nil {
				tris += e.Geometry.TriangleCount()
			}
		}
		return []string{
			fmt.Sprintf("Entities: %d", s.Scene().Len()),
			fmt.Sprintf("Triangles: %d", tris),
		}
	}

	fontPath, _ := fonts.Pick(fonts.BaseDirs(), "mono")
	vp := viewport.New(s, viewport.Options{
		Title:       "blander",
		Keymap:      keys,
		GridVisible: prefs.GridVisible,
		Inspector:   inspector.Attach(s),
		Terminal:    terminal.New(log, reg),
		Debug:       dbg,
		FontPath:    fontPath,
	})
	registerViewCommands(reg, vp, dbg, log)

	var changes <-chan config.Prefs
	var watchErrs <-chan error
	if w, err := config.Watch(*configPath); err != nil {
		editor.Logger().Warn("preferences will not reload", "err", err)
	} else {
		defer w.Close()
		changes, watchErrs = w.Changes(), w.Errors()
	}

	frame := func() {
		select {
		case p := <-changes:
			km, err := editor.ParseKeymap(p.Keys)
			if err != nil {
				editor.Logger().Warn("key bindings ignored", "err", err)
			} else {
				vp.SetKeymap(km)
			}
			vp.SetGridVisible(p.GridVisible)
			dbg.ShowFPS = p.ShowFPS
			editor.Logger().Info("preferences reloaded", "path", *configPath)
		case err := <-watchErrs:
			editor.Logger().Warn("preferences reload failed", "err", err)
		default:
		}
	}

	editor.Logger().Info("editor started", "kinds", strings.Join(kindNames(), ","))
	vp.Run(frame)
}

// registerViewCommands adds console commands that toggle viewport overlays.
func registerViewCommands(reg *commands.Registry, vp *viewport.Viewport, dbg *debug.Debug, log *logger.Logger) {
	toggle := func(name string, set func(bool)) {
		reg.Register(name, name+" <on|off>", nil, func(args []string) error {
			if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
				return fmt.Errorf("%s: expected on or off", name)
			}
			set(args[0] == "on")
			log.Log(name + " " + args[0])
			return nil
		})
	}
	toggle("grid", vp.SetGridVisible)
	toggle("fps", func(on bool) { dbg.ShowFPS = on })
	toggle("mem", func(on bool) { dbg.ShowMemAlloc = on })
}

func kindNames() []string {
	var names []string
	for _, k := range primitives.Kinds() {
		names = append(names, string(k))
	}
	return names
}
