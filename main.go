package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/tactical/reload"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	noWatch := flag.Bool("no-watch", false, "disable prefab/script hot reload")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("tactical")
	ebiten.SetTPS(60)

	unit := newSession()
	if err := unit.Init(&reload.Host{Debug: *debug}); err != nil {
		log.Fatalf("init: %v", err)
	}
	defer unit.Shutdown()

	var bridge *reload.Bridge
	if !*noWatch {
		bridge = reload.NewBridge("prefabs", filepath.Join("prefabs", "scripts"))
		defer bridge.Close()
	}

	if err := ebiten.RunGame(&Game{unit: unit, bridge: bridge}); err != nil {
		log.Fatal(err)
	}
}
