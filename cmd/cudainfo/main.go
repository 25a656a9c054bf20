// Command cudainfo loads the CUDA driver and reports its version, devices,
// and which driver entry points it exports.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gogpu/cuda"
)

func main() {
	var (
		verbose = flag.Bool("v", false, "log driver loading at debug level")
		symbols = flag.Bool("symbols", false, "list every driver entry point and its status")
	)
	flag.Parse()

	if *verbose {
		cuda.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	drv, err := cuda.Get()
	if err != nil {
		log.Fatalf("CUDA not available: %v", err)
	}
	defer func() {
		if err := drv.Close(); err != nil {
			log.Printf("Failed to release driver: %v", err)
		}
	}()

	log.Printf("Driver: %s (CUDA %s)\n", cuda.LibraryName, drv.DriverVersion())
	if err := drv.InitResult(); err != nil {
		log.Printf("cuInit failed: %v\n", err)
	} else {
		printDevices(drv)
	}

	if *symbols {
		printSymbols(drv)
	}
}

func printDevices(drv *cuda.Driver) {
	n, err := drv.DeviceGetCount()
	if err != nil {
		log.Printf("Failed to count devices: %v\n", err)
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"#", "Name", "UUID"})
	for i := 0; i < n; i++ {
		dev, err := drv.DeviceGet(i)
		if err != nil {
			log.Printf("Device %d: %v\n", i, err)
			continue
		}
		name, err := drv.DeviceGetName(dev)
		if err != nil {
			name = err.Error()
		}
		uuid := "-"
		if u, err := drv.DeviceGetUuid(dev); err == nil {
			uuid = u.String()
		}
		tw.AppendRow(table.Row{i, name, uuid})
	}
	tw.Render()
}

func printSymbols(drv *cuda.Driver) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Symbol", "Export", "Required", "Platform", "State"})
	for _, s := range drv.Symbols() {
		platform := s.Platform
		if platform == "" {
			platform = "all"
		}
		tw.AppendRow(table.Row{s.Name, s.Export, s.Required, platform, s.State})
	}
	tw.Render()
}
