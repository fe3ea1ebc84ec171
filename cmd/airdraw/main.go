package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/jkatak/airdraw/internal/app"
	"github.com/jkatak/airdraw/internal/config"
	"github.com/jkatak/airdraw/internal/server"
	"github.com/jkatak/airdraw/internal/store"
	"github.com/jkatak/airdraw/internal/tray"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	noTray := flag.Bool("no-tray", false, "disable the system tray icon")
	flag.Parse()

	fmt.Println("AirDraw - Webcam Paint Interface")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the store
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	dbPath := filepath.Join(dataDir, "airdraw.db")
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	frames := server.NewFrameBuffer()
	a := app.New(cfg, st, frames)

	// Find web directory
	webDir := findWebDir()
	if webDir != "" {
		fmt.Printf("Serving static files from: %s\n", webDir)
	}

	// Configure and start the HTTP server alongside the paint loop
	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Frames:    frames,
	})

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.ServerAddr)
		if err := srv.ListenAndServe(cfg.ServerAddr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if !*noTray {
		t := tray.New()
		t.OnToggle(a.SetEnabled)
		t.OnClear(a.Session().ClearCanvas)
		t.OnQuit(a.Stop)
		a.OnModeChange(t.SetMode)
		go t.Run()
		defer t.Quit()
	}

	if err := a.Run(); err != nil {
		log.Fatalf("Paint loop failed: %v", err)
	}
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.airdraw/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	// Check relative paths from current working directory
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".airdraw", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
