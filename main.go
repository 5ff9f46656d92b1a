package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/filterstate"
	"github.com/rkallio/gridsift/logging"
)

var Version = "dev"

var (
	logFile     = flag.String("debug", "", "Write Debug Logs to file")
	viewFlag    = flag.String("view", "", "Initial view string (a share link's query part)")
	sessionFlag = flag.String("session", "", "Session sidecar file; the current view is saved there and restored on next start")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cleanup, err := logging.Setup(*logFile)
	if err != nil {
		log.Fatalf("Failed to setup logging %v", err)
	}
	defer cleanup()

	log.Println("gridsift: Started")

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: gridsift [--debug debug.log] [--view query] [--session file] <data.csv|data.db>")
		os.Exit(1)
	}

	inputPath := args[0]

	m, err := loadModelAuto(inputPath)
	if err != nil {
		log.Fatalf("failed to load %q: %v", inputPath, err)
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		log.Printf("Tea program error: %v", err)
		fmt.Println("Error:", err)
	}
}

func loadModelAuto(path string) (*model, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var points []Point
	var err error
	switch ext {
	case ".csv":
		points, err = loadPointsCSV(path)
	case ".db", ".sqlite":
		points, err = loadPointsSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .db)", ext)
	}
	if err != nil {
		return nil, err
	}

	initial := filterstate.Decode(initialView())

	m := newModel(points, initial, *sessionFlag)
	m.InitialPath = path
	return m, nil
}

// initialView resolves the view string the session starts from: an explicit
// --view wins, then the session sidecar from a previous run, then defaults.
// The string is the source of truth exactly once, here; afterwards the
// in-memory state is authoritative and gets echoed back out.
func initialView() string {
	if *viewFlag != "" {
		return *viewFlag
	}
	if *sessionFlag == "" {
		return ""
	}
	view, err := loadSession(*sessionFlag)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warnf("Session %q unreadable: %v", *sessionFlag, err)
		}
		return ""
	}
	return view
}
