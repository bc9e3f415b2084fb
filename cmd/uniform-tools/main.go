package main

import (
	"fmt"
	"log"
	"os"

	"github.com/tripplexbns-code/ainiform-sub000/internal/annotation"
	"github.com/tripplexbns-code/ainiform-sub000/internal/detection"
	"github.com/tripplexbns-code/ainiform-sub000/internal/imaging"
	"github.com/tripplexbns-code/ainiform-sub000/internal/server"
	"github.com/tripplexbns-code/ainiform-sub000/internal/store"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("uniform-tools %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("uniform-tools - MCP server for school uniform analysis")
			fmt.Println()
			fmt.Println("Usage: uniform-tools [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  UNIFORM_TOOLS_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println("  UNIFORM_DETECTOR_URL=<url>       Component detector service endpoint")
			fmt.Println("  UNIFORM_DB_PATH=<path>           Design database file (default: no store)")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("UNIFORM_TOOLS_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Uniform Tools Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	// The detector is optional; without one the detection section of every
	// annotation carries an availability error.
	var detector detection.ComponentDetector
	if url := os.Getenv("UNIFORM_DETECTOR_URL"); url != "" {
		detector = detection.NewYOLOClient(url)
		log.Printf("Using component detector at %s", url)
	} else {
		log.Printf("UNIFORM_DETECTOR_URL not set; component detection disabled")
	}

	var designs *store.DesignStore
	if dbPath := os.Getenv("UNIFORM_DB_PATH"); dbPath != "" {
		var err error
		designs, err = store.Open(dbPath)
		if err != nil {
			log.Fatalf("Failed to open design database: %v", err)
		}
		defer designs.Close()
	}

	cache := imaging.NewImageCache()
	annotator := annotation.New(cache, detector)

	srv := server.New(cache, annotator, designs)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
