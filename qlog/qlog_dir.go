package qlog

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rtt-go/rtt-go/internal/utils"
	"github.com/rtt-go/rtt-go/logging"
)

// QlogDir contains the value of the QLOGDIR environment variable.
// If it is the empty string ("") no qlog output is written.
var QlogDir string

func init() {
	QlogDir = os.Getenv("QLOGDIR")
	if QlogDir != "" {
		if _, err := os.Stat(QlogDir); os.IsNotExist(err) {
			if err := os.MkdirAll(QlogDir, 0o755); err != nil {
				log.Fatalf("failed to create qlog dir %s: %v", QlogDir, err)
			}
		}
	}
}

// DefaultConnectionTracer creates a qlog file in the qlog directory specified
// by the QLOGDIR environment variable. File names are <connectionID>.qlog.
// Returns nil if QLOGDIR is not set.
func DefaultConnectionTracer(connectionID string) *logging.ConnectionTracer {
	if QlogDir == "" {
		return nil
	}
	path := fmt.Sprintf("%s/%s.qlog", strings.TrimRight(QlogDir, "/"), connectionID)
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Failed to create qlog file %s: %s", path, err.Error())
		return nil
	}
	return NewConnectionTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f), connectionID)
}
