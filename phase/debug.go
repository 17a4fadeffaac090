package phase

import (
	"log"
	"os"
)

var debug bool

func init() {
	debug = os.Getenv("SLM_DEBUG") != ""
}

func logf(format string, args ...any) {
	log.Printf("phase: "+format, args...)
}
