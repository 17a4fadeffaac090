// Package dll loads the HDSLM display library and resolves its entry points.
//
// The library is process-wide state: the operating system loader keeps one image per path, and
// so does this package. A loaded library is never unloaded; [Open] with the same path returns
// the same [Library] for the lifetime of the process.
//
// The entry points are not known to be reentrant, a Library must not be called from more than
// one goroutine at a time.
package dll

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
)

// Entry points exported by the display library.
const (
	ProcOpen       = "SLM_Disp_Open"
	ProcClose      = "SLM_Disp_Close"
	ProcInfo       = "SLM_Disp_Info"
	ProcData       = "SLM_Disp_Data"
	ProcDataSingle = "SLM_Disp_Data_Single"
	ProcDataDouble = "SLM_Disp_Data_Double"
	ProcGrayScale  = "SLM_Disp_GrayScale"
	ProcBMP        = "SLM_Disp_BMP"
	ProcReadImage  = "SLM_Disp_ReadImage"
	ProcReadImageA = "SLM_Disp_ReadImage_A"
	ProcReadCSV    = "SLM_Disp_ReadCSV"
	ProcReadCSVA   = "SLM_Disp_ReadCSV_A"
	ProcSetOffset  = "SLM_Set_Offset"
	ProcGetOffset  = "SLM_Get_Offset"
)

// Errors
var (
	ErrNotSupported = errors.New("dll: not supported on this platform")
	ErrMissingProc  = errors.New("dll: missing entry point")
)

// codeInvalidArgument is returned by calls whose arguments could not be marshaled. The library
// itself only returns 0 and 1.
const codeInvalidArgument = -1

var debug bool

func init() {
	debug = os.Getenv("SLM_DEBUG") != ""
}

var (
	loadedMu sync.Mutex
	loaded   = make(map[string]*Library)
)

// Open loads the display library at path, or DefaultPath if path is empty.
func Open(path string) (*Library, error) {
	if path == "" {
		path = DefaultPath
	}

	loadedMu.Lock()
	defer loadedMu.Unlock()

	if l, ok := loaded[path]; ok {
		return l, nil
	}

	l, err := load(path)
	if err != nil {
		return nil, err
	}
	if debug {
		log.Printf("dll: loaded %s", path)
	}
	loaded[path] = l
	return l, nil
}

func (l *Library) String() string {
	return fmt.Sprintf("HDSLM library %s", l.path)
}

func missing(name string, err error) error {
	return fmt.Errorf("%w %s: %v", ErrMissingProc, name, err)
}

// narrow returns a pointer to a NUL terminated byte string, or nil if b is not terminated.
func narrow(b []byte) *byte {
	if len(b) == 0 || b[len(b)-1] != 0 {
		return nil
	}
	return &b[0]
}
