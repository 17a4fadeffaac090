package slm

import (
	"unsafe"

	"github.com/BeatGlow/slm/dll"
)

// testLibrary behaves like the display library: it returns 1 from SLM_Disp_Close and
// SLM_Disp_Data_Single on success, and 0 from everything else.
type testLibrary struct {
	width, height uint16
	files         map[string]bool
	offsets       map[uint32][2]uint16
	open          map[uint32]bool
	fail          map[string]int32

	calls      []string
	lastScreen uint32
	lastFlag   uint32
	lastSize   [2]uint16
	lastData   []uint16
	lastSingle []float32
	lastDouble []float64
	lastGray   uint16
	lastPath   string
	lastBytes  []byte
	lastBitmap uintptr
}

func newTestLibrary() *testLibrary {
	return &testLibrary{
		width:   1920,
		height:  1080,
		files:   make(map[string]bool),
		offsets: make(map[uint32][2]uint16),
		open:    make(map[uint32]bool),
		fail:    make(map[string]int32),
	}
}

func (l *testLibrary) String() string {
	return "test library"
}

// call records the call and returns the forced failure code for name, if any.
func (l *testLibrary) call(name string, screen uint32) (int32, bool) {
	l.calls = append(l.calls, name)
	l.lastScreen = screen
	code, failed := l.fail[name]
	return code, failed
}

func (l *testLibrary) DispOpen(screen uint32) int32 {
	if code, failed := l.call(dll.ProcOpen, screen); failed {
		return code
	}
	l.open[screen] = true
	return 0
}

func (l *testLibrary) DispClose(screen uint32) int32 {
	if code, failed := l.call(dll.ProcClose, screen); failed {
		return code
	}
	delete(l.open, screen)
	return 1
}

func (l *testLibrary) DispInfo(screen uint32, width, height *uint16) int32 {
	if code, failed := l.call(dll.ProcInfo, screen); failed {
		return code
	}
	*width, *height = l.width, l.height
	return 0
}

func (l *testLibrary) DispData(screen uint32, width, height uint16, flag uint32, data *uint16) int32 {
	if code, failed := l.call(dll.ProcData, screen); failed {
		return code
	}
	l.lastFlag, l.lastSize = flag, [2]uint16{width, height}
	l.lastData = copySamples(data, int(width)*int(height))
	return 0
}

func (l *testLibrary) DispDataSingle(screen uint32, width, height uint16, flag uint32, data *float32) int32 {
	if code, failed := l.call(dll.ProcDataSingle, screen); failed {
		return code
	}
	l.lastFlag, l.lastSize = flag, [2]uint16{width, height}
	l.lastSingle = copySamples(data, int(width)*int(height))
	return 1
}

func (l *testLibrary) DispDataDouble(screen uint32, width, height uint16, flag uint32, data *float64) int32 {
	if code, failed := l.call(dll.ProcDataDouble, screen); failed {
		return code
	}
	l.lastFlag, l.lastSize = flag, [2]uint16{width, height}
	l.lastDouble = copySamples(data, int(width)*int(height))
	return 0
}

func (l *testLibrary) DispGrayScale(screen, flag uint32, gray uint16) int32 {
	if code, failed := l.call(dll.ProcGrayScale, screen); failed {
		return code
	}
	l.lastFlag, l.lastGray = flag, gray
	return 0
}

func (l *testLibrary) DispBMP(screen, flag uint32, bitmap uintptr) int32 {
	if code, failed := l.call(dll.ProcBMP, screen); failed {
		return code
	}
	l.lastFlag, l.lastBitmap = flag, bitmap
	return 0
}

func (l *testLibrary) readFile(name string, screen, flag uint32, path string) int32 {
	if code, failed := l.call(name, screen); failed {
		return code
	}
	l.lastFlag, l.lastPath = flag, path
	if !l.files[path] {
		return 1
	}
	return 0
}

func (l *testLibrary) DispReadImage(screen, flag uint32, path string) int32 {
	return l.readFile(dll.ProcReadImage, screen, flag, path)
}

func (l *testLibrary) DispReadImageA(screen, flag uint32, path []byte) int32 {
	l.lastBytes = append([]byte(nil), path...)
	return l.readFile(dll.ProcReadImageA, screen, flag, cstring(path))
}

func (l *testLibrary) DispReadCSV(screen, flag uint32, path string) int32 {
	return l.readFile(dll.ProcReadCSV, screen, flag, path)
}

func (l *testLibrary) DispReadCSVA(screen, flag uint32, path []byte) int32 {
	l.lastBytes = append([]byte(nil), path...)
	return l.readFile(dll.ProcReadCSVA, screen, flag, cstring(path))
}

func (l *testLibrary) SetOffset(screen uint32, x, y uint16) int32 {
	if code, failed := l.call(dll.ProcSetOffset, screen); failed {
		return code
	}
	l.offsets[screen] = [2]uint16{x, y}
	return 0
}

func (l *testLibrary) GetOffset(screen uint32, x, y *uint16) int32 {
	if code, failed := l.call(dll.ProcGetOffset, screen); failed {
		return code
	}
	offset := l.offsets[screen]
	*x, *y = offset[0], offset[1]
	return 0
}

func copySamples[T any](p *T, n int) []T {
	if p == nil || n == 0 {
		return nil
	}
	return append([]T(nil), unsafe.Slice(p, n)...)
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
