//go:build darwin || freebsd || linux

package dll

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// DefaultPath is the library name used when none is configured.
var DefaultPath = defaultPath()

func defaultPath() string {
	if runtime.GOOS == "darwin" {
		return "libHDSLMFunc.dylib"
	}
	return "libHDSLMFunc.so"
}

// Library is a loaded display library.
type Library struct {
	path   string
	handle uintptr

	open       func(screen uint32) int32
	close      func(screen uint32) int32
	info       func(screen uint32, width, height *uint16) int32
	data       func(screen uint32, width, height uint16, flag uint32, data *uint16) int32
	dataSingle func(screen uint32, width, height uint16, flag uint32, data *float32) int32
	dataDouble func(screen uint32, width, height uint16, flag uint32, data *float64) int32
	grayScale  func(screen, flag uint32, gray uint16) int32
	bmp        func(screen, flag uint32, bitmap uintptr) int32
	readImage  func(screen, flag uint32, path *int32) int32
	readImageA func(screen, flag uint32, path *byte) int32
	readCSV    func(screen, flag uint32, path *int32) int32
	readCSVA   func(screen, flag uint32, path *byte) int32
	setOffset  func(screen uint32, x, y uint16) int32
	getOffset  func(screen uint32, x, y *uint16) int32
}

func load(path string) (*Library, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dll: load %s: %w", path, err)
	}

	l := &Library{
		path:   path,
		handle: handle,
	}
	for _, p := range []struct {
		name string
		fn   any
	}{
		{ProcOpen, &l.open},
		{ProcClose, &l.close},
		{ProcInfo, &l.info},
		{ProcData, &l.data},
		{ProcDataSingle, &l.dataSingle},
		{ProcDataDouble, &l.dataDouble},
		{ProcGrayScale, &l.grayScale},
		{ProcBMP, &l.bmp},
		{ProcReadImage, &l.readImage},
		{ProcReadImageA, &l.readImageA},
		{ProcReadCSV, &l.readCSV},
		{ProcReadCSVA, &l.readCSVA},
		{ProcSetOffset, &l.setOffset},
		{ProcGetOffset, &l.getOffset},
	} {
		sym, err := purego.Dlsym(handle, p.name)
		if err != nil {
			_ = purego.Dlclose(handle)
			return nil, missing(p.name, err)
		}
		purego.RegisterFunc(p.fn, sym)
	}
	return l, nil
}

// wide encodes s as a NUL terminated wchar_t string, which is UTF-32 on Unix.
func wide(s string) []int32 {
	return append([]rune(s), 0)
}

func (l *Library) DispOpen(screen uint32) int32 {
	return l.open(screen)
}

func (l *Library) DispClose(screen uint32) int32 {
	return l.close(screen)
}

func (l *Library) DispInfo(screen uint32, width, height *uint16) int32 {
	return l.info(screen, width, height)
}

func (l *Library) DispData(screen uint32, width, height uint16, flag uint32, data *uint16) int32 {
	return l.data(screen, width, height, flag, data)
}

func (l *Library) DispDataSingle(screen uint32, width, height uint16, flag uint32, data *float32) int32 {
	return l.dataSingle(screen, width, height, flag, data)
}

func (l *Library) DispDataDouble(screen uint32, width, height uint16, flag uint32, data *float64) int32 {
	return l.dataDouble(screen, width, height, flag, data)
}

func (l *Library) DispGrayScale(screen, flag uint32, gray uint16) int32 {
	return l.grayScale(screen, flag, gray)
}

func (l *Library) DispBMP(screen, flag uint32, bitmap uintptr) int32 {
	return l.bmp(screen, flag, bitmap)
}

func (l *Library) DispReadImage(screen, flag uint32, path string) int32 {
	p := wide(path)
	return l.readImage(screen, flag, &p[0])
}

func (l *Library) DispReadImageA(screen, flag uint32, path []byte) int32 {
	p := narrow(path)
	if p == nil {
		return codeInvalidArgument
	}
	return l.readImageA(screen, flag, p)
}

func (l *Library) DispReadCSV(screen, flag uint32, path string) int32 {
	p := wide(path)
	return l.readCSV(screen, flag, &p[0])
}

func (l *Library) DispReadCSVA(screen, flag uint32, path []byte) int32 {
	p := narrow(path)
	if p == nil {
		return codeInvalidArgument
	}
	return l.readCSVA(screen, flag, p)
}

func (l *Library) SetOffset(screen uint32, x, y uint16) int32 {
	return l.setOffset(screen, x, y)
}

func (l *Library) GetOffset(screen uint32, x, y *uint16) int32 {
	return l.getOffset(screen, x, y)
}
