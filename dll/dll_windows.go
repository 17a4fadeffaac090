package dll

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// DefaultPath is the library name used when none is configured.
const DefaultPath = "HDSLMFunc.dll"

// Library is a loaded display library.
type Library struct {
	path       string
	dll        *windows.LazyDLL
	open       *windows.LazyProc
	close      *windows.LazyProc
	info       *windows.LazyProc
	data       *windows.LazyProc
	dataSingle *windows.LazyProc
	dataDouble *windows.LazyProc
	grayScale  *windows.LazyProc
	bmp        *windows.LazyProc
	readImage  *windows.LazyProc
	readImageA *windows.LazyProc
	readCSV    *windows.LazyProc
	readCSVA   *windows.LazyProc
	setOffset  *windows.LazyProc
	getOffset  *windows.LazyProc
}

func load(path string) (*Library, error) {
	d := windows.NewLazyDLL(path)
	if err := d.Load(); err != nil {
		return nil, fmt.Errorf("dll: load %s: %w", path, err)
	}

	l := &Library{
		path:       path,
		dll:        d,
		open:       d.NewProc(ProcOpen),
		close:      d.NewProc(ProcClose),
		info:       d.NewProc(ProcInfo),
		data:       d.NewProc(ProcData),
		dataSingle: d.NewProc(ProcDataSingle),
		dataDouble: d.NewProc(ProcDataDouble),
		grayScale:  d.NewProc(ProcGrayScale),
		bmp:        d.NewProc(ProcBMP),
		readImage:  d.NewProc(ProcReadImage),
		readImageA: d.NewProc(ProcReadImageA),
		readCSV:    d.NewProc(ProcReadCSV),
		readCSVA:   d.NewProc(ProcReadCSVA),
		setOffset:  d.NewProc(ProcSetOffset),
		getOffset:  d.NewProc(ProcGetOffset),
	}

	// Resolve everything now, LazyProc.Call panics on a missing symbol.
	for _, p := range []*windows.LazyProc{
		l.open, l.close, l.info,
		l.data, l.dataSingle, l.dataDouble,
		l.grayScale, l.bmp,
		l.readImage, l.readImageA, l.readCSV, l.readCSVA,
		l.setOffset, l.getOffset,
	} {
		if err := p.Find(); err != nil {
			return nil, missing(p.Name, err)
		}
	}
	return l, nil
}

func code(r uintptr) int32 {
	return int32(r)
}

func (l *Library) DispOpen(screen uint32) int32 {
	r, _, _ := l.open.Call(uintptr(screen))
	return code(r)
}

func (l *Library) DispClose(screen uint32) int32 {
	r, _, _ := l.close.Call(uintptr(screen))
	return code(r)
}

func (l *Library) DispInfo(screen uint32, width, height *uint16) int32 {
	r, _, _ := l.info.Call(uintptr(screen), uintptr(unsafe.Pointer(width)), uintptr(unsafe.Pointer(height)))
	return code(r)
}

func (l *Library) DispData(screen uint32, width, height uint16, flag uint32, data *uint16) int32 {
	r, _, _ := l.data.Call(uintptr(screen), uintptr(width), uintptr(height), uintptr(flag), uintptr(unsafe.Pointer(data)))
	return code(r)
}

func (l *Library) DispDataSingle(screen uint32, width, height uint16, flag uint32, data *float32) int32 {
	r, _, _ := l.dataSingle.Call(uintptr(screen), uintptr(width), uintptr(height), uintptr(flag), uintptr(unsafe.Pointer(data)))
	return code(r)
}

func (l *Library) DispDataDouble(screen uint32, width, height uint16, flag uint32, data *float64) int32 {
	r, _, _ := l.dataDouble.Call(uintptr(screen), uintptr(width), uintptr(height), uintptr(flag), uintptr(unsafe.Pointer(data)))
	return code(r)
}

func (l *Library) DispGrayScale(screen, flag uint32, gray uint16) int32 {
	r, _, _ := l.grayScale.Call(uintptr(screen), uintptr(flag), uintptr(gray))
	return code(r)
}

func (l *Library) DispBMP(screen, flag uint32, bitmap uintptr) int32 {
	r, _, _ := l.bmp.Call(uintptr(screen), uintptr(flag), bitmap)
	return code(r)
}

func (l *Library) DispReadImage(screen, flag uint32, path string) int32 {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return codeInvalidArgument
	}
	r, _, _ := l.readImage.Call(uintptr(screen), uintptr(flag), uintptr(unsafe.Pointer(p)))
	return code(r)
}

func (l *Library) DispReadImageA(screen, flag uint32, path []byte) int32 {
	p := narrow(path)
	if p == nil {
		return codeInvalidArgument
	}
	r, _, _ := l.readImageA.Call(uintptr(screen), uintptr(flag), uintptr(unsafe.Pointer(p)))
	return code(r)
}

func (l *Library) DispReadCSV(screen, flag uint32, path string) int32 {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return codeInvalidArgument
	}
	r, _, _ := l.readCSV.Call(uintptr(screen), uintptr(flag), uintptr(unsafe.Pointer(p)))
	return code(r)
}

func (l *Library) DispReadCSVA(screen, flag uint32, path []byte) int32 {
	p := narrow(path)
	if p == nil {
		return codeInvalidArgument
	}
	r, _, _ := l.readCSVA.Call(uintptr(screen), uintptr(flag), uintptr(unsafe.Pointer(p)))
	return code(r)
}

func (l *Library) SetOffset(screen uint32, x, y uint16) int32 {
	r, _, _ := l.setOffset.Call(uintptr(screen), uintptr(x), uintptr(y))
	return code(r)
}

func (l *Library) GetOffset(screen uint32, x, y *uint16) int32 {
	r, _, _ := l.getOffset.Call(uintptr(screen), uintptr(unsafe.Pointer(x)), uintptr(unsafe.Pointer(y)))
	return code(r)
}
