//go:build !windows && !darwin && !freebsd && !linux

package dll

// DefaultPath is the library name used when none is configured.
const DefaultPath = "libHDSLMFunc.so"

// Library is a loaded display library. It can not be loaded on this platform.
type Library struct {
	path string
}

func load(_ string) (*Library, error) {
	return nil, ErrNotSupported
}

// Every entry point fails. DispClose and DispDataSingle report failure with 0.

func (l *Library) DispOpen(uint32) int32                                  { return codeInvalidArgument }
func (l *Library) DispClose(uint32) int32                                 { return 0 }
func (l *Library) DispInfo(uint32, *uint16, *uint16) int32                { return codeInvalidArgument }
func (l *Library) DispData(uint32, uint16, uint16, uint32, *uint16) int32 { return codeInvalidArgument }
func (l *Library) DispDataSingle(uint32, uint16, uint16, uint32, *float32) int32 {
	return 0
}
func (l *Library) DispDataDouble(uint32, uint16, uint16, uint32, *float64) int32 {
	return codeInvalidArgument
}
func (l *Library) DispGrayScale(uint32, uint32, uint16) int32 { return codeInvalidArgument }
func (l *Library) DispBMP(uint32, uint32, uintptr) int32      { return codeInvalidArgument }
func (l *Library) DispReadImage(uint32, uint32, string) int32 { return codeInvalidArgument }
func (l *Library) DispReadImageA(uint32, uint32, []byte) int32 {
	return codeInvalidArgument
}
func (l *Library) DispReadCSV(uint32, uint32, string) int32  { return codeInvalidArgument }
func (l *Library) DispReadCSVA(uint32, uint32, []byte) int32 { return codeInvalidArgument }
func (l *Library) SetOffset(uint32, uint16, uint16) int32    { return codeInvalidArgument }
func (l *Library) GetOffset(uint32, *uint16, *uint16) int32  { return codeInvalidArgument }
