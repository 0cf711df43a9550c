package uninstall

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/violentpy/showcase/internal/safety"
	"golang.org/x/sys/windows"
)

const (
	_FO_DELETE          = 3
	_FOF_SILENT         = 0x0004
	_FOF_NOCONFIRMATION = 0x0010
	_FOF_ALLOWUNDO      = 0x0040
)

// SHFILEOPSTRUCTW; pFrom must be a double-NUL-terminated list.
type shFileOpStructW struct {
	hwnd                  uintptr
	wFunc                 uint32
	pFrom                 *uint16
	pTo                   *uint16
	fFlags                uint16
	fAnyOperationsAborted int32
	hNameMappings         uintptr
	lpszProgressTitle     *uint16
}

var (
	shell32          = windows.NewLazySystemDLL("shell32.dll")
	shFileOperationW = shell32.NewProc("SHFileOperationW")
)

// recycleBinDispatcher calls the native recycle-bin facility directly.
// The API is always present on Windows, so this dispatcher is never
// Unavailable; failures are real errors.
type recycleBinDispatcher struct{}

func newPlatformDispatcher() Dispatcher {
	return &recycleBinDispatcher{}
}

func (d *recycleBinDispatcher) Mechanism() Mechanism { return MechanismRecycleBin }

func (d *recycleBinDispatcher) MoveToTrash(root *safety.ProjectRoot) error {
	from, err := windows.UTF16FromString(root.Path)
	if err != nil {
		return newOpError("recycle bin", root.Path, err)
	}
	from = append(from, 0) // second terminating NUL

	op := shFileOpStructW{
		wFunc:  _FO_DELETE,
		pFrom:  &from[0],
		fFlags: _FOF_ALLOWUNDO | _FOF_NOCONFIRMATION | _FOF_SILENT,
	}

	ret, _, _ := shFileOperationW.Call(uintptr(unsafe.Pointer(&op)))
	if ret != 0 {
		return newOpError("recycle bin", root.Path, fmt.Errorf("SHFileOperationW returned %#x", ret))
	}
	if op.fAnyOperationsAborted != 0 {
		return newOpError("recycle bin", root.Path, fmt.Errorf("operation aborted by the shell"))
	}

	slog.Info("moved to trash", "mechanism", MechanismRecycleBin, "path", root.Path)
	return nil
}
