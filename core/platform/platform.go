package platform

import (
	"os"
	"runtime"

	"go.uber.org/zap"
)

// Info describes the host platform in operator terms.
type Info struct {
	// Name is the friendly OS name (Windows, macOS, Linux).
	Name string
	// StopKey is the key chord that interrupts the server.
	StopKey string
}

// Current returns Info for the running OS.
func Current() Info {
	return ForOS(runtime.GOOS)
}

// ForOS maps a GOOS value to Info. Anything that is not Windows or macOS
// is reported as Linux.
func ForOS(goos string) Info {
	switch goos {
	case "windows":
		return Info{Name: "Windows", StopKey: "Ctrl+C"}
	case "darwin":
		return Info{Name: "macOS", StopKey: "Cmd+C"}
	default:
		return Info{Name: "Linux", StopKey: "Ctrl+C"}
	}
}

// Diagnostics is the context printed alongside unexpected failures.
type Diagnostics struct {
	WorkingDir string
	GoVersion  string
	OS         string
	Arch       string
}

// Collect gathers Diagnostics for the current process.
func Collect() Diagnostics {
	wd, err := os.Getwd()
	if err != nil {
		wd = "unknown (" + err.Error() + ")"
	}
	return Diagnostics{
		WorkingDir: wd,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

// Fields renders d as zap fields.
func (d Diagnostics) Fields() []zap.Field {
	return []zap.Field{
		zap.String("working_dir", d.WorkingDir),
		zap.String("go_version", d.GoVersion),
		zap.String("os", d.OS),
		zap.String("arch", d.Arch),
	}
}
