package paths

import (
	"os"
	"path/filepath"
)

const (
	AppDirName     = "iconset"
	ConfigFileName = "iconset-config.json"
	HistoryDBName  = "history.db"
	DirPerm        = 0755
	FilePerm       = 0644
)

// Default icon layout, relative to the working directory.
const (
	DefaultIconDir = "WhitelistManager/WhitelistManager/Assets.xcassets/AppIcon.appiconset"
	DefaultSVGName = "icon.svg"
)

// AtomicWrite writes data to path via a temporary file + rename to avoid
// partial writes. The parent directory is created if needed.
func AtomicWrite(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FilePerm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DataDir returns the platform-specific data directory for iconset:
//   - Windows: %APPDATA%\iconset
//   - Unix:    ~/.config/iconset
//
// Falls back to os.TempDir()/iconset if neither is available.
func DataDir() string {
	if appdata := os.Getenv("APPDATA"); appdata != "" {
		return filepath.Join(appdata, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), AppDirName)
	}
	return filepath.Join(home, ".config", AppDirName)
}

// HistoryPath returns the location of the run history database.
func HistoryPath() string {
	return filepath.Join(DataDir(), HistoryDBName)
}
