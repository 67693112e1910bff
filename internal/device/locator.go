// Package device finds the ideapad_laptop platform device directory.
package device

import (
	"io/fs"
	"path/filepath"
	"sort"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/spf13/afero"
)

// Pattern matches the platform device of the driver. The instance suffix
// depends on the firmware and is only known at runtime.
const Pattern = "/sys/bus/platform/devices/VPC2004:*"

// Path is a resolved platform device directory.
type Path string

// Attribute returns the file backing p inside the device directory.
func (d Path) Attribute(p attribute.Parameter) string {
	return filepath.Join(string(d), p.String())
}

type Locator struct {
	fs      afero.Fs
	pattern string
}

// NewLocator returns a locator searching fs for the given glob pattern.
func NewLocator(fs afero.Fs, pattern string) *Locator {
	return &Locator{fs: fs, pattern: pattern}
}

// Default searches the real filesystem for Pattern.
func Default() *Locator {
	return NewLocator(afero.NewOsFs(), Pattern)
}

// Locate returns the first directory in the pattern's parent whose name
// matches the pattern's last element, in lexical order. Only the last
// element may contain wildcards. Nothing is cached.
//
// A missing parent directory is a plain ErrNotFound. Listing and stat
// failures are wrapped so the cause stays visible.
func (l *Locator) Locate() (Path, error) {
	errFactory := errors.New()

	dir, pattern := filepath.Split(l.pattern)
	if _, err := filepath.Match(pattern, ""); err != nil {
		return "", errFactory.Wrap(ErrNotFound, err)
	}

	names, err := l.readDirNames(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", errFactory.New(ErrNotFound)
		}
		return "", errFactory.Wrap(ErrNotFound, err)
	}

	var statErr error
	for _, name := range names {
		if ok, _ := filepath.Match(pattern, name); !ok {
			continue
		}

		match := filepath.Join(dir, name)
		info, err := l.fs.Stat(match)
		if err != nil {
			statErr = err
			continue
		}
		if info.IsDir() {
			return Path(match), nil
		}
	}

	if statErr != nil {
		return "", errFactory.Wrap(ErrNotFound, statErr)
	}

	return "", errFactory.New(ErrNotFound)
}

func (l *Locator) readDirNames(dir string) ([]string, error) {
	d, err := l.fs.Open(filepath.Clean(dir))
	if err != nil {
		return nil, err
	}
	defer d.Close()

	names, err := d.Readdirnames(-1)
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	return names, nil
}
