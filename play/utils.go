package play

import (
	"errors"
	"io/fs"
	"os"
)

// CheckCrashes decides if Check panics. The GUI turns it off while it reads
// files that might still be in the middle of being written.
var CheckCrashes = true

// CheckFailed remembers the last error passed to Check.
var CheckFailed error

func Check(e error) {
	if e != nil {
		CheckFailed = e
		if CheckCrashes {
			panic(e)
		}
	}
}

func ReadFile(name string) []byte {
	data, err := os.ReadFile(name)
	Check(err)
	return data
}

func DeleteFile(name string) {
	err := os.Remove(name)
	if !errors.Is(err, os.ErrNotExist) {
		Check(err)
	}
}

func FileExists(fsys fs.FS, name string) bool {
	file, err := fsys.Open(name)
	if err != nil {
		return false
	}
	Check(file.Close())
	return true
}
