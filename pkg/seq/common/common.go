// 29 Apr 2020

package common

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

const GapChar byte = '-' // a minus sign is always used for gaps

// WrtTemp writes a string to a temporary file and returns
// the filename. It is used all over the place in testing.
func WrtTemp(s string) (string, error) {
	f_tmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail: %w", err)
	}

	if _, err := io.WriteString(f_tmp, s); err != nil {
		f_tmp.Close()
		return "", fmt.Errorf("writing string to temp file %v: %w", f_tmp.Name(), err)
	}
	name := f_tmp.Name()
	f_tmp.Close()
	return name, nil
}

// WrtAtomic calls wrt with a temporary file in the same directory as
// fname. Only if wrt, the sync and the close all work, is the temporary
// file renamed to fname. Otherwise it is removed and fname is untouched.
// A name of "-" means standard output and nothing is renamed.
func WrtAtomic(fname string, wrt func(io.Writer) error) (err error) {
	if fname == "-" {
		return wrt(os.Stdout)
	}
	dir := filepath.Dir(fname)
	f_tmp, err := os.CreateTemp(dir, "."+filepath.Base(fname)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", fname, err)
	}
	tmpName := f_tmp.Name()
	done := false
	defer func() {
		if !done {
			f_tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if err = wrt(f_tmp); err != nil {
		return err
	}
	if err = f_tmp.Chmod(0o644); err != nil { // CreateTemp gives 0600
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err = f_tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err = f_tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err = os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		done = true
		return fmt.Errorf("rename to %s: %w", fname, err)
	}
	done = true
	return nil
}
