/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package helper

import (
	"os"
	"path/filepath"

	liberr "github.com/nabbar/yuneta/errors"
)

// PathCheckCreate ensures path exists with the given type (file or
// directory) and permissions, creating parent directories as needed.
// Modeled directly on nabbar-golib's ioutils/tools.go PathCheckCreate,
// trimmed of the atomic os.OpenRoot dance (not needed here since yuneta
// files are process-private, not shared with untrusted writers) and
// returning the runtime's own liberr.Error instead of a bare error.
func PathCheckCreate(isFile bool, path string, permFile, permDir os.FileMode) liberr.Error {
	inf, statErr := os.Stat(path)

	switch {
	case statErr == nil && inf.IsDir():
		if isFile {
			return ErrorPathWrongType.Error(nil)
		}
		if inf.Mode().Perm() != permDir.Perm() {
			_ = os.Chmod(path, permDir)
		}
		return nil

	case statErr == nil && !inf.IsDir():
		if !isFile {
			return ErrorPathWrongType.Error(nil)
		}
		if inf.Mode().Perm() != permFile.Perm() {
			_ = os.Chmod(path, permFile)
		}
		return nil

	case !os.IsNotExist(statErr):
		return ErrorFileRead.Error(statErr)

	case !isFile:
		if err := os.MkdirAll(path, permDir); err != nil {
			return ErrorFileWrite.Error(err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), permDir); err != nil {
		return ErrorFileWrite.Error(err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, permFile)
	if err != nil {
		return ErrorFileWrite.Error(err)
	}
	_ = f.Close()
	return nil
}

// EnsureDir is PathCheckCreate specialized for directories with the
// common 0755 permission.
func EnsureDir(path string) liberr.Error {
	return PathCheckCreate(false, path, 0644, 0755)
}
