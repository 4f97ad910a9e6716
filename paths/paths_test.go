// This file is part of rustyNES.
//
// rustyNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// rustyNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with rustyNES.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/GaryFrazier/rustyNES/test"
)

func TestResourcePath(t *testing.T) {
	// change to a temporary directory containing the base resource path so
	// that the user's config directory is not touched
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	pth, err := ResourcePath("foo/bar", "baz")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rustynes", "foo", "bar", "baz"))

	// directory has been created
	_, err = os.Stat(filepath.Join(".rustynes", "foo", "bar"))
	test.ExpectSuccess(t, err)

	pth, err = ResourcePath("", "baz")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".rustynes", "baz"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("memviz", "nestest", n), "memviz_nestest_20210304_050607")
	test.ExpectEquality(t, uniqueFilename("memviz", "  ", n), "memviz_20210304_050607")
}
