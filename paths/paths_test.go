// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesgo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesgo.  If not, see <https://www.gnu.org/licenses/>.

package paths_test

import (
	"os"
	"testing"

	"github.com/nesgo/nesgo/paths"
)

func TestPaths(t *testing.T) {
	// ResourcePath only uses the relative ".nesgo" base when that directory
	// exists in the current directory, so run from a directory that has one.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)
	if err := os.Mkdir(".nesgo", 0o755); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		resource []string
		want     string
	}{
		{[]string{"foo/bar", "baz"}, ".nesgo/foo/bar/baz"},
		{[]string{"foo/bar", ""}, ".nesgo/foo/bar"},
		{[]string{"", "baz"}, ".nesgo/baz"},
		{[]string{"", ""}, ".nesgo"},
	}

	for _, c := range cases {
		got := paths.ResourcePath(c.resource...)
		if got != c.want {
			t.Errorf("ResourcePath(%v) = %q, want %q", c.resource, got, c.want)
		}
	}
}
