// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
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

// Package cartridgeloader reads ROM image data from disk or from an HTTP(S)
// URL, ready to be handed to the cartridge package for parsing. Splitting the
// loading step from the parsing step means the cartridge package never has to
// think about I/O.
package cartridgeloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/nesgo/nesgo/curated"
)

// FileExtensions is the list of file extensions recognised by the
// cartridgeloader package. Load() does not check it: a file or URL with any
// other extension is still read.
var FileExtensions = [...]string{".nes", ".NES", ".unf", ".UNF"}

// Loader specifies the ROM to load. Create with NewLoader and then call
// Load() to populate Data.
type Loader struct {
	// filename or URL of the ROM image
	Filename string

	// expected SHA1 hash of the loaded image. empty string indicates that
	// the hash is unknown and need not be validated. after a successful call
	// to Load() this field holds the hash of the loaded data
	Hash string

	// copy of the loaded data. subsequent calls to Load() return early and
	// leave this untouched
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{Filename: filename}
}

// ShortName returns a shortened version of the Loader's filename, suitable
// for display in a window title or log message.
func (cl Loader) ShortName() string {
	shortName := path.Base(cl.Filename)
	return strings.TrimSuffix(shortName, path.Ext(cl.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the ROM data and store it in the Data field. Filenames with a
// recognised URL scheme are fetched over HTTP(S); anything else is treated
// as a local path.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"
	if u, err := url.Parse(cl.Filename); err == nil && u.Scheme != "" {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		cl.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		f, err := os.Open(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer f.Close()

		cl.Data, err = io.ReadAll(f)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		return curated.Errorf("cartridgeloader: unsupported URL scheme (%s)", scheme)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(cl.Data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: unexpected hash value")
	}
	cl.Hash = hash

	return nil
}
