// This file is part of Marquee.
//
// Marquee is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Marquee is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Marquee.  If not, see <https://www.gnu.org/licenses/>.

package samples

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/marquee-emu/marquee/curated"
	"github.com/marquee-emu/marquee/logger"
)

// Error patterns returned by Load.
const (
	UnsupportedFormat = "samples: unsupported format '%s'"
	BadSample         = "samples: %v"
)

// Sample is one pre-recorded PCM recording, mono, sixteen bits per sample.
type Sample struct {
	Name string
	Rate int
	Data []int16
}

// Duration of the sample in seconds.
func (s *Sample) Duration() float64 {
	if s.Rate == 0 {
		return 0
	}
	return float64(len(s.Data)) / float64(s.Rate)
}

// Load reads a single sample file. The decoder is chosen by filename
// extension; wav and mp3 files are supported. Stereo sources keep the left
// channel only.
func Load(path string) (*Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, curated.Errorf(BadSample, err)
	}
	defer f.Close()

	s := &Sample{Name: filepath.Base(path)}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		dec := wav.NewDecoder(f)
		if dec == nil || !dec.IsValidFile() {
			return nil, curated.Errorf(BadSample, "not a valid wav file")
		}

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return nil, curated.Errorf(BadSample, err)
		}

		// keep first channel only
		numChans := int(dec.NumChans)
		if numChans < 1 {
			numChans = 1
		}
		s.Data = make([]int16, 0, len(buf.Data)/numChans)
		for i := 0; i < len(buf.Data); i += numChans {
			s.Data = append(s.Data, int16(buf.Data[i]))
		}
		s.Rate = int(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(f)
		if err != nil {
			return nil, curated.Errorf(BadSample, err)
		}

		// the go-mp3 stream is always 16bit little endian, two channels.
		// a sample is therefore four bytes; we keep the left channel
		chunk := make([]byte, 4096)
		err = nil
		for err != io.EOF {
			var chunkLen int
			chunkLen, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return nil, curated.Errorf(BadSample, err)
			}
			for i := 0; i+1 < chunkLen; i += 4 {
				s.Data = append(s.Data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
			}
		}
		s.Rate = int(dec.SampleRate())

	default:
		return nil, curated.Errorf(UnsupportedFormat, filepath.Ext(path))
	}

	logger.Logf("samples", "loaded '%s': %0.2fs at %dHz", s.Name, s.Duration(), s.Rate)

	return s, nil
}

// LoadSet loads the named samples from the given directory. Missing or
// undecodable samples are logged and skipped; the returned set contains
// whatever loaded successfully.
func LoadSet(dir string, names []string) []*Sample {
	set := make([]*Sample, 0, len(names))
	for _, n := range names {
		s, err := Load(filepath.Join(dir, n))
		if err != nil {
			logger.Logf("samples", "skipping '%s': %v", n, err)
			continue
		}
		set = append(set, s)
	}
	return set
}
