// SPDX-License-Identifier: EPL-2.0

package ihex

import (
	"fmt"
	"io"
	"math"

	"github.com/marcinbor85/gohex"

	"github.com/ik5/audboot/log"
)

// Image is a decoded Intel-HEX file.
type Image struct {
	// Base is the address of Data[0].
	Base uint32
	Data []byte
	// Segments is the number of contiguous data runs in the file.
	Segments int
}

// Decode parses r and flattens its data records, filling holes with fill.
func Decode(r io.Reader, fill byte) (Image, error) {
	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(r); err != nil {
		return Image{}, fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return Image{}, nil
	}

	lo := uint64(segments[0].Address)
	hi := lo
	for _, s := range segments {
		lo = min(lo, uint64(s.Address))
		hi = max(hi, uint64(s.Address)+uint64(len(s.Data)))
	}
	if hi-lo > math.MaxUint32 {
		return Image{}, ErrImageSize
	}

	return Image{
		Base:     uint32(lo),
		Data:     mem.ToBinary(uint32(lo), uint32(hi-lo), fill),
		Segments: len(segments),
	}, nil
}

// Loader implements payload.Loader for Intel-HEX. The flattened image is
// sent from its lowest address; Load logs that address and the segment
// count at debug level.
type Loader struct {
	Fill   byte
	Logger log.Logger
}

// NewLoader returns a Loader filling holes with fill. A nil logger discards.
func NewLoader(fill byte, logger log.Logger) Loader {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return Loader{Fill: fill, Logger: logger}
}

func (l Loader) Load(r io.Reader) ([]byte, error) {
	img, err := Decode(r, l.Fill)
	if err != nil {
		return nil, err
	}

	if l.Logger != nil {
		l.Logger.Debug("decoded Intel-HEX",
			log.Hex("base", int(img.Base)),
			log.Int("segments", img.Segments),
			log.Int("size", len(img.Data)),
		)
	}
	return img.Data, nil
}
