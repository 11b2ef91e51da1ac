// internal/calib/encode.go
package calib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/tamzrod/triga-plc/internal/channel"
)

// Encode writes s in the calibration file format. Parse(Encode(s)) yields s.
func Encode(w io.Writer, s Set) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# triga-plc calibration")
	fmt.Fprintln(bw, "# linear: x0 x1 y0 y1 | logarithmic: A B | reciprocal: K L")

	for _, c := range channel.All() {
		m := s.Model(c)
		if m == nil {
			continue
		}

		fmt.Fprintf(bw, "\n[%s]\n", c)
		if s.Uncalibrated(c) {
			fmt.Fprintln(bw, "# uncalibrated")
		}
		for _, k := range shapeKeys[m.Shape()] {
			fmt.Fprintf(bw, "%s = %s\n", k, strconv.FormatFloat(field(m, k), 'g', -1, 64))
		}
	}

	return bw.Flush()
}
