package tensor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// FormatOptions controls how Fprint renders a tensor.
type FormatOptions struct {
	MaxRows   int // Rows printed before eliding the middle; 0 prints every row.
	EdgeRows  int // Rows kept at each end when eliding; negative is treated as 0.
	Precision int // Digits after the decimal point for floats; -1 for shortest.
}

// DefaultFormatOptions prints every row with the shortest float representation.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{
		MaxRows:   0,
		EdgeRows:  3,
		Precision: -1,
	}
}

// Print writes the tensor to standard output. Diagnostic only.
func (t *Tensor[T]) Print() {
	_ = t.Fprint(os.Stdout, DefaultFormatOptions())
}

// Fprint writes a header line with shape, offset and length, followed by one
// line per row of the last dimension.
//
// Example output for a [2, 3] tensor:
//
//	shape: [2 3], offset: 0, length: 6
//	[1 2 3]
//	[4 5 6]
func (t *Tensor[T]) Fprint(w io.Writer, opts FormatOptions) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "shape: %v, offset: %d, length: %d\n", []int(t.shape), t.offset, t.length)

	data := t.Data()
	width := t.length
	if len(t.shape) > 0 {
		width = t.shape[len(t.shape)-1]
	}
	if width == 0 {
		return bw.Flush()
	}

	rows := t.length / width
	edge := max(opts.EdgeRows, 0)
	elide := opts.MaxRows > 0 && rows > opts.MaxRows && 2*edge < rows
	for i := 0; i < rows; i++ {
		if elide && i >= edge && i < rows-edge {
			if i == edge {
				fmt.Fprintf(bw, "... (%d rows)\n", rows-2*edge)
			}
			continue
		}
		bw.WriteString(formatRow(data[i*width:(i+1)*width], opts.Precision))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func formatRow[T Element](row []T, precision int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range row {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch x := any(v).(type) {
		case float32:
			sb.WriteString(strconv.FormatFloat(float64(x), 'f', precision, 32))
		case float64:
			sb.WriteString(strconv.FormatFloat(x, 'f', precision, 64))
		default:
			fmt.Fprint(&sb, v)
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
