package loader

import (
	"bufio"
	"io"
	"strconv"
)

// WriteSkyline writes result, one index per line, to w. Callers sort
// result beforehand if a stable order is wanted; WriteSkyline itself
// does not reorder.
func WriteSkyline(w io.Writer, result []int) error {
	bw := bufio.NewWriter(w)
	for _, idx := range result {
		if _, err := bw.WriteString(strconv.Itoa(idx)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
