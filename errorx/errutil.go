package errorx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// ExitWhen prints err with the calling location and exits with status 1.
// It does nothing for a nil error.
func ExitWhen(err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	report(os.Stderr, err, file, line)
	os.Exit(1)
}

func report(w io.Writer, err error, file string, line int) {
	fmt.Fprintf(w, "ERROR (EXIT): %v - (%s:%d)\n", err, filepath.Base(file), line)
}
