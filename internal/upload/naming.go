package upload

import (
	"strconv"
	"strings"
	"time"
)

// fallbackName is used when the client-supplied filename has no usable base.
const fallbackName = "file"

// StoredName returns "<unix seconds>_<base>", where base is filename with every
// directory component removed. Both '/' and '\' count as separators, so
// "../../etc/passwd" and `..\..\boot.ini` lose their traversal prefix.
// Treating '\' as a separator is intentional even on POSIX hosts, where
// `a\b.txt` is a legal single name: browsers on Windows may send full paths.
func StoredName(now time.Time, filename string) string {
	return strconv.FormatInt(now.Unix(), 10) + "_" + baseName(filename)
}

func baseName(filename string) string {
	name := filename
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	switch name {
	case "", ".", "..":
		return fallbackName
	}
	return name
}
