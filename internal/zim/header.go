package zim

import "time"

const timeLayout = "2006-01-02T15:04:05-07:00"

// Header returns the Zim page header block prepended to every rendered page.
func Header(created time.Time) string {
	return "Content-Type: text/x-zim-wiki\n" +
		"Wiki-Format: zim 0.4\n" +
		"Creation-Date: " + created.Format(timeLayout) + "\n\n"
}
