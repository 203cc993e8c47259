// Package logtail reads the tail of the sleep timer's log file for the
// activity pane.
//
// Read keeps a ring buffer of maxLines entries, so memory stays bounded by the
// number of lines requested rather than the file size. Parse understands the
// standard library log format (log.LstdFlags) and splits a line into its
// timestamp and message; lines in other formats are kept as plain messages.
//
//	entries, err := logtail.Tail(cfg.LogFile, 6)
//	if err != nil {
//		log.Printf("read activity: %v", err)
//	}
package logtail
