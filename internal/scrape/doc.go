// Package scrape fetches the German name list page and turns its name tables
// into name records. Rows are read in document order and a row that cannot
// be read aborts the whole extraction.
package scrape
