package names

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrFieldCount is returned for an input line that does not hold exactly
// index, name and german name.
var ErrFieldCount = errors.New("expected exactly 3 comma-separated fields")

// WriteNameList writes one dex,english,german line per record with no header.
// progress, when set, receives the number of records written so far.
func WriteNameList(w io.Writer, records []NameRecord, format Format, progress func(done int)) error {
	switch format {
	case FormatCSV:
		return writeNameListCSV(w, records, progress)
	case FormatPlain, "":
		return writeNameListPlain(w, records, progress)
	default:
		return fmt.Errorf("unknown name list format %q", format)
	}
}

func writeNameListPlain(w io.Writer, records []NameRecord, progress func(done int)) error {
	bw := bufio.NewWriter(w)

	for i, r := range records {
		line := r.DexNumber + "," + r.EnglishName + "," + r.GermanName + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	return bw.Flush()
}

func writeNameListCSV(w io.Writer, records []NameRecord, progress func(done int)) error {
	cw := csv.NewWriter(w)

	for i, r := range records {
		if err := cw.Write([]string{r.DexNumber, r.EnglishName, r.GermanName}); err != nil {
			return fmt.Errorf("write record %d: %w", i+1, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadEntries parses slug generator input. Any line that does not split into
// exactly three fields aborts the read; nothing is skipped.
func ReadEntries(r io.Reader, format Format) ([]Entry, error) {
	switch format {
	case FormatCSV:
		return readEntriesCSV(r)
	case FormatPlain, "":
		return readEntriesPlain(r)
	default:
		return nil, fmt.Errorf("unknown name list format %q", format)
	}
}

func readEntriesPlain(r io.Reader) ([]Entry, error) {
	var out []Entry

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++

		fields := strings.Split(sc.Text(), ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w (got %d)", lineNo, ErrFieldCount, len(fields))
		}

		out = append(out, Entry{
			Index:      fields[0],
			Name:       fields[1],
			GermanName: fields[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}

	return out, nil
}

func readEntriesCSV(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var out []Entry
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		if len(record) != 3 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w (got %d)", line, ErrFieldCount, len(record))
		}

		out = append(out, Entry{
			Index:      record[0],
			Name:       record[1],
			GermanName: record[2],
		})
	}

	return out, nil
}
