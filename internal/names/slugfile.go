package names

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteSlugRecords writes name,german_name,slug rows with no header. Rows end
// in CRLF, matching the list the sprite tool embeds.
func WriteSlugRecords(w io.Writer, records []SlugRecord, progress func(done int)) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	for i, r := range records {
		if err := cw.Write([]string{r.Name, r.GermanName, r.Slug}); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
		if progress != nil {
			progress(i + 1)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadSlugRecords parses a file written by WriteSlugRecords.
func ReadSlugRecords(r io.Reader) ([]SlugRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3

	var out []SlugRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}

		out = append(out, SlugRecord{
			Name:       record[0],
			GermanName: record[1],
			Slug:       record[2],
		})
	}

	return out, nil
}
