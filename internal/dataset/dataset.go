// Package dataset loads the sample vehicle listings that ship beside
// the app. The orchestration core works without them; when present they
// are passed to the recommender as extra prompt context.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The three sample files, by region and condition.
const (
	FileNewUS      = "sample_new_us_cars.csv"
	FileUsedUS     = "sample_used_us_cars.csv"
	FileUsedEurope = "sample_used_europe_cars.csv"
)

// Listing is one row of reference data.
type Listing struct {
	Make  string
	Model string
	Year  int
	Price int
}

// Segment is one file's worth of listings.
type Segment struct {
	Name     string
	Listings []Listing
}

// Catalog holds whatever segments could be loaded.
type Catalog struct {
	Segments []Segment
}

// Load reads the sample CSVs from dir. Files that are absent are
// skipped; the catalog is usable with any subset present. Only a
// malformed file is an error.
func Load(dir string) (*Catalog, error) {
	cat := &Catalog{}
	for _, name := range []string{FileNewUS, FileUsedUS, FileUsedEurope} {
		listings, err := loadFile(filepath.Join(dir, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		cat.Segments = append(cat.Segments, Segment{
			Name:     segmentName(name),
			Listings: listings,
		})
	}
	return cat, nil
}

// loadFile parses one CSV with a make,model,year,price header.
func loadFile(path string) ([]Listing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"make", "model", "year", "price"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var listings []Listing
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		l := Listing{
			Make:  field(rec, col["make"]),
			Model: field(rec, col["model"]),
		}
		l.Year, _ = strconv.Atoi(field(rec, col["year"]))
		l.Price, _ = strconv.Atoi(field(rec, col["price"]))
		if l.Make == "" || l.Model == "" {
			continue
		}
		listings = append(listings, l)
	}
	return listings, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func segmentName(file string) string {
	switch file {
	case FileNewUS:
		return "New (US)"
	case FileUsedUS:
		return "Used (US)"
	case FileUsedEurope:
		return "Used (Europe)"
	}
	return file
}

// Empty reports whether nothing was loaded.
func (c *Catalog) Empty() bool {
	if c == nil {
		return true
	}
	for _, s := range c.Segments {
		if len(s.Listings) > 0 {
			return false
		}
	}
	return true
}

// ContextBlock renders up to perSegment listings per segment as a
// compact text block for prompt context. Returns "" when the catalog
// is empty.
func (c *Catalog) ContextBlock(perSegment int) string {
	if c.Empty() {
		return ""
	}
	var b strings.Builder
	for _, s := range c.Segments {
		if len(s.Listings) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s:\n", s.Name)
		n := len(s.Listings)
		if perSegment > 0 && n > perSegment {
			n = perSegment
		}
		for _, l := range s.Listings[:n] {
			fmt.Fprintf(&b, "- %s %s, %d, $%d\n", l.Make, l.Model, l.Year, l.Price)
		}
	}
	return b.String()
}
