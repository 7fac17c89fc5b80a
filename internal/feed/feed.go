// Package feed reads raw scraped items dropped by the collaborator
// browser-automation crawlers. Each crawler writes one JSONL dump per
// retailer; this package turns those dumps into RawItem batches for
// the worker.
package feed

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"time"

	"minhsangitdev/beerpriceworker/internal/product"
	"minhsangitdev/beerpriceworker/logger"
	perrors "minhsangitdev/beerpriceworker/pkg/errors"
)

// Source supplies raw scraped items from one retailer
type Source interface {
	// FetchItems retrieves the raw items of the latest crawl
	FetchItems() ([]product.RawItem, error)

	// GetName returns the source's name for logging and identification
	GetName() string

	// GetTag returns the retailer tag stamped on every item
	GetTag() string
}

// FileSource reads one retailer's JSONL dump
type FileSource struct {
	Name string
	Tag  string
	Path string
}

// NewFileSource creates a file-backed source for a retailer
func NewFileSource(name, tag, path string) *FileSource {
	return &FileSource{
		Name: name,
		Tag:  tag,
		Path: path,
	}
}

// FetchItems reads and decodes the dump file. Malformed lines are
// skipped with a warning rather than failing the batch; a missing or
// unreadable file is a feed error.
func (s *FileSource) FetchItems() ([]product.RawItem, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, perrors.NewFeed(s.Tag, "feed file is not readable", err)
	}
	defer f.Close()

	log := logger.ForSource(s.Name)
	today := time.Now().Format("2006-01-02")

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var items []product.RawItem
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var item product.RawItem
		if err := json.Unmarshal(line, &item); err != nil {
			log.Warn().
				Int("line", lineNo).
				Err(err).
				Msg("Skipping malformed feed line")
			continue
		}

		if item.Source == "" {
			item.Source = s.Tag
		}
		if item.CrawlDate == "" {
			item.CrawlDate = today
		}
		items = append(items, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, perrors.NewFeed(s.Tag, "feed file read failed", err)
	}

	return items, nil
}

// GetName returns the source's name
func (s *FileSource) GetName() string {
	return s.Name
}

// GetTag returns the retailer tag
func (s *FileSource) GetTag() string {
	return s.Tag
}
