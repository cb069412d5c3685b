package planner

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

type ManifestRenderer interface {
	RenderManifest(doc *Document) (string, error)
}

// CsvManifestRendererImpl lists the planned pages of a document, one row per
// page, with the page's destination and outline entries.
type CsvManifestRendererImpl struct {
}

func NewCsvManifestRenderer() *CsvManifestRendererImpl {
	return &CsvManifestRendererImpl{}
}

func (t *CsvManifestRendererImpl) RenderManifest(doc *Document) (string, error) {
	data := make([][]string, 0, len(doc.Plan)+1)
	data = append(data, []string{"page", "destination", "section", "bookmarks"})
	for _, p := range doc.Plan {
		data = append(data, []string{
			strconv.Itoa(p.Number),
			p.Dest,
			p.Section,
			bookmarksToString(p.Bookmarks),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		err := writer.Write(row)
		if err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

// bookmarksToString indents each title by its outline level and joins them.
func bookmarksToString(bookmarks []Bookmark) string {
	titles := make([]string, 0, len(bookmarks))
	for _, b := range bookmarks {
		titles = append(titles, strings.Repeat(">", b.Level)+b.Title)
	}
	return strings.Join(titles, " | ")
}
