package ingest

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/huangsam/flowstate/core"
	"github.com/huangsam/flowstate/internal/contract"
)

// timestampRe matches the Takeout timestamp form "8 Dec 2025, 19:47:35 GMT+05:30".
// The zone offset is matched but dropped; the local wall-clock time is what
// the daily grouping cares about.
var timestampRe = regexp.MustCompile(`(\d{1,2}\s+\w{3}\s+\d{4},\s+\d{2}:\d{2}:\d{2})\s+GMT[+-]\d{2}:\d{2}`)

// watchTimeLayout parses the wall-clock part of a Takeout timestamp.
const watchTimeLayout = "2 Jan 2006, 15:04:05"

// WatchHistoryResult carries the parsed records plus a count of entries
// that had to be skipped for missing links or unparseable timestamps.
type WatchHistoryResult struct {
	Records []MediaRecord
	Skipped int
}

// ParseWatchHistory extracts watched-video records from a Google Takeout
// watch-history.html export. Each content cell with a "Watched" marker
// yields one record; cells without a watch link or a recognizable
// timestamp are counted as skipped rather than failing the whole parse.
func ParseWatchHistory(r io.Reader, categorizer *core.Categorizer) (*WatchHistoryResult, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watch history HTML: %w", err)
	}

	result := &WatchHistoryResult{}
	doc.Find("div.content-cell").Each(func(_ int, cell *goquery.Selection) {
		cellText := normalizeSpaces(cell.Text())
		if !strings.Contains(cellText, "Watched") {
			return
		}

		var title, url string
		cell.Find("a[href]").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			href, _ := link.Attr("href")
			if strings.Contains(href, "youtube.com/watch") {
				title = strings.TrimSpace(link.Text())
				url = href
				return false
			}
			return true
		})
		if url == "" {
			result.Skipped++
			return
		}

		match := timestampRe.FindStringSubmatch(cellText)
		if match == nil {
			contract.LogWarn(fmt.Sprintf("no timestamp found for video: %s", title), nil)
			result.Skipped++
			return
		}

		watched, err := time.Parse(watchTimeLayout, match[1])
		if err != nil {
			contract.LogWarn(fmt.Sprintf("failed to parse timestamp for video %s", title), err)
			result.Skipped++
			return
		}

		result.Records = append(result.Records, MediaRecord{
			Title:     title,
			URL:       url,
			Timestamp: match[0],
			Date:      watched.Format(time.DateOnly),
			Hour:      watched.Hour(),
			DayOfWeek: watched.Weekday().String(),
			Category:  categorizer.Categorize(title),
		})
	})

	return result, nil
}

// normalizeSpaces replaces the non-breaking space variants Takeout emits
// with plain spaces so the timestamp regex can match.
func normalizeSpaces(s string) string {
	replacer := strings.NewReplacer(" ", " ", " ", " ", "​", "")
	return replacer.Replace(s)
}
