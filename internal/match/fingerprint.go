package match

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"gavelmatch/internal/records"
)

const dayFormat = "2006-01-02"

// Fingerprint derives a stable digest of one video and its candidate event
// set. A stored verdict is reused only while this digest is unchanged, so
// any edit to the video record or to the events in range forces a
// recomputation on the next run.
func Fingerprint(video records.VideoRecord, events []records.EventRecord) string {
	var b strings.Builder
	publishedDay := ""
	if video.HasDate() {
		publishedDay = video.Day().Format(dayFormat)
	}
	fmt.Fprintf(&b, "video|%s|%s|%s|%s\n", video.ID, video.Title, video.Committee, publishedDay)

	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf("event|%s|%s|%s|%s|%s",
			event.ID, event.Title, event.Committee, event.Day().Format(dayFormat), event.Category))
	}
	sort.Strings(lines)
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
