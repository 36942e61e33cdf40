package arena

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// String renders a Stats snapshot for human consumption (engine
// diagnostics / the demo CLI's --stats flag). Never used on the
// execution path, so it has no bearing on any Plasma-visible ToString
// invariant.
func (s Stats) String() string {
	return fmt.Sprintf(
		"pages=%s capacity=%s live=%s free=%s",
		humanize.Comma(int64(s.Pages)),
		humanize.Comma(int64(s.Capacity)),
		humanize.Comma(int64(s.Live)),
		humanize.Comma(int64(s.FreeSlots)),
	)
}
