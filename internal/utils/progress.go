package utils

import "github.com/schollz/progressbar/v3"

// Standard progress bar descriptions
const (
	DescPacking = "Packing"
	DescCopying = "Copying"
)

// NewProgressBar creates a consistently styled progress bar.
//
// total is the number of entries to add; description is shown before the
// bar (DescPacking or DescCopying). Pass -1 for an unknown total to get a
// spinner instead of a bar.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	opts := []progressbar.Option{
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
	}

	if total < 0 {
		opts = append(opts,
			progressbar.OptionSpinnerType(14),
			progressbar.OptionSetRenderBlankState(true),
		)
	} else {
		opts = append(opts,
			progressbar.OptionShowIts(),
		)
	}

	return progressbar.NewOptions(total, opts...)
}
