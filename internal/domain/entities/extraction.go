package entities

// Placeholders substituted for an empty extraction list. They are part of the
// response contract and must reach clients verbatim.
const (
	NoActionItemsFound = "No action items found"
	NoDateFound        = "No date found"
	NoKeyPointsFound   = "No key points found"
)

// MaxKeyPoints caps the number of meeting sentences kept as key points
const MaxKeyPoints = 3

// ExtractionResult is what the extraction engine produces for one text.
// No field is ever empty: absence is the field's sentinel string.
type ExtractionResult struct {
	ActionItems  []string `json:"action_items"`
	MeetingDates []string `json:"meeting_dates"`
	KeyPoints    []string `json:"key_points"`
}

// RealActionItems returns the action items without the sentinel
func (r *ExtractionResult) RealActionItems() []string {
	return withoutSentinel(r.ActionItems, NoActionItemsFound)
}

// RealMeetingDates returns the dates without the sentinel
func (r *ExtractionResult) RealMeetingDates() []string {
	return withoutSentinel(r.MeetingDates, NoDateFound)
}

// RealKeyPoints returns the key points without the sentinel
func (r *ExtractionResult) RealKeyPoints() []string {
	return withoutSentinel(r.KeyPoints, NoKeyPointsFound)
}

func withoutSentinel(items []string, sentinel string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == sentinel {
			continue
		}
		out = append(out, item)
	}
	return out
}
