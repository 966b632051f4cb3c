package timeline

import (
	"math"
	"sort"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

// Block is the render-ready projection of an activity or event onto a
// 24-hour axis for one date. Blocks are recomputed from scratch on every
// layout pass and never persisted.
type Block struct {
	ID         string
	ActivityID string
	Title      string
	Category   string

	Start float64 // fractional hours from midnight
	End   float64

	TimeLabel   string // "2:30 PM"
	DurationMin int
	PreMin      int
	CoreMin     int
	PostMin     int

	IsAdapted   bool
	Rationale   string
	IsEvent     bool
	IsSpillover bool
	Completed   bool

	Lane              int
	HasNextConnection bool
}

// Layout projects the given activities (plus the date's optional adaptation
// record) onto a 24-hour axis: activities active on the date are positioned
// and clipped at midnight, activities that ran past midnight yesterday
// contribute continuation blocks, and the adaptation's synthetic event, if
// any, is appended. The result is sorted by start time, lane-packed so no two
// blocks in a lane overlap, and annotated with adjacency connectors.
//
// The function is pure: identical inputs yield identical output. Malformed
// time or duration values never fail; they fall back to defaults.
func Layout(activities []models.Activity, adaptation *models.Adaptation, date time.Time, category string) []Block {
	day := date.Format(constants.DateFormat)
	yesterday := date.AddDate(0, 0, -1)

	var blocks []Block

	// Yesterday's runs that crossed midnight into today.
	for _, a := range activities {
		if category != "" && a.Category != category {
			continue
		}
		if !a.ActiveOn(yesterday) {
			continue
		}
		b := position(a, nil, yesterday)
		if b.End > 24 {
			blocks = append(blocks, spilloverOf(b))
		}
	}

	// Today's activities, clipped at midnight for display.
	for _, a := range activities {
		if category != "" && a.Category != category {
			continue
		}
		if !a.ActiveOn(date) {
			continue
		}
		b := position(a, adaptation, date)
		b.Completed = a.CompletedOn(day)
		if b.End > 24 {
			b = clipAtMidnight(b)
		}
		blocks = append(blocks, b)
	}

	if adaptation != nil && adaptation.Date == day && adaptation.HasEvent() {
		blocks = append(blocks, eventBlock(adaptation))
	}

	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Start < blocks[j].Start
	})

	assignLanes(blocks)
	markConnectors(blocks)

	return blocks
}

// position resolves an activity's timing for one date and computes its raw,
// unclipped block. Resolution precedence: the date's adaptation entry, then
// the per-weekday schedule entry, then the scalar fallbacks.
func position(a models.Activity, adaptation *models.Adaptation, date time.Time) Block {
	entry := a.ScheduleFor(date.Weekday())
	timeStr := entry.Time
	pre, core, post := entry.PreMin, entry.DurationMin, entry.RewardMin

	adapted := false
	rationale := ""
	if e, ok := adaptation.EntryFor(a.ID); ok {
		adapted = true
		rationale = e.Rationale
		if e.Time != "" {
			timeStr = e.Time
		}
		if e.DurationMin > 0 {
			core = e.DurationMin
		}
	}

	if core <= 0 {
		core = constants.DefaultCoreMin
	}
	total := pre + core + post
	if !adapted && a.TotalOverrideMin > 0 {
		// An explicit total wins over the segment sum; the segments themselves
		// are left untouched and only trimmed if the block crosses midnight.
		total = a.TotalOverrideMin
	}
	if total <= 0 {
		total = constants.DefaultTotalMin
	}

	// Unparseable times land at midnight rather than erroring out.
	hour, minute, _ := ParseClock(timeStr)
	start := float64(hour) + float64(minute)/60

	return Block{
		ID:          a.ID,
		ActivityID:  a.ID,
		Title:       a.Title,
		Category:    a.Category,
		Start:       start,
		End:         start + float64(total)/60,
		TimeLabel:   FormatClock(hour, minute),
		DurationMin: total,
		PreMin:      pre,
		CoreMin:     core,
		PostMin:     post,
		IsAdapted:   adapted,
		Rationale:   rationale,
	}
}

// spilloverOf converts yesterday's past-midnight block into today's
// continuation strip. The before-midnight portion consumes the pre, core and
// post segments in that order, so the spillover carries only what remains.
func spilloverOf(b Block) Block {
	overflowMin := minutesBetween(24, b.End)
	beforeMin := b.DurationMin - overflowMin
	_, _, _, pre, core, post := splitSegments(b.PreMin, b.CoreMin, b.PostMin, beforeMin)

	return Block{
		ID:          b.ID + "_overflow",
		ActivityID:  b.ActivityID,
		Title:       b.Title,
		Category:    b.Category,
		Start:       0,
		End:         b.End - 24,
		TimeLabel:   FormatClock(0, 0),
		DurationMin: overflowMin,
		PreMin:      pre,
		CoreMin:     core,
		PostMin:     post,
		Rationale:   "Continued from yesterday",
		IsSpillover: true,
	}
}

// clipAtMidnight caps a block at 24:00 for display. The kept portion consumes
// segments in pre, core, post order; the untrimmed duration is not recorded
// anywhere.
func clipAtMidnight(b Block) Block {
	keepMin := minutesBetween(b.Start, 24)
	pre, core, post, _, _, _ := splitSegments(b.PreMin, b.CoreMin, b.PostMin, keepMin)

	b.End = 24
	b.DurationMin = keepMin
	b.PreMin = pre
	b.CoreMin = core
	b.PostMin = post
	return b
}

func eventBlock(adaptation *models.Adaptation) Block {
	hour, minute, ok := ParseClock(adaptation.EventTime)
	if !ok {
		// Events historically defaulted to mid-day rather than midnight.
		hour, minute = constants.DefaultEventHour, 0
	}
	dur := adaptation.EventDurationMin
	if dur <= 0 {
		dur = constants.DefaultEventMin
	}
	start := float64(hour) + float64(minute)/60

	return Block{
		ID:          "event_" + adaptation.Date,
		Title:       adaptation.EventTitle,
		Start:       start,
		End:         start + float64(dur)/60,
		TimeLabel:   FormatClock(hour, minute),
		DurationMin: dur,
		CoreMin:     dur,
		IsEvent:     true,
	}
}

// splitSegments divides pre/core/post segment minutes at a cut point,
// consuming them in pre, core, post order. The kept and remaining halves
// always sum back to the originals.
func splitSegments(pre, core, post, keepMin int) (keptPre, keptCore, keptPost, remPre, remCore, remPost int) {
	if keepMin < 0 {
		keepMin = 0
	}

	keptPre = min(pre, keepMin)
	keepMin -= keptPre
	keptCore = min(core, keepMin)
	keepMin -= keptCore
	keptPost = min(post, keepMin)

	return keptPre, keptCore, keptPost, pre - keptPre, core - keptCore, post - keptPost
}

// assignLanes walks the sorted blocks and greedily assigns each to the first
// lane whose occupant has already ended, opening a new lane when none has.
// Blocks sharing a lane can therefore never overlap in time.
func assignLanes(blocks []Block) {
	var laneEnds []float64
	for i := range blocks {
		placed := false
		for lane, end := range laneEnds {
			if end <= blocks[i].Start+1e-9 {
				blocks[i].Lane = lane
				laneEnds[lane] = blocks[i].End
				placed = true
				break
			}
		}
		if !placed {
			blocks[i].Lane = len(laneEnds)
			laneEnds = append(laneEnds, blocks[i].End)
		}
	}
}

// markConnectors flags blocks whose successor begins within the connector gap
// of their own end, so the renderer can draw a "continues into" join.
func markConnectors(blocks []Block) {
	gap := float64(constants.ConnectorGapMin) / 60
	for i := 0; i+1 < len(blocks); i++ {
		if math.Abs(blocks[i+1].Start-blocks[i].End) <= gap+1e-9 {
			blocks[i].HasNextConnection = true
		}
	}
}

func minutesBetween(from, to float64) int {
	return int(math.Round((to - from) * 60))
}
