package timeline

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/acampos-dev/secondbrain/internal/constants"
	"github.com/acampos-dev/secondbrain/internal/models"
)

// Wednesday 2025-03-12; the containing Monday-start week runs 03-10 to 03-16.
var wednesday = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

func dailyActivity(id, timeStr string, coreMin int) models.Activity {
	return models.Activity{
		ID:          id,
		Title:       id,
		Frequency:   constants.FrequencyDaily,
		Time:        timeStr,
		DurationMin: coreMin,
	}
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLayoutBasicParse(t *testing.T) {
	activities := []models.Activity{dailyActivity("read", "2:30pm", 45)}

	blocks := Layout(activities, nil, wednesday, "")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}

	b := blocks[0]
	if !approx(b.Start, 14.5) || !approx(b.End, 15.25) {
		t.Errorf("block spans [%v, %v), want [14.5, 15.25)", b.Start, b.End)
	}
	if b.TimeLabel != "2:30 PM" {
		t.Errorf("TimeLabel = %q, want %q", b.TimeLabel, "2:30 PM")
	}
	if b.DurationMin != 45 {
		t.Errorf("DurationMin = %d, want 45", b.DurationMin)
	}
}

func TestLayoutMalformedTimeDefaultsToMidnight(t *testing.T) {
	activities := []models.Activity{dailyActivity("vague", "banana", 30)}

	blocks := Layout(activities, nil, wednesday, "")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if !approx(blocks[0].Start, 0) {
		t.Errorf("Start = %v, want 0 (midnight fallback)", blocks[0].Start)
	}
}

func TestLayoutMissingDurationDefaults(t *testing.T) {
	activities := []models.Activity{dailyActivity("nodur", "08:00", 0)}

	blocks := Layout(activities, nil, wednesday, "")
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].DurationMin != constants.DefaultCoreMin {
		t.Errorf("DurationMin = %d, want default %d", blocks[0].DurationMin, constants.DefaultCoreMin)
	}
}

func TestLayoutOvernightSpillover(t *testing.T) {
	activities := []models.Activity{dailyActivity("winddown", "23:00", 120)}

	// Day D: today's occurrence is clipped at midnight. A continuation from
	// day D-1 also appears, since the activity runs nightly.
	var clipped *Block
	for _, b := range Layout(activities, nil, wednesday, "") {
		if !b.IsSpillover {
			clipped = &b
		}
	}
	if clipped == nil {
		t.Fatal("day D: no clipped block produced")
	}
	if !approx(clipped.End, 24) || clipped.DurationMin != 60 {
		t.Errorf("day D: end = %v dur = %d, want 24 / 60", clipped.End, clipped.DurationMin)
	}

	// Day D+1: a spillover continuation appears alongside the new occurrence.
	next := Layout(activities, nil, wednesday.AddDate(0, 0, 1), "")
	var spill *Block
	for i := range next {
		if next[i].IsSpillover {
			spill = &next[i]
		}
	}
	if spill == nil {
		t.Fatal("day D+1: no spillover block produced")
	}
	if spill.ID != "winddown_overflow" {
		t.Errorf("spillover ID = %q, want %q", spill.ID, "winddown_overflow")
	}
	if !approx(spill.Start, 0) || !approx(spill.End, 1) || spill.DurationMin != 60 {
		t.Errorf("spillover = [%v, %v) %d min, want [0, 1) 60 min", spill.Start, spill.End, spill.DurationMin)
	}
	if spill.Rationale != "Continued from yesterday" {
		t.Errorf("spillover rationale = %q", spill.Rationale)
	}
}

func TestLayoutMidnightConservation(t *testing.T) {
	// 23:00 + 20 pre + 80 core + 20 post = 120 min crossing midnight at 60.
	a := models.Activity{
		ID:          "deep",
		Title:       "deep",
		Frequency:   constants.FrequencyDaily,
		Time:        "23:00",
		PreMin:      20,
		DurationMin: 80,
		RewardMin:   20,
	}

	var today, spill Block
	for _, b := range Layout([]models.Activity{a}, nil, wednesday, "") {
		if !b.IsSpillover {
			today = b
		}
	}
	for _, b := range Layout([]models.Activity{a}, nil, wednesday.AddDate(0, 0, 1), "") {
		if b.IsSpillover {
			spill = b
		}
	}

	if today.DurationMin+spill.DurationMin != 120 {
		t.Errorf("split durations sum to %d, want 120", today.DurationMin+spill.DurationMin)
	}
	if today.PreMin+spill.PreMin != 20 || today.CoreMin+spill.CoreMin != 80 || today.PostMin+spill.PostMin != 20 {
		t.Errorf("segment sums = pre %d core %d post %d, want 20/80/20",
			today.PreMin+spill.PreMin, today.CoreMin+spill.CoreMin, today.PostMin+spill.PostMin)
	}

	// The before-midnight hour consumes pre first, then core.
	if today.PreMin != 20 || today.CoreMin != 40 || today.PostMin != 0 {
		t.Errorf("today segments = %d/%d/%d, want 20/40/0", today.PreMin, today.CoreMin, today.PostMin)
	}
	if spill.PreMin != 0 || spill.CoreMin != 40 || spill.PostMin != 20 {
		t.Errorf("spillover segments = %d/%d/%d, want 0/40/20", spill.PreMin, spill.CoreMin, spill.PostMin)
	}
}

func TestLayoutLanePacking(t *testing.T) {
	activities := []models.Activity{
		dailyActivity("a", "9:00", 60),
		dailyActivity("b", "9:30", 60),
		dailyActivity("c", "10:00", 60),
	}

	blocks := Layout(activities, nil, wednesday, "")
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(blocks))
	}

	lanes := map[string]int{}
	maxLane := 0
	for _, b := range blocks {
		lanes[b.ID] = b.Lane
		if b.Lane > maxLane {
			maxLane = b.Lane
		}
	}

	if maxLane != 1 {
		t.Errorf("used %d lanes, want 2", maxLane+1)
	}
	if lanes["a"] != lanes["c"] {
		t.Errorf("blocks a and c should share a lane, got %d and %d", lanes["a"], lanes["c"])
	}
	if lanes["b"] == lanes["a"] {
		t.Errorf("block b should not share a lane with a")
	}

	// No two blocks in the same lane may overlap.
	for i, b1 := range blocks {
		for _, b2 := range blocks[i+1:] {
			if b1.Lane == b2.Lane && b1.End > b2.Start+1e-9 && b2.End > b1.Start+1e-9 {
				t.Errorf("lane %d holds overlapping blocks %s and %s", b1.Lane, b1.ID, b2.ID)
			}
		}
	}
}

func TestLayoutActiveSet(t *testing.T) {
	a := models.Activity{
		ID:         "gym",
		Title:      "gym",
		Frequency:  constants.FrequencySpecificDays,
		RepeatDays: []time.Weekday{time.Monday, time.Wednesday},
		Time:       "18:00",
	}

	tests := []struct {
		name     string
		mutate   func(*models.Activity)
		date     time.Time
		wantSeen bool
	}{
		{
			name:     "scheduled weekday",
			date:     wednesday,
			wantSeen: true,
		},
		{
			name:     "unscheduled weekday",
			date:     wednesday.AddDate(0, 0, 1), // Thursday
			wantSeen: false,
		},
		{
			name: "excluded date",
			mutate: func(a *models.Activity) {
				a.ExcludedDates = []string{"2025-03-12"}
			},
			date:     wednesday,
			wantSeen: false,
		},
		{
			name: "archived",
			mutate: func(a *models.Activity) {
				a.Archived = true
			},
			date:     wednesday,
			wantSeen: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act := a
			if tt.mutate != nil {
				tt.mutate(&act)
			}
			blocks := Layout([]models.Activity{act}, nil, tt.date, "")
			seen := false
			for _, b := range blocks {
				if b.ActivityID == "gym" && !b.IsSpillover {
					seen = true
				}
			}
			if seen != tt.wantSeen {
				t.Errorf("activity visible = %v, want %v", seen, tt.wantSeen)
			}
		})
	}
}

func TestLayoutIdempotence(t *testing.T) {
	activities := []models.Activity{
		dailyActivity("a", "9:00", 60),
		dailyActivity("b", "23:30", 90),
	}
	adaptation := &models.Adaptation{
		Date:             "2025-03-12",
		Entries:          map[string]models.AdaptedEntry{"a": {Time: "10:00", Rationale: "meeting ran over"}},
		EventTitle:       "Dentist",
		EventTime:        "15:00",
		EventDurationMin: 45,
	}

	first := Layout(activities, adaptation, wednesday, "")
	second := Layout(activities, adaptation, wednesday, "")
	if !reflect.DeepEqual(first, second) {
		t.Error("layout is not deterministic for identical inputs")
	}
}

func TestLayoutAdaptationPrecedence(t *testing.T) {
	a := models.Activity{
		ID:        "run",
		Title:     "run",
		Frequency: constants.FrequencyDaily,
		Time:      "07:00",
		Schedule: map[time.Weekday]models.ScheduleEntry{
			time.Wednesday: {Time: "08:00", DurationMin: 40},
		},
		DurationMin: 30,
	}

	// Without an adaptation, the Wednesday schedule entry wins over scalars.
	b := Layout([]models.Activity{a}, nil, wednesday, "")[0]
	if !approx(b.Start, 8) || b.DurationMin != 40 {
		t.Errorf("schedule entry not applied: start %v dur %d", b.Start, b.DurationMin)
	}
	if b.IsAdapted {
		t.Error("block marked adapted without an adaptation")
	}

	// The adaptation entry overrides the schedule entry.
	ad := &models.Adaptation{
		Date: "2025-03-12",
		Entries: map[string]models.AdaptedEntry{
			"run": {Time: "6:15am", DurationMin: 20, Rationale: "early flight"},
		},
	}
	b = Layout([]models.Activity{a}, ad, wednesday, "")[0]
	if !approx(b.Start, 6.25) || b.DurationMin != 20 {
		t.Errorf("adaptation not applied: start %v dur %d", b.Start, b.DurationMin)
	}
	if !b.IsAdapted || b.Rationale != "early flight" {
		t.Errorf("IsAdapted = %v rationale = %q", b.IsAdapted, b.Rationale)
	}
}

func TestLayoutEventInjection(t *testing.T) {
	tests := []struct {
		name      string
		eventTime string
		duration  int
		wantStart float64
		wantDur   int
	}{
		{
			name:      "parsed time and duration",
			eventTime: "3:30pm",
			duration:  45,
			wantStart: 15.5,
			wantDur:   45,
		},
		{
			name:      "unparseable time defaults to noon",
			eventTime: "whenever",
			duration:  45,
			wantStart: 12,
			wantDur:   45,
		},
		{
			name:      "missing duration defaults",
			eventTime: "09:00",
			duration:  0,
			wantStart: 9,
			wantDur:   constants.DefaultEventMin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ad := &models.Adaptation{
				Date:             "2025-03-12",
				EventTitle:       "Surprise",
				EventTime:        tt.eventTime,
				EventDurationMin: tt.duration,
			}
			blocks := Layout(nil, ad, wednesday, "")
			if len(blocks) != 1 {
				t.Fatalf("expected 1 event block, got %d", len(blocks))
			}
			b := blocks[0]
			if !b.IsEvent {
				t.Error("block not flagged as event")
			}
			if !approx(b.Start, tt.wantStart) || b.DurationMin != tt.wantDur {
				t.Errorf("event = start %v dur %d, want %v / %d", b.Start, b.DurationMin, tt.wantStart, tt.wantDur)
			}
		})
	}
}

func TestLayoutConnectors(t *testing.T) {
	activities := []models.Activity{
		dailyActivity("first", "9:00", 60),
		dailyActivity("second", "10:04", 30),
		dailyActivity("third", "12:00", 30),
	}

	blocks := Layout(activities, nil, wednesday, "")
	byID := map[string]Block{}
	for _, b := range blocks {
		byID[b.ID] = b
	}

	if !byID["first"].HasNextConnection {
		t.Error("first block should connect into second (4 minute gap)")
	}
	if byID["second"].HasNextConnection {
		t.Error("second block should not connect into third (86 minute gap)")
	}
}

func TestLayoutCategoryFilter(t *testing.T) {
	health := dailyActivity("stretch", "7:00", 15)
	health.Category = "health"
	work := dailyActivity("standup", "9:30", 15)
	work.Category = "work"

	blocks := Layout([]models.Activity{health, work}, nil, wednesday, "health")
	if len(blocks) != 1 || blocks[0].ID != "stretch" {
		t.Fatalf("category filter returned %d blocks", len(blocks))
	}
}

func TestLayoutTotalOverride(t *testing.T) {
	a := dailyActivity("yoga", "6:00", 30)
	a.PreMin = 10
	a.RewardMin = 10
	a.TotalOverrideMin = 25

	b := Layout([]models.Activity{a}, nil, wednesday, "")[0]
	if b.DurationMin != 25 {
		t.Errorf("DurationMin = %d, want override 25", b.DurationMin)
	}
	// Segments are not rescaled by the override.
	if b.PreMin != 10 || b.CoreMin != 30 || b.PostMin != 10 {
		t.Errorf("segments = %d/%d/%d, want 10/30/10", b.PreMin, b.CoreMin, b.PostMin)
	}
}
