package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SupportedGym is the only facility the aggregator currently accepts.
const SupportedGym = "FatDogGym"

const visitorsSumKey = "visitors_sum"

var (
	ErrUnsupportedGym   = errors.New("gym is not supported")
	ErrGymNotProcessed  = errors.New("no processed data for gym")
	ErrDateNotProcessed = errors.New("no processed data for date")
	ErrSlotNotFound     = errors.New("no processed data for time slot")
	ErrInvalidDateRange = errors.New("date1 must be less or equal than date2")
)

// SlotCount is the aggregate stored under one "HH:MM" slot key.
type SlotCount struct {
	VisitorsNum int `json:"visitors_num"`
}

// DayLoad is one day's processed load. On disk and on the wire it is a
// flat JSON object: "HH:MM" keys map to slot counts, while the sibling
// "visitors_sum" key holds the day's running entry count as a bare
// integer. That flat namespace is a legacy layout existing documents and
// chart clients depend on, so the codec below keeps it; internally the
// fields are typed so the sum can never be mistaken for a slot.
type DayLoad struct {
	Slots       map[string]SlotCount
	VisitorsSum *int

	// Date carries the day-of-month tag injected into range report
	// responses. It is never written back to storage.
	Date string
}

func NewDayLoad() *DayLoad {
	return &DayLoad{Slots: make(map[string]SlotCount)}
}

// Clone returns a deep copy, used by range reports so response decoration
// does not leak into the persisted document.
func (d *DayLoad) Clone() *DayLoad {
	out := NewDayLoad()
	for slot, count := range d.Slots {
		out.Slots[slot] = count
	}
	if d.VisitorsSum != nil {
		sum := *d.VisitorsSum
		out.VisitorsSum = &sum
	}
	out.Date = d.Date
	return out
}

func (d DayLoad) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(d.Slots)+2)
	for slot, count := range d.Slots {
		flat[slot] = count
	}
	if d.VisitorsSum != nil {
		flat[visitorsSumKey] = *d.VisitorsSum
	}
	if d.Date != "" {
		flat["date"] = d.Date
	}
	return json.Marshal(flat)
}

func (d *DayLoad) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	d.Slots = make(map[string]SlotCount, len(flat))
	for key, raw := range flat {
		switch key {
		case visitorsSumKey:
			var sum int
			if err := json.Unmarshal(raw, &sum); err != nil {
				return fmt.Errorf("day load: %s: %w", visitorsSumKey, err)
			}
			d.VisitorsSum = &sum
		case "date":
			if err := json.Unmarshal(raw, &d.Date); err != nil {
				return fmt.Errorf("day load: date: %w", err)
			}
		default:
			if _, err := ParseClock(key); err != nil {
				return fmt.Errorf("day load: slot key %q: %w", key, err)
			}
			var count SlotCount
			if err := json.Unmarshal(raw, &count); err != nil {
				return fmt.Errorf("day load: slot %q: %w", key, err)
			}
			d.Slots[key] = count
		}
	}
	return nil
}

// GymLoad is one gym's entry in processed_data.json.
type GymLoad struct {
	Load map[string]*DayLoad `json:"load"`
}

// ProcessedData is the whole processed_data.json document, keyed by gym.
type ProcessedData map[string]*GymLoad

// ChartSeries pairs 0-based slot indexes with visitor counts, the shape
// the reporting front end plots daily load from.
type ChartSeries struct {
	Time []int `json:"time"`
	Data []int `json:"data"`
}
