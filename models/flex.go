package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The platform has shipped two encodings of the booking price collections
// over its lifetime: a mapping keyed by item id, and an ordered array of
// {id, price, duration} records. Older payloads also carry numeric fields as
// strings and occasionally non-array values where lists are expected. The
// types below absorb all of that at decode time so nothing downstream ever
// branches on payload shape.

// Money is a monetary amount that tolerates string-encoded numbers in legacy
// payloads. Anything unparseable decodes to 0.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*m = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*m = 0
		return nil
	}
	*m = Money(v)
	return nil
}

// JobList degrades to empty when the payload is not an array of jobs.
type JobList []Job

func (l *JobList) UnmarshalJSON(data []byte) error {
	var jobs []Job
	if err := json.Unmarshal(data, &jobs); err != nil {
		*l = JobList{}
		return nil
	}
	*l = jobs
	return nil
}

// PartList degrades to empty when the payload is not an array of parts.
type PartList []Part

func (l *PartList) UnmarshalJSON(data []byte) error {
	var parts []Part
	if err := json.Unmarshal(data, &parts); err != nil {
		*l = PartList{}
		return nil
	}
	*l = parts
	return nil
}

// TimeSlotList degrades to empty when the payload is not an array of slots.
type TimeSlotList []TimeSlot

func (l *TimeSlotList) UnmarshalJSON(data []byte) error {
	var slots []TimeSlot
	if err := json.Unmarshal(data, &slots); err != nil {
		*l = TimeSlotList{}
		return nil
	}
	*l = slots
	return nil
}

// JobPriceMap accepts both historical encodings of the job price collection.
type JobPriceMap map[string]JobPrice

func (m *JobPriceMap) UnmarshalJSON(data []byte) error {
	var keyed map[string]JobPrice
	if err := json.Unmarshal(data, &keyed); err == nil {
		*m = keyed
		return nil
	}
	var seq []struct {
		ID string `json:"id"`
		JobPrice
	}
	if err := json.Unmarshal(data, &seq); err == nil {
		out := make(JobPriceMap, len(seq))
		for _, e := range seq {
			out[e.ID] = e.JobPrice
		}
		*m = out
		return nil
	}
	*m = JobPriceMap{}
	return nil
}

// PartPriceMap accepts both historical encodings of the part price collection.
type PartPriceMap map[string]PartPrice

func (m *PartPriceMap) UnmarshalJSON(data []byte) error {
	var keyed map[string]PartPrice
	if err := json.Unmarshal(data, &keyed); err == nil {
		*m = keyed
		return nil
	}
	var seq []struct {
		ID string `json:"id"`
		PartPrice
	}
	if err := json.Unmarshal(data, &seq); err == nil {
		out := make(PartPriceMap, len(seq))
		for _, e := range seq {
			out[e.ID] = e.PartPrice
		}
		*m = out
		return nil
	}
	*m = PartPriceMap{}
	return nil
}
