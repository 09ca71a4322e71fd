package dto

import (
	"hos-recap-service/internal/domain"
	"strings"
)

type SegmentPayload struct {
	Status   string `json:"status"`
	StartISO string `json:"start_iso"`
	EndISO   string `json:"end_iso"`
}

type RemarkEventPayload struct {
	StartISO string  `json:"start_iso"`
	EndISO   *string `json:"end_iso"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Reason   string  `json:"reason"`
}

type DailyLogPayload struct {
	Date         string               `json:"date"`
	Segments     []SegmentPayload     `json:"segments"`
	RemarkEvents []RemarkEventPayload `json:"remark_events,omitempty"`
}

type SleeperBerthPayload struct {
	Active bool   `json:"active"`
	Time   string `json:"time"`
}

func (p SleeperBerthPayload) ToDomain() domain.SleeperBerthOverride {
	return domain.NewSleeperBerthOverride(p.Active, p.Time)
}

func NewSleeperBerthPayload(o domain.SleeperBerthOverride) SleeperBerthPayload {
	return SleeperBerthPayload{Active: o.Active, Time: o.Clock()}
}

// ToDailyLogs converts wire logs to domain logs without validating them.
func ToDailyLogs(in []DailyLogPayload) []domain.DailyLog {
	out := make([]domain.DailyLog, 0, len(in))
	for _, l := range in {
		day := domain.DailyLog{
			Date:     strings.TrimSpace(l.Date),
			Segments: make([]domain.DutySegment, 0, len(l.Segments)),
		}
		for _, s := range l.Segments {
			day.Segments = append(day.Segments, domain.DutySegment{
				Status: domain.DutyStatus(strings.ToUpper(strings.TrimSpace(s.Status))),
				Start:  domain.Timestamp(s.StartISO),
				End:    domain.Timestamp(s.EndISO),
			})
		}
		for _, e := range l.RemarkEvents {
			ev := domain.RemarkEvent{
				Start:    domain.Timestamp(e.StartISO),
				Type:     domain.RemarkType(strings.ToLower(strings.TrimSpace(e.Type))),
				Location: e.Location,
				Reason:   e.Reason,
			}
			if e.EndISO != nil && strings.TrimSpace(*e.EndISO) != "" {
				end := domain.Timestamp(*e.EndISO)
				ev.End = &end
			}
			day.RemarkEvents = append(day.RemarkEvents, ev)
		}
		out = append(out, day)
	}
	return out
}

func NewDailyLogPayloads(logs []domain.DailyLog) []DailyLogPayload {
	out := make([]DailyLogPayload, 0, len(logs))
	for _, l := range logs {
		p := DailyLogPayload{
			Date:     l.Date,
			Segments: make([]SegmentPayload, 0, len(l.Segments)),
		}
		for _, s := range l.Segments {
			p.Segments = append(p.Segments, SegmentPayload{
				Status:   string(s.Status),
				StartISO: string(s.Start),
				EndISO:   string(s.End),
			})
		}
		for _, e := range l.RemarkEvents {
			p.RemarkEvents = append(p.RemarkEvents, newRemarkEventPayload(e))
		}
		out = append(out, p)
	}
	return out
}

func newRemarkEventPayload(e domain.RemarkEvent) RemarkEventPayload {
	p := RemarkEventPayload{
		StartISO: string(e.Start),
		Type:     string(e.Type),
		Location: e.Location,
		Reason:   e.Reason,
	}
	if e.End != nil {
		end := string(*e.End)
		p.EndISO = &end
	}
	return p
}
