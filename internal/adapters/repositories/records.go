package repositories

import (
	"encoding/json"
	"fmt"
	"hos-recap-service/internal/domain"
)

// Storage shape of a day's planner output inside trips.logs (JSONB).
type logRecord struct {
	Date     string          `json:"date"`
	Segments []segmentRecord `json:"segments"`
	Remarks  []remarkRecord  `json:"remark_events,omitempty"`
}

type segmentRecord struct {
	Status string `json:"status"`
	Start  string `json:"start_iso"`
	End    string `json:"end_iso"`
}

type remarkRecord struct {
	Start    string  `json:"start_iso"`
	End      *string `json:"end_iso,omitempty"`
	Type     string  `json:"type"`
	Location string  `json:"location"`
	Reason   string  `json:"reason"`
}

func encodeLogs(logs []domain.DailyLog) ([]byte, error) {
	recs := make([]logRecord, 0, len(logs))
	for _, l := range logs {
		rec := logRecord{Date: l.Date, Segments: make([]segmentRecord, 0, len(l.Segments))}
		for _, s := range l.Segments {
			rec.Segments = append(rec.Segments, segmentRecord{
				Status: string(s.Status),
				Start:  string(s.Start),
				End:    string(s.End),
			})
		}
		for _, e := range l.RemarkEvents {
			r := remarkRecord{
				Start:    string(e.Start),
				Type:     string(e.Type),
				Location: e.Location,
				Reason:   e.Reason,
			}
			if e.End != nil {
				end := string(*e.End)
				r.End = &end
			}
			rec.Remarks = append(rec.Remarks, r)
		}
		recs = append(recs, rec)
	}

	b, err := json.Marshal(recs)
	if err != nil {
		return nil, fmt.Errorf("encode logs: %w", err)
	}
	return b, nil
}

func decodeLogs(b []byte) ([]domain.DailyLog, error) {
	var recs []logRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return nil, fmt.Errorf("decode logs: %w", err)
	}

	logs := make([]domain.DailyLog, 0, len(recs))
	for _, rec := range recs {
		l := domain.DailyLog{Date: rec.Date, Segments: make([]domain.DutySegment, 0, len(rec.Segments))}
		for _, s := range rec.Segments {
			l.Segments = append(l.Segments, domain.DutySegment{
				Status: domain.DutyStatus(s.Status),
				Start:  domain.Timestamp(s.Start),
				End:    domain.Timestamp(s.End),
			})
		}
		for _, r := range rec.Remarks {
			ev := domain.RemarkEvent{
				Start:    domain.Timestamp(r.Start),
				Type:     domain.RemarkType(r.Type),
				Location: r.Location,
				Reason:   r.Reason,
			}
			if r.End != nil {
				end := domain.Timestamp(*r.End)
				ev.End = &end
			}
			l.RemarkEvents = append(l.RemarkEvents, ev)
		}
		logs = append(logs, l)
	}
	return logs, nil
}
