package dto

import "hos-recap-service/internal/domain"

// SheetsRequest computes sheets for a trip that is not stored.
// TotalMiles wins over DistanceMeters when both are set.
type SheetsRequest struct {
	Logs           []DailyLogPayload              `json:"logs"`
	DistanceMeters float64                        `json:"distance_m"`
	TotalMiles     *float64                       `json:"total_miles"`
	SleeperBerth   map[string]SleeperBerthPayload `json:"sleeper_berth"`
}

type IntervalResponse struct {
	Status    string  `json:"status"`
	StartHour float64 `json:"start_hour"`
	EndHour   float64 `json:"end_hour"`
}

type RecapResponse struct {
	OnDutyToday float64 `json:"on_duty_today"`
	SeventyA    float64 `json:"seventy_a"`
	SeventyB    float64 `json:"seventy_b"`
	SeventyC    float64 `json:"seventy_c"`
	SixtyA      float64 `json:"sixty_a"`
	SixtyB      float64 `json:"sixty_b"`
	SixtyC      float64 `json:"sixty_c"`
}

type BarResponse struct {
	Status        string  `json:"status"`
	Row           int     `json:"row"`
	StartFraction float64 `json:"start_fraction"`
	EndFraction   float64 `json:"end_fraction"`
	ConnectsPrev  bool    `json:"connects_prev"`
}

type RemarkMarkResponse struct {
	RemarkEventPayload
	StartFraction float64  `json:"start_fraction"`
	EndFraction   *float64 `json:"end_fraction"`
}

type DaySheetResponse struct {
	DayIndex          int                  `json:"day_index"`
	Date              string               `json:"date"`
	SleeperBerth      SleeperBerthPayload  `json:"sleeper_berth"`
	Segments          []IntervalResponse   `json:"segments"`
	Totals            map[string]float64   `json:"totals"`
	DrivingPlusOnDuty float64              `json:"driving_plus_on_duty"`
	Recap             RecapResponse        `json:"recap"`
	Miles             float64              `json:"miles"`
	Bars              []BarResponse        `json:"bars"`
	Remarks           []RemarkMarkResponse `json:"remarks"`
}

type ListSheetsResponse struct {
	TripID string             `json:"trip_id,omitempty"`
	Sheets []DaySheetResponse `json:"sheets"`
}

func NewDaySheetResponse(s domain.DaySheet) DaySheetResponse {
	res := DaySheetResponse{
		DayIndex:          s.DayIndex,
		Date:              s.Date,
		SleeperBerth:      NewSleeperBerthPayload(s.Override),
		Segments:          make([]IntervalResponse, 0, len(s.Day.Intervals)),
		Totals:            make(map[string]float64, len(domain.Statuses)),
		DrivingPlusOnDuty: s.OnDutyHours,
		Recap: RecapResponse{
			OnDutyToday: s.Recap.OnDutyToday,
			SeventyA:    s.Recap.SeventyA,
			SeventyB:    s.Recap.SeventyB,
			SeventyC:    s.Recap.SeventyC,
			SixtyA:      s.Recap.SixtyA,
			SixtyB:      s.Recap.SixtyB,
			SixtyC:      s.Recap.SixtyC,
		},
		Miles:   s.Miles,
		Bars:    make([]BarResponse, 0, len(s.Bars)),
		Remarks: make([]RemarkMarkResponse, 0, len(s.Remarks)),
	}

	for _, iv := range s.Day.Intervals {
		res.Segments = append(res.Segments, IntervalResponse{
			Status:    string(iv.Status),
			StartHour: iv.Start,
			EndHour:   iv.End,
		})
	}
	for _, st := range domain.Statuses {
		res.Totals[string(st)] = s.Totals[st]
	}
	for _, b := range s.Bars {
		res.Bars = append(res.Bars, BarResponse{
			Status:        string(b.Status),
			Row:           b.Row,
			StartFraction: b.StartFraction,
			EndFraction:   b.EndFraction,
			ConnectsPrev:  b.ConnectsPrev,
		})
	}
	for _, m := range s.Remarks {
		res.Remarks = append(res.Remarks, RemarkMarkResponse{
			RemarkEventPayload: newRemarkEventPayload(m.Event),
			StartFraction:      m.StartFraction,
			EndFraction:        m.EndFraction,
		})
	}

	return res
}

func NewListSheetsResponse(tripID string, sheets []domain.DaySheet) ListSheetsResponse {
	res := ListSheetsResponse{TripID: tripID, Sheets: make([]DaySheetResponse, 0, len(sheets))}
	for _, s := range sheets {
		res.Sheets = append(res.Sheets, NewDaySheetResponse(s))
	}
	return res
}
