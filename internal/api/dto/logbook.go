package dto

import (
	"hos-recap-service/internal/domain"
	"time"
)

type LogbookUpsertRequest struct {
	Date         string               `json:"date"`
	Index        int                  `json:"index"`
	FormData     map[string]string    `json:"form_data"`
	SleeperBerth *SleeperBerthPayload `json:"sleeper_berth"`
}

func (r LogbookUpsertRequest) ToDomain() domain.LogbookUpdate {
	u := domain.LogbookUpdate{
		Date:     r.Date,
		Index:    r.Index,
		FormData: r.FormData,
	}
	if u.Index == 0 {
		u.Index = 1
	}
	if r.SleeperBerth != nil {
		o := r.SleeperBerth.ToDomain()
		u.SleeperBerth = &o
	}
	return u
}

type LogbookPageResponse struct {
	ID           int64               `json:"id"`
	Date         string              `json:"date"`
	Index        int                 `json:"index"`
	FormData     map[string]string   `json:"form_data"`
	SleeperBerth SleeperBerthPayload `json:"sleeper_berth"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

type ListLogbookPagesResponse struct {
	Results []LogbookPageResponse `json:"results"`
}

func NewLogbookPageResponse(p *domain.LogbookPage) LogbookPageResponse {
	form := p.FormData
	if form == nil {
		form = map[string]string{}
	}
	return LogbookPageResponse{
		ID:           p.PageID,
		Date:         p.Date,
		Index:        p.Index,
		FormData:     form,
		SleeperBerth: NewSleeperBerthPayload(p.SleeperBerth),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
