package dto

import (
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared"
)

type GuestResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Phone       string `json:"phone,omitempty"`
	Nationality string `json:"nationality,omitempty"`
}

func (r *GuestResponse) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.Name = guest.Name
	r.Email = guest.Email
	r.Role = guest.Role
	r.Phone = guest.Phone
	r.Nationality = guest.Nationality
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalData int             `json:"total_data"`
	TotalPage int             `json:"total_page"`
	Page      int             `json:"page"`
}

// FromModels fills one page of the directory. The upstream user-service
// has no list pagination, so the page window is applied here.
func (r *GetGuestsResponse) FromModels(models []model.Guest, page, limit int) {
	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = len(models)
	}

	r.TotalData = len(models)
	r.TotalPage = shared.CalculateTotalPage(len(models), limit)
	r.Page = page

	start := (page - 1) * limit
	if start > len(models) {
		start = len(models)
	}

	end := start + limit
	if end > len(models) {
		end = len(models)
	}

	window := models[start:end]

	r.Guests = make([]GuestResponse, len(window))
	for i, mod := range window {
		r.Guests[i].FromModel(mod)
	}
}
