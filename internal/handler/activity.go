package handler

import (
	"context"

	"github.com/pkordes/tripwise/backend/internal/calculator"
	"github.com/pkordes/tripwise/backend/internal/domain"
)

type activityRequest struct {
	Day         int      `json:"day" minimum:"1" example:"3"`
	Title       string   `json:"title" minLength:"1" example:"Colosseum"`
	Description string   `json:"description,omitempty"`
	Time        string   `json:"time,omitempty" pattern:"^[0-2][0-9]:[0-5][0-9]$" example:"10:00"`
	Price       *float64 `json:"price,omitempty" minimum:"0" doc:"Leave empty for free activities"`
}

type activitiesOutput struct {
	Body struct {
		Data []domain.Activity `json:"data"`
	}
}

type addActivityInput struct {
	TripPath
	Body activityRequest
}

type activityOutput struct {
	Body domain.Activity
}

type deleteActivityInput struct {
	TripPath
	ActivityID string `path:"activityId"`
}

type dayResponse struct {
	Day        int               `json:"day"`
	Date       string            `json:"date" format:"date"`
	Activities []domain.Activity `json:"activities"`
}

type itineraryOutput struct {
	Body struct {
		Days []dayResponse `json:"days"`
	}
}

type dayInput struct {
	TripPath
	Day int `path:"day"`
}

type dayOutput struct {
	Body struct {
		Day        int               `json:"day"`
		Date       string            `json:"date" format:"date"`
		Activities []domain.Activity `json:"activities"`
		Days       int               `json:"days"`
		Prev       *int              `json:"prev,omitempty" doc:"Previous day; absent on the first day"`
		Next       *int              `json:"next,omitempty" doc:"Next day; absent on the last day"`
	}
}

// listActivities handles GET {scope}/trips/{id}/activities.
func (s *Server) listActivities(ctx context.Context, p Planner, in *TripPath) (*activitiesOutput, error) {
	activities, err := p.Activities.List(ctx, in.ID)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	out := &activitiesOutput{}
	out.Body.Data = activities
	return out, nil
}

// addActivity handles POST {scope}/trips/{id}/activities.
func (s *Server) addActivity(ctx context.Context, p Planner, in *addActivityInput) (*activityOutput, error) {
	created, err := p.Activities.Add(ctx, in.ID, domain.Activity{
		Day:         in.Body.Day,
		Title:       in.Body.Title,
		Description: in.Body.Description,
		Time:        in.Body.Time,
		Price:       in.Body.Price,
	})
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return &activityOutput{Body: created}, nil
}

// deleteActivity handles DELETE {scope}/trips/{id}/activities/{activityId}.
func (s *Server) deleteActivity(ctx context.Context, p Planner, in *deleteActivityInput) (*struct{}, error) {
	if err := p.Activities.Delete(ctx, in.ID, in.ActivityID); err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return nil, nil
}

// getItinerary handles GET {scope}/trips/{id}/itinerary.
func (s *Server) getItinerary(ctx context.Context, p Planner, in *TripPath) (*itineraryOutput, error) {
	days, err := p.Activities.Itinerary(ctx, in.ID)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	out := &itineraryOutput{}
	out.Body.Days = make([]dayResponse, len(days))
	for i, d := range days {
		out.Body.Days[i] = dayToResponse(d)
	}
	return out, nil
}

// getDay handles GET {scope}/trips/{id}/days/{day}.
func (s *Server) getDay(ctx context.Context, p Planner, in *dayInput) (*dayOutput, error) {
	view, err := p.Activities.Day(ctx, in.ID, in.Day)
	if err != nil {
		return nil, s.apiError(ctx, err, "day not found")
	}
	out := &dayOutput{}
	day := dayToResponse(view.Day)
	out.Body.Day = day.Day
	out.Body.Date = day.Date
	out.Body.Activities = day.Activities
	out.Body.Days = view.Days
	out.Body.Prev = view.Prev
	out.Body.Next = view.Next
	return out, nil
}

func dayToResponse(d calculator.Day) dayResponse {
	return dayResponse{
		Day:        d.Day,
		Date:       d.Date.Format(domain.DateLayout),
		Activities: d.Activities,
	}
}
