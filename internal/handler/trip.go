package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/pkordes/tripwise/backend/internal/domain"
)

// tripResponse is the wire shape of a trip. Dates are YYYY-MM-DD.
type tripResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Destination  string `json:"destination"`
	StartDate    string `json:"startDate" format:"date"`
	EndDate      string `json:"endDate" format:"date"`
	Notes        string `json:"notes"`
	DurationDays int    `json:"durationDays" doc:"Inclusive number of days; 0 when the end date precedes the start date"`
}

type tripRequest struct {
	Title       string `json:"title" minLength:"1" example:"Roman holiday"`
	Destination string `json:"destination" minLength:"1" example:"Rome, Italy"`
	StartDate   string `json:"startDate" format:"date" example:"2026-06-01"`
	EndDate     string `json:"endDate" format:"date" example:"2026-06-05"`
	Notes       string `json:"notes,omitempty"`
}

// TripPath addresses one trip of a scope.
type TripPath struct {
	SessionParam
	ID string `path:"id" doc:"Trip ID"`
}

type listTripsInput struct {
	SessionParam
	Page  int `query:"page" doc:"1-based page number (default 1)"`
	Limit int `query:"limit" doc:"Page size (default 20, max 100)"`
}

type listTripsOutput struct {
	Body struct {
		Data       []tripResponse `json:"data"`
		Pagination pagination     `json:"pagination"`
	}
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type createTripInput struct {
	SessionParam
	Body tripRequest
}

type updateTripInput struct {
	TripPath
	Body tripRequest
}

type tripOutput struct {
	Body tripResponse
}

// listTrips handles GET {scope}/trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) listTrips(ctx context.Context, p Planner, in *listTripsInput) (*listTripsOutput, error) {
	params := domain.NewPaginationParams(in.Page, in.Limit)
	trips, total, err := p.Trips.ListPage(ctx, params)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}

	out := &listTripsOutput{}
	out.Body.Data = make([]tripResponse, len(trips))
	for i, t := range trips {
		out.Body.Data[i] = tripToResponse(t)
	}
	out.Body.Pagination = pagination{Page: params.Page, Limit: params.Limit, Total: total}
	return out, nil
}

// createTrip handles POST {scope}/trips.
func (s *Server) createTrip(ctx context.Context, p Planner, in *createTripInput) (*tripOutput, error) {
	trip, err := requestToTrip(in.Body)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	created, err := p.Trips.Create(ctx, trip)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return &tripOutput{Body: tripToResponse(created)}, nil
}

// getTrip handles GET {scope}/trips/{id}.
func (s *Server) getTrip(ctx context.Context, p Planner, in *TripPath) (*tripOutput, error) {
	trip, err := p.Trips.GetByID(ctx, in.ID)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return &tripOutput{Body: tripToResponse(trip)}, nil
}

// updateTrip handles PUT {scope}/trips/{id}.
func (s *Server) updateTrip(ctx context.Context, p Planner, in *updateTripInput) (*tripOutput, error) {
	trip, err := requestToTrip(in.Body)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	trip.ID = in.ID

	updated, err := p.Trips.Update(ctx, trip)
	if err != nil {
		return nil, s.apiError(ctx, err, "trip not found")
	}
	return &tripOutput{Body: tripToResponse(updated)}, nil
}

// deleteTrip handles DELETE {scope}/trips/{id}.
// Unknown IDs succeed too: the trip is gone either way.
func (s *Server) deleteTrip(ctx context.Context, p Planner, in *TripPath) (*struct{}, error) {
	if err := p.Trips.Delete(ctx, in.ID); err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	return nil, nil
}

func requestToTrip(req tripRequest) (domain.Trip, error) {
	start, err := time.Parse(domain.DateLayout, req.StartDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("startDate must be YYYY-MM-DD")
	}
	end, err := time.Parse(domain.DateLayout, req.EndDate)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("endDate must be YYYY-MM-DD")
	}
	return domain.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   start,
		EndDate:     end,
		Notes:       req.Notes,
	}, nil
}

func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:           t.ID,
		Title:        t.Title,
		Destination:  t.Destination,
		StartDate:    t.StartDate.Format(domain.DateLayout),
		EndDate:      t.EndDate.Format(domain.DateLayout),
		Notes:        t.Notes,
		DurationDays: t.DurationDays(),
	}
}
