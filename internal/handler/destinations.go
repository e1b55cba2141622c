package handler

import "context"

type destinationsOutput struct {
	Body struct {
		Destinations []string `json:"destinations"`
	}
}

// listDestinations handles GET /destinations. It reads the durable scope.
func (s *Server) listDestinations(ctx context.Context, _ *struct{}) (*destinationsOutput, error) {
	dests, err := s.planners("").Trips.Destinations(ctx)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	out := &destinationsOutput{}
	out.Body.Destinations = dests
	return out, nil
}

type endSessionInput struct {
	SessionID string `header:"X-Session-ID" required:"true"`
}

// endSession handles DELETE /session: the session's trips are cleared with
// their activities and expenses.
func (s *Server) endSession(ctx context.Context, in *endSessionInput) (*struct{}, error) {
	if err := checkSessionID(in.SessionID); err != nil {
		return nil, err
	}
	n, err := s.planners(in.SessionID).Trips.Clear(ctx)
	if err != nil {
		return nil, s.apiError(ctx, err, "")
	}
	s.log.InfoContext(ctx, "session ended", "trips", n)
	return nil, nil
}
