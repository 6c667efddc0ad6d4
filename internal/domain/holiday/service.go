package holiday

import "context"

type HolidayService interface {
	Submit(ctx context.Context, req SubmitRequest) (RequestResponse, error)
	Decide(ctx context.Context, req DecideRequest) (RequestResponse, error)
	ListForStaff(ctx context.Context, staffID string) ([]RequestResponse, error)
	ListPending(ctx context.Context) ([]RequestResponse, error)
}
