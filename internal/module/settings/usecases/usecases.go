package usecases

import (
	"context"
	"fmt"
	"sort"
	"time"

	"stall-booking-service/internal/module/settings/models/request"
	"stall-booking-service/internal/module/settings/models/response"
	"stall-booking-service/internal/module/settings/repositories"
	"stall-booking-service/internal/pkg/errors"
	"stall-booking-service/internal/pkg/log"
)

const dateLayout = "2006-01-02"

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ShowOpenDates(ctx context.Context) (response.OpenDates, error)
	ReplaceOpenDates(ctx context.Context, payload *request.ReplaceOpenDates) (response.OpenDates, error)
}

func New(repo repositories.Repositories, logger log.Logger) Usecase {
	return &usecase{repo: repo, log: logger}
}

func (u *usecase) ShowOpenDates(ctx context.Context) (response.OpenDates, error) {
	dates, err := u.repo.FindOpenDates(ctx)
	if err != nil {
		return response.OpenDates{}, err
	}
	return response.OpenDates{Dates: dates}, nil
}

// ReplaceOpenDates validates that every date lands on a market weekend
// before swapping the list. Duplicates are collapsed.
func (u *usecase) ReplaceOpenDates(ctx context.Context, payload *request.ReplaceOpenDates) (response.OpenDates, error) {
	seen := make(map[string]bool, len(payload.Dates))
	dates := make([]string, 0, len(payload.Dates))

	for _, date := range payload.Dates {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return response.OpenDates{}, errors.BadRequest(fmt.Sprintf("invalid date %s", date))
		}
		if parsed.Weekday() != time.Saturday && parsed.Weekday() != time.Sunday {
			return response.OpenDates{}, errors.UnprocessableEntity(fmt.Sprintf("%s is not a weekend date", date))
		}
		if seen[date] {
			continue
		}
		seen[date] = true
		dates = append(dates, date)
	}

	sort.Strings(dates)

	if err := u.repo.ReplaceOpenDates(ctx, dates); err != nil {
		return response.OpenDates{}, err
	}

	return response.OpenDates{Dates: dates}, nil
}
