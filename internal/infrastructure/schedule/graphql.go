package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"recruitbot/internal/domain"
	"recruitbot/internal/domain/entities"
	"recruitbot/internal/ports/output"
)

const currentDayQuery = `query CurrentDay($code: String!) {
  conference(code: $code) {
    id
    isRunning
    currentDay {
      day
      runningEvents {
        id
        title
        start
        end
        rooms {
          id
          name
        }
      }
    }
  }
}`

// naiveLayout is how the schedule service renders local conference times.
const naiveLayout = "2006-01-02T15:04:05"

const maxResponseBytes = 4 << 20

var _ output.ScheduleSource = (*Client)(nil)

// Client queries the conference GraphQL API for the events running now.
type Client struct {
	endpoint   string
	code       string
	location   *time.Location
	httpClient *http.Client
	userAgent  string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient builds a Client. Times without an offset are read in loc.
func NewClient(endpoint, conferenceCode string, loc *time.Location, timeout time.Duration, opts ...Option) *Client {
	if loc == nil {
		loc = time.UTC
	}
	c := &Client{
		endpoint:   endpoint,
		code:       conferenceCode,
		location:   loc,
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  "recruitbot",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data struct {
		Conference *conferenceDTO `json:"conference"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type conferenceDTO struct {
	ID         string         `json:"id"`
	IsRunning  bool           `json:"isRunning"`
	CurrentDay *currentDayDTO `json:"currentDay"`
}

type currentDayDTO struct {
	Day           string     `json:"day"`
	RunningEvents []eventDTO `json:"runningEvents"`
}

type eventDTO struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start string    `json:"start"`
	End   string    `json:"end"`
	Rooms []roomDTO `json:"rooms"`
}

type roomDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchCurrentDay issues one query. A missing conference or current day is
// ScheduleEmpty; transport and payload problems are ScheduleFailed.
func (c *Client) FetchCurrentDay(ctx context.Context) entities.ScheduleResult {
	body, err := json.Marshal(graphQLRequest{
		Query:     currentDayQuery,
		Variables: map[string]any{"code": c.code},
	})
	if err != nil {
		return entities.Failed(fmt.Errorf("encode query: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.Failed(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entities.Failed(fmt.Errorf("%w: %w", domain.ErrScheduleUnavailable, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return entities.Failed(fmt.Errorf("%w: status %d", domain.ErrScheduleUnavailable, resp.StatusCode))
	}

	var payload graphQLResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return entities.Failed(fmt.Errorf("%w: decode: %w", domain.ErrMalformedSchedule, err))
	}
	if len(payload.Errors) > 0 {
		msgs := make([]string, 0, len(payload.Errors))
		for _, e := range payload.Errors {
			msgs = append(msgs, e.Message)
		}
		return entities.Failed(fmt.Errorf("%w: graphql: %s", domain.ErrMalformedSchedule, strings.Join(msgs, "; ")))
	}

	conf := payload.Data.Conference
	if conf == nil || conf.CurrentDay == nil {
		return entities.Empty()
	}

	day, err := c.toDomain(conf)
	if err != nil {
		return entities.Failed(err)
	}
	return entities.Found(day)
}

func (c *Client) toDomain(conf *conferenceDTO) (*entities.CurrentDay, error) {
	day := &entities.CurrentDay{
		ConferenceID:  conf.ID,
		IsRunning:     conf.IsRunning,
		Day:           conf.CurrentDay.Day,
		RunningEvents: make([]entities.RunningEvent, 0, len(conf.CurrentDay.RunningEvents)),
	}
	for _, ev := range conf.CurrentDay.RunningEvents {
		start, err := c.parseTime(ev.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s start: %w", domain.ErrMalformedSchedule, ev.ID, err)
		}
		end, err := c.parseTime(ev.End)
		if err != nil {
			return nil, fmt.Errorf("%w: event %s end: %w", domain.ErrMalformedSchedule, ev.ID, err)
		}
		rooms := make([]entities.Room, len(ev.Rooms))
		for i, r := range ev.Rooms {
			rooms[i] = entities.Room{ID: r.ID, Name: r.Name}
		}
		day.RunningEvents = append(day.RunningEvents, entities.RunningEvent{
			ID:    ev.ID,
			Title: ev.Title,
			Start: start,
			End:   end,
			Rooms: rooms,
		})
	}
	return day, nil
}

func (c *Client) parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(naiveLayout, s, c.location); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
