package hyrox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// searchFieldsResponse is the subset of the getSearchFields AJAX payload we read.
type searchFieldsResponse struct {
	Branches struct {
		Lists struct {
			// Fields is an object keyed by field name, or [] when the site has
			// nothing to offer for the current selection.
			Fields json.RawMessage `json:"fields"`
		} `json:"lists"`
	} `json:"branches"`
}

type searchField struct {
	Data []searchOption `json:"data"`
}

// searchOption carries v = [id, label].
type searchOption struct {
	V []json.RawMessage `json:"v"`
}

// searchParams builds the getSearchFields query for the given selection.
// Empty values are sent as empty strings, as the site's own form does.
func (c *Client) searchParams(group, event, sex string) url.Values {
	q := url.Values{}
	q.Set("content", "ajax2")
	q.Set("func", "getSearchFields")
	q.Set("options[b][lists][event_main_group]", group)
	q.Set("options[b][lists][event]", event)
	q.Set("options[b][lists][ranking]", "")
	q.Set("options[b][lists][sex]", sex)
	q.Set("options[b][lists][age_class]", "")
	q.Set("options[b][lists][nation]", "")
	q.Set("options[lang]", c.lang)
	q.Set("options[pid]", "start")
	return q
}

// searchFields fetches the listing for a selection and returns the options of one field.
func (c *Client) searchFields(ctx context.Context, season int, field, group, event string) ([]domain.SourceEvent, error) {
	body, err := c.get(ctx, c.seasonURL(season)+"index.php", c.searchParams(group, event, ""))
	if err != nil {
		return nil, err
	}

	opts, err := decodeField(body, field)
	if err != nil {
		return nil, err
	}

	c.log.DebugContext(ctx, "hyrox listing",
		slog.Int("season", season),
		slog.String("field", field),
		slog.String("group", group),
		slog.String("event", event),
		slog.Int("options", len(opts)),
	)
	return opts, nil
}

// decodeField extracts branches.lists.fields.<field>.data[].v from a payload.
// A missing field yields an empty list; a payload that is not JSON is a
// permanent source error.
func decodeField(body []byte, field string) ([]domain.SourceEvent, error) {
	var resp searchFieldsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, decodeErr("search fields", err)
	}

	raw := bytes.TrimSpace(resp.Branches.Lists.Fields)
	if len(raw) == 0 || raw[0] != '{' {
		return []domain.SourceEvent{}, nil
	}

	var fields map[string]searchField
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, decodeErr("search fields", err)
	}

	out := []domain.SourceEvent{}
	for _, opt := range fields[field].Data {
		if len(opt.V) < 2 {
			continue
		}
		id, err := scalarString(opt.V[0])
		if err != nil {
			return nil, decodeErr(field+" id", err)
		}
		label, err := scalarString(opt.V[1])
		if err != nil {
			return nil, decodeErr(field+" label", err)
		}
		label = strings.TrimSpace(label)
		if id == "" || label == "" {
			continue
		}
		out = append(out, domain.SourceEvent{ID: id, Label: label})
	}
	return out, nil
}

// scalarString reads a JSON string or number as text.
func scalarString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), nil
	}
	return "", fmt.Errorf("expected string or number, got %s", strconv.Quote(string(raw)))
}

// ListRaceGroups returns the event groups (one per race) of a season.
func (c *Client) ListRaceGroups(ctx context.Context, season int) ([]domain.RaceGroup, error) {
	opts, err := c.searchFields(ctx, season, "event_main_group", "", "")
	if err != nil {
		return nil, fmt.Errorf("list race groups of season %d: %w", season, err)
	}
	groups := make([]domain.RaceGroup, len(opts))
	for i, o := range opts {
		groups[i] = domain.RaceGroup{SiteID: o.ID, Name: o.Label}
	}
	return groups, nil
}

// ListEvents returns the raw events (divisions and others) of one race group.
func (c *Client) ListEvents(ctx context.Context, season int, groupID string) ([]domain.SourceEvent, error) {
	opts, err := c.searchFields(ctx, season, "event", groupID, "")
	if err != nil {
		return nil, fmt.Errorf("list events of %q: %w", groupID, err)
	}
	return opts, nil
}

// ListGenders returns the sex options the site offers for one event.
func (c *Client) ListGenders(ctx context.Context, season int, groupID, eventID string) ([]domain.SourceEvent, error) {
	opts, err := c.searchFields(ctx, season, "sex", groupID, eventID)
	if err != nil {
		return nil, fmt.Errorf("list genders of event %q: %w", eventID, err)
	}
	return opts, nil
}
