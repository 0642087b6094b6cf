package hyrox

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/heartmarshall/hyrox-results/internal/domain"
)

// ListSeasons reads the season dropdown of the results site. Seasons are
// returned ordered by number, without duplicates.
func (c *Client) ListSeasons(ctx context.Context) ([]domain.ScrapedSeason, error) {
	page := c.seasonURL(1)
	body, err := c.get(ctx, page, nil)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	seasons, err := parseSeasons(body, page)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	c.log.InfoContext(ctx, "hyrox seasons listed", slog.Int("count", len(seasons)))
	return seasons, nil
}

func parseSeasons(body []byte, pageURL string) ([]domain.ScrapedSeason, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, decodeErr("season page", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, decodeErr("season page url", err)
	}

	byNumber := map[int]domain.ScrapedSeason{}
	doc.Find("ul.dropdown-menu a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		n, ok := seasonNumber(href)
		if !ok {
			return
		}
		if _, seen := byNumber[n]; seen {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		name := collapse(a.Text())
		if name == "" {
			name = fmt.Sprintf("Season %d", n)
		}
		byNumber[n] = domain.ScrapedSeason{
			Number: n,
			Name:   name,
			URL:    base.ResolveReference(ref).String(),
		}
	})

	seasons := make([]domain.ScrapedSeason, 0, len(byNumber))
	for _, s := range byNumber {
		seasons = append(seasons, s)
	}
	sort.Slice(seasons, func(i, j int) bool { return seasons[i].Number < seasons[j].Number })
	return seasons, nil
}

// FetchResultPage downloads one page of a division ranking and returns its
// athlete rows. A page past the end of the ranking yields no rows.
func (c *Client) FetchResultPage(ctx context.Context, q domain.ResultQuery) ([]domain.ResultRow, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	sex := q.SexCode
	if sex == "" {
		sex = "%"
	}

	form := url.Values{}
	form.Set("lang", c.lang)
	form.Set("startpage", "start_responsive")
	form.Set("startpage_type", "lists")
	form.Set("event_main_group", q.GroupID)
	form.Set("event", q.EventID)
	form.Set("ranking", "time_finish_netto")
	form.Set("search[name]", "")
	form.Set("search[firstname]", "")
	form.Set("search[sex]", sex)
	form.Set("search[age_class]", "%")
	form.Set("search[nation]", "%")
	form.Set("num_results", strconv.Itoa(q.PageSize))
	form.Set("page", strconv.Itoa(page))
	form.Set("submit", "submit")

	seasonPage := c.seasonURL(q.Season)
	body, err := c.postForm(ctx, seasonPage+"?pid=list&pidp=ranking_nav", form)
	if err != nil {
		return nil, fmt.Errorf("fetch results of event %q page %d: %w", q.EventID, page, err)
	}

	rows, err := parseResultRows(body, seasonPage)
	if err != nil {
		return nil, fmt.Errorf("fetch results of event %q page %d: %w", q.EventID, page, err)
	}

	c.log.DebugContext(ctx, "hyrox result page",
		slog.String("event", q.EventID),
		slog.String("sex", sex),
		slog.Int("page", page),
		slog.Int("rows", len(rows)),
	)
	return rows, nil
}

func parseResultRows(body []byte, pageURL string) ([]domain.ResultRow, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, decodeErr("result page", err)
	}
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, decodeErr("result page url", err)
	}

	rows := []domain.ResultRow{}
	doc.Find("ul.list-group-multicolumn li.list-group-item").
		Not(".list-group-header").
		Each(func(_ int, li *goquery.Selection) {
			name := li.Find("h4.type-fullname a").First()
			if name.Length() == 0 {
				return
			}

			row := domain.ResultRow{
				RankOverall:   collapse(li.Find(".type-place.place-primary").First().Text()),
				RankAgeGroup:  collapse(li.Find(".type-place.place-secondary").First().Text()),
				FullName:      collapse(name.Text()),
				Nationality:   collapse(li.Find("span.nation__abbr").First().Text()),
				AgeGroup:      ageGroup(li.Find(".type-age_class").First().Text()),
				TotalTimeText: totalTime(li),
			}
			if href, ok := name.Attr("href"); ok {
				if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
					row.DetailLink = base.ResolveReference(ref).String()
				}
			}
			rows = append(rows, row)
		})
	return rows, nil
}

// totalTime reads the time cell; the value sits in its last nested div.
func totalTime(li *goquery.Selection) string {
	cell := li.Find(".type-time").First()
	if inner := cell.Find("div"); inner.Length() > 0 {
		cell = inner.Last()
	}
	return collapse(cell.Text())
}

// ageGroup strips the column caption the site renders into the cell.
func ageGroup(text string) string {
	text = strings.ReplaceAll(text, "Age Group", "")
	text = strings.ReplaceAll(text, "AgeGroup", "")
	return collapse(text)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
