package filter

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mauv0809/court-finder/internal/skill"
)

// ParseSort accepts the sort values and their Vietnamese menu labels.
func ParseSort(s string) (Sort, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return SortNearest, nil
	}
	for _, l := range sortLabels {
		if strings.EqualFold(v, string(l.Sort)) || v == l.Label {
			return l.Sort, nil
		}
	}
	return "", fmt.Errorf("%w: unknown sort %q", ErrInvalidCriteria, s)
}

// ParseQuery reads criteria from query parameters, starting from Default:
//
//	q, skill, skills, district, price_min, price_max, date, from, amenity, sort
//
// List parameters may be repeated or comma separated.
func ParseQuery(v url.Values) (Criteria, error) {
	c := Default()
	c.Query = strings.TrimSpace(v.Get("q"))

	if raw := v.Get("skill"); raw != "" {
		if category, ok := skill.ParseCategory(raw); ok {
			c.Skill = category
		} else if !isAll(raw) {
			return Criteria{}, fmt.Errorf("%w: unknown skill %q", ErrInvalidCriteria, raw)
		}
	}
	for _, raw := range list(v, "skills") {
		category, ok := skill.ParseCategory(raw)
		if !ok {
			return Criteria{}, fmt.Errorf("%w: unknown skill %q", ErrInvalidCriteria, raw)
		}
		c.Skills = append(c.Skills, category)
	}
	c.Districts = list(v, "district")
	c.Amenities = list(v, "amenity")

	var err error
	if raw := v.Get("price_min"); raw != "" {
		if c.PriceMin, err = parsePrice(raw); err != nil {
			return Criteria{}, err
		}
	}
	if raw := v.Get("price_max"); raw != "" {
		hi, err := parsePrice(raw)
		if err != nil {
			return Criteria{}, err
		}
		c.PriceMax = &hi
	}
	if c.PriceMax != nil && c.PriceMin > *c.PriceMax {
		return Criteria{}, fmt.Errorf("%w: price_min %d is above price_max %d", ErrInvalidCriteria, c.PriceMin, *c.PriceMax)
	}

	if c.Date = strings.TrimSpace(v.Get("date")); c.Date != "" {
		if _, err := time.Parse(time.DateOnly, c.Date); err != nil {
			return Criteria{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidCriteria, c.Date)
		}
	}
	if raw := strings.TrimSpace(v.Get("from")); raw != "" {
		t, err := time.Parse("15:04", raw)
		if err != nil {
			return Criteria{}, fmt.Errorf("%w: from %q is not HH:mm", ErrInvalidCriteria, raw)
		}
		// Start times compare as strings, so the floor must be zero-padded.
		c.TimeFrom = t.Format("15:04")
	}
	if c.Sort, err = ParseSort(v.Get("sort")); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

// Values renders c as query parameters understood by ParseQuery.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	if c.Query != "" {
		v.Set("q", c.Query)
	}
	if c.Skill != "" {
		v.Set("skill", string(c.Skill))
	}
	for _, s := range c.Skills {
		v.Add("skills", string(s))
	}
	for _, d := range c.Districts {
		v.Add("district", d)
	}
	for _, a := range c.Amenities {
		v.Add("amenity", a)
	}
	v.Set("price_min", strconv.FormatInt(c.PriceMin, 10))
	if c.PriceMax != nil {
		v.Set("price_max", strconv.FormatInt(*c.PriceMax, 10))
	}
	if c.Date != "" {
		v.Set("date", c.Date)
	}
	if c.TimeFrom != "" {
		v.Set("from", c.TimeFrom)
	}
	if c.Sort != "" && c.Sort != SortNearest {
		v.Set("sort", string(c.Sort))
	}
	return v
}

func parsePrice(raw string) (int64, error) {
	p, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || p < 0 {
		return 0, fmt.Errorf("%w: price %q must be a non-negative integer", ErrInvalidCriteria, raw)
	}
	return p, nil
}

func list(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func isAll(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tất cả", "all":
		return true
	}
	return false
}
