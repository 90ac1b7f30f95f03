package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
)

var (
	slotFlags struct {
		query     string
		skill     string
		districts []string
		priceMin  string
		priceMax  string
		date      string
		from      string
		amenities []string
		sort      string
	}
	selectOrigin string
	clearOrigin  string
)

func init() {
	slotsCmd.Flags().StringVarP(&slotFlags.query, "query", "q", "", "Free-text search over court, location and notes")
	slotsCmd.Flags().StringVar(&slotFlags.skill, "skill", "", "Skill level, e.g. TB")
	slotsCmd.Flags().StringSliceVar(&slotFlags.districts, "district", nil, "Districts to include")
	slotsCmd.Flags().StringVar(&slotFlags.priceMin, "price-min", "", "Minimum price per player")
	slotsCmd.Flags().StringVar(&slotFlags.priceMax, "price-max", "", "Maximum price per player")
	slotsCmd.Flags().StringVar(&slotFlags.date, "date", "", "Calendar date, YYYY-MM-DD")
	slotsCmd.Flags().StringVar(&slotFlags.from, "from", "", "Earliest start time, HH:mm")
	slotsCmd.Flags().StringSliceVar(&slotFlags.amenities, "amenity", nil, "Required amenities")
	slotsCmd.Flags().StringVar(&slotFlags.sort, "sort", "", "Sort order: nearest, price, skill or rating")

	selectCmd.Flags().StringVar(&selectOrigin, "origin", "card-click", "Interaction that selected the slot")
	clearCmd.Flags().StringVar(&clearOrigin, "origin", "popup-close", "Interaction that cleared the selection")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(slotsCmd)
	rootCmd.AddCommand(slotCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(filtersCmd)
	rootCmd.AddCommand(activeCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/health", "")
	},
}

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "List open slots matching the given filters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/slots"+slotQuery(), "")
	},
}

var slotCmd = &cobra.Command{
	Use:   "slot <id>",
	Short: "Show one slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/slots/"+url.PathEscape(args[0]), "")
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which source is served and any load warnings",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/status", "")
	},
}

var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Reload every source now",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPost, "/refresh", "")
	},
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the community groups slots are collected from",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/groups", "")
	},
}

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Show the available filter choices",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/filters", "")
	},
}

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the active slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/active", "")
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <id>",
	Short: "Make a slot active in every view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := fmt.Sprintf(`{"id":%q,"origin":%q}`, args[0], selectOrigin)
		return performRequest(http.MethodPost, "/active", body)
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the active slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodDelete, "/active?origin="+url.QueryEscape(clearOrigin), "")
	},
}

var viewCmd = &cobra.Command{
	Use:       "view <list|split|map>",
	Short:     "Set the mounted view",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"list", "split", "map"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodPut, "/view", fmt.Sprintf(`{"view":%q}`, args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performRequest(http.MethodGet, "/metrics", "")
	},
}

func slotQuery() string {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("q", slotFlags.query)
	set("skill", slotFlags.skill)
	set("price_min", slotFlags.priceMin)
	set("price_max", slotFlags.priceMax)
	set("date", slotFlags.date)
	set("from", slotFlags.from)
	set("sort", slotFlags.sort)
	if len(slotFlags.districts) > 0 {
		v.Set("district", strings.Join(slotFlags.districts, ","))
	}
	if len(slotFlags.amenities) > 0 {
		v.Set("amenity", strings.Join(slotFlags.amenities, ","))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// withVerbose adds verbose=true to the endpoint's query when --verbose is set.
func withVerbose(endpoint string) string {
	if !verbose {
		return endpoint
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "verbose=true"
}

func performRequest(method, endpoint, body string) error {
	target := host + withVerbose(endpoint)
	fmt.Printf("Making %s request to %s\n", method, target)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	if id := resp.Header.Get("X-Request-ID"); id != "" {
		fmt.Printf("Request ID: %s\n", id)
	}
	fmt.Println("Response Body:")
	fmt.Println(string(respBody))

	return nil
}
