// +build ignore

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

type searchRequest struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Radius     float64 `json:"radius"`
	MaxResults int     `json:"max_results,omitempty"`
	TimeRange  string  `json:"time_range,omitempty"`
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the running service")
	lat := flag.Float64("lat", 41.3851, "latitude")
	lon := flag.Float64("lon", 2.1734, "longitude")
	radius := flag.Float64("radius", 10, "search radius in km")
	maxResults := flag.Int("max", 5, "max results")
	timeRange := flag.String("range", "24h", "time range (24h, 48h, 7d)")
	flag.Parse()

	body, err := json.Marshal(searchRequest{
		Latitude:   *lat,
		Longitude:  *lon,
		Radius:     *radius,
		MaxResults: *maxResults,
		TimeRange:  *timeRange,
	})
	if err != nil {
		log.Fatalf("Failed to marshal request: %v", err)
	}

	client := &http.Client{Timeout: 120 * time.Second}

	start := time.Now()
	resp, err := client.Post(*baseURL+"/api/v1/search-news", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}

	fmt.Printf("Status: %d (%.1fs)\n", resp.StatusCode, time.Since(start).Seconds())

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(pretty.String())
}
