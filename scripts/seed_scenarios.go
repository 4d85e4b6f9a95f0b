// seed_scenarios.go: standalone script that loads sample scenarios from a YAML
// file into a new session and prints the comparison document.
//
// Usage:
//
//	go run scripts/seed_scenarios.go -file scenarios.yaml -api http://localhost:8700
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"
)

type selections struct {
	Region      string  `yaml:"region" json:"region,omitempty"`
	AdjustCosts bool    `yaml:"adjust_costs" json:"adjust_costs"`
	Cost        float64 `yaml:"cost" json:"cost"`
	Community   bool    `yaml:"community" json:"community"`
	Counselling bool    `yaml:"counselling" json:"counselling"`
	VR          bool    `yaml:"vr" json:"vr"`
	Virtual     bool    `yaml:"virtual" json:"virtual"`
	Hybrid      bool    `yaml:"hybrid" json:"hybrid"`
	Weekly      bool    `yaml:"weekly" json:"weekly"`
	Monthly     bool    `yaml:"monthly" json:"monthly"`
	TwoHour     bool    `yaml:"two_hour" json:"two_hour"`
	FourHour    bool    `yaml:"four_hour" json:"four_hour"`
	Local       bool    `yaml:"local" json:"local"`
	Wider       bool    `yaml:"wider" json:"wider"`
}

type sampleScenario struct {
	Selections   selections `yaml:"selections" json:"selections"`
	QalyScenario string     `yaml:"qaly_scenario" json:"qaly_scenario,omitempty"`
}

func main() {
	filePath := flag.String("file", "scenarios.yaml", "path to YAML list of scenarios")
	apiURL := flag.String("api", "http://localhost:8700", "LonelyLess API base URL")
	dryRun := flag.Bool("dry-run", false, "print scenarios without posting")
	flag.Parse()

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatalf("read %s: %v", *filePath, err)
	}

	var samples []sampleScenario
	if err := yaml.Unmarshal(data, &samples); err != nil {
		log.Fatalf("parse %s: %v", *filePath, err)
	}
	log.Printf("parsed %d scenarios from %s", len(samples), *filePath)

	if *dryRun {
		for i, s := range samples {
			body, _ := json.Marshal(s)
			fmt.Printf("[%d] %s\n", i+1, body)
		}
		return
	}

	client := &http.Client{}

	var session struct {
		SessionID string `json:"session_id"`
	}
	if err := postJSON(client, *apiURL+"/api/v1/sessions", nil, http.StatusCreated, &session); err != nil {
		log.Fatalf("start session: %v", err)
	}
	log.Printf("session %s started", session.SessionID)

	base := *apiURL + "/api/v1/sessions/" + session.SessionID
	saved, skipped := 0, 0
	for i, s := range samples {
		if err := postJSON(client, base+"/scenarios", s, http.StatusCreated, nil); err != nil {
			log.Printf("skip scenario %d: %v", i+1, err)
			skipped++
			continue
		}
		saved++
	}
	log.Printf("done: %d saved, %d skipped", saved, skipped)

	resp, err := client.Get(base + "/comparison?format=text")
	if err != nil {
		log.Fatalf("comparison: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("comparison unavailable: status %d", resp.StatusCode)
		return
	}
	io.Copy(os.Stdout, resp.Body)
}

func postJSON(client *http.Client, url string, in interface{}, want int, out interface{}) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest("POST", url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
