package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const (
	targetHost = "http://localhost:8080"
	rps        = 5
	duration   = 2 * time.Minute
)

type submitRequest struct {
	TeamID int    `json:"teamId"`
	UserID int    `json:"userId"`
	Tipo   string `json:"tipo"`
	Nome   string `json:"nome"`
	Valor  string `json:"valor"`
	Data   string `json:"data"`
}

type decisionRequest struct {
	Decision string `json:"decision"`
	Motivo   string `json:"motivo,omitempty"`
}

var (
	teamIDs     = []int{1, 2}
	tipos       = []string{"alimentos", "fundos", "evento"}
	activityIDs []int
	httpc       = &http.Client{Timeout: 10 * time.Second}
)

func postJSON(url string, body any) (int, []byte, error) {
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := httpc.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	_, _ = out.ReadFrom(resp.Body)
	return resp.StatusCode, out.Bytes(), nil
}

// Seed
func seedData() error {
	log.Println("Seeding: submitting activities...")

	for i := 1; i <= 100; i++ {
		body := submitRequest{
			TeamID: teamIDs[rand.Intn(len(teamIDs))],
			UserID: 4,
			Tipo:   tipos[rand.Intn(len(tipos))],
			Nome:   fmt.Sprintf("Atividade %d", i),
			Valor:  fmt.Sprintf("%.2f", 10+rand.Float64()*500),
		}

		status, resp, err := postJSON(targetHost+"/activities", body)
		if err != nil {
			return err
		}
		if status >= 400 {
			log.Printf("WARN /activities returned %d\n", status)
			continue
		}

		var created struct {
			Activity struct {
				ID int `json:"id"`
			} `json:"activity"`
		}
		if err := json.Unmarshal(resp, &created); err == nil && created.Activity.ID > 0 {
			activityIDs = append(activityIDs, created.Activity.ID)
		}
		time.Sleep(15 * time.Millisecond)
	}

	log.Printf("Seed completed: activities=%d\n", len(activityIDs))
	return nil
}

// Targeter
func makeTargeter() vegeta.Targeter {
	return func(t *vegeta.Target) error {
		r := rand.Float64()

		// 40% GET /stats
		if r < 0.40 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/stats"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 25% GET /teams/ranking
		if r < 0.65 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/teams/ranking"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 20% GET /activities/pending
		if r < 0.85 {
			t.Method = http.MethodGet
			t.URL = targetHost + "/activities/pending"
			t.Body = nil
			t.Header = map[string][]string{"Accept": {"application/json"}}
			return nil
		}

		// 10% POST /activities
		if r < 0.95 {
			body, _ := json.Marshal(submitRequest{
				TeamID: teamIDs[rand.Intn(len(teamIDs))],
				UserID: 4,
				Tipo:   tipos[rand.Intn(len(tipos))],
				Nome:   "Atividade de carga",
				Valor:  "25.50",
			})
			t.Method = http.MethodPost
			t.URL = targetHost + "/activities"
			t.Body = body
			t.Header = map[string][]string{"Content-Type": {"application/json"}}
			return nil
		}

		// 5% POST decision on a seeded activity
		id := activityIDs[rand.Intn(len(activityIDs))]
		body, _ := json.Marshal(decisionRequest{Decision: "Aprovada"})
		t.Method = http.MethodPost
		t.URL = fmt.Sprintf("%s/activities/%d/decision", targetHost, id)
		t.Body = body
		t.Header = map[string][]string{"Content-Type": {"application/json"}}
		return nil
	}
}

// Attack
func runAttack() {
	rate := vegeta.Rate{Freq: rps, Per: time.Second}
	attacker := vegeta.NewAttacker()
	targeter := makeTargeter()

	var metrics vegeta.Metrics

	log.Printf("Starting attack: %s for %s", targetHost, duration)
	for res := range attacker.Attack(targeter, rate, duration, "load-test") {
		metrics.Add(res)
	}
	metrics.Close()

	fmt.Println("=== Results ===")
	fmt.Printf("Requests: %d\n", metrics.Requests)
	fmt.Printf("Success rate: %.4f%%\n", metrics.Success*100)
	fmt.Printf("Latency mean: %s\n", metrics.Latencies.Mean)
	fmt.Printf("Latency P95: %s\n", metrics.Latencies.P95)
	fmt.Printf("Latency P99: %s\n", metrics.Latencies.P99)
}

func main() {
	rand.Seed(time.Now().UnixNano())

	if err := seedData(); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	runAttack()
}
