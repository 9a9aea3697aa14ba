package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"net"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

const (
	baseURL         = "http://127.0.0.1:18080"
	numWorkers      = 50
	testDuration    = 10 * time.Second
	numParticipants = 8
	seedUploads     = 20
	linesPerUpload  = 2000
)

var participants = []string{"Alice", "Bob", "Carol", "Dave", "Erin", "Frank", "Grace", "Heidi"}

var phrases = []string{
	"pizza tonight anyone",
	"running late sorry",
	"check this out https://example.com/article",
	"that was hilarious 😂😂",
	"meeting moved to thursday",
	"<Media omitted>",
	"happy birthday 🎉🎉🎉",
	"can someone share the document",
	"on my way now",
	"good morning everyone ☀️",
}

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        200,
		MaxIdleConnsPerHost: 200,
		IdleConnTimeout:     30 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   2 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	},
}

type result struct {
	endpoint string
	status   int
	latency  time.Duration
	err      bool
}

type stats struct {
	count     int64
	errors    int64
	latencies []time.Duration
}

// chatIDs collects ids returned by uploads so read phases can target them.
var (
	chatIDMu sync.RWMutex
	chatIDs  []string
)

func addChatID(id string) {
	chatIDMu.Lock()
	chatIDs = append(chatIDs, id)
	chatIDMu.Unlock()
}

func randomChatID(rng *rand.Rand) string {
	chatIDMu.RLock()
	defer chatIDMu.RUnlock()
	if len(chatIDs) == 0 {
		return ""
	}
	return chatIDs[rng.Intn(len(chatIDs))]
}

func main() {
	fmt.Println("=== CAD Load Test ===")
	fmt.Printf("Workers: %d | Duration: %s\n", numWorkers, testDuration)
	fmt.Printf("Seed uploads: %d | Lines per upload: %d\n\n", seedUploads, linesPerUpload)

	// Wait for server
	fmt.Print("Waiting for server... ")
	for i := 0; i < 30; i++ {
		resp, err := httpClient.Get(baseURL + "/health")
		if err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			break
		}
		if i == 29 {
			fmt.Println("FAILED: server not responding")
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	fmt.Println("OK")

	// Phase 1: Seed chats
	fmt.Println("\n--- Phase 1: Seeding chats (POST /upload) ---")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < seedUploads; i++ {
		r := doUpload(rng)
		if r.err {
			fmt.Printf("  upload %d failed with status %d\n", i, r.status)
		}
	}
	fmt.Printf("  %d chats seeded\n", len(chatIDs))

	// Phase 2: Mixed load
	fmt.Println("\n--- Phase 2: Mixed load (10% upload, 90% read) ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.10:
			return doUpload(rng)
		case r < 0.35:
			return doGet(rng, "/stats")
		case r < 0.55:
			return doGet(rng, "/timeline")
		case r < 0.75:
			return doGet(rng, "/participants")
		case r < 0.90:
			return doGet(rng, "/wordcloud")
		default:
			return doGetChats()
		}
	})

	// Phase 3: Analysis-heavy load
	fmt.Println("\n--- Phase 3: Analysis-heavy load ---")
	runPhase(testDuration, func(rng *rand.Rand) result {
		r := rng.Float64()
		switch {
		case r < 0.25:
			return doGet(rng, "/analysis")
		case r < 0.45:
			return doGet(rng, "/interactions")
		case r < 0.65:
			return doGet(rng, "/heatmap")
		case r < 0.85:
			return doGet(rng, "/summary")
		default:
			return doGet(rng, "/content")
		}
	})
}

func runPhase(duration time.Duration, workFn func(rng *rand.Rand) result) {
	results := make(chan result, 10000)
	var wg sync.WaitGroup
	var totalOps atomic.Int64
	stop := make(chan struct{})

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			for {
				select {
				case <-stop:
					return
				default:
					r := workFn(rng)
					totalOps.Add(1)
					results <- r
				}
			}
		}(rand.Int63() + int64(i))
	}

	allResults := make(map[string]*stats)
	done := make(chan struct{})
	go func() {
		for r := range results {
			s, ok := allResults[r.endpoint]
			if !ok {
				s = &stats{}
				allResults[r.endpoint] = s
			}
			s.count++
			if r.err {
				s.errors++
			}
			s.latencies = append(s.latencies, r.latency)
		}
		close(done)
	}()

	time.Sleep(duration)
	close(stop)
	wg.Wait()
	close(results)
	<-done

	printResults(allResults, duration)
}

func printResults(allResults map[string]*stats, duration time.Duration) {
	var totalOps int64
	var totalErrors int64

	endpoints := make([]string, 0, len(allResults))
	for ep := range allResults {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	fmt.Printf("\n  %-22s %8s %6s %10s %10s %10s %10s\n",
		"Endpoint", "Reqs", "Errs", "Avg", "P50", "P95", "P99")
	fmt.Println("  " + repeat("-", 88))

	for _, ep := range endpoints {
		s := allResults[ep]
		totalOps += s.count
		totalErrors += s.errors

		sort.Slice(s.latencies, func(i, j int) bool {
			return s.latencies[i] < s.latencies[j]
		})

		avg := avgDuration(s.latencies)
		p50 := percentile(s.latencies, 0.50)
		p95 := percentile(s.latencies, 0.95)
		p99 := percentile(s.latencies, 0.99)

		fmt.Printf("  %-22s %8d %6d %10s %10s %10s %10s\n",
			ep, s.count, s.errors, fmtDur(avg), fmtDur(p50), fmtDur(p95), fmtDur(p99))
	}

	rps := float64(totalOps) / duration.Seconds()
	fmt.Println("  " + repeat("-", 88))
	fmt.Printf("  Total: %d reqs | Errors: %d (%.1f%%) | RPS: %.0f\n",
		totalOps, totalErrors, float64(totalErrors)/float64(totalOps)*100, rps)
}

func generateTranscript(rng *rand.Rand) []byte {
	var b bytes.Buffer
	ts := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < linesPerUpload; i++ {
		ts = ts.Add(time.Duration(rng.Intn(600)+1) * time.Second)
		who := participants[rng.Intn(numParticipants)]
		text := phrases[rng.Intn(len(phrases))]
		fmt.Fprintf(&b, "[%d/%d/%d, %d:%02d:%02d PM] %s: %s\n",
			int(ts.Month()), ts.Day(), ts.Year(),
			(ts.Hour()%12)+1, ts.Minute(), ts.Second(), who, text)
	}
	return b.Bytes()
}

func doUpload(rng *rand.Rand) result {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", fmt.Sprintf("load_chat_%d.txt", rng.Intn(10000)))
	if err != nil {
		return result{"POST /upload", 0, 0, true}
	}
	if _, err := fw.Write(generateTranscript(rng)); err != nil {
		return result{"POST /upload", 0, 0, true}
	}
	w.Close()

	start := time.Now()
	resp, err := httpClient.Post(baseURL+"/upload", w.FormDataContentType(), &buf)
	lat := time.Since(start)
	if err != nil {
		return result{"POST /upload", 0, lat, true}
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode == 201 {
		var parsed struct {
			ChatID string `json:"chat_id"`
		}
		if json.Unmarshal(body, &parsed) == nil && parsed.ChatID != "" {
			addChatID(parsed.ChatID)
		}
	}
	return result{"POST /upload", resp.StatusCode, lat, resp.StatusCode != 201}
}

func doGet(rng *rand.Rand, endpoint string) result {
	id := randomChatID(rng)
	url := fmt.Sprintf("%s%s?id=%s", baseURL, endpoint, id)
	start := time.Now()
	resp, err := httpClient.Get(url)
	lat := time.Since(start)
	label := "GET " + endpoint
	if err != nil {
		return result{label, 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{label, resp.StatusCode, lat, resp.StatusCode != 200}
}

func doGetChats() result {
	start := time.Now()
	resp, err := httpClient.Get(baseURL + "/chats")
	lat := time.Since(start)
	if err != nil {
		return result{"GET /chats", 0, lat, true}
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return result{"GET /chats", resp.StatusCode, lat, resp.StatusCode != 200}
}

func avgDuration(d []time.Duration) time.Duration {
	if len(d) == 0 {
		return 0
	}
	var sum time.Duration
	for _, v := range d {
		sum += v
	}
	return sum / time.Duration(len(d))
}

func percentile(d []time.Duration, p float64) time.Duration {
	if len(d) == 0 {
		return 0
	}
	idx := int(float64(len(d)) * p)
	if idx >= len(d) {
		idx = len(d) - 1
	}
	return d[idx]
}

func fmtDur(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000.0)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
