package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

const bypassHeader = "X-Rate-Limit-Bypass"

var (
	payloadCounter atomic.Uint64
	bodyPool       = sync.Pool{
		New: func() any {
			return make([]byte, 0, 64)
		},
	}
)

func baseHeader(bypassSecret string) http.Header {
	header := http.Header{}
	if bypassSecret != "" {
		header.Set(bypassHeader, bypassSecret)
	}
	return header
}

func ProcessTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	header.Set("Content-Type", "application/json")
	url := baseURL + "/process"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header

		buf := bodyPool.Get().([]byte)[:0]
		buf = fmt.Appendf(buf, `{"data":"bench payload %d"}`, payloadCounter.Add(1))
		t.Body = buf
		return nil
	}
}

func MessageTargeter(baseURL string, ids []int64, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	urls := make([]string, len(ids))
	for i, id := range ids {
		urls[i] = baseURL + "/message/" + strconv.FormatInt(id, 10)
	}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = urls[rand.IntN(len(urls))]
		t.Header = header
		return nil
	}
}

func HealthTargeter(baseURL, bypassSecret string) vegeta.Targeter {
	header := baseHeader(bypassSecret)
	url := baseURL + "/health"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = url
		t.Header = header
		return nil
	}
}

// MixedTargeter sends processRatio of traffic to /process, healthRatio to
// /health and the rest to /message/{id}.
func MixedTargeter(baseURL string, ids []int64, processRatio, healthRatio float64, bypassSecret string) vegeta.Targeter {
	processTarget := ProcessTargeter(baseURL, bypassSecret)
	healthTarget := HealthTargeter(baseURL, bypassSecret)
	messageTarget := MessageTargeter(baseURL, ids, bypassSecret)

	return func(t *vegeta.Target) error {
		r := rand.Float64()
		switch {
		case r < processRatio:
			return processTarget(t)
		case r < processRatio+healthRatio:
			return healthTarget(t)
		default:
			return messageTarget(t)
		}
	}
}
