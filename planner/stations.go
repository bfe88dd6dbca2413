package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/huanchong-99/Go-Home/pkg/cache"
	"github.com/huanchong-99/Go-Home/pkg/logger"
	"github.com/huanchong-99/Go-Home/provider"
)

// StationCodes resolves city names to rail station codes. Results are
// memoised for the life of the resolver, including failed lookups, so
// each city costs at most one provider call per run even when many
// legs share a hub. An optional persistent cache layer survives runs.
type StationCodes struct {
	providers ToolCaller
	store     cache.Cache

	mu       sync.Mutex
	codes    map[string]string
	inFlight map[string]chan struct{}
}

func NewStationCodes(providers ToolCaller, store cache.Cache) *StationCodes {
	return &StationCodes{
		providers: providers,
		store:     store,
		codes:     make(map[string]string),
		inFlight:  make(map[string]chan struct{}),
	}
}

// Resolve returns the station code for a city, or "" when the provider
// does not know it (typically an international city). The provider is
// never called while the lock is held.
func (s *StationCodes) Resolve(ctx context.Context, city string) string {
	for {
		s.mu.Lock()
		if code, ok := s.codes[city]; ok {
			s.mu.Unlock()
			return code
		}
		wait, fetching := s.inFlight[city]
		if !fetching {
			wait = make(chan struct{})
			s.inFlight[city] = wait
			s.mu.Unlock()
			break
		}
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return ""
		}
	}

	code := s.fetch(ctx, city)

	s.mu.Lock()
	s.codes[city] = code
	close(s.inFlight[city])
	delete(s.inFlight, city)
	s.mu.Unlock()
	return code
}

// fetch checks the persistent layer, then asks the provider. A lookup
// miss is cached in memory only; negative entries must not outlive
// the run, the provider may learn the city tomorrow.
func (s *StationCodes) fetch(ctx context.Context, city string) string {
	if s.store != nil {
		if warm, err := s.store.Get(ctx, cache.StationKey(city)); err == nil {
			return string(warm)
		}
	}

	payload, err := s.providers.CallTool(ctx, provider.ToolStationCodes, map[string]any{"citys": city})
	if err != nil {
		logger.Warn("站点代码查询失败", "city", city, "error", err)
		return ""
	}

	code := parseStationCode(payload, city)
	if code != "" && s.store != nil {
		if err := s.store.Set(ctx, cache.StationKey(city), []byte(code), cache.StationCodeTTL); err != nil {
			logger.Warn("站点代码写入缓存失败", "city", city, "error", err)
		}
	}
	return code
}

// parseStationCode pulls the code for one city out of the provider's
// reply, shaped {"<city>": {"station_code": "..."}}.
func parseStationCode(payload, city string) string {
	var stations map[string]struct {
		StationCode string `json:"station_code"`
	}
	if err := json.Unmarshal([]byte(payload), &stations); err != nil {
		return ""
	}
	return stations[city].StationCode
}

// Known reports whether the city already has a cached verdict.
func (s *StationCodes) Known(city string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code, ok := s.codes[city]
	return code, ok
}

func unknownStationErr(city string) string {
	return fmt.Sprintf("无法获取 %s 的站点代码（可能是国际城市）", city)
}
