package planner

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huanchong-99/Go-Home/pkg/cache"
	"github.com/huanchong-99/Go-Home/provider"
)

type fakeCall struct {
	Tool string
	Args map[string]any
}

// fakeCaller records every call and answers from a reply function.
type fakeCaller struct {
	mu    sync.Mutex
	calls []fakeCall
	reply func(tool string, args map[string]any) (string, error)
}

func (f *fakeCaller) CallTool(_ context.Context, tool string, args map[string]any) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, fakeCall{Tool: tool, Args: args})
	f.mu.Unlock()
	if f.reply == nil {
		return "", fmt.Errorf("no reply configured for %s", tool)
	}
	return f.reply(tool, args)
}

func (f *fakeCaller) callCount(tool string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Tool == tool {
			n++
		}
	}
	return n
}

func stationReply(codes map[string]string) func(string, map[string]any) (string, error) {
	return func(tool string, args map[string]any) (string, error) {
		if tool != provider.ToolStationCodes {
			return "", fmt.Errorf("unexpected tool %s", tool)
		}
		city, _ := args["citys"].(string)
		code, ok := codes[city]
		if !ok {
			return "{}", nil
		}
		return fmt.Sprintf(`{"%s": {"station_code": "%s"}}`, city, code), nil
	}
}

func TestStationCodesResolve(t *testing.T) {
	caller := &fakeCaller{reply: stationReply(map[string]string{"北京": "BJP"})}
	codes := NewStationCodes(caller, nil)

	assert.Equal(t, "BJP", codes.Resolve(context.Background(), "北京"))
	assert.Equal(t, "BJP", codes.Resolve(context.Background(), "北京"))
	assert.Equal(t, 1, caller.callCount(provider.ToolStationCodes))
}

// Failed lookups are cached too: an international city costs exactly
// one provider call no matter how many legs reference it.
func TestStationCodesNegativeCaching(t *testing.T) {
	caller := &fakeCaller{reply: stationReply(nil)}
	codes := NewStationCodes(caller, nil)

	assert.Empty(t, codes.Resolve(context.Background(), "曼谷"))
	assert.Empty(t, codes.Resolve(context.Background(), "曼谷"))
	assert.Equal(t, 1, caller.callCount(provider.ToolStationCodes))

	code, known := codes.Known("曼谷")
	assert.True(t, known)
	assert.Empty(t, code)
}

// Concurrent resolvers for the same city coalesce into one call.
func TestStationCodesConcurrentSingleCall(t *testing.T) {
	caller := &fakeCaller{reply: stationReply(map[string]string{"郑州": "ZAF"})}
	codes := NewStationCodes(caller, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, "ZAF", codes.Resolve(context.Background(), "郑州"))
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, caller.callCount(provider.ToolStationCodes))
}

func TestStationCodesPersistentStore(t *testing.T) {
	store := cache.NewMemory()
	require.NoError(t, store.Set(context.Background(), cache.StationKey("上海"), []byte("SHH"), time.Hour))

	caller := &fakeCaller{reply: stationReply(nil)}
	codes := NewStationCodes(caller, store)

	assert.Equal(t, "SHH", codes.Resolve(context.Background(), "上海"))
	assert.Zero(t, caller.callCount(provider.ToolStationCodes))
}

func TestStationCodesWritesThrough(t *testing.T) {
	store := cache.NewMemory()
	caller := &fakeCaller{reply: stationReply(map[string]string{"武汉": "WHN"})}
	codes := NewStationCodes(caller, store)

	assert.Equal(t, "WHN", codes.Resolve(context.Background(), "武汉"))

	stored, err := store.Get(context.Background(), cache.StationKey("武汉"))
	require.NoError(t, err)
	assert.Equal(t, "WHN", string(stored))
}

func TestParseStationCode(t *testing.T) {
	assert.Equal(t, "BJP", parseStationCode(`{"北京": {"station_code": "BJP"}}`, "北京"))
	assert.Empty(t, parseStationCode(`{"北京": {"station_code": "BJP"}}`, "上海"))
	assert.Empty(t, parseStationCode("not json", "北京"))
	assert.Empty(t, parseStationCode("{}", "北京"))
}
