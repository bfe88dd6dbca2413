package hubs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubsForRouteDomestic(t *testing.T) {
	cities, rt, tip := HubsForRoute("北京", "上海", 15, "all", false)
	assert.Equal(t, RouteDomestic, rt)
	assert.LessOrEqual(t, len(cities), 15)
	assert.NotContains(t, cities, "北京")
	assert.NotContains(t, cities, "上海")
	assert.Contains(t, tip, "国内航线")
}

func TestHubsForRouteLongHaul(t *testing.T) {
	cities, rt, _ := HubsForRoute("北京", "旧金山", 30, "all", true)
	require.Equal(t, RouteDomesticToLongHaul, rt)
	assert.NotContains(t, cities, "北京")
	assert.NotContains(t, cities, "旧金山")

	var hasAsiaGateway, hasNorthAmerica bool
	for _, c := range cities {
		for _, g := range HubGroup(GroupAsiaGateway) {
			if c == g {
				hasAsiaGateway = true
			}
		}
		for _, g := range HubGroup(GroupNorthAmerica) {
			if c == g {
				hasNorthAmerica = true
			}
		}
	}
	assert.True(t, hasAsiaGateway)
	assert.True(t, hasNorthAmerica)
}

// The flattened strategy list alternates between groups, so even a
// small selection cap samples every group.
func TestExpandGroupsInterleaves(t *testing.T) {
	out := expandGroups([]string{GroupAsiaGateway, GroupNorthAmerica})
	require.Greater(t, len(out), 3)
	assert.Equal(t, HubGroup(GroupAsiaGateway)[0], out[0])
	assert.Equal(t, HubGroup(GroupNorthAmerica)[0], out[1])
	assert.Equal(t, HubGroup(GroupAsiaGateway)[1], out[2])
	assert.Equal(t, HubGroup(GroupNorthAmerica)[1], out[3])
}

func TestHubsForRouteDomesticOnly(t *testing.T) {
	cities, rt, tip := HubsForRoute("广州", "曼谷", 15, "all", false)
	assert.Equal(t, RouteDomesticToSEAsia, rt)
	assert.Contains(t, tip, "仅国内中转")
	assert.NotContains(t, cities, "广州")
	for _, c := range cities {
		assert.True(t, IsChineseDomestic(c) || c == "香港", c)
	}
	// No international hub sneaks in.
	assert.NotContains(t, cities, "曼谷")
	assert.NotContains(t, cities, "新加坡")
}

func TestHubsForRouteDedupesAndTruncates(t *testing.T) {
	cities, _, _ := HubsForRoute("伦敦", "北京", 10, "all", true)
	assert.LessOrEqual(t, len(cities), 10)
	seen := make(map[string]bool)
	for _, c := range cities {
		assert.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
	}
}

func TestHubsForRouteDefaultMaxCount(t *testing.T) {
	cities, _, _ := HubsForRoute("北京", "纽约", 0, "all", true)
	assert.LessOrEqual(t, len(cities), DefaultMaxHubs)
	assert.NotEmpty(t, cities)
}

func TestRouteInfoFor(t *testing.T) {
	info := RouteInfoFor("上海", "东京", DefaultMaxHubs, "all", true)
	assert.Equal(t, RouteDomesticToEastAsia, info.RouteType)
	assert.True(t, info.IsInternational)
	assert.Equal(t, len(info.RecommendedHubs), info.HubCount)
	assert.NotEmpty(t, info.TipMessage)
}

func TestTransferPromptInfo(t *testing.T) {
	flight := TransferPromptInfo("flight")
	assert.Contains(t, flight, "推荐航空中转枢纽")

	train := TransferPromptInfo("train")
	assert.Contains(t, train, "郑州东站")

	all := TransferPromptInfo("all")
	assert.Contains(t, all, "双机场城市提醒")
	assert.Contains(t, all, "区域中转策略")
	assert.True(t, strings.Contains(all, "空铁联运枢纽"))
}
