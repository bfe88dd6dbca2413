package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidResponse(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"flight json", `{"flights": [{"航班号": "CA1234"}]}`, true},
		{"train json", `{"trains": [{"车次": "G1"}]}`, true},
		{"chinese schedule text", "车次 G1 出发 08:00 价格 553", true},
		{"empty", "", false},
		{"whitespace", "   \n", false},
		{"timeout marker", "查询超时，请重试。航班数据不可用", false},
		{"english error", "Error: upstream returned 502", false},
		{"failed marker", "查询失败: 网络异常", false},
		{"not found", "未找到相关车次", false},
		{"no markers at all", "好的，正在处理您的请求", false},
		{"cannot marker wins over data", "无法查询航班信息", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validResponse(tt.payload))
		})
	}
}

func TestZeroFlightResponse(t *testing.T) {
	assert.True(t, zeroFlightResponse("为您找到 0 条航班"))
	assert.True(t, zeroFlightResponse("共0条航班"))
	assert.False(t, zeroFlightResponse("为您找到 10 条航班"))
}
